package droplet

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// rhsFunc evaluates the ODE right-hand side dy/dφ into dst. Both slices
// have length 2.
type rhsFunc func(phi float64, y, dst []float64)

const (
	defaultATol = 1e-10
	defaultRTol = 1e-7

	// maxAttempts bounds the total number of step attempts, accepted or
	// rejected, so a pathological parameter set fails instead of spinning.
	maxAttempts    = 1_000_000
	maxNewtonIters = 12

	// minStepFraction of the span is the step-size underflow threshold.
	minStepFraction = 1e-14
)

// bdfIntegrator advances a two-dimensional ODE system using variable-step
// backward differentiation formulas: backward Euler on the starting step
// (no history yet), then the variable-step BDF2
//
//	y[n+1] = ((1+r)²·y[n] − r²·y[n−1])/(1+2r) + h·(1+r)/(1+2r)·f(φ[n+1], y[n+1])
//
// with r = h/h_prev. Both formulas are implicit and A-stable, which the
// Young–Laplace system needs for large capillary parameters where explicit
// steppers diverge. Each step solves the implicit equation by Newton
// iteration with a finite-difference Jacobian; the step size is controlled
// by the gap between the extrapolation predictor and the corrector,
// measured against atol + rtol·|y|.
type bdfIntegrator struct {
	f          rhsFunc
	atol, rtol float64

	// Newton workspace, reused across steps.
	jac  *mat.Dense
	itm  *mat.Dense
	rhs  *mat.VecDense
	dlt  mat.VecDense
	fy   []float64
	ytmp []float64
}

func newBDFIntegrator(f rhsFunc, atol, rtol float64) *bdfIntegrator {
	if atol <= 0 {
		atol = defaultATol
	}
	if rtol <= 0 {
		rtol = defaultRTol
	}
	return &bdfIntegrator{
		f:    f,
		atol: atol,
		rtol: rtol,
		jac:  mat.NewDense(2, 2, nil),
		itm:  mat.NewDense(2, 2, nil),
		rhs:  mat.NewVecDense(2, nil),
		fy:   make([]float64, 2),
		ytmp: make([]float64, 2),
	}
}

// integrate advances from φ=0, y=(0,0) to phiEnd and reports samples
// through record in ascending φ order, starting with the initial state.
// If eval is non-nil it must be strictly increasing with eval[0] == 0 and
// eval[len-1] == phiEnd; samples are then recorded exactly at its entries
// (the integrator clamps steps so each entry is hit), otherwise every
// accepted step is recorded.
func (s *bdfIntegrator) integrate(phiEnd float64, eval []float64, record func(phi float64, y []float64)) error {
	y := []float64{0, 0}
	phi := 0.0
	evalIdx := 0
	if eval != nil {
		record(eval[0], y)
		evalIdx = 1
	} else {
		record(phi, y)
	}

	var prevY [2]float64
	var hPrev float64
	haveHistory := false

	hMin := phiEnd * minStepFraction
	hFree := math.Min(1e-4, phiEnd/16)

	for attempts := 0; phi < phiEnd; attempts++ {
		if attempts >= maxAttempts {
			return &IntegrationError{Phi: phi, Reason: "step budget exhausted"}
		}

		limit := phiEnd
		if eval != nil && evalIdx < len(eval) {
			limit = eval[evalIdx]
		}
		h := hFree
		clamped := h >= limit-phi
		if clamped {
			h = limit - phi
		}

		// Implicit stage is y = a + w·f(φ+h, y); pred seeds the Newton
		// iteration and doubles as the lower-order comparison solution.
		var a, pred [2]float64
		var w float64
		if haveHistory {
			r := h / hPrev
			d := 1 + 2*r
			c1 := (1 + r) * (1 + r) / d
			c2 := r * r / d
			a[0] = c1*y[0] - c2*prevY[0]
			a[1] = c1*y[1] - c2*prevY[1]
			w = h * (1 + r) / d
			pred[0] = y[0] + r*(y[0]-prevY[0])
			pred[1] = y[1] + r*(y[1]-prevY[1])
		} else {
			a[0], a[1] = y[0], y[1]
			w = h
			s.f(phi, y, s.fy)
			pred[0] = y[0] + h*s.fy[0]
			pred[1] = y[1] + h*s.fy[1]
		}

		phiNew := phi + h
		if clamped {
			phiNew = limit
		}

		ynew, ok := s.newton(phiNew, w, a, pred)
		if !ok {
			hFree = h / 4
			if hFree < hMin {
				return &IntegrationError{Phi: phi, Reason: "Newton iteration stalled at minimum step size"}
			}
			continue
		}

		est := 0.0
		for i := range ynew {
			sc := s.atol + s.rtol*math.Abs(ynew[i])
			est = math.Max(est, 0.5*math.Abs(ynew[i]-pred[i])/sc)
		}
		if est > 1 {
			hFree = h * math.Max(0.1, 0.9/math.Sqrt(est))
			if hFree < hMin {
				return &IntegrationError{Phi: phi, Reason: "step size underflow"}
			}
			continue
		}

		prevY[0], prevY[1] = y[0], y[1]
		hPrev = h
		haveHistory = true
		y[0], y[1] = ynew[0], ynew[1]
		phi = phiNew

		if eval != nil {
			if evalIdx < len(eval) && phi == eval[evalIdx] {
				record(phi, y)
				evalIdx++
			}
		} else {
			record(phi, y)
		}

		fac := math.Min(4, math.Max(0.2, 0.9/math.Sqrt(math.Max(est, 1e-8))))
		if hNew := h * fac; !clamped || hNew > hFree {
			hFree = hNew
		}
	}
	return nil
}

// newton solves y = a + w·f(phiNew, y) starting from guess. It reports
// failure when the iteration matrix is singular, an iterate turns
// non-finite, or the correction does not shrink below the error weights
// within maxNewtonIters.
func (s *bdfIntegrator) newton(phiNew, w float64, a, guess [2]float64) ([2]float64, bool) {
	y := s.ytmp
	y[0], y[1] = guess[0], guess[1]
	wrapped := func(dst, yy []float64) { s.f(phiNew, yy, dst) }
	for iter := 0; iter < maxNewtonIters; iter++ {
		s.f(phiNew, y, s.fy)
		g0 := y[0] - w*s.fy[0] - a[0]
		g1 := y[1] - w*s.fy[1] - a[1]

		fd.Jacobian(s.jac, wrapped, y, nil)
		s.itm.Set(0, 0, 1-w*s.jac.At(0, 0))
		s.itm.Set(0, 1, -w*s.jac.At(0, 1))
		s.itm.Set(1, 0, -w*s.jac.At(1, 0))
		s.itm.Set(1, 1, 1-w*s.jac.At(1, 1))
		s.rhs.SetVec(0, -g0)
		s.rhs.SetVec(1, -g1)
		if err := s.dlt.SolveVec(s.itm, s.rhs); err != nil {
			return [2]float64{}, false
		}
		d0 := s.dlt.AtVec(0)
		d1 := s.dlt.AtVec(1)
		y[0] += d0
		y[1] += d1
		if math.IsNaN(y[0]) || math.IsNaN(y[1]) || math.IsInf(y[0], 0) || math.IsInf(y[1], 0) {
			return [2]float64{}, false
		}

		n0 := math.Abs(d0) / (s.atol + s.rtol*math.Abs(y[0]))
		n1 := math.Abs(d1) / (s.atol + s.rtol*math.Abs(y[1]))
		if math.Max(n0, n1) < 0.05 {
			return [2]float64{y[0], y[1]}, true
		}
	}
	return [2]float64{}, false
}

package droplet

import (
	"errors"
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// stiffLinear is a linear system with a fast transient: y0' = 1 and
// y1' = −λ(y1 − y0), whose exact solution from (0, 0) is
// y0 = t, y1 = t − (1 − e^(−λt))/λ. For large λ explicit steppers need
// steps below 2/λ everywhere; an A-stable method does not.
func stiffLinear(lambda float64) rhsFunc {
	return func(t float64, y, dst []float64) {
		dst[0] = 1
		dst[1] = -lambda * (y[1] - y[0])
	}
}

func TestIntegratorStiffDecay(t *testing.T) {
	const lambda = 200.0
	intg := newBDFIntegrator(stiffLinear(lambda), 1e-8, 1e-6)

	var lastT float64
	var lastY [2]float64
	steps := 0
	err := intg.integrate(1, nil, func(tt float64, y []float64) {
		lastT = tt
		lastY[0], lastY[1] = y[0], y[1]
		steps++
	})
	if err != nil {
		t.Fatalf("got error %v, expected successful integration", err)
	}
	if lastT != 1 {
		t.Errorf("got final abscissa %v, expected exactly 1", lastT)
	}
	// A method limited by stability rather than accuracy would need at
	// least λ/2 = 100 steps per unit just to stay bounded, and far more
	// to be accurate; the implicit stepper should coast once the
	// transient has decayed.
	if steps > 5000 {
		t.Errorf("took %d steps, expected the step size to grow after the transient", steps)
	}
	want := 1 - (1-math.Exp(-lambda))/lambda
	if math.Abs(lastY[0]-1) > 1e-6 {
		t.Errorf("got y0=%v, expected 1", lastY[0])
	}
	if math.Abs(lastY[1]-want) > 1e-4 {
		t.Errorf("got y1=%v, expected %v", lastY[1], want)
	}
}

func TestIntegratorEvalGridExact(t *testing.T) {
	eval := floats.Span(make([]float64, 17), 0, 0.5)
	intg := newBDFIntegrator(stiffLinear(50), 0, 0)

	var got []float64
	err := intg.integrate(0.5, eval, func(tt float64, y []float64) {
		got = append(got, tt)
	})
	if err != nil {
		t.Fatalf("got error %v, expected successful integration", err)
	}
	// Clamping must land every sample exactly on the requested grid.
	diff(t, eval, got)
	if !slices.IsSorted(got) {
		t.Error("expected recorded abscissae in ascending order")
	}
}

func TestIntegratorReportsBlowup(t *testing.T) {
	// y' = y² from y(0)=1 blows up at t=1; an attempt to integrate past
	// the pole must fail with an IntegrationError, not hang or return a
	// non-finite state. The second component just tracks the first.
	f := func(tt float64, y, dst []float64) {
		v := 1 + y[0]
		dst[0] = v * v
		dst[1] = v * v
	}
	intg := newBDFIntegrator(f, 0, 0)
	err := intg.integrate(2, nil, func(tt float64, y []float64) {
		if math.IsNaN(y[0]) || math.IsInf(y[0], 0) {
			t.Fatalf("recorded non-finite state %v at t=%v", y, tt)
		}
	})
	if err == nil {
		t.Fatal("got nil error, expected integration failure near the pole")
	}
	var ierr *IntegrationError
	if !errors.As(err, &ierr) {
		t.Fatalf("got %T (%v), expected *IntegrationError", err, err)
	}
	if ierr.Phi >= 2 {
		t.Errorf("failure reported at %v, expected before the endpoint", ierr.Phi)
	}
}

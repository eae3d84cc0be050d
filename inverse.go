package droplet

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// SolveOptions controls the inverse solvers.
type SolveOptions struct {
	// R0Guess is the starting apex radius in metres. Zero selects the
	// default of 1 mm, a sensible scale for sessile droplets.
	R0Guess float64

	// MaxIterations caps the outer search. Zero selects the default of
	// 250 major iterations; a search that exhausts the cap without
	// closing the residual returns a *ConvergenceError.
	MaxIterations int

	// Simulate is applied to every trial integration and to the final
	// profile returned by the solver.
	Simulate SimulateOptions
}

const (
	defaultR0Guess       = 1e-3
	defaultMaxIterations = 250

	// residualTol is the acceptance bound on the normalized residual of a
	// finished inverse solve. The optimizer can report convergence on a
	// degenerate simplex; the solve only counts as successful if the
	// residual actually closed.
	residualTol = 1e-6
)

// SolveForVolume finds the apex curvature radius whose droplet, at the
// given contact angle (degrees) and fluid, has the target volume (cubic
// metres), and returns that droplet's profile.
//
// The search minimizes the squared normalized residual
// (V(R0) − target)/target over ln R0, which keeps R0 strictly positive
// without a constrained optimizer. A trial integration failure aborts the
// solve with the underlying *IntegrationError; a search that terminates
// without closing the residual returns a *ConvergenceError.
func SolveForVolume(target, contactAngle float64, fluid Fluid, opts SolveOptions) (Profile, error) {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return Profile{}, &ParameterError{Name: "target", Value: target, Reason: "target volume must be positive and finite"}
	}
	return solveInverse(contactAngle, fluid, opts, func(p Profile) float64 {
		return (p.Volume() - target) / target
	})
}

// SolveForHeight is the counterpart of [SolveForVolume] for a target
// apex-to-substrate height in metres. The residual compares the physical
// height R0·Z_last against the target.
func SolveForHeight(target, contactAngle float64, fluid Fluid, opts SolveOptions) (Profile, error) {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return Profile{}, &ParameterError{Name: "target", Value: target, Reason: "target height must be positive and finite"}
	}
	return solveInverse(contactAngle, fluid, opts, func(p Profile) float64 {
		return (p.Height() - target) / target
	})
}

func solveInverse(contactAngle float64, fluid Fluid, opts SolveOptions, residual func(Profile) float64) (Profile, error) {
	if math.IsNaN(contactAngle) || contactAngle <= 0 || contactAngle > 180 {
		return Profile{}, &ParameterError{Name: "contactAngle", Value: contactAngle,
			Reason: "must be in (0, 180] degrees for an inverse solve"}
	}
	if err := fluid.Validate(); err != nil {
		return Profile{}, err
	}
	guess := opts.R0Guess
	if guess == 0 {
		guess = defaultR0Guess
	}
	if guess < 0 || math.IsNaN(guess) || math.IsInf(guess, 0) {
		return Profile{}, &ParameterError{Name: "R0Guess", Value: opts.R0Guess, Reason: "must be positive and finite"}
	}
	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = defaultMaxIterations
	}
	if maxIter < 0 {
		return Profile{}, &ParameterError{Name: "MaxIterations", Value: float64(opts.MaxIterations), Reason: "must be non-negative"}
	}

	eval := func(r0 float64) (float64, error) {
		p, err := SimulateShape(r0, contactAngle, fluid, opts.Simulate)
		if err != nil {
			return 0, err
		}
		return residual(p), nil
	}

	// Trial integration errors cannot travel through the optimizer's
	// float-valued objective, so the first one is captured here and
	// reported in preference to any optimizer outcome.
	var evalErr error
	problem := optimize.Problem{
		Func: func(u []float64) float64 {
			r, err := eval(math.Exp(u[0]))
			if err != nil {
				if evalErr == nil {
					evalErr = err
				}
				return math.Inf(1)
			}
			return r * r
		},
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-16,
			Iterations: 30,
		},
		MajorIterations: maxIter,
	}
	result, err := optimize.Minimize(problem, []float64{math.Log(guess)}, settings, &optimize.NelderMead{})
	if evalErr != nil {
		return Profile{}, evalErr
	}
	if err != nil {
		return Profile{}, &ConvergenceError{Residual: math.NaN(), Reason: err.Error()}
	}

	r0 := math.Exp(result.X[0])
	final, err := eval(r0)
	if err != nil {
		return Profile{}, err
	}
	if math.Abs(final) > residualTol {
		reason := "residual tolerance not met"
		if result.Status == optimize.IterationLimit {
			reason = "iteration budget exhausted"
		}
		return Profile{}, &ConvergenceError{
			Residual:   final,
			Iterations: result.Stats.MajorIterations,
			Reason:     reason,
		}
	}
	return SimulateShape(r0, contactAngle, fluid, opts.Simulate)
}

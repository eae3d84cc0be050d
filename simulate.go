package droplet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SimulateOptions controls the shape integrator. The zero value selects
// adaptive output and the default tolerances.
type SimulateOptions struct {
	// NSteps, when at least 2, requests output at exactly NSteps evenly
	// spaced turning angles spanning [0, contact angle]. When 0 the
	// integrator's own accepted steps are returned, which concentrates
	// samples where the shape bends fastest. 1 and negative values are
	// invalid.
	NSteps int

	// ATol and RTol are the absolute and relative local error tolerances
	// of the integrator. Zero selects the defaults, 1e-10 and 1e-7.
	ATol float64
	RTol float64
}

// SimulateShape integrates the Young–Laplace system for a droplet with
// apex curvature radius r0 (metres) and the given contact angle (degrees,
// in [0, 180]), resting on a flat horizontal substrate.
//
// The turning angle φ grows monotonically from the apex to the contact
// line, so the contact angle is used directly as the integration bound.
// A contact angle of zero is the degenerate flat droplet and returns the
// single apex sample without integrating.
//
// Invalid inputs return a *ParameterError; a failed integration returns a
// *IntegrationError and no profile.
func SimulateShape(r0, contactAngle float64, fluid Fluid, opts SimulateOptions) (Profile, error) {
	if r0 <= 0 || math.IsNaN(r0) || math.IsInf(r0, 0) {
		return Profile{}, &ParameterError{Name: "r0", Value: r0, Reason: "apex radius must be positive and finite"}
	}
	if math.IsNaN(contactAngle) || contactAngle < 0 || contactAngle > 180 {
		return Profile{}, &ParameterError{Name: "contactAngle", Value: contactAngle, Reason: "must be in [0, 180] degrees"}
	}
	if err := fluid.Validate(); err != nil {
		return Profile{}, err
	}
	if opts.NSteps < 0 || opts.NSteps == 1 {
		return Profile{}, &ParameterError{Name: "NSteps", Value: float64(opts.NSteps), Reason: "must be 0 (adaptive) or at least 2"}
	}

	if contactAngle == 0 {
		return Profile{R0: r0, Phi: []float64{0}, X: []float64{0}, Z: []float64{0}}, nil
	}

	coeff := fluid.Coefficients(r0)
	phiEnd := contactAngle * math.Pi / 180

	var eval []float64
	if opts.NSteps >= 2 {
		eval = floats.Span(make([]float64, opts.NSteps), 0, phiEnd)
	}

	p := Profile{R0: r0}
	intg := newBDFIntegrator(func(phi float64, y, dst []float64) {
		dst[0], dst[1] = coeff.Derivative(phi, y[0], y[1])
	}, opts.ATol, opts.RTol)
	err := intg.integrate(phiEnd, eval, func(phi float64, y []float64) {
		p.Phi = append(p.Phi, phi)
		p.X = append(p.X, y[0])
		p.Z = append(p.Z, y[1])
	})
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

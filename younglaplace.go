package droplet

import "math"

// Coefficients are the dimensionless parameters of the non-dimensional
// Young–Laplace ODE system. They are derived deterministically from the
// physical inputs and never mutated.
type Coefficients struct {
	// Alpha is the Tolman-length ratio δ/R0. Zero ignores the curvature
	// dependence of surface tension, which is appropriate for droplets at
	// millimetre scale and above.
	Alpha float64
	// Beta is the capillary parameter Δρ·g·R0²/σ. It grows with the square
	// of the apex radius and governs how strongly gravity flattens the
	// droplet, as well as the stiffness of the ODE.
	Beta float64
	// Gamma is the curvature-correction term 2/(1+2·Alpha). It is exactly
	// 2 when Alpha is zero.
	Gamma float64
}

// NewCoefficients returns the coefficient set for the given Tolman ratio
// and capillary parameter, with Gamma derived from Alpha.
func NewCoefficients(alpha, beta float64) Coefficients {
	return Coefficients{
		Alpha: alpha,
		Beta:  beta,
		Gamma: 2 / (1 + 2*alpha),
	}
}

// Coefficients non-dimensionalizes the fluid properties for a droplet with
// apex curvature radius r0 (metres). The Tolman ratio is fixed at zero.
func (f Fluid) Coefficients(r0 float64) Coefficients {
	return NewCoefficients(0, f.DensityDifference()*f.Gravity*r0*r0/f.SurfaceTension)
}

// Derivative evaluates the right-hand side of the Young–Laplace system at
// turning angle phi (radians) and dimensionless state (x, z), returning
// (dX/dφ, dZ/dφ).
//
// The curvature factor K is an indeterminate 0/0 form exactly at the apex,
// where phi == 0 and x == 0; its analytic limit there is 1 and is
// substituted explicitly. The guard requires both conditions: at phi == 0
// with x != 0 the expression is regular and must be evaluated, so the
// limit value would be wrong.
//
// Derivative is a pure function. Adaptive integrators may re-evaluate it
// at the same or nearby points, including on rejected steps.
func (c Coefficients) Derivative(phi, x, z float64) (dxdphi, dzdphi float64) {
	k1 := c.Gamma + c.Beta*z
	k := 1.0
	if x != 0 || phi != 0 {
		t := 1 - c.Alpha*k1
		k = x * t / (k1*x - t*math.Sin(phi))
	}
	return math.Cos(phi) * k, math.Sin(phi) * k
}

// Package droplet simulates the equilibrium shape of axisymmetric sessile
// droplets by integrating the Young–Laplace equation, and derives physical
// quantities (volume, capillary length, Eötvös number) from the resulting
// profiles.
//
// # Model
//
// The Young–Laplace equation relates the pressure jump across a curved
// liquid–vapour interface to its curvature and surface tension. For an
// axisymmetric droplet it reduces to a two-dimensional ODE system in the
// turning angle φ, measured from the vertical axis at the apex. The system
// is solved in non-dimensional form: coordinates are scaled by R0, the
// radius of curvature at the apex, and the physics is captured by a single
// capillary parameter β = Δρ·g·R0²/σ. The curvature expression has a
// removable 0/0 singularity exactly at the apex, where the analytic limit
// is substituted explicitly; see [Coefficients.Derivative].
//
// Because φ increases monotonically along a single-valued droplet profile,
// the target contact angle serves directly as the integration bound — no
// state-triggered event detection is needed.
//
// # Features
//
// We provide the following notable features:
//
//   - Forward shape simulation (see [SimulateShape])
//   - Inverse solving for a target volume or height (see [SolveForVolume]
//     and [SolveForHeight])
//   - Volume estimation by trapezoidal quadrature (see [Volume])
//   - Derived quantities: capillary length, Eötvös/Bond number (see
//     [Fluid.CapillaryLength] and [Fluid.EotvosNumber])
//   - Closed-form volume and apex-radius estimates (see [EstimateVolume])
//   - 3-D point clouds of the revolved profile (see [Profile.PointCloud])
//   - Rendering of profiles to image files (see [SavePlot])
//
// All operations are synchronous and free of shared state; distinct
// simulations may run concurrently.
//
// # Units
//
// The solver works on plain float64 values in SI units: metres, kilograms
// per cubic metre, newtons per metre, metres per second squared. Inputs
// must be converted to SI before they reach this package; range validation
// happens here, unit algebra does not. Default fluid properties for a
// water droplet in air are provided as constants (see [Water]).
//
// # Literature
//
// This package makes use of the following ideas:
//   - [An Attempt to Test the Theories of Capillary Action] by Bashforth
//     and Adams, the original axisymmetric formulation
//   - [Dimensionless Young–Laplace equation with Tolman correction] by
//     Rekhviashvili and Sokurov, source of the non-dimensionalization and
//     of the empirical volume fit
//   - Solving Ordinary Differential Equations II: Stiff and
//     Differential-Algebraic Problems, Hairer and Wanner, for the
//     backward-differentiation integrator
//
// [An Attempt to Test the Theories of Capillary Action]: https://archive.org/details/attempttotestthe00bashrich
// [Dimensionless Young–Laplace equation with Tolman correction]: https://doi.org/10.3906/fiz-1803-23
package droplet

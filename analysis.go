package droplet

import "math"

// Fit constants of the Rekhviashvili–Sokurov closed-form volume
// approximation for sessile droplets with a 150° contact angle.
const (
	fitScale   = 4.73
	fitBetaExp = 0.941
	fitOffset  = 1.028
	fitTolman  = 2.513
	fitTolmExp = 0.398
)

// EstimateVolume returns the closed-form approximation
//
//	V ≈ 4.73·R0³/(β^0.941 + 1.028)·exp(−2.513·β^0.398·α)
//
// of the droplet volume for coefficients c and apex radius r0 (metres).
// The fit was calibrated against integrated shapes at a 150° contact
// angle; it is a fast sanity estimate, not a substitute for
// [Profile.Volume].
func EstimateVolume(c Coefficients, r0 float64) float64 {
	return fitScale * r0 * r0 * r0 /
		(math.Pow(c.Beta, fitBetaExp) + fitOffset) *
		math.Exp(-fitTolman*math.Pow(c.Beta, fitTolmExp)*c.Alpha)
}

// EstimateRadius inverts [EstimateVolume] for a target volume in cubic
// metres, treating the coefficients as fixed. Because β itself scales
// with R0², this is only consistent when c was derived for a radius near
// the answer; it serves as an initial guess for [SolveForVolume], not as
// a solver.
func EstimateRadius(volume float64, c Coefficients) float64 {
	return math.Cbrt(volume * (math.Pow(c.Beta, fitBetaExp) + fitOffset) /
		fitScale * math.Exp(fitTolman*math.Pow(c.Beta, fitTolmExp)*c.Alpha))
}

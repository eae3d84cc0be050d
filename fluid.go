package droplet

import (
	"math"

	"gonum.org/v1/gonum/unit"
)

// Default fluid properties, for a water droplet in air near 20 °C. These
// are process-wide constants, not mutable state; every entry point takes
// an explicit [Fluid] so callers can override any of them.
const (
	// StandardGravity is the gravitational acceleration used by [Water].
	StandardGravity unit.Acceleration = 9.81

	// WaterDensity is the density of liquid water at 25 °C, in kg/m³.
	// gonum/unit defines no density quantity, so this stays a plain
	// float64.
	WaterDensity = 997.0474

	// AirDensity is the density of dry air at 25 °C and 1 atm, in kg/m³.
	AirDensity = 1.1839

	// WaterSurfaceTension is the surface tension of a planar water–air
	// interface at 20 °C, in N/m. gonum/unit defines no surface-tension
	// quantity either.
	WaterSurfaceTension = 72.8e-3
)

// Fluid bundles the physical properties of the liquid–vapour pair that
// shape a droplet. All fields are SI scalars. The zero value is invalid;
// start from [Water] or fill in every field.
type Fluid struct {
	Gravity        float64 // gravitational acceleration, m/s²
	SurfaceTension float64 // liquid–vapour surface tension, N/m
	DensityLiquid  float64 // kg/m³
	DensityVapour  float64 // kg/m³
}

// Water returns the properties of a water droplet in air under standard
// gravity.
func Water() Fluid {
	return Fluid{
		Gravity:        float64(StandardGravity),
		SurfaceTension: WaterSurfaceTension,
		DensityLiquid:  WaterDensity,
		DensityVapour:  AirDensity,
	}
}

// Validate checks the domain constraints on f. It returns a
// [*ParameterError] describing the first violation, or nil.
func (f Fluid) Validate() error {
	switch {
	case f.Gravity <= 0 || math.IsNaN(f.Gravity):
		return &ParameterError{Name: "Gravity", Value: f.Gravity, Reason: "must be positive"}
	case f.SurfaceTension <= 0 || math.IsNaN(f.SurfaceTension):
		return &ParameterError{Name: "SurfaceTension", Value: f.SurfaceTension, Reason: "must be positive"}
	case f.DensityLiquid <= 0 || math.IsNaN(f.DensityLiquid):
		return &ParameterError{Name: "DensityLiquid", Value: f.DensityLiquid, Reason: "must be positive"}
	case f.DensityVapour <= 0 || math.IsNaN(f.DensityVapour):
		return &ParameterError{Name: "DensityVapour", Value: f.DensityVapour, Reason: "must be positive"}
	case f.DensityLiquid < f.DensityVapour:
		return &ParameterError{Name: "DensityLiquid", Value: f.DensityLiquid,
			Reason: "liquid density must be at least the vapour density"}
	}
	return nil
}

// DensityDifference returns Δρ = ρ_liquid − ρ_vapour in kg/m³.
func (f Fluid) DensityDifference() float64 {
	return f.DensityLiquid - f.DensityVapour
}

// CapillaryLength returns λc = sqrt(σ/(Δρ·g)) in metres, the length scale
// above which gravity dominates surface tension. For water in air it is
// about 2.7 mm.
func (f Fluid) CapillaryLength() float64 {
	return math.Sqrt(f.SurfaceTension / (f.DensityDifference() * f.Gravity))
}

// EotvosNumber returns the Eötvös number (L/λc)² for a characteristic
// length L in metres, typically the apex radius of curvature. Values well
// below 1 indicate a surface-tension-dominated (near-spherical) droplet.
func (f Fluid) EotvosNumber(length float64) float64 {
	r := length / f.CapillaryLength()
	return r * r
}

// BondNumber is an alias for [Fluid.EotvosNumber]; both names are in
// common use.
func (f Fluid) BondNumber(length float64) float64 {
	return f.EotvosNumber(length)
}

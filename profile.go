package droplet

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// Profile is the computed shape of a droplet: aligned samples of the
// turning angle Phi (radians) and the dimensionless coordinates X
// (horizontal, from the symmetry axis) and Z (vertical, downward from the
// apex), together with the apex curvature radius R0 (metres) that scales
// them back to physical units. Profiles are plain values owned by the
// caller; nothing in this package retains or mutates one after returning
// it.
type Profile struct {
	R0  float64
	Phi []float64
	X   []float64
	Z   []float64
}

// Len returns the number of samples in the profile.
func (p Profile) Len() int { return len(p.Phi) }

// Height returns the physical apex-to-contact-line height R0·Z_last in
// metres. A profile with no samples has height 0.
func (p Profile) Height() float64 {
	if len(p.Z) == 0 {
		return 0
	}
	return p.R0 * p.Z[len(p.Z)-1]
}

// ContactRadius returns the physical radius of the contact line
// R0·X_last in metres. For contact angles above 90° this is smaller than
// the droplet's widest radius.
func (p Profile) ContactRadius() float64 {
	if len(p.X) == 0 {
		return 0
	}
	return p.R0 * p.X[len(p.X)-1]
}

// Volume returns the physical volume of the droplet in cubic metres,
// computed by revolving the profile trace. See [ScaledVolume].
func (p Profile) Volume() float64 {
	return ScaledVolume(p.X, p.Z, p.R0)
}

// Physical returns a copy of the profile with X and Z scaled by R0 into
// metres. Phi is copied unchanged and the copy's R0 is 1, so applying
// Physical twice is harmless.
func (p Profile) Physical() Profile {
	q := Profile{
		R0:  1,
		Phi: append([]float64(nil), p.Phi...),
		X:   make([]float64, len(p.X)),
		Z:   make([]float64, len(p.Z)),
	}
	for i, x := range p.X {
		q.X[i] = p.R0 * x
	}
	for i, z := range p.Z {
		q.Z[i] = p.R0 * z
	}
	return q
}

// Volume computes the volume of the solid of revolution traced by the
// profile samples (x[i], z[i]) about the z axis,
//
//	V = π·∫ x² dz,
//
// by trapezoidal quadrature over the samples. x and z must have equal
// length; fewer than two samples yield 0. The result is in the cube of
// the coordinates' unit: dimensionless samples give a volume in units of
// R0³.
func Volume(x, z []float64) float64 {
	if len(x) != len(z) {
		panic("droplet: mismatched coordinate lengths")
	}
	if len(x) < 2 {
		return 0
	}
	f := make([]float64, len(x))
	for i, v := range x {
		f[i] = v * v
	}
	return math.Pi * integrate.Trapezoidal(z, f)
}

// ScaledVolume is [Volume] for a dimensionless trace scaled by the apex
// radius r0 in metres; it returns r0³·Volume(x, z) in cubic metres.
func ScaledVolume(x, z []float64, r0 float64) float64 {
	return r0 * r0 * r0 * Volume(x, z)
}

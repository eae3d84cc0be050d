package droplet

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// defaultThetaSteps is the azimuthal resolution of [Profile.PointCloud].
const defaultThetaSteps = 32

// PointCloud revolves the profile about its symmetry axis into a 3-D
// point cloud in physical units (metres). Each profile sample becomes a
// ring of thetaSteps points at equal azimuthal spacing; thetaSteps < 1
// selects the default of 32. The apex sample sits on the axis, so its
// ring collapses to a single point.
//
// Points use the convention of the profile: Z grows downward from the
// apex, X and Y span the substrate plane.
func (p Profile) PointCloud(thetaSteps int) []r3.Vec {
	if thetaSteps < 1 {
		thetaSteps = defaultThetaSteps
	}
	pts := make([]r3.Vec, 0, len(p.X)*thetaSteps)
	for i := range p.X {
		x := p.R0 * p.X[i]
		z := p.R0 * p.Z[i]
		if x == 0 {
			pts = append(pts, r3.Vec{Z: z})
			continue
		}
		for j := 0; j < thetaSteps; j++ {
			theta := 2 * math.Pi * float64(j) / float64(thetaSteps)
			pts = append(pts, r3.Vec{
				X: x * math.Cos(theta),
				Y: x * math.Sin(theta),
				Z: z,
			})
		}
	}
	return pts
}

package droplet

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approxFloats compares float64 values with an absolute-or-relative
// tolerance, for profile and volume assertions.
func approxFloats(tol float64) cmp.Option {
	return cmpopts.EquateApprox(tol, tol)
}

// sphericalCap returns the exact volume of a unit-radius spherical cap
// with contact angle theta (radians), π(2/3 − cos θ + cos³θ/3).
func sphericalCap(theta float64) float64 {
	c := math.Cos(theta)
	return math.Pi * (2.0/3.0 - c + c*c*c/3.0)
}

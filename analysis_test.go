package droplet

import (
	"math"
	"testing"
)

func TestEstimateVolumeSphereLimit(t *testing.T) {
	// As beta → 0 the droplet approaches the spherical cap, and the
	// empirical fit (calibrated at a 150° contact angle) should land
	// within its published accuracy of the analytic cap volume.
	const r0 = 1e-3
	got := EstimateVolume(NewCoefficients(0, 0), r0)
	want := sphericalCap(150*math.Pi/180) * r0 * r0 * r0
	if math.Abs(got-want)/want > 0.15 {
		t.Errorf("got %v, expected %v within 15%%", got, want)
	}
}

func TestEstimateRadiusInvertsEstimateVolume(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}
	for _, c := range []Coefficients{
		NewCoefficients(0, 0.5),
		NewCoefficients(0, 3.35),
		NewCoefficients(0.05, 10),
	} {
		for _, r0 := range []float64{1e-4, 1e-3, 5e-3} {
			if got := EstimateRadius(EstimateVolume(c, r0), c); !approxEqual(got, r0) {
				t.Errorf("got %v for %+v, expected %v", got, c, r0)
			}
		}
	}
}

func TestEstimateAgainstIntegratedShape(t *testing.T) {
	// The fit should track the integrator at its calibration angle to a
	// few percent over the sessile range of beta.
	const ca = 150.0
	for _, r0 := range []float64{1e-3, 3e-3, 5e-3} {
		p, err := SimulateShape(r0, ca, Water(), SimulateOptions{})
		if err != nil {
			t.Fatal(err)
		}
		est := EstimateVolume(Water().Coefficients(r0), r0)
		if v := p.Volume(); math.Abs(est-v)/v > 0.15 {
			t.Errorf("r0=%v: got estimate %v, integrated volume %v", r0, est, v)
		}
	}
}

func TestCapillaryLength(t *testing.T) {
	f := Fluid{
		Gravity:        9.81,
		SurfaceTension: 0.0728,
		DensityLiquid:  997.05,
		DensityVapour:  1.18,
	}
	if got, want := f.CapillaryLength(), 2.7298e-3; math.Abs(got-want) > 1e-6 {
		t.Errorf("got capillary length %v, expected %v", got, want)
	}
}

func TestEotvosNumber(t *testing.T) {
	f := Water()
	lc := f.CapillaryLength()
	if got := f.EotvosNumber(lc); math.Abs(got-1) > 1e-12 {
		t.Errorf("got Eötvös number %v at the capillary length, expected 1", got)
	}
	if eo, bo := f.EotvosNumber(3e-3), f.BondNumber(3e-3); eo != bo {
		t.Errorf("got Eötvös %v and Bond %v, expected them to be equal", eo, bo)
	}
	// Quadratic in the length scale.
	if got, want := f.EotvosNumber(2*lc), 4.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v for twice the capillary length, expected %v", got, want)
	}
}

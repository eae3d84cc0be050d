package droplet

import (
	"errors"
	"math"
	"testing"
)

func TestSolveForVolumeRoundTrip(t *testing.T) {
	const r0 = 2e-3
	fwd, err := SimulateShape(r0, 120, Water(), SimulateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	target := fwd.Volume()

	p, err := SolveForVolume(target, 120, Water(), SolveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.R0; math.Abs(got-r0)/r0 > 1e-4 {
		t.Errorf("got R0=%v, expected %v within 1e-4 relative", got, r0)
	}
	if got := p.Volume(); math.Abs(got-target)/target > 1e-5 {
		t.Errorf("got volume %v, expected %v", got, target)
	}
}

func TestSolveForHeightRoundTrip(t *testing.T) {
	const r0 = 3e-3
	fwd, err := SimulateShape(r0, 150, Water(), SimulateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	target := fwd.Height()

	p, err := SolveForHeight(target, 150, Water(), SolveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.R0; math.Abs(got-r0)/r0 > 1e-4 {
		t.Errorf("got R0=%v, expected %v within 1e-4 relative", got, r0)
	}
	if got := p.Height(); math.Abs(got-target)/target > 1e-5 {
		t.Errorf("got height %v, expected %v", got, target)
	}
}

func TestSolveRespectsGuess(t *testing.T) {
	// Starting two decades away from the answer must still converge;
	// the log-space search walks scale multiplicatively.
	const r0 = 4e-3
	fwd, err := SimulateShape(r0, 90, Water(), SimulateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	p, err := SolveForVolume(fwd.Volume(), 90, Water(), SolveOptions{R0Guess: 4e-5})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.R0; math.Abs(got-r0)/r0 > 1e-4 {
		t.Errorf("got R0=%v, expected %v", got, r0)
	}
}

func TestSolveConvergenceError(t *testing.T) {
	// A one-iteration budget cannot carry the search from a 1 mm guess
	// to the 5 mm answer, so the solve must fail with a
	// *ConvergenceError, not silently return the best simplex point.
	fwd, err := SimulateShape(5e-3, 150, Water(), SimulateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = SolveForVolume(fwd.Volume(), 150, Water(), SolveOptions{MaxIterations: 1})
	var cerr *ConvergenceError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %T (%v), expected *ConvergenceError", err, err)
	}
	if !math.IsNaN(cerr.Residual) && math.Abs(cerr.Residual) <= 1e-6 {
		t.Errorf("got residual %v, expected one outside the acceptance tolerance", cerr.Residual)
	}
	if cerr.Reason == "" {
		t.Error("expected a non-empty failure reason")
	}
}

func TestSolveParameterErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"zero volume", func() error {
			_, err := SolveForVolume(0, 90, Water(), SolveOptions{})
			return err
		}},
		{"negative volume", func() error {
			_, err := SolveForVolume(-1e-9, 90, Water(), SolveOptions{})
			return err
		}},
		{"NaN volume", func() error {
			_, err := SolveForVolume(math.NaN(), 90, Water(), SolveOptions{})
			return err
		}},
		{"zero height", func() error {
			_, err := SolveForHeight(0, 90, Water(), SolveOptions{})
			return err
		}},
		{"zero contact angle", func() error {
			_, err := SolveForVolume(1e-9, 0, Water(), SolveOptions{})
			return err
		}},
		{"negative guess", func() error {
			_, err := SolveForVolume(1e-9, 90, Water(), SolveOptions{R0Guess: -1e-3})
			return err
		}},
		{"negative iteration cap", func() error {
			_, err := SolveForVolume(1e-9, 90, Water(), SolveOptions{MaxIterations: -1})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var perr *ParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("got %T (%v), expected *ParameterError", err, err)
			}
		})
	}
}

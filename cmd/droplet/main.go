// Command droplet simulates sessile-droplet shapes from the command line.
//
// Usage:
//
//	droplet demo [-r0 mm] [-ca deg] [-plot out.png] [-style line|camera]
//	droplet sweep [-r0 1:10:10] [-ca 30:170:8] [-o results.csv] [-plots dir]
//	droplet solve (-volume uL | -height mm) [-ca deg] [-guess mm]
//
// Lengths are given in millimetres, angles in degrees and volumes in
// microliters; conversion to SI happens at this boundary and nowhere else.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/fluidshape/droplet"
)

const (
	mm = 1e-3
	uL = 1e-9
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "demo":
		err = runDemo(os.Args[2:])
	case "sweep":
		err = runSweep(os.Args[2:])
	case "solve":
		err = runSolve(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "droplet: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: droplet <demo|sweep|solve> [flags]")
	fmt.Fprintln(os.Stderr, "Run 'droplet <command> -h' for command flags.")
}

// fluidFlags registers the fluid-property overrides shared by every
// subcommand and returns a getter for the assembled value.
func fluidFlags(fs *flag.FlagSet) func() droplet.Fluid {
	w := droplet.Water()
	g := fs.Float64("g", w.Gravity, "gravitational acceleration [m/s²]")
	sigma := fs.Float64("sigma", w.SurfaceTension, "surface tension [N/m]")
	rhol := fs.Float64("rhol", w.DensityLiquid, "liquid density [kg/m³]")
	rhov := fs.Float64("rhov", w.DensityVapour, "vapour density [kg/m³]")
	return func() droplet.Fluid {
		return droplet.Fluid{
			Gravity:        *g,
			SurfaceTension: *sigma,
			DensityLiquid:  *rhol,
			DensityVapour:  *rhov,
		}
	}
}

func parseStyle(s string) (droplet.PlotStyle, error) {
	switch s {
	case "line":
		return droplet.StyleLine, nil
	case "camera":
		return droplet.StyleCamera, nil
	}
	return 0, fmt.Errorf("unknown plot style %q (want line or camera)", s)
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	r0 := fs.Float64("r0", 5, "apex curvature radius [mm]")
	ca := fs.Float64("ca", 150, "contact angle [deg]")
	steps := fs.Int("steps", 0, "number of output samples (0 = adaptive)")
	plotPath := fs.String("plot", "", "write a rendering to this file")
	style := fs.String("style", "line", "plot style: line or camera")
	fluid := fluidFlags(fs)
	fs.Parse(args)

	f := fluid()
	p, err := droplet.SimulateShape(*r0*mm, *ca, f, droplet.SimulateOptions{NSteps: *steps})
	if err != nil {
		return err
	}

	fmt.Printf("R0              %8.3f mm\n", *r0)
	fmt.Printf("contact angle   %8.1f deg\n", *ca)
	fmt.Printf("samples         %8d\n", p.Len())
	fmt.Printf("height          %8.3f mm\n", p.Height()/mm)
	fmt.Printf("contact radius  %8.3f mm\n", p.ContactRadius()/mm)
	fmt.Printf("volume          %8.2f uL\n", p.Volume()/uL)
	fmt.Printf("capillary len   %8.3f mm\n", f.CapillaryLength()/mm)
	fmt.Printf("Bond number     %8.3f\n", f.BondNumber(*r0*mm))

	if *plotPath != "" {
		st, err := parseStyle(*style)
		if err != nil {
			return err
		}
		if err := droplet.SavePlot(p, *plotPath, droplet.PlotOptions{Style: st}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}
	return nil
}

// parseRange reads a min:max:n triple (mm or deg) into n evenly spaced
// values. A bare number is a single-value range.
func parseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad range %q: %v", s, err)
		}
		return []float64{v}, nil
	case 3:
		lo, err1 := strconv.ParseFloat(parts[0], 64)
		hi, err2 := strconv.ParseFloat(parts[1], 64)
		n, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || n < 2 {
			return nil, fmt.Errorf("bad range %q: want min:max:n with n >= 2", s)
		}
		return floats.Span(make([]float64, n), lo, hi), nil
	}
	return nil, fmt.Errorf("bad range %q: want value or min:max:n", s)
}

func runSweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	r0Range := fs.String("r0", "1:10:10", "apex radius range min:max:n [mm]")
	caRange := fs.String("ca", "30:170:8", "contact angle range min:max:n [deg]")
	out := fs.String("o", "results.csv", "output CSV file")
	plotDir := fs.String("plots", "", "also write one PNG per combination into this directory")
	style := fs.String("style", "line", "plot style: line or camera")
	fluid := fluidFlags(fs)
	fs.Parse(args)

	r0s, err := parseRange(*r0Range)
	if err != nil {
		return err
	}
	cas, err := parseRange(*caRange)
	if err != nil {
		return err
	}
	st, err := parseStyle(*style)
	if err != nil {
		return err
	}
	if *plotDir != "" {
		if err := os.MkdirAll(*plotDir, 0o755); err != nil {
			return err
		}
	}
	f := fluid()

	file, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer file.Close()
	w := csv.NewWriter(file)
	if err := w.Write([]string{"r0_mm", "ca_deg", "volume_uL", "height_mm", "contact_radius_mm"}); err != nil {
		return err
	}

	for _, r0 := range r0s {
		for _, ca := range cas {
			p, err := droplet.SimulateShape(r0*mm, ca, f, droplet.SimulateOptions{})
			if err != nil {
				return fmt.Errorf("r0=%g mm, ca=%g deg: %w", r0, ca, err)
			}
			rec := []string{
				strconv.FormatFloat(r0, 'g', 6, 64),
				strconv.FormatFloat(ca, 'g', 6, 64),
				strconv.FormatFloat(p.Volume()/uL, 'g', 6, 64),
				strconv.FormatFloat(p.Height()/mm, 'g', 6, 64),
				strconv.FormatFloat(p.ContactRadius()/mm, 'g', 6, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
			if *plotDir != "" {
				name := fmt.Sprintf("drop_r0_%.3gmm_ca_%.3g.png", r0, ca)
				opts := droplet.PlotOptions{Style: st, Title: fmt.Sprintf("R0=%.3g mm, CA=%.3g°", r0, ca)}
				if err := droplet.SavePlot(p, filepath.Join(*plotDir, name), opts); err != nil {
					return err
				}
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d combinations)\n", *out, len(r0s)*len(cas))
	return nil
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	volume := fs.Float64("volume", 0, "target volume [uL]")
	height := fs.Float64("height", 0, "target height [mm]")
	ca := fs.Float64("ca", 150, "contact angle [deg]")
	guess := fs.Float64("guess", 1, "initial apex radius guess [mm]")
	plotPath := fs.String("plot", "", "write a rendering of the solved droplet")
	fluid := fluidFlags(fs)
	fs.Parse(args)

	if (*volume > 0) == (*height > 0) {
		return fmt.Errorf("pass exactly one of -volume or -height")
	}
	f := fluid()
	opts := droplet.SolveOptions{R0Guess: *guess * mm}

	var p droplet.Profile
	var err error
	if *volume > 0 {
		p, err = droplet.SolveForVolume(*volume*uL, *ca, f, opts)
	} else {
		p, err = droplet.SolveForHeight(*height*mm, *ca, f, opts)
	}
	if err != nil {
		return err
	}

	fmt.Printf("R0              %8.4f mm\n", p.R0/mm)
	fmt.Printf("volume          %8.2f uL\n", p.Volume()/uL)
	fmt.Printf("height          %8.3f mm\n", p.Height()/mm)
	fmt.Printf("contact radius  %8.3f mm\n", p.ContactRadius()/mm)

	if *plotPath != "" {
		if err := droplet.SavePlot(p, *plotPath, droplet.PlotOptions{}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}
	return nil
}

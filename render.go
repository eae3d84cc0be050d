package droplet

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotStyle selects how [SavePlot] draws a profile.
type PlotStyle int

const (
	// StyleLine draws the mirrored outline over labelled axes with a
	// dashed substrate baseline.
	StyleLine PlotStyle = iota
	// StyleCamera mimics a backlit photograph: filled dark silhouette on
	// a blank canvas with a dimmed reflection below the substrate.
	StyleCamera
)

// PlotOptions controls [SavePlot]. The zero value selects [StyleLine],
// a default title and a 6×4 inch canvas.
type PlotOptions struct {
	Style  PlotStyle
	Title  string
	Width  vg.Length
	Height vg.Length
}

// SavePlot renders the profile to path. The output format follows the
// file extension (.png, .svg, .pdf, and the other formats supported by
// gonum/plot). The profile is mirrored about the symmetry axis and drawn
// in millimetres with the substrate at height zero and the apex on top.
func SavePlot(p Profile, path string, opts PlotOptions) error {
	if opts.Width <= 0 {
		opts.Width = 6 * vg.Inch
	}
	if opts.Height <= 0 {
		opts.Height = 4 * vg.Inch
	}

	outline := mirroredOutline(p)

	plt := plot.New()
	plt.Title.Text = opts.Title
	switch opts.Style {
	case StyleCamera:
		if err := addSilhouette(plt, outline); err != nil {
			return err
		}
	default:
		if opts.Title == "" {
			plt.Title.Text = "Droplet profile"
		}
		if err := addOutline(plt, outline, p); err != nil {
			return err
		}
	}
	return plt.Save(opts.Width, opts.Height, path)
}

// mirroredOutline returns the closed droplet outline in millimetres:
// right flank from contact line to apex, then the mirrored left flank
// back down, with the substrate at y = 0.
func mirroredOutline(p Profile) plotter.XYs {
	const mm = 1e3
	h := p.Height() * mm
	n := len(p.X)
	out := make(plotter.XYs, 0, 2*n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, plotter.XY{X: p.R0 * p.X[i] * mm, Y: h - p.R0*p.Z[i]*mm})
	}
	for i := 0; i < n; i++ {
		out = append(out, plotter.XY{X: -p.R0 * p.X[i] * mm, Y: h - p.R0*p.Z[i]*mm})
	}
	return out
}

func addOutline(plt *plot.Plot, outline plotter.XYs, p Profile) error {
	plt.X.Label.Text = "x [mm]"
	plt.Y.Label.Text = "z [mm]"

	line, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 180, A: 255}
	line.Width = vg.Points(1.5)

	// For contact angles above 90° the droplet bulges past the contact
	// line, so the baseline spans the widest point, not the contact
	// radius.
	maxX := 0.0
	for _, x := range p.X {
		maxX = math.Max(maxX, x)
	}
	span := 1.25 * p.R0 * maxX * 1e3
	base, err := plotter.NewLine(plotter.XYs{{X: -span, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return err
	}
	base.Color = color.Gray{Y: 96}
	base.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	plt.Add(line, base)
	return nil
}

func addSilhouette(plt *plot.Plot, outline plotter.XYs) error {
	plt.HideAxes()
	plt.BackgroundColor = color.White

	body, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	body.Color = color.Gray{Y: 32}
	body.LineStyle.Color = color.Gray{Y: 32}

	// Reflection in the substrate, flattened and dimmed.
	mirror := make(plotter.XYs, len(outline))
	for i, xy := range outline {
		mirror[i] = plotter.XY{X: xy.X, Y: -0.35 * xy.Y}
	}
	refl, err := plotter.NewPolygon(mirror)
	if err != nil {
		return err
	}
	refl.Color = color.Gray{Y: 210}
	refl.LineStyle.Color = color.Gray{Y: 210}

	plt.Add(body, refl)
	return nil
}

// Package diagnostics renders auxiliary charts of the physics model
// itself - not the ray-traced image - for sanity-checking a run
// configuration before committing to a full render. It follows the same
// gonum/plot wiring as plotFuncs.go in the original diffraction tool:
// Liberation fonts, a plotter.Line per series, and a grid.
package diagnostics

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"

	_ "gonum.org/v1/plot/font/liberation"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bob-anderson-ok/schwarzschildray/disk"
)

const samplePoints = 200

// TemperatureProfile samples disk.Temperature across [Rin, Rout] and
// returns a plot ready to save, with the disk's peak temperature radius
// marked by a dashed vertical line.
func TemperatureProfile(d disk.Disk) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = "Accretion disk temperature profile"
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.Text = "r / r_s"
	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.Text = "temperature (K)"
	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.Add(plotter.NewGrid())

	radii := make([]float64, samplePoints)
	floats.Span(radii, d.Rin, d.Rout)

	pts := make(plotter.XYs, samplePoints)
	peakIdx := 0
	for i, r := range radii {
		pts[i].X = r / d.Rs
		pts[i].Y = d.Temperature(r)
		if pts[i].Y > pts[peakIdx].Y {
			peakIdx = i
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("building temperature line: %w", err)
	}
	line.Color = color.RGBA{R: 255, G: 80, B: 0, A: 255}
	p.Add(line)

	peak := plotter.XYs{
		{X: pts[peakIdx].X, Y: 0},
		{X: pts[peakIdx].X, Y: pts[peakIdx].Y},
	}
	peakLine, err := plotter.NewLine(peak)
	if err != nil {
		return nil, fmt.Errorf("building peak marker: %w", err)
	}
	peakLine.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	peakLine.Color = color.RGBA{A: 255}
	p.Add(peakLine)

	return p, nil
}

// SaveTemperatureProfile renders TemperatureProfile to a PNG at path,
// widthPx by heightPx pixels at 96 DPI.
func SaveTemperatureProfile(d disk.Disk, path string, widthPx, heightPx float64) error {
	p, err := TemperatureProfile(d)
	if err != nil {
		return err
	}
	const dpi = 96
	width := vg.Length(widthPx) * vg.Inch / dpi
	height := vg.Length(heightPx) * vg.Inch / dpi
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving temperature profile to %q: %w", path, err)
	}
	return nil
}

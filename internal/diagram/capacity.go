// Package diagram renders design capacity diagrams to image files.
package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// ExportCapacityCurve exports the strong-axis design moment capacity φMn
// as a function of the unbraced length Lb, with the Lp and Lr regime
// limits marked and the evaluated point highlighted. The output format
// follows the file extension (png, svg, pdf).
func ExportCapacityCurve(p aisc.SectionProperties, loads aisc.LoadConditions, filename string) error {
	// Establish Lp and Lr from a reference evaluation
	ref, err := aisc.CheckFlexure(p, loads, aisc.StrongAxis)
	if err != nil {
		return err
	}

	plt := plot.New()
	plt.Title.Text = "Strong-Axis Moment Capacity vs Unbraced Length"
	plt.X.Label.Text = "Lb (cm)"
	plt.Y.Label.Text = "φMn (kgf-cm)"

	// Sample the curve out past the elastic regime boundary
	maxLb := 1.5 * ref.Lr
	if loads.Lt > maxLb {
		maxLb = 1.2 * loads.Lt
	}

	const samples = 200
	curve := make(plotter.XYs, 0, samples)
	sample := loads
	for i := 1; i <= samples; i++ {
		sample.Lt = maxLb * float64(i) / samples
		r, err := aisc.CheckFlexure(p, sample, aisc.StrongAxis)
		if err != nil {
			return err
		}
		curve = append(curve, plotter.XY{X: sample.Lt, Y: r.Mb})
	}

	curveLine, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	curveLine.LineStyle.Width = vg.Points(2)
	curveLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 200, A: 255}
	plt.Add(curveLine)
	plt.Legend.Add("φMn", curveLine)

	// Regime boundary markers
	maxMb := aisc.PhiFlexure * p.Fy * p.Zx
	for _, boundary := range []struct {
		name  string
		value float64
	}{
		{"Lp", ref.Lp},
		{"Lr", ref.Lr},
	} {
		line, err := plotter.NewLine(plotter.XYs{
			{X: boundary.value, Y: 0},
			{X: boundary.value, Y: maxMb},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = color.Gray{Y: 128}
		line.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		plt.Add(line)
		plt.Legend.Add(boundary.name, line)
	}

	// Evaluated point
	if loads.Lt > 0 {
		point, err := plotter.NewScatter(plotter.XYs{{X: loads.Lt, Y: ref.Mb}})
		if err != nil {
			return err
		}
		point.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		point.GlyphStyle.Radius = vg.Points(4)
		plt.Add(point)
		plt.Legend.Add(fmt.Sprintf("Lb = %.1f cm", loads.Lt), point)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return plt.Save(width, height, filename)
}

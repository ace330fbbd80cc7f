// Package plot renders a benchmark run's total-cost-per-scenario results as
// a bar chart, grounded on the gonum/plot usage pattern in the example
// corpus's dsp/window/cmd/leakage command (plot.New, plotter types, Save).
package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Result is one scenario's outcome from a benchmark run.
type Result struct {
	Label string
	Cost  float64 // total solution cost; NaN-free, solved scenarios only
}

// SaveCostChart renders results as a bar chart titled title and writes it
// as a PNG to path, sized widthCm x heightCm centimeters.
func SaveCostChart(results []Result, title, path string, widthCm, heightCm float64) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "total cost"
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(results))
	labels := make([]string, len(results))
	for i, r := range results {
		values[i] = r.Cost
		labels[i] = r.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("plot: building bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(vg.Length(widthCm)*vg.Centimeter, vg.Length(heightCm)*vg.Centimeter, path); err != nil {
		return fmt.Errorf("plot: saving chart: %w", err)
	}
	return nil
}

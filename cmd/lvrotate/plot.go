// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const plotSize = 5 * vg.Inch

// savePlot draws every variable in the plane of the first two factors,
// labelled by variable name. The format follows the file extension
// (png, svg, pdf, ...).
func savePlot(path string, r *report) error {
	if filepath.Ext(path) == "" {
		return fmt.Errorf("plot %s: missing file extension", path)
	}
	if len(r.Factors) < 2 {
		return fmt.Errorf("plot %s: need two factors, got %d", path, len(r.Factors))
	}

	pts := make(plotter.XYs, len(r.Loadings))
	for i, row := range r.Loadings {
		pts[i].X, pts[i].Y = row[0], row[1]
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s loadings", r.Criterion)
	p.X.Label.Text = r.Factors[0]
	p.Y.Label.Text = r.Factors[1]
	lim := plotLimit(r)
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	names, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: r.Variables})
	if err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	p.Add(scatter, names)

	return p.Save(plotSize, plotSize, path)
}

// plotLimit is the half-width of the square plot window: 1 for loadings of a
// correlation matrix, widened to the largest |loading| on either axis otherwise.
func plotLimit(r *report) float64 {
	lim := 1.0
	for _, row := range r.Loadings {
		lim = math.Max(lim, math.Max(math.Abs(row[0]), math.Abs(row[1])))
	}

	return lim
}

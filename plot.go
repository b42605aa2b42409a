package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// sliceGrid adapts a square slice of the field to plotter.GridXYZ. Columns
// follow axis 2 and rows follow axis 1.
type sliceGrid struct {
	rows [][]float32
}

func (g sliceGrid) Dims() (c, r int) {
	if len(g.rows) == 0 {
		return 0, 0
	}
	return len(g.rows[0]), len(g.rows)
}

func (g sliceGrid) Z(c, r int) float64 { return float64(g.rows[r][c]) }
func (g sliceGrid) X(c int) float64    { return float64(c) }
func (g sliceGrid) Y(r int) float64    { return float64(r) }

// writePlot saves a heat map of rows to a PNG (or any format gonum/plot
// infers from the file extension).
func writePlot(path, title string, rows [][]float32) error {
	grid := sliceGrid{rows: rows}
	heat := plotter.NewHeatMap(grid, palette.Heat(64, 1))
	if heat.Min == heat.Max {
		// A flat field still needs a non-empty colour range.
		heat.Min--
		heat.Max++
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "k"
	p.Y.Label.Text = "j"
	p.Add(heat)

	if err := p.Save(plotSizeInches*vg.Inch, plotSizeInches*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot %q: %w", path, err)
	}
	return nil
}

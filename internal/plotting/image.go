package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/numlab/internal/stats"
)

// Series is one named line for a multi-series chart.
type Series struct {
	Name string
	Ys   []float64
}

// SaveLines writes a line chart to path. The output format follows the
// file extension (.png, .svg, .pdf), as handled by gonum/plot.
func SaveLines(path, title, xLabel, yLabel string, xs []float64, series []Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts := make(plotter.XYs, 0, len(s.Ys))
		for j, y := range s.Ys {
			if j < len(xs) {
				pts = append(pts, plotter.XY{X: xs[j], Y: y})
			}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plotting: line %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveScatter writes an (xs, ys) scatter chart to path.
func SaveScatter(path, title, xLabel, yLabel string, xs, ys []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if i < len(ys) {
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plotting: scatter: %w", err)
	}
	p.Add(scatter)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveHistogram writes a sample histogram to path.
func SaveHistogram(path, title string, samples []float64, bins int) error {
	p := plot.New()
	p.Title.Text = title

	h, err := plotter.NewHist(plotter.Values(samples), bins)
	if err != nil {
		return fmt.Errorf("plotting: histogram: %w", err)
	}
	h.Normalize(1)
	p.Add(h)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// HistValues adapts stats bins back to raw bin centers weighted by count,
// for quick re-plotting of a stored run without its raw samples.
func HistValues(bins []stats.HistBin) []float64 {
	out := make([]float64, 0)
	for _, b := range bins {
		center := (b.Left + b.Right) / 2
		for i := 0; i < b.Count; i++ {
			out = append(out, center)
		}
	}
	return out
}

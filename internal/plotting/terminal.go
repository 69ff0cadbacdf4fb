// Package plotting renders demo output, to the terminal via asciigraph and
// braille canvases, and to PNG/SVG files via gonum/plot.
package plotting

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/numlab/internal/stats"
)

// Line renders a single series as an asciigraph chart.
func Line(series []float64, caption string, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Scatter renders an (xs, ys) point cloud on a braille canvas.
func Scatter(xs, ys []float64, width, height int, caption string) string {
	canvas := NewCanvas(width, height)
	canvas.PlotXY(xs, ys)
	if caption == "" {
		return canvas.String()
	}
	return canvas.String() + caption + "\n"
}

// HistogramBars renders bins as horizontal bars, one line per bin.
func HistogramBars(bins []stats.HistBin, width int) string {
	if len(bins) == 0 {
		return ""
	}

	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	var sb strings.Builder
	for _, b := range bins {
		barLen := b.Count * width / maxCount
		fmt.Fprintf(&sb, "%9.3f .. %9.3f │%s %d\n",
			b.Left, b.Right, strings.Repeat("█", barLen), b.Count)
	}
	return sb.String()
}

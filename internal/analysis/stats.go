package analysis

import (
	"fmt"

	"github.com/san-kum/asciibrot/internal/escape"
	"github.com/san-kum/asciibrot/internal/glyph"
)

// Histogram counts the cells falling in each bucket of ramp. The last
// entry is the overflow bucket.
func Histogram(g *escape.Grid, ramp glyph.Ramp) []int {
	counts := make([]int, ramp.Buckets())
	for _, v := range g.Cells {
		counts[ramp.Index(v)]++
	}
	return counts
}

func RowMeans(g *escape.Grid) []float64 {
	means := make([]float64, g.Height)
	if g.Width == 0 {
		return means
	}
	for row := range means {
		sum := 0.0
		for _, v := range g.Row(row) {
			sum += float64(v)
		}
		means[row] = sum / float64(g.Width)
	}
	return means
}

// InteriorFraction is the share of cells that reached maxIters.
func InteriorFraction(g *escape.Grid, maxIters uint) float64 {
	if len(g.Cells) == 0 {
		return 0
	}
	inside := 0
	for _, v := range g.Cells {
		if v >= maxIters {
			inside++
		}
	}
	return float64(inside) / float64(len(g.Cells))
}

// Summary flattens grid statistics into named values for storage.
func Summary(g *escape.Grid, maxIters uint, ramp glyph.Ramp) map[string]float64 {
	stats := map[string]float64{
		"interior_fraction": InteriorFraction(g, maxIters),
	}

	total := 0.0
	for _, v := range g.Cells {
		total += float64(v)
	}
	if len(g.Cells) > 0 {
		stats["mean_escape"] = total / float64(len(g.Cells))
	}

	for i, n := range Histogram(g, ramp) {
		stats[fmt.Sprintf("bucket_%d", i)] = float64(n)
	}
	return stats
}

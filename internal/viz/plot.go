package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/asciibrot/internal/glyph"
)

const barWidth = 40

// RowProfile plots the mean escape count of each row, top row first.
func RowProfile(means []float64, height, width int) string {
	if len(means) == 0 {
		return ""
	}
	return asciigraph.Plot(means,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("mean escape count by row"),
	)
}

// HistogramBars draws one bar per ramp bucket, labelled with its glyph
// and inclusive range.
func HistogramBars(counts []int, ramp glyph.Ramp) string {
	total := 0
	for _, n := range counts {
		total += n
	}

	var b strings.Builder
	for i, n := range counts {
		frac := 0.0
		if total > 0 {
			frac = float64(n) / float64(total)
		}
		label := fmt.Sprintf("%q %-9s", ramp.BucketGlyph(i), bucketRange(ramp, i))
		fmt.Fprintf(&b, "%s %s %s\n",
			MetricLabel.Render(label),
			Bar(frac, barWidth),
			MetricValue.Render(fmt.Sprintf("%d", n)),
		)
	}
	return b.String()
}

func bucketRange(ramp glyph.Ramp, i int) string {
	var lo uint
	if i > 0 {
		lo = ramp.Steps[i-1].Max + 1
	}
	if i >= len(ramp.Steps) {
		return fmt.Sprintf("%d+", lo)
	}
	return fmt.Sprintf("%d-%d", lo, ramp.Steps[i].Max)
}

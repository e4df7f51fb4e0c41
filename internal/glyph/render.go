package glyph

import (
	"io"
	"strings"

	"github.com/san-kum/asciibrot/internal/escape"
)

// Line renders one row of g.
func (r Ramp) Line(g *escape.Grid, row int) string {
	var b strings.Builder
	b.Grow(g.Width)
	for _, v := range g.Row(row) {
		b.WriteRune(r.Glyph(v))
	}
	return b.String()
}

// Lines renders every row of g, top to bottom.
func (r Ramp) Lines(g *escape.Grid) []string {
	lines := make([]string, g.Height)
	for row := range lines {
		lines[row] = r.Line(g, row)
	}
	return lines
}

// Render writes g to w with one write per row. Each line is
// newline-terminated.
func (r Ramp) Render(w io.Writer, g *escape.Grid) error {
	for row := 0; row < g.Height; row++ {
		if _, err := io.WriteString(w, r.Line(g, row)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// String renders g into a single string.
func (r Ramp) String(g *escape.Grid) string {
	var b strings.Builder
	for _, line := range r.Lines(g) {
		b.WriteString(line + "\n")
	}
	return b.String()
}

// Render writes g using DefaultRamp.
func Render(w io.Writer, g *escape.Grid) error {
	return DefaultRamp.Render(w, g)
}

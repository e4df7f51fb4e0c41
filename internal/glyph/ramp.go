// Package glyph turns escape grids into text, one line per row.
package glyph

import "sort"

// Step maps every count up to and including Max to Glyph.
type Step struct {
	Max   uint
	Glyph rune
}

// Ramp is an ordered list of inclusive upper bounds. Counts above the last
// bound map to Overflow.
type Ramp struct {
	Steps    []Step
	Overflow rune
}

// DefaultRamp runs from sparse glyphs for fast escapers to dense ones for
// slow escapers and set members.
var DefaultRamp = Ramp{
	Steps: []Step{
		{Max: 2, Glyph: ' '},
		{Max: 5, Glyph: '.'},
		{Max: 10, Glyph: '•'},
		{Max: 30, Glyph: '*'},
		{Max: 100, Glyph: '+'},
		{Max: 200, Glyph: 'x'},
		{Max: 400, Glyph: '$'},
		{Max: 700, Glyph: '#'},
	},
	Overflow: '%',
}

// Index returns the bucket of v; len(Steps) means overflow.
func (r Ramp) Index(v uint) int {
	return sort.Search(len(r.Steps), func(i int) bool {
		return v <= r.Steps[i].Max
	})
}

func (r Ramp) Glyph(v uint) rune {
	i := r.Index(v)
	if i == len(r.Steps) {
		return r.Overflow
	}
	return r.Steps[i].Glyph
}

// Buckets is the number of distinct glyphs including overflow.
func (r Ramp) Buckets() int {
	return len(r.Steps) + 1
}

// BucketGlyph returns the glyph of bucket i as returned by Index.
func (r Ramp) BucketGlyph(i int) rune {
	if i >= len(r.Steps) {
		return r.Overflow
	}
	return r.Steps[i].Glyph
}

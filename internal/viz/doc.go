// Package viz formats human-facing summaries of escape grids.
//
// Rendered frames themselves never pass through this package; they are
// plain text produced by package glyph. viz covers the auxiliary
// commands:
//
//   - [Table]: styled listings of presets and archived runs
//   - [HistogramBars]: per-glyph cell counts as horizontal bars
//   - [RowProfile]: asciigraph plot of mean escape count by row
package viz

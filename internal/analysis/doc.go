// Package analysis summarizes escape grids.
//
// The package derives the numbers shown by the stats command and stored
// with archived frames:
//
//   - [Histogram]: cell count per glyph bucket
//   - [RowMeans]: mean escape count of every row
//   - [InteriorFraction]: share of cells that never escaped
//   - [Summary]: the above flattened into named values
package analysis

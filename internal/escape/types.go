package escape

// Viewport is a rectangle of the complex plane.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Point maps pixel (col, row) of res to the plane. The last column and row
// never reach XMax and YMax.
func (v Viewport) Point(col, row int, res Resolution) (cx, cy float64) {
	cx = v.XMin + (v.XMax-v.XMin)*(float64(col)/float64(res.Width))
	cy = v.YMin + (v.YMax-v.YMin)*(float64(row)/float64(res.Height))
	return cx, cy
}

// Resolution is the number of sample columns and rows.
type Resolution struct {
	Width, Height int
}

// Grid holds escape counts in row-major order.
type Grid struct {
	Width, Height int
	Cells         []uint
}

// NewGrid allocates a zeroed grid of res.
func NewGrid(res Resolution) *Grid {
	return &Grid{
		Width:  res.Width,
		Height: res.Height,
		Cells:  make([]uint, res.Width*res.Height),
	}
}

// At returns the count at (row, col).
func (g *Grid) At(row, col int) uint {
	return g.Cells[row*g.Width+col]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v uint) {
	g.Cells[row*g.Width+col] = v
}

// Row returns the cells of one row. The slice aliases the grid.
func (g *Grid) Row(row int) []uint {
	return g.Cells[row*g.Width : (row+1)*g.Width]
}

package escape

// EscapeRadiusSq is |z|^2 beyond which an orbit is unbounded.
const EscapeRadiusSq = 4.0

// Count returns the iteration at which the orbit of c = cx + cy*i leaves
// the disk of radius 2, or maxIters if it never does. The magnitude is
// checked before each update, so iteration 0 always sees z = 0.
func Count(cx, cy float64, maxIters uint) uint {
	var zr, zi float64
	for i := uint(0); i < maxIters; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > EscapeRadiusSq {
			return i
		}
		zi = 2*zr*zi + cy
		zr = zr2 - zi2 + cx
	}
	return maxIters
}

// Compute fills a fresh grid for vp sampled at res.
func Compute(vp Viewport, res Resolution, maxIters uint) *Grid {
	g := NewGrid(res)
	computeRows(g, vp, res, maxIters, 0, res.Height)
	return g
}

func computeRows(g *Grid, vp Viewport, res Resolution, maxIters uint, start, end int) {
	for row := start; row < end; row++ {
		cells := g.Row(row)
		for col := range cells {
			cx, cy := vp.Point(col, row, res)
			cells[col] = Count(cx, cy, maxIters)
		}
	}
}

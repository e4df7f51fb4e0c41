package escape

import (
	"sync/atomic"
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   float64
		maxIters uint
		expected uint
	}{
		{"origin", 0, 0, 100, 100},
		{"origin single iteration", 0, 0, 1, 1},
		{"far outside", 2, 2, 50, 1},
		{"far outside cap one", 2, 2, 1, 1},
		{"real axis tip stays on radius", -2, 0, 64, 64},
		{"one escapes on third update", 1, 0, 20, 3},
		{"period two bulb", -1, 0, 500, 500},
		{"just left of tip", -2.1, 0, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.cx, tt.cy, tt.maxIters); got != tt.expected {
				t.Errorf("Count(%v, %v, %d) = %d, want %d", tt.cx, tt.cy, tt.maxIters, got, tt.expected)
			}
		})
	}
}

func TestViewportPoint(t *testing.T) {
	vp := Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
	res := Resolution{Width: 10, Height: 5}

	cx, cy := vp.Point(0, 0, res)
	if cx != -2 || cy != -1.5 {
		t.Errorf("top-left = (%v, %v), want (-2, -1.5)", cx, cy)
	}

	cx, cy = vp.Point(res.Width-1, res.Height-1, res)
	if cx >= vp.XMax || cy >= vp.YMax {
		t.Errorf("bottom-right (%v, %v) reached the max bounds", cx, cy)
	}
}

func TestComputeDimensions(t *testing.T) {
	vp := Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
	res := Resolution{Width: 17, Height: 9}
	var maxIters uint = 40

	g := Compute(vp, res, maxIters)
	if g.Width != 17 || g.Height != 9 {
		t.Fatalf("grid is %dx%d, want 17x9", g.Width, g.Height)
	}
	if len(g.Cells) != 17*9 {
		t.Fatalf("expected %d cells, got %d", 17*9, len(g.Cells))
	}
	for i, v := range g.Cells {
		if v > maxIters {
			t.Errorf("cell %d = %d exceeds cap %d", i, v, maxIters)
		}
	}
}

func TestComputeClassicView(t *testing.T) {
	vp := Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
	g := Compute(vp, Resolution{Width: 10, Height: 5}, 50)

	tests := []struct {
		row, col int
		expected uint
	}{
		{2, 5, 50}, // -0.5-0.3i, main cardioid
		{2, 6, 50}, // -0.2-0.3i, main cardioid
		{0, 9, 2},  // 0.7-1.5i
		{2, 0, 1},  // -2-0.3i
	}

	for _, tt := range tests {
		if got := g.At(tt.row, tt.col); got != tt.expected {
			t.Errorf("cell (%d,%d) = %d, want %d", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestComputeParallelMatchesSequential(t *testing.T) {
	vp := Viewport{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}
	res := Resolution{Width: 40, Height: 31}

	want := Compute(vp, res, 300)
	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		got := ComputeParallel(vp, res, 300, workers)
		for i := range want.Cells {
			if got.Cells[i] != want.Cells[i] {
				t.Fatalf("workers=%d: cell %d = %d, want %d", workers, i, got.Cells[i], want.Cells[i])
			}
		}
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 5, 16, 97} {
		hits := make([]int32, n)
		ParallelFor(n, 2, 4, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestGridRowAliases(t *testing.T) {
	g := NewGrid(Resolution{Width: 3, Height: 2})
	g.Row(1)[2] = 7
	if g.At(1, 2) != 7 {
		t.Errorf("Row did not alias grid storage")
	}
	g.Set(0, 1, 4)
	if g.Cells[1] != 4 {
		t.Errorf("Set wrote to wrong cell")
	}
}

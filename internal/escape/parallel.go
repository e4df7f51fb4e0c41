package escape

import "sync"

// minRowsPerWorker keeps tiny frames on a single goroutine.
const minRowsPerWorker = 4

// ComputeParallel is Compute with rows split across up to workers
// goroutines. Each goroutine owns a disjoint band of rows, so the result
// matches Compute exactly.
func ComputeParallel(vp Viewport, res Resolution, maxIters uint, workers int) *Grid {
	g := NewGrid(res)
	ParallelFor(res.Height, minRowsPerWorker, workers, func(start, end int) {
		computeRows(g, vp, res, maxIters, start, end)
	})
	return g
}

// ParallelFor executes fn over [0, n) in contiguous chunks.
func ParallelFor(n, minChunk, numWorkers int, fn func(start, end int)) {
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

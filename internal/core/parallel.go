package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// rowChunks splits rows [0, n) into at most workers contiguous ranges and
// runs fn on each range concurrently. fn must only touch rows it was given.
func rowChunks(n, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < 2 {
		fn(0, n)
		return
	}
	step := (n + workers - 1) / workers
	var eg errgroup.Group
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += step {
		hi := min(lo+step, n)
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = eg.Wait()
}

// ApplyParallel is ApplyAll with rows processed on up to workers goroutines.
// f must be safe for concurrent use; the result equals ApplyAll.
func (g *Grid[T]) ApplyParallel(workers int, f func(x, y int, v T) T) {
	rowChunks(g.h, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := g.data[y*g.w : (y+1)*g.w]
			for x := range row {
				row[x] = f(x, y, row[x])
			}
		}
	})
}

// OverlayParallel is Overlay with source rows processed on up to workers
// goroutines. When src is taller than a wrapping destination, two source rows
// would land on the same destination row, so the copy runs sequentially.
func (g *Grid[T]) OverlayParallel(src *Grid[T], x, y, workers int) {
	if g.wrapping && src.h > g.h {
		Logger().Debug("overlay rows alias on wrapping grid, running sequentially",
			"src_h", src.h, "dst_h", g.h)
		g.Overlay(src, x, y)
		return
	}
	rowChunks(src.h, workers, func(lo, hi int) {
		for sy := lo; sy < hi; sy++ {
			for sx, v := range src.data[sy*src.w : (sy+1)*src.w] {
				g.Set(x+sx, y+sy, v)
			}
		}
	})
}

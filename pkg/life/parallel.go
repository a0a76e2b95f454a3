package life

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// NextStateParallel computes the same result as NextState with the rows
// split into bands across worker goroutines. workers <= 0 means one per
// CPU. Each band writes a disjoint stripe of the output grid and the
// input grid is only read, so no synchronization beyond the final Wait
// is needed; flat boundary sampling serializes internally on the
// topology's RNG.
func (g *Grid) NextStateParallel(workers int) (*Grid, bool) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > g.h {
		workers = g.h
	}
	if workers <= 1 {
		return g.NextState()
	}

	next := &Grid{w: g.w, h: g.h, cells: make([]bool, len(g.cells)), topo: g.topo}
	rowsPerWorker := (g.h + workers - 1) / workers

	var eg errgroup.Group
	var changed atomic.Bool
	for i := 0; i < workers; i++ {
		y0 := i * rowsPerWorker
		y1 := min(y0+rowsPerWorker, g.h)
		if y0 >= g.h {
			break
		}
		eg.Go(func() error {
			if g.stepRows(next, y0, y1) {
				changed.Store(true)
			}
			return nil
		})
	}
	// The workers never return an error; Wait is just the join point.
	_ = eg.Wait()
	return next, changed.Load()
}

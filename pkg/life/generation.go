package life

import (
	"fmt"
	"sync/atomic"
)

// Generation drives a grid through the Game of Life transition rule. It
// owns the current snapshot: each step computes a whole new grid and
// replaces the snapshot with one atomic store, so a presentation
// goroutine reading Current always observes a complete generation,
// never a partially written one. Step and StepParallel must come from a
// single goroutine; Current and the status queries are safe from any.
type Generation struct {
	state atomic.Pointer[Grid]

	generation    atomic.Int64
	maxGeneration int
	unchanging    atomic.Bool
}

// NewGeneration starts a run from initial with at most maxGeneration
// steps. A zero cap produces a run that is already finished.
func NewGeneration(initial *Grid, maxGeneration int) (*Generation, error) {
	if initial == nil {
		return nil, fmt.Errorf("life: initial grid must not be nil")
	}
	if maxGeneration < 0 {
		return nil, fmt.Errorf("life: maximum generation must be non-negative, got %d", maxGeneration)
	}
	gen := &Generation{maxGeneration: maxGeneration}
	gen.state.Store(initial)
	return gen, nil
}

// Current returns the latest complete snapshot.
func (gen *Generation) Current() *Grid { return gen.state.Load() }

// Number returns how many steps have been applied.
func (gen *Generation) Number() int { return int(gen.generation.Load()) }

// Max returns the generation cap.
func (gen *Generation) Max() int { return gen.maxGeneration }

// Unchanging reports whether a step has hit a fixed point. The flag
// latches: once true it stays true for the lifetime of the run.
func (gen *Generation) Unchanging() bool { return gen.unchanging.Load() }

// Finished reports whether stepping has terminated, either at a fixed
// point or at the generation cap.
func (gen *Generation) Finished() bool {
	return gen.Unchanging() || gen.Number() >= gen.maxGeneration
}

// Step advances by one generation and reports whether any cell changed.
// Stepping a finished run is a harmless no-op returning false.
func (gen *Generation) Step() bool {
	return gen.step(func(g *Grid) (*Grid, bool) { return g.NextState() })
}

// StepParallel is Step with the transition computed across worker
// goroutines.
func (gen *Generation) StepParallel(workers int) bool {
	return gen.step(func(g *Grid) (*Grid, bool) { return g.NextStateParallel(workers) })
}

func (gen *Generation) step(advance func(*Grid) (*Grid, bool)) bool {
	if gen.Finished() {
		return false
	}
	next, changed := advance(gen.Current())
	gen.state.Store(next)
	gen.generation.Add(1)
	if !changed {
		gen.unchanging.Store(true)
	}
	return changed
}

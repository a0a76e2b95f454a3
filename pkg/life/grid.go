package life

import (
	"fmt"

	"github.com/teor2345/SwiftLife/pkg/core"
)

// Grid stores one simulation snapshot as a dense row-major boolean
// matrix, with row 0 at the top. A grid produced by NextState shares its
// predecessor's topology.
type Grid struct {
	w, h  int
	cells []bool
	topo  *Topology
}

// NewGrid allocates an all-dead grid with the given dimensions. The
// topology may be nil, which leaves everything beyond the edge dead.
func NewGrid(w, h int, topo *Topology) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("life: grid dimensions must be positive, got %dx%d", w, h)
	}
	if err := checkTopology(topo, w, h); err != nil {
		return nil, err
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h), topo: topo}, nil
}

// NewRandomGrid allocates a grid with each cell independently alive with
// probability aliveProbability.
func NewRandomGrid(w, h int, aliveProbability float64, rng *core.RNG, topo *Topology) (*Grid, error) {
	g, err := NewGrid(w, h, topo)
	if err != nil {
		return nil, err
	}
	core.FillBool(rng, g.cells, aliveProbability)
	return g, nil
}

// NewGridFromRows builds a grid from explicit rows, row 0 on top. The
// rows must be non-empty and rectangular; ragged input is rejected
// rather than truncated or padded.
func NewGridFromRows(rows [][]bool, topo *Topology) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("life: cell rows must be non-empty")
	}
	w, h := len(rows[0]), len(rows)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("life: row %d has %d cells, want %d", y, len(row), w)
		}
	}
	g, err := NewGrid(w, h, topo)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Topology returns the boundary provider, which may be nil.
func (g *Grid) Topology() *Topology { return g.topo }

// InBounds reports whether (x, y) addresses a stored cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Alive reports the value at (x, y). In-bounds coordinates read the
// stored cell; out-of-bounds coordinates are answered by the topology,
// or dead when no topology is configured. Every boundary-sensitive
// computation goes through this single query so the boundary semantics
// cannot diverge between the transition rule and the surfaces.
func (g *Grid) Alive(x, y int) bool {
	if g.InBounds(x, y) {
		return g.cells[y*g.w+x]
	}
	if g.topo != nil {
		return g.topo.boundaryAlive(g, x, y)
	}
	return false
}

// SetAlive writes the cell at (x, y) and reports whether the write
// landed. Out-of-bounds writes are a deliberate no-op returning false:
// cells beyond the edge have no storage, and on a closed surface the
// notion of writing "outside" is ill-defined.
func (g *Grid) SetAlive(x, y int, alive bool) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.w+x] = alive
	return true
}

// NeighborAliveCount sums Alive over the 8 Moore-neighborhood offsets.
// All 8 offsets are always visited; each one may resolve through a
// different stretch of the boundary.
func (g *Grid) NeighborAliveCount(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// NextState produces the next generation and reports whether any cell
// changed. The receiver is never written; every cell of the new grid is
// computed from the receiver alone, so neighbor counts cannot observe a
// half-updated generation.
func (g *Grid) NextState() (*Grid, bool) {
	next := &Grid{w: g.w, h: g.h, cells: make([]bool, len(g.cells)), topo: g.topo}
	changed := g.stepRows(next, 0, g.h)
	return next, changed
}

// stepRows fills rows [y0, y1) of next from the receiver and reports
// whether any of those cells changed.
func (g *Grid) stepRows(next *Grid, y0, y1 int) bool {
	changed := false
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			alive := g.cells[idx]
			n := g.NeighborAliveCount(x, y)
			v := n == 3 || (alive && n == 2)
			next.cells[idx] = v
			if v != alive {
				changed = true
			}
		}
	}
	return changed
}

// Clone returns a deep copy sharing the topology.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells, topo: g.topo}
}

// Equal reports whether both grids have the same dimensions and cell
// values. Topology is not compared.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if c != o.cells[i] {
			return false
		}
	}
	return true
}

// Cells exposes the backing slice for presentation code. Treat it as
// read-only; a stepping goroutine never writes it, but presentation
// writes would race with neighbor counting.
func (g *Grid) Cells() []bool { return g.cells }

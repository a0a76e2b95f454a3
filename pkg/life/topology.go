package life

import (
	"fmt"
	"sync"

	"github.com/teor2345/SwiftLife/pkg/core"
)

// TopologyKind enumerates the supported boundary surfaces. The set is
// closed: behavior dispatches on the kind rather than through an open
// interface, because no further surfaces are expected.
type TopologyKind int

const (
	// KindFlat samples off-grid cells with a per-edge probability.
	KindFlat TopologyKind = iota
	// KindTorus wraps both axes independently.
	KindTorus
	// KindProjectivePlane wraps both axes, flipping the cross
	// coordinate on every crossing.
	KindProjectivePlane
	// KindKleinBottle wraps one axis plainly and the other with a flip.
	KindKleinBottle
	// KindSphere glues the rectangle's edges into a sphere.
	KindSphere
)

// Axis selects a grid axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// JoinMode selects how a sphere topology glues the rectangle's edges.
type JoinMode int

const (
	// JoinFull folds the square along a diagonal, gluing full adjacent
	// sides pairwise. Only defined on square grids.
	JoinFull JoinMode = iota
	// JoinHalf zips each edge to itself about its midpoint, closing the
	// rectangle like a pillow. Defined for any dimensions.
	JoinHalf
)

// Orientation selects the handedness of a sphere join.
type Orientation int

const (
	Clockwise Orientation = iota
	Anticlockwise
)

// Topology is a boundary-condition provider: given read access to a
// grid, it answers what value an out-of-bounds coordinate has. Closed
// surfaces map the coordinate back onto a stored cell; the flat surface
// samples a fresh boolean per query. A Topology is immutable after
// construction (the flat RNG's internal state excepted, which is
// mutex-guarded) and may be shared by every generation of a run.
type Topology struct {
	kind TopologyKind

	// flat surface
	left, top, right, bottom float64
	mu                       sync.Mutex
	rng                      *core.RNG

	// klein bottle
	reverse Axis

	// sphere
	join   JoinMode
	orient Orientation
}

// Flat treats the world outside the grid as a field where every query is
// an independent draw, biased by the probability of the nearest edge.
// The nearest edge comes from the wedge between the rectangle's two
// diagonals; coordinates exactly on the main diagonal count as top or
// right, and coordinates exactly on the anti-diagonal count as right or
// bottom, so corner queries resolve deterministically. A nil rng falls
// back to a fixed seed, which is only meaningful when every probability
// is an exact 0 or 1.
func Flat(left, top, right, bottom float64, rng *core.RNG) *Topology {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Topology{
		kind: KindFlat,
		left: left, top: top, right: right, bottom: bottom,
		rng: rng,
	}
}

// Torus wraps both axes modulo the grid dimensions.
func Torus() *Topology { return &Topology{kind: KindTorus} }

// ProjectivePlane wraps each axis modulo the grid dimensions, flipping
// the other coordinate on every boundary crossing.
func ProjectivePlane() *Topology { return &Topology{kind: KindProjectivePlane} }

// KleinBottle wraps one axis like a torus and the other with a flip of
// the cross coordinate. reverse names the axis whose crossings flip.
func KleinBottle(reverse Axis) *Topology {
	return &Topology{kind: KindKleinBottle, reverse: reverse}
}

// Sphere glues the rectangle's edges into a sphere. JoinFull folds along
// a diagonal: clockwise pairs left with top and right with bottom,
// anticlockwise pairs left with bottom and right with top. JoinHalf zips
// each edge to itself about its midpoint; the orientation has no effect
// there because self-gluing has no handedness.
func Sphere(join JoinMode, orient Orientation) *Topology {
	return &Topology{kind: KindSphere, join: join, orient: orient}
}

// Kind reports the surface variant.
func (t *Topology) Kind() TopologyKind { return t.kind }

// RequiresSquare reports whether the surface is only defined on square
// grids.
func (t *Topology) RequiresSquare() bool {
	return t.kind == KindSphere && t.join == JoinFull
}

// checkTopology validates a topology against grid dimensions at
// construction time, so an impossible pairing fails before any query.
func checkTopology(t *Topology, w, h int) error {
	if t == nil {
		return nil
	}
	if t.RequiresSquare() && w != h {
		return fmt.Errorf("life: full-join sphere requires a square grid, got %dx%d", w, h)
	}
	return nil
}

// boundaryAlive answers an out-of-bounds query. Callers guarantee that
// (x, y) lies outside the grid.
func (t *Topology) boundaryAlive(g *Grid, x, y int) bool {
	if t.kind == KindFlat {
		p := t.edgeProbability(g.w, g.h, x, y)
		t.mu.Lock()
		v := t.rng.UniformBool(p)
		t.mu.Unlock()
		return v
	}
	mx, my := t.mapToGrid(g.w, g.h, x, y)
	return g.Alive(mx, my)
}

// edgeProbability picks the per-edge probability for an off-grid
// coordinate. The plane is split into four wedges by the rectangle's two
// diagonals, compared in cross-multiplied integer form so the choice is
// exact. Ties on the main diagonal group with the top/right wedges and
// ties on the anti-diagonal group with the right/bottom wedges.
func (t *Topology) edgeProbability(w, h, x, y int) float64 {
	a := x*h - y*w       // side of the main diagonal, through (0,0) and (w,h)
	b := x*h + y*w - w*h // side of the anti-diagonal, through (0,h) and (w,0)
	switch {
	case a >= 0 && b < 0:
		return t.top
	case a >= 0 && b >= 0:
		return t.right
	case b >= 0:
		return t.bottom
	default:
		return t.left
	}
}

// mapToGrid resolves an off-grid coordinate to the stored cell that the
// surface's identification rule glues it to. Only called for closed
// surfaces.
func (t *Topology) mapToGrid(w, h, x, y int) (int, int) {
	switch t.kind {
	case KindTorus:
		return mod(x, w), mod(y, h)

	case KindProjectivePlane:
		// (x, y) ~ (x±w, h-1-y) and (x, y) ~ (w-1-x, y±h). Each pass
		// moves one wrap closer to the grid, so the loop terminates for
		// any coordinate.
		for x < 0 || x >= w || y < 0 || y >= h {
			switch {
			case x < 0:
				x += w
				y = h - 1 - y
			case x >= w:
				x -= w
				y = h - 1 - y
			case y < 0:
				y += h
				x = w - 1 - x
			default:
				y -= h
				x = w - 1 - x
			}
		}
		return x, y

	case KindKleinBottle:
		if t.reverse == AxisY {
			// Crossing a horizontal edge mirrors the x coordinate.
			q := floorDiv(y, h)
			y -= q * h
			if mod(q, 2) == 1 {
				x = w - 1 - x
			}
			return mod(x, w), y
		}
		q := floorDiv(x, w)
		x -= q * w
		if mod(q, 2) == 1 {
			y = h - 1 - y
		}
		return x, mod(y, h)

	case KindSphere:
		for x < 0 || x >= w || y < 0 || y >= h {
			x, y = t.sphereStep(w, h, x, y)
		}
		return x, y
	}

	// KindFlat never reaches mapToGrid.
	panic(fmt.Sprintf("life: mapToGrid on topology kind %d", t.kind))
}

// sphereStep resolves one edge crossing of a sphere surface. Crossings
// are checked left, top, right, bottom in that order, which fixes the
// corner tie-break.
func (t *Topology) sphereStep(w, h, x, y int) (int, int) {
	if t.join == JoinHalf {
		// Each edge glues to itself reversed about its midpoint.
		switch {
		case x < 0:
			return -x - 1, h - 1 - y
		case y < 0:
			return w - 1 - x, -y - 1
		case x >= w:
			return 2*w - 1 - x, h - 1 - y
		default:
			return w - 1 - x, 2*h - 1 - y
		}
	}

	// Full join on a square grid of side w == h. Walking off a glued
	// edge re-enters across its partner at the matching offset.
	n := w
	if t.orient == Clockwise {
		// left <-> top, right <-> bottom.
		switch {
		case x < 0:
			return y, -x - 1
		case y < 0:
			return -y - 1, x
		case x >= n:
			return y, 2*n - 1 - x
		default:
			return 2*n - 1 - y, x
		}
	}
	// Anticlockwise: left <-> bottom, right <-> top.
	switch {
	case x < 0:
		return y, n + x
	case y < 0:
		return n + y, x
	case x >= n:
		return y, x - n
	default:
		return y - n, x
	}
}

// mod returns the mathematical modulus, always in [0, n).
func mod(a, n int) int { return (a%n + n) % n }

// floorDiv returns floor(a/n) for positive n.
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

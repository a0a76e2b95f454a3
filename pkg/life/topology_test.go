package life

import (
	"testing"

	"github.com/teor2345/SwiftLife/pkg/core"
)

type mappingCase struct {
	x, y   int
	mx, my int
}

func checkMappings(t *testing.T, topo *Topology, w, h int, cases []mappingCase) {
	t.Helper()
	for _, c := range cases {
		mx, my := topo.mapToGrid(w, h, c.x, c.y)
		if mx != c.mx || my != c.my {
			t.Errorf("(%d,%d) mapped to (%d,%d), want (%d,%d)", c.x, c.y, mx, my, c.mx, c.my)
		}
		if mx < 0 || mx >= w || my < 0 || my >= h {
			t.Errorf("(%d,%d) mapped out of bounds to (%d,%d)", c.x, c.y, mx, my)
		}
	}
}

func TestTorusMapping(t *testing.T) {
	checkMappings(t, Torus(), 5, 5, []mappingCase{
		{-1, 0, 4, 0},
		{5, 2, 0, 2},
		{2, -1, 2, 4},
		{2, 5, 2, 0},
		{-6, -6, 4, 4},
		{12, 7, 2, 2},
	})
}

func TestProjectivePlaneMapping(t *testing.T) {
	// Crossing a vertical edge flips y; crossing a horizontal edge
	// flips x.
	checkMappings(t, ProjectivePlane(), 5, 4, []mappingCase{
		{-1, 1, 4, 2},
		{5, 0, 0, 3},
		{1, -1, 3, 3},
		{1, 4, 3, 0},
		{-1, -1, 0, 0}, // corner: vertical crossing then horizontal
	})
}

func TestKleinBottleMapping(t *testing.T) {
	// reverse = AxisY: horizontal-edge crossings mirror x, vertical-edge
	// crossings wrap plainly.
	checkMappings(t, KleinBottle(AxisY), 5, 4, []mappingCase{
		{1, -1, 3, 3},
		{1, 4, 3, 0},
		{-1, 1, 4, 1},
		{5, 1, 0, 1},
		{1, 8, 1, 0}, // two crossings cancel the mirror
	})

	checkMappings(t, KleinBottle(AxisX), 5, 4, []mappingCase{
		{-1, 1, 4, 2},
		{5, 1, 0, 2},
		{1, -1, 1, 3},
		{1, 4, 1, 0},
	})
}

func TestSphereFullJoinMapping(t *testing.T) {
	// Clockwise glues left<->top and right<->bottom on a 4x4 grid.
	checkMappings(t, Sphere(JoinFull, Clockwise), 4, 4, []mappingCase{
		{2, -1, 0, 2},
		{-1, 2, 2, 0},
		{4, 1, 1, 3},
		{1, 4, 3, 1},
	})

	// Anticlockwise glues left<->bottom and right<->top.
	checkMappings(t, Sphere(JoinFull, Anticlockwise), 4, 4, []mappingCase{
		{2, -1, 3, 2},
		{-1, 2, 2, 3},
		{4, 1, 1, 0},
		{1, 4, 0, 1},
	})
}

func TestSphereFullJoinSymmetry(t *testing.T) {
	// The gluing is an identification: the cell just past an edge and
	// the cell it glues to must name each other.
	topo := Sphere(JoinFull, Clockwise)
	for i := 0; i < 4; i++ {
		ax, ay := topo.mapToGrid(4, 4, i, -1)
		bx, by := topo.mapToGrid(4, 4, -1, i)
		if (ax != 0 || ay != i) || (bx != i || by != 0) {
			t.Fatalf("edge pairing broken at offset %d: got (%d,%d) and (%d,%d)", i, ax, ay, bx, by)
		}
	}
}

func TestSphereHalfJoinMapping(t *testing.T) {
	// Each edge zips to itself about its midpoint; works on rectangles.
	checkMappings(t, Sphere(JoinHalf, Clockwise), 5, 3, []mappingCase{
		{1, -1, 3, 0},
		{1, 3, 3, 2},
		{-1, 1, 0, 1},
		{5, 1, 4, 1},
		{0, -1, 4, 0},
		{4, 3, 0, 2},
	})
}

func TestFlatEdgeSelection(t *testing.T) {
	topo := Flat(0.1, 0.2, 0.3, 0.4, core.NewRNG(1))
	cases := []struct {
		x, y int
		want float64
	}{
		{-1, 2, 0.1},  // left of the grid
		{-3, 0, 0.1},
		{2, -1, 0.2},  // above
		{2, -9, 0.2},
		{4, 2, 0.3},   // right
		{9, 3, 0.3},
		{2, 4, 0.4},   // below
		{-1, -1, 0.2}, // main-diagonal tie resolves to top
		{4, 4, 0.3},   // main-diagonal tie past the far corner resolves to right
	}
	for _, c := range cases {
		if got := topo.edgeProbability(4, 4, c.x, c.y); got != c.want {
			t.Errorf("edge probability at (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestFlatProbabilityExtremes(t *testing.T) {
	g := parseGrid(t, Flat(0, 0, 0, 0, core.NewRNG(5)),
		"    ",
		"    ",
		"    ",
		"    ",
	)
	for i := 0; i < 10000; i++ {
		if g.Alive(-1, i%4) || g.Alive(i%4, -1) || g.Alive(4, i%4) || g.Alive(i%4, 4) {
			t.Fatal("probability-0 boundary produced an alive cell")
		}
	}

	g = parseGrid(t, Flat(1, 1, 1, 1, core.NewRNG(5)),
		"    ",
		"    ",
		"    ",
		"    ",
	)
	for i := 0; i < 10000; i++ {
		if !g.Alive(-1, i%4) || !g.Alive(i%4, -1) || !g.Alive(4, i%4) || !g.Alive(i%4, 4) {
			t.Fatal("probability-1 boundary produced a dead cell")
		}
	}
}

func TestBlinkerAcrossTorusSeam(t *testing.T) {
	// A vertical blinker wrapped over the top/bottom seam in column 0.
	g := parseGrid(t, Torus(),
		"*    ",
		"*    ",
		"     ",
		"     ",
		"*    ",
	)

	next, changed := g.NextState()
	if !changed {
		t.Fatal("seam blinker reported no change")
	}

	expects := map[[2]int]bool{
		{4, 0}: true,
		{0, 0}: true,
		{1, 0}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if next.Alive(x, y) != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, next.Alive(x, y), shouldBeAlive)
			}
		}
	}

	again, changed := next.NextState()
	if !changed {
		t.Fatal("seam blinker reported no change on the second step")
	}
	if !again.Equal(g) {
		t.Fatalf("seam blinker did not return to its original phase:\n%s", again)
	}
}

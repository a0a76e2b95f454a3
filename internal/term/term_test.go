package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/teor2345/SwiftLife/pkg/life"
)

func TestDrawPaintsCellsAndStatus(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("initializing simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 10)

	rows := [][]bool{
		{true, false},
		{false, true},
	}
	grid, err := life.NewGridFromRows(rows, nil)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	gen, err := life.NewGeneration(grid, 0)
	if err != nil {
		t.Fatalf("building generation: %v", err)
	}

	draw(screen, gen)

	bgAt := func(x, y int) tcell.Color {
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return bg
	}

	// Cell (0,0) is alive and spans screen columns 0-1.
	if bgAt(0, 0) != tcell.ColorGreen || bgAt(1, 0) != tcell.ColorGreen {
		t.Fatal("alive cell not painted green")
	}
	if bgAt(2, 0) != tcell.ColorBlack {
		t.Fatal("dead cell not painted black")
	}
	if bgAt(2, 1) != tcell.ColorGreen {
		t.Fatal("alive cell (1,1) not painted green")
	}

	// Status line sits one row below the grid.
	r, _, _, _ := screen.GetContent(0, 3)
	if r != 'g' {
		t.Fatalf("status line starts with %q, want 'g'", r)
	}
}

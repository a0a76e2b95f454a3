package life

import (
	"fmt"
	"strings"
)

const (
	aliveMark = '*'
	deadMark  = ' '
)

// String renders the grid one line per row, row 0 first, '*' for alive
// and a space for dead. Rows are joined by newlines with no trailing
// newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] {
				b.WriteByte(aliveMark)
			} else {
				b.WriteByte(deadMark)
			}
		}
	}
	return b.String()
}

// String renders the generation header, the unchanging notice when the
// run has hit a fixed point, the grid, the cap footer when the maximum
// generation was reached, and a separator line of dashes as wide as the
// grid.
func (gen *Generation) String() string {
	g := gen.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "Generation: %d\n", gen.Number())
	if gen.Unchanging() {
		b.WriteString("The pattern is unchanging.\n")
	}
	b.WriteString(g.String())
	b.WriteByte('\n')
	if gen.Number() >= gen.Max() {
		b.WriteString("Reached the maximum generation.\n")
	}
	b.WriteString(strings.Repeat("-", g.Width()))
	return b.String()
}

package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/teor2345/SwiftLife/pkg/life"
)

// Options controls the terminal run loop.
type Options struct {
	TPS     int
	Workers int
	// HoldOnFinish keeps the final frame on screen until a key is
	// pressed instead of returning as soon as the run finishes.
	HoldOnFinish bool
}

// Run drives the generation on the provided screen until it finishes or
// the user quits. Space pauses, n steps once, q or Escape quits. The
// caller owns the screen lifecycle (Init and Fini).
func Run(screen tcell.Screen, gen *life.Generation, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 10
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
	defer ticker.Stop()

	paused := false
	tickOnce := false
	draw(screen, gen)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					tickOnce = true
				}
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, gen)
			}
		case <-ticker.C:
			if gen.Finished() {
				if !opts.HoldOnFinish {
					return nil
				}
				continue
			}
			if paused && !tickOnce {
				continue
			}
			gen.StepParallel(opts.Workers)
			tickOnce = false
			draw(screen, gen)
		}
	}
}

// draw paints the full grid plus the status line and flushes the screen.
// Each cell takes two columns so the aspect ratio stays near square in
// typical terminal fonts.
func draw(screen tcell.Screen, gen *life.Generation) {
	grid := gen.Current()
	screen.Clear()

	alive := tcell.StyleDefault.Background(tcell.ColorGreen)
	dead := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			style := dead
			if grid.Alive(x, y) {
				style = alive
			}
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	drawStatus(screen, gen, grid.Height()+1)
	screen.Show()
}

func drawStatus(screen tcell.Screen, gen *life.Generation, row int) {
	status := fmt.Sprintf("generation %d/%d", gen.Number(), gen.Max())
	if gen.Unchanging() {
		status += "  unchanging"
	}
	if gen.Finished() {
		status += "  finished"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range status {
		screen.SetContent(i, row, r, nil, style)
	}
}

//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/teor2345/SwiftLife/internal/render"
	"github.com/teor2345/SwiftLife/internal/ui"
	"github.com/teor2345/SwiftLife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudHeight = 16

// Game adapts a life.Generation to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	gen     *life.Generation
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided generation.
func New(cfg *Config, gen *life.Generation) *Game {
	grid := gen.Current()
	g := &Game{
		cfg:      cfg,
		gen:      gen,
		painter:  render.NewGridPainter(grid.Width(), grid.Height()),
		onColor:  color.White,
		offColor: color.Black,
	}
	g.hud = ui.NewHUD(gen, hudHeight)
	return g
}

// Reset restarts the run from a fresh random grid seeded with seed.
func (g *Game) Reset(seed int64) error {
	cfg := *g.cfg
	cfg.Seed = seed
	gen, err := cfg.BuildGeneration()
	if err != nil {
		return err
	}
	g.gen = gen
	g.hud = ui.NewHUD(gen, hudHeight)
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if (!g.paused || g.tickOnce) && !g.gen.Finished() {
		g.gen.StepParallel(g.cfg.Workers)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current snapshot and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.gen.Current()
	g.painter.Blit(screen, grid.Cells(), g.onColor, g.offColor, g.cfg.Scale)
	g.hud.Draw(screen, grid.Height()*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.gen.Current()
	return grid.Width() * g.cfg.Scale, grid.Height()*g.cfg.Scale + g.hud.Height()
}

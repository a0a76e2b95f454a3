//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/teor2345/SwiftLife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a one-line run status under the simulation view.
type HUD struct {
	gen    *life.Generation
	height int
}

// NewHUD constructs a HUD reading from the provided generation.
func NewHUD(gen *life.Generation, height int) *HUD {
	if height < 0 {
		height = 0
	}
	return &HUD{gen: gen, height: height}
}

// Height returns the vertical pixels reserved for the status line.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return h.height
}

// Draw writes the status line starting at the given vertical offset.
func (h *HUD) Draw(dst *ebiten.Image, offsetY int) {
	if h == nil || h.height == 0 {
		return
	}
	status := fmt.Sprintf("generation %d/%d", h.gen.Number(), h.gen.Max())
	if h.gen.Unchanging() {
		status += "  unchanging"
	}
	if h.gen.Finished() {
		status += "  finished"
	}
	face := basicfont.Face7x13
	text.Draw(dst, status, face, 4, offsetY+face.Ascent+2, color.White)
}

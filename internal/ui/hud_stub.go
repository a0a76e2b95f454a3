//go:build !ebiten

package ui

import "github.com/teor2345/SwiftLife/pkg/life"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*life.Generation, int) *HUD { return nil }

// Height reports no reserved space in the headless build.
func (h *HUD) Height() int { return 0 }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}

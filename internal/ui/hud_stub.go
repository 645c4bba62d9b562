//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int, int) *HUD { return nil }

// DrawStartMenu is a no-op in the headless build.
func (h *HUD) DrawStartMenu(any) {}

// DrawInstructions is a no-op in the headless build.
func (h *HUD) DrawInstructions(any) {}

// DrawStatus is a no-op in the headless build.
func (h *HUD) DrawStatus(any, int, int, float64, bool) {}

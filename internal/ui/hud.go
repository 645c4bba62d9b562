//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the phase screens and the running status line.
type HUD struct {
	width  int
	height int
}

// NewHUD constructs a HUD for a width x height pixel surface.
func NewHUD(width, height int) *HUD {
	return &HUD{width: width, height: height}
}

// DrawStartMenu paints the title screen with the key bindings.
func (h *HUD) DrawStartMenu(screen *ebiten.Image) {
	cy := h.height / 2
	h.drawCentered(screen, "Conway's Game of Life", cy-20, colorBright)
	h.drawCentered(screen, "Press M to open and close the menu", cy+20, colorDim)
	h.drawCentered(screen, "Press Space to pause", cy+50, colorDim)
	h.drawCentered(screen, "Press Up/Down arrows to change speed", cy+80, colorDim)
	h.drawCentered(screen, "Press Enter to start", cy+140, colorBright)
}

// DrawInstructions paints the cell selection hints along the bottom edge.
func (h *HUD) DrawInstructions(screen *ebiten.Image) {
	h.drawCentered(screen, "Select alive cells and press Enter to Start", h.height-40, colorBright)
	h.drawCentered(screen, "Press 'R' to randomize", h.height-20, colorBright)
}

// DrawStatus paints a one-line run summary in the top-left corner.
func (h *HUD) DrawStatus(screen *ebiten.Image, generation, population int, rate float64, paused bool) {
	line := fmt.Sprintf("gen %d  pop %d  %.1f gen/s", generation, population, rate)
	if paused {
		line += "  paused"
	}
	text.Draw(screen, line, basicfont.Face7x13, 6, 16, colorBright)
}

func (h *HUD) drawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	x := (h.width - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}

var (
	colorBright = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	colorDim    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

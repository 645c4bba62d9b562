//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"conway/internal/session"
)

// Menu is the centered in-game panel with restart and pause controls.
type Menu struct {
	pixel *ebiten.Image

	panel       image.Rectangle
	restartRect image.Rectangle
	pauseRect   image.Rectangle
}

// NewMenu lays out the menu for a width x height pixel surface.
func NewMenu(width, height int) *Menu {
	m := &Menu{}
	m.pixel = ebiten.NewImage(1, 1)
	m.pixel.Fill(color.White)

	x := (width - menuWidth) / 2
	y := (height - menuHeight) / 2
	m.panel = image.Rect(x, y, x+menuWidth, y+menuHeight)
	m.restartRect = image.Rect(x+menuPadding, y+restartTop, x+menuWidth-menuPadding, y+restartTop+buttonHeight)
	m.pauseRect = image.Rect(x+menuPadding, y+pauseTop, x+menuWidth-menuPadding, y+pauseTop+buttonHeight)
	return m
}

// Update routes clicks on the menu buttons into the session. It does
// nothing while the menu is hidden.
func (m *Menu) Update(sess *session.Session) {
	if sess == nil || !sess.MenuVisible() {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	switch {
	case pointInRect(mx, my, m.restartRect):
		sess.Restart()
	case pointInRect(mx, my, m.pauseRect):
		sess.TogglePause()
	}
}

// Draw paints the panel when the session shows the menu.
func (m *Menu) Draw(screen *ebiten.Image, sess *session.Session) {
	if sess == nil || !sess.MenuVisible() {
		return
	}
	m.fillRect(screen, m.panel, color.RGBA{R: 16, G: 16, B: 20, A: 235})

	face := basicfont.Face7x13
	text.Draw(screen, "Game Menu", face, m.panel.Min.X+menuPadding, m.panel.Min.Y+headerBaseline, colorBright)

	m.drawButton(screen, m.restartRect, "Restart Game")
	label := "Pause"
	if sess.Paused() {
		label = "Unpause"
	}
	m.drawButton(screen, m.pauseRect, label)

	text.Draw(screen, "Press 'M' to close the menu", face, m.panel.Min.X+menuPadding, m.panel.Max.Y-footerInset, colorDim)
}

func (m *Menu) drawButton(screen *ebiten.Image, rect image.Rectangle, label string) {
	m.fillRect(screen, rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (m *Menu) fillRect(screen *ebiten.Image, rect image.Rectangle, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(clr.R)/255.0, float64(clr.G)/255.0, float64(clr.B)/255.0, float64(clr.A)/255.0)
	screen.DrawImage(m.pixel, op)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	menuWidth      = 250
	menuHeight     = 200
	menuPadding    = 12
	headerBaseline = 24
	restartTop     = 48
	pauseTop       = 92
	buttonHeight   = 32
	footerInset    = 14
)

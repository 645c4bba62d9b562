//go:build ebiten

package app

import (
	"image/color"
	"time"

	"conway/internal/render"
	"conway/internal/session"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	menu    *ui.Menu

	onColor   color.Color
	offColor  color.Color
	gridColor color.RGBA

	cells []bool
	last  time.Time
}

// New constructs a Game around the provided session.
func New(sess *session.Session) *Game {
	size := sess.Automaton().Size()
	cell := sess.CellSize()
	width, height := size.W*cell, size.H*cell
	return &Game{
		sess:      sess,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(width, height),
		menu:      ui.NewMenu(width, height),
		onColor:   color.White,
		offColor:  color.Black,
		gridColor: color.RGBA{R: 90, G: 90, B: 96, A: 255},
	}
}

// Update polls input, feeds frame time to the session and advances it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sess.HandleKey(session.KeyConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.HandleKey(session.KeyPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sess.HandleKey(session.KeySpeedUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sess.HandleKey(session.KeySpeedDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.HandleKey(session.KeyRandomize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sess.HandleKey(session.KeyMenu)
	}

	if g.sess.MenuVisible() {
		g.menu.Update(g.sess)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.sess.HandleClick(mx, my)
	}

	g.sess.Update(g.frameTime())
	return nil
}

// Draw renders the surface for the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.sess.Phase() {
	case session.PhaseStartMenu:
		g.hud.DrawStartMenu(screen)
	case session.PhaseChooseCells:
		g.drawBoard(screen)
		g.hud.DrawInstructions(screen)
	case session.PhaseRunning:
		g.drawBoard(screen)
		sim := g.sess.Automaton()
		g.hud.DrawStatus(screen, g.sess.Generation(), sim.Population(), g.sess.Rate(), g.sess.Paused())
		g.menu.Draw(screen, g.sess)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sess.Automaton().Size()
	cell := g.sess.CellSize()
	return size.W * cell, size.H * cell
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	g.cells = g.sess.Automaton().Snapshot(g.cells)
	cell := g.sess.CellSize()
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, cell)
	g.painter.DrawGridLines(screen, cell, g.gridColor)
}

func (g *Game) frameTime() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return dt
}

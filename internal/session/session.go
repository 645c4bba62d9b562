// Package session drives a Life board from user input: the phase flow,
// pause and speed control, and the pixel-to-cell mapping for clicks.
package session

import (
	"conway/internal/core"
)

// Phase identifies where the player is in the session flow.
type Phase uint8

const (
	// PhaseStartMenu shows the title screen and key bindings.
	PhaseStartMenu Phase = iota
	// PhaseChooseCells lets the player paint or randomize the board.
	PhaseChooseCells
	// PhaseRunning advances the board on the step clock.
	PhaseRunning
)

// Key is a device-independent input event fed to HandleKey.
type Key uint8

const (
	// KeyConfirm advances the phase flow.
	KeyConfirm Key = iota
	// KeyPause toggles the pause flag while running.
	KeyPause
	// KeySpeedUp raises the step rate.
	KeySpeedUp
	// KeySpeedDown lowers the step rate.
	KeySpeedDown
	// KeyRandomize replaces the board with a random soup during selection.
	KeyRandomize
	// KeyMenu toggles the in-game menu while running.
	KeyMenu
)

// Session owns the interaction state around an automaton: the current
// phase, pause flag, menu visibility and the step clock.
type Session struct {
	sim      core.Automaton
	clock    *core.StepClock
	cellSize int
	seed     int64

	phase      Phase
	paused     bool
	menuOpen   bool
	generation int
}

// New wires a session around sim. cellSize maps click pixels to cells and
// seed is replayed on restarts.
func New(sim core.Automaton, cellSize int, seed int64) *Session {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Session{
		sim:      sim,
		clock:    core.NewStepClock(core.DefaultRate),
		cellSize: cellSize,
		seed:     seed,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// MenuVisible reports whether the in-game menu is open.
func (s *Session) MenuVisible() bool { return s.menuOpen }

// Rate returns the step clock target in generations per second.
func (s *Session) Rate() float64 { return s.clock.Rate() }

// SetRate overrides the stepping rate, clamped to the supported range.
func (s *Session) SetRate(rate float64) { s.clock.SetRate(rate) }

// Generation returns the number of generations computed since the last
// restart.
func (s *Session) Generation() int { return s.generation }

// Automaton exposes the driven board.
func (s *Session) Automaton() core.Automaton { return s.sim }

// CellSize returns the pixel edge length of one cell.
func (s *Session) CellSize() int { return s.cellSize }

// HandleKey applies one key event to the current phase. Keys with no
// meaning in the phase are ignored.
func (s *Session) HandleKey(k Key) {
	switch s.phase {
	case PhaseStartMenu:
		if k == KeyConfirm {
			s.phase = PhaseChooseCells
		}
	case PhaseChooseCells:
		switch k {
		case KeyConfirm:
			s.phase = PhaseRunning
			s.clock.Reset()
		case KeyRandomize:
			s.sim.Randomize()
		}
	case PhaseRunning:
		switch k {
		case KeyPause:
			s.TogglePause()
		case KeySpeedUp:
			s.clock.SpeedUp()
		case KeySpeedDown:
			s.clock.SlowDown()
		case KeyMenu:
			s.menuOpen = !s.menuOpen
		}
	}
}

// HandleClick maps a pixel position onto the board and toggles the cell
// under it. Clicks only paint during cell selection; positions past the
// board edge are absorbed by the engine's bounds checks.
func (s *Session) HandleClick(px, py int) {
	if s.phase != PhaseChooseCells {
		return
	}
	if px < 0 || py < 0 {
		return
	}
	s.sim.Toggle(px/s.cellSize, py/s.cellSize)
}

// TogglePause flips the pause flag. Only meaningful while running.
func (s *Session) TogglePause() {
	if s.phase == PhaseRunning {
		s.paused = !s.paused
	}
}

// Restart discards the board and returns to cell selection. The clock
// rate survives a restart; pause and the menu do not.
func (s *Session) Restart() {
	s.sim.Reset(s.seed)
	s.generation = 0
	s.paused = false
	s.menuOpen = false
	s.phase = PhaseChooseCells
	s.clock.Reset()
}

// Update feeds dt seconds of frame time to the clock and advances the
// board when a step falls due. The menu does not stop the board; only
// pause and the phase gate do. Reports whether a generation was computed.
func (s *Session) Update(dt float64) bool {
	if s.phase != PhaseRunning || s.paused {
		return false
	}
	if !s.clock.Tick(dt) {
		return false
	}
	s.sim.Advance()
	s.generation++
	return true
}

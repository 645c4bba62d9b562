//go:build !ebiten

package ui

import "conway/internal/session"

// Menu is a no-op placeholder for headless builds.
type Menu struct{}

// NewMenu constructs a stub menu.
func NewMenu(int, int) *Menu { return &Menu{} }

// Update is a no-op in headless builds.
func (m *Menu) Update(*session.Session) {}

// Draw is a no-op placeholder.
func (m *Menu) Draw(any, *session.Session) {}

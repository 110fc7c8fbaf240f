//go:build !ebiten

package app

import "errors"

// ErrNoGUI is returned by the headless Game placeholder.
var ErrNoGUI = errors.New("the window shell requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder; Update always fails in the headless build.
func New(*Session, int) *Game { return &Game{} }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// WindowSize returns zeros in the headless build.
func (g *Game) WindowSize() (int, int) { return 0, 0 }

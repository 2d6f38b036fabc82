//go:build !ebiten

package app

import "fmt"

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*Config) (*Game, error) {
	return nil, fmt.Errorf("app.New requires building with the 'ebiten' tag")
}

// SetVsync is a no-op placeholder.
func (g *Game) SetVsync(bool) {}

// Run always reports that the GUI build tag is missing.
func (g *Game) Run() error {
	return fmt.Errorf("app.Game.Run requires building with the 'ebiten' tag")
}

// Started is always false in the headless build.
func (g *Game) Started() bool { return false }

// Close is a no-op placeholder.
func (g *Game) Close() error { return nil }

// Package scene defines the Scene interface for game screens.
//
// The stealth sandbox is a scene; restarting it swaps in a fresh one.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a screen driven by the game loop.
// Returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds (1/TPS).
	// Returns the next scene to switch to, or nil to stay.
	// A non-nil error stops the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called before the scene is replaced.
	OnExit()
}

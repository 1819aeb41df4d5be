// Package game provides the ebiten loop that runs the current Scene and
// switches between scenes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/hunter/internal/application/scene"
	"github.com/younwookim/hunter/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a Game from the display config with the given initial
// scene. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display *config.DisplayConfig) *Game {
	w, h, tps := 768, 544, 60
	if display != nil {
		if display.ScreenWidth > 0 {
			w = display.ScreenWidth
		}
		if display.ScreenHeight > 0 {
			h = display.ScreenHeight
		}
		if display.Framerate > 0 {
			tps = display.Framerate
		}
	}

	g := &Game{
		current: initialScene,
		screenW: w,
		screenH: h,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.frames++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the fixed delta time handed to scenes
func (g *Game) DT() float64 {
	return g.dt
}

// Frames returns the number of completed updates
func (g *Game) Frames() int {
	return g.frames
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Package scene defines the Scene interface for game screens and the four
// screens of the game: splash, main menu, name input and puzzle.
//
// Each screen implements Scene to handle its own input, update logic and
// rendering. Screens are created fresh on every transition; nothing is
// reinitialized in place.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tileswap/internal/application/system"
)

// ErrQuit is returned from HandleInput to end the game normally
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen (splash, menu, name input, puzzle)
//
// The game loop calls HandleInput, then Update, then Draw once per frame.
// Scene transitions are handled by returning a new Scene from HandleInput.
type Scene interface {
	// HandleInput consumes one frame of input.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to terminate the game.
	HandleInput(in system.InputState) (next Scene, err error)

	// Update applies time-based changes (timers, blinking).
	// dt is the delta time in seconds (typically 1/60).
	Update(dt float64)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// Size returns the logical window size while this scene is active.
	Size() (w, h int)

	// Title returns the window title while this scene is active.
	Title() string

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

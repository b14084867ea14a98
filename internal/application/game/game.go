// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/tileswap/internal/application/replay"
	"github.com/younwookim/tileswap/internal/application/scene"
	"github.com/younwookim/tileswap/internal/application/state"
	"github.com/younwookim/tileswap/internal/application/system"
)

// Window receives size and title changes when the scene changes.
type Window interface {
	SetSize(w, h int)
	SetTitle(title string)
}

// EbitenWindow applies window changes through ebiten.
type EbitenWindow struct{}

func (EbitenWindow) SetSize(w, h int)      { ebiten.SetWindowSize(w, h) }
func (EbitenWindow) SetTitle(title string) { ebiten.SetWindowTitle(title) }

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	input   system.InputSource
	window  Window
	nav     *state.Machine
	screenW int
	screenH int
	dt      float64
	debug   bool

	recorder   *replay.Recorder
	recordPath string
	clock      system.Clock
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately and the window is
// sized for it.
func New(initialScene scene.Scene, input system.InputSource, window Window) *Game {
	g := &Game{
		current: initialScene,
		input:   input,
		window:  window,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	g.applyWindow()
	return g
}

// Update reads one frame of input, lets the current scene react to it and
// handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	in := g.input.GetInput()
	if g.recorder != nil {
		g.recorder.RecordFrame(in, g.clock.Now())
	}

	if in.Quit {
		if g.nav != nil {
			if err := g.nav.Fire(state.EventQuit); err != nil {
				log.Printf("game: %v", err)
			}
		}
		return ebiten.Termination
	}

	next, err := g.current.HandleInput(in)
	if errors.Is(err, scene.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.applyWindow()
	}

	g.current.Update(g.dt)
	return nil
}

// applyWindow resizes and retitles the window for the current scene
func (g *Game) applyWindow() {
	w, h := g.current.Size()
	if w != g.screenW || h != g.screenH {
		g.screenW, g.screenH = w, h
		g.window.SetSize(w, h)
	}
	g.window.SetTitle(g.current.Title())
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// Layout returns the current scene's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetDebug toggles the TPS/FPS overlay
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// SetNavigator sets the machine told about window close requests
func (g *Game) SetNavigator(nav *state.Machine) {
	g.nav = nav
}

// SetRecorder records every frame's input, stamped with clock, and saves
// the recording to path on Shutdown.
func (g *Game) SetRecorder(rec *replay.Recorder, clock system.Clock, path string) {
	g.recorder = rec
	g.clock = clock
	g.recordPath = path
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Shutdown leaves the current scene and saves any recording.
func (g *Game) Shutdown() error {
	g.current.OnExit()

	if g.recorder == nil {
		return nil
	}
	g.recorder.Stop()
	if err := g.recorder.Save(g.recordPath); err != nil {
		return err
	}
	log.Printf("game: saved %d frames to %s", g.recorder.FrameCount(), g.recordPath)
	return nil
}

package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing for held editing keys (ticks)
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// InputState is the batch of input events for one frame
type InputState struct {
	Up        bool
	Down      bool
	Confirm   bool // Space or Enter
	Enter     bool
	Escape    bool
	Backspace bool // Also repeats while held
	Restart   bool // R
	AnyKey    bool // Any key went down this frame
	Chars     []rune
	MouseX    int
	MouseY    int

	// Left click drives the puzzle, any button dismisses the splash
	MouseClick bool
	AnyMouse   bool
	Quit       bool // Window close requested
}

// InputSource produces one InputState per frame
type InputSource interface {
	GetInput() InputState
}

// InputSystem reads input from ebiten
type InputSystem struct {
	keys []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	mx, my := ebiten.CursorPosition()

	space := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	anyMouse := left ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)

	return InputState{
		Up:         inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down:       inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Confirm:    space || enter,
		Enter:      enter,
		Escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Backspace:  ShouldRepeat(inpututil.KeyPressDuration(ebiten.KeyBackspace)),
		Restart:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		AnyKey:     len(s.keys) > 0,
		Chars:      ebiten.AppendInputChars(nil),
		MouseX:     mx,
		MouseY:     my,
		MouseClick: left,
		AnyMouse:   anyMouse,
		Quit:       ebiten.IsWindowBeingClosed(),
	}
}

// ShouldRepeat reports whether a key held for d ticks fires this tick:
// on the first tick, then every repeatInterval ticks after repeatDelay.
func ShouldRepeat(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

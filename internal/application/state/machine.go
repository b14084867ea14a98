package state

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/looplab/fsm"
)

// Navigation events
const (
	EventContinue = "continue"
	EventPlay     = "play"
	EventEditName = "editName"
	EventBack     = "back"
	EventRestart  = "restart"
	EventExit     = "exit"
	EventQuit     = "quit"
)

// Machine is the screen navigation graph. Screens ask it before switching so
// that only the documented transitions can happen.
type Machine struct {
	fsm *fsm.FSM
}

// NewMachine creates a machine positioned on the splash screen
func NewMachine() *Machine {
	return &Machine{
		fsm: fsm.NewFSM(
			ScreenSplash.fsmName(),
			getTransitions(),
			fsm.Callbacks{
				"enter_state": func(_ context.Context, e *fsm.Event) {
					log.Printf("screen: %s -> %s (%s)", e.Src, e.Dst, e.Event)
				},
			},
		),
	}
}

func getTransitions() fsm.Events {
	splash := ScreenSplash.fsmName()
	menu := ScreenMainMenu.fsmName()
	name := ScreenNameInput.fsmName()
	puzzle := ScreenPuzzle.fsmName()
	exited := ScreenExited.fsmName()

	return fsm.Events{
		{Name: EventContinue, Src: []string{splash}, Dst: menu},
		{Name: EventPlay, Src: []string{menu}, Dst: puzzle},
		{Name: EventEditName, Src: []string{menu}, Dst: name},
		{Name: EventBack, Src: []string{name, puzzle}, Dst: menu},
		{Name: EventRestart, Src: []string{puzzle}, Dst: puzzle},
		{Name: EventExit, Src: []string{menu}, Dst: exited},
		{Name: EventQuit, Src: []string{splash, menu, name, puzzle}, Dst: exited},
	}
}

// Fire applies event. Self transitions (restart) succeed without changing
// the current screen.
func (m *Machine) Fire(event string) error {
	err := m.fsm.Event(context.Background(), event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return fmt.Errorf("failed to navigate %q from %s: %w", event, m.Current(), err)
	}
	return nil
}

// Can reports whether event is allowed from the current screen
func (m *Machine) Can(event string) bool {
	return m.fsm.Can(event)
}

// Current returns the active screen
func (m *Machine) Current() Screen {
	return screenFromFSM(m.fsm.Current())
}

package state

// Screen identifies which screen is active
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenMainMenu
	ScreenNameInput
	ScreenPuzzle
	ScreenExited
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenNameInput:
		return "NameInput"
	case ScreenPuzzle:
		return "Puzzle"
	case ScreenExited:
		return "Exited"
	default:
		return "Unknown"
	}
}

// fsmName is the state name used by the navigation machine
func (s Screen) fsmName() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenMainMenu:
		return "mainMenu"
	case ScreenNameInput:
		return "nameInput"
	case ScreenPuzzle:
		return "puzzle"
	case ScreenExited:
		return "exited"
	default:
		return "unknown"
	}
}

func screenFromFSM(name string) Screen {
	for s := ScreenSplash; s <= ScreenExited; s++ {
		if s.fsmName() == name {
			return s
		}
	}
	return Screen(-1)
}

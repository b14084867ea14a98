package entity

// MenuAction is what confirming a main menu entry does
type MenuAction int

const (
	ActionPlay MenuAction = iota
	ActionEditName
	ActionExit
)

// String returns the string representation of the menu action
func (a MenuAction) String() string {
	switch a {
	case ActionPlay:
		return "Play"
	case ActionEditName:
		return "EditName"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

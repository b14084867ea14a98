package entity

import "unicode"

// PlayerName is an editable name bounded to maxLen runes.
// Only printable runes are accepted.
type PlayerName struct {
	runes  []rune
	maxLen int
}

// NewPlayerName creates a name buffer seeded with initial (truncated to maxLen)
func NewPlayerName(initial string, maxLen int) *PlayerName {
	n := &PlayerName{runes: make([]rune, 0, maxLen), maxLen: maxLen}
	for _, r := range initial {
		n.Append(r)
	}
	return n
}

// Append adds r if it is printable and the name is not full.
// Returns whether the name changed.
func (n *PlayerName) Append(r rune) bool {
	if len(n.runes) >= n.maxLen || !unicode.IsPrint(r) {
		return false
	}
	n.runes = append(n.runes, r)
	return true
}

// Backspace removes the last rune. No-op on an empty name.
func (n *PlayerName) Backspace() bool {
	if len(n.runes) == 0 {
		return false
	}
	n.runes = n.runes[:len(n.runes)-1]
	return true
}

func (n *PlayerName) String() string {
	return string(n.runes)
}

// Len returns the length in runes
func (n *PlayerName) Len() int {
	return len(n.runes)
}

func (n *PlayerName) MaxLen() int {
	return n.maxLen
}

package entity

// Menu is an ordered list of labels with a wrapping selection.
// The selected index always satisfies 0 <= selected < len(options).
type Menu struct {
	options  []string
	selected int
}

// NewMenu creates a menu with the first option selected
func NewMenu(options []string) *Menu {
	opts := make([]string, len(options))
	copy(opts, options)
	return &Menu{options: opts}
}

// Next moves the selection down, wrapping to the first option
func (m *Menu) Next() {
	if len(m.options) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.options)
}

// Prev moves the selection up, wrapping to the last option
func (m *Menu) Prev() {
	if len(m.options) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.options)) % len(m.options)
}

// Selected returns the selected index
func (m *Menu) Selected() int {
	return m.selected
}

// Action maps the selected index to its menu action
func (m *Menu) Action() MenuAction {
	return MenuAction(m.selected)
}

func (m *Menu) Options() []string {
	return m.options
}

func (m *Menu) Len() int {
	return len(m.options)
}

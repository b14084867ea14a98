package scene

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tileswap/internal/application/state"
	"github.com/younwookim/tileswap/internal/application/system"
	"github.com/younwookim/tileswap/internal/domain/entity"
)

// MainMenu lets the player start the puzzle, edit their name or exit
type MainMenu struct {
	ctx  *Context
	menu *entity.Menu

	// notice is shown under the menu, e.g. when the puzzle could not start
	notice string
}

// NewMainMenu creates the main menu with the first entry selected
func NewMainMenu(ctx *Context) *MainMenu {
	return &MainMenu{
		ctx:  ctx,
		menu: entity.NewMenu(ctx.Config.Menu.Options),
	}
}

// HandleInput implements scene.Scene
func (m *MainMenu) HandleInput(in system.InputState) (Scene, error) {
	switch {
	case in.Down:
		m.menu.Next()
	case in.Up:
		m.menu.Prev()
	case in.Confirm:
		return m.confirm()
	}
	return nil, nil
}

func (m *MainMenu) confirm() (Scene, error) {
	switch m.menu.Action() {
	case entity.ActionPlay:
		p, err := NewPuzzle(m.ctx)
		if err != nil {
			log.Printf("menu: %v", err)
			m.notice = err.Error()
			return nil, nil
		}
		if !m.ctx.navigate(state.EventPlay) {
			return nil, nil
		}
		return p, nil
	case entity.ActionEditName:
		if !m.ctx.navigate(state.EventEditName) {
			return nil, nil
		}
		return NewNameInput(m.ctx), nil
	case entity.ActionExit:
		m.ctx.navigate(state.EventExit)
		return nil, ErrQuit
	}
	return nil, nil
}

// Update implements scene.Scene
func (m *MainMenu) Update(_ float64) {}

// Draw implements scene.Scene
func (m *MainMenu) Draw(screen *ebiten.Image) {
	screen.Fill(colorMenuBG)

	w, h := m.Size()
	cx := float64(w) / 2
	fonts := m.ctx.Fonts

	drawCentered(screen, m.ctx.Config.Menu.Title, fonts.Title, cx, 100, colorText)

	for i, label := range m.menu.Options() {
		clr := colorText
		if i == m.menu.Selected() {
			clr = colorSelected
		}
		drawCentered(screen, label, fonts.Menu, cx, 300+float64(i)*80, clr)
	}

	if m.ctx.PlayerName != "" {
		drawCentered(screen, fmt.Sprintf("Player: %s", m.ctx.PlayerName), fonts.Small, cx, float64(h)-120, colorHint)
	}
	if m.notice != "" {
		drawCentered(screen, m.notice, fonts.Small, cx, float64(h)-60, colorError)
	}
}

// Notice returns the error text shown under the menu
func (m *MainMenu) Notice() string {
	return m.notice
}

func (m *MainMenu) Size() (int, int) { return m.ctx.menuSize() }
func (m *MainMenu) Title() string    { return m.ctx.Config.Display.Title }
func (m *MainMenu) OnEnter()         {}
func (m *MainMenu) OnExit()          {}

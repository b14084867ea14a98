package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/tileswap/internal/application/state"
	"github.com/younwookim/tileswap/internal/application/system"
	"github.com/younwookim/tileswap/internal/domain/entity"
)

const cursorGlyph = "|"

// NameInput edits the player name. Enter keeps the edit, Escape drops it;
// both return to the main menu.
type NameInput struct {
	ctx    *Context
	name   *entity.PlayerName
	cursor *entity.Blinker
}

// NewNameInput creates the name screen seeded with the current name
func NewNameInput(ctx *Context) *NameInput {
	cfg := ctx.Config.Menu.NameInput
	initial := ctx.PlayerName
	if initial == "" {
		initial = cfg.DefaultName
	}

	return &NameInput{
		ctx:    ctx,
		name:   entity.NewPlayerName(initial, cfg.MaxLength),
		cursor: entity.NewBlinker(cfg.CursorBlinkInterval(), ctx.Clock.Now()),
	}
}

// HandleInput implements scene.Scene
func (n *NameInput) HandleInput(in system.InputState) (Scene, error) {
	if in.Escape || in.Enter {
		if !n.ctx.navigate(state.EventBack) {
			return nil, nil
		}
		if in.Enter && !in.Escape {
			n.ctx.PlayerName = n.name.String()
		}
		return NewMainMenu(n.ctx), nil
	}

	if in.Backspace {
		n.name.Backspace()
	}
	for _, r := range in.Chars {
		n.name.Append(r)
	}
	return nil, nil
}

// Update implements scene.Scene
func (n *NameInput) Update(_ float64) {
	n.cursor.Update(n.ctx.Clock.Now())
}

// Draw implements scene.Scene
func (n *NameInput) Draw(screen *ebiten.Image) {
	screen.Fill(colorMenuBG)

	w, _ := n.Size()
	cx := float64(w) / 2
	fonts := n.ctx.Fonts

	drawCentered(screen, n.ctx.Config.Menu.NameInput.Title, fonts.Title, cx, 200, colorText)

	nameW := drawCentered(screen, n.name.String(), fonts.Title, cx, 300, colorText)
	if n.cursor.Visible() {
		_, ch := text.Measure(cursorGlyph, fonts.Title, 0)
		drawText(screen, cursorGlyph, fonts.Title, cx+nameW/2, 300-ch/2, colorText)
	}

	drawCentered(screen, n.ctx.Config.Menu.BackHint, fonts.Menu, cx, 400, colorHint)
}

// Name returns the name being edited
func (n *NameInput) Name() string {
	return n.name.String()
}

func (n *NameInput) Size() (int, int) { return n.ctx.menuSize() }
func (n *NameInput) Title() string    { return n.ctx.Config.Display.Title }
func (n *NameInput) OnEnter()         {}
func (n *NameInput) OnExit()          {}

package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tileswap/internal/application/state"
	"github.com/younwookim/tileswap/internal/application/system"
	"github.com/younwookim/tileswap/internal/domain/entity"
)

// Splash is the initial screen. Any key or click opens the main menu.
type Splash struct {
	ctx  *Context
	hint *entity.Blinker
}

// NewSplash creates the splash screen
func NewSplash(ctx *Context) *Splash {
	return &Splash{
		ctx:  ctx,
		hint: entity.NewBlinker(ctx.Config.Menu.Splash.BlinkInterval(), ctx.Clock.Now()),
	}
}

// HandleInput implements scene.Scene
func (s *Splash) HandleInput(in system.InputState) (Scene, error) {
	if !in.AnyKey && !in.AnyMouse {
		return nil, nil
	}
	if !s.ctx.navigate(state.EventContinue) {
		return nil, nil
	}
	return NewMainMenu(s.ctx), nil
}

// Update implements scene.Scene
func (s *Splash) Update(_ float64) {
	s.hint.Update(s.ctx.Clock.Now())
}

// Draw implements scene.Scene
func (s *Splash) Draw(screen *ebiten.Image) {
	screen.Fill(colorMenuBG)

	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2
	cfg := s.ctx.Config.Menu.Splash

	drawCentered(screen, cfg.Text, s.ctx.Fonts.Title, cx, cy-100, colorText)
	if s.hint.Visible() {
		drawCentered(screen, cfg.Hint, s.ctx.Fonts.Menu, cx, cy+100, colorHint)
	}
}

func (s *Splash) Size() (int, int) { return s.ctx.menuSize() }
func (s *Splash) Title() string    { return s.ctx.Config.Display.Title }
func (s *Splash) OnEnter()         {}
func (s *Splash) OnExit()          {}

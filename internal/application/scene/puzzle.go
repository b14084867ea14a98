package scene

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/tileswap/internal/application/state"
	"github.com/younwookim/tileswap/internal/application/system"
	"github.com/younwookim/tileswap/internal/domain/puzzle"
	"github.com/younwookim/tileswap/internal/infrastructure/assets"
)

const puzzleTitle = "Puzzle"

// Puzzle is the swap puzzle screen. Restarting builds a new Puzzle with a
// new picture, shuffle and timer.
type Puzzle struct {
	ctx     *Context
	round   *puzzle.Puzzle
	picture *assets.Picture
	layout  puzzle.Layout
	screenW int
	screenH int

	// Uploaded to the GPU on first draw
	image *ebiten.Image
}

// NewPuzzle picks a picture and starts a new round
func NewPuzzle(ctx *Context) (*Puzzle, error) {
	pic, err := ctx.Pictures.Pick()
	if err != nil {
		return nil, fmt.Errorf("failed to start puzzle: %w", err)
	}

	return newPuzzleFromPicture(ctx, pic)
}

func newPuzzleFromPicture(ctx *Context, pic *assets.Picture) (*Puzzle, error) {
	cfg := ctx.Config.Puzzle
	round, err := puzzle.New(puzzle.Config{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		TimeLimit: cfg.TimeLimit(),
	}, pic.Image.Bounds(), ctx.Rand, ctx.Clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to cut picture %s: %w", pic.Name, err)
	}

	w := ctx.Config.Display.Puzzle.Width
	h := ctx.Config.Display.Puzzle.Height
	area := image.Pt(w, h-cfg.HUDHeight)

	return &Puzzle{
		ctx:     ctx,
		round:   round,
		picture: pic,
		layout:  puzzle.NewLayout(cfg.Rows, cfg.Cols, round.Board().TileSize(), cfg.Margin, area),
		screenW: w,
		screenH: h,
	}, nil
}

// HandleInput implements scene.Scene
func (p *Puzzle) HandleInput(in system.InputState) (Scene, error) {
	if in.Escape {
		if !p.ctx.navigate(state.EventBack) {
			return nil, nil
		}
		return NewMainMenu(p.ctx), nil
	}

	if (in.Restart || in.Confirm) && p.round.Finished() {
		return p.restart()
	}

	if in.MouseClick {
		if pos, ok := p.layout.PositionAt(in.MouseX, in.MouseY); ok {
			p.round.Click(pos, p.ctx.Clock.Now())
		}
	}
	return nil, nil
}

func (p *Puzzle) restart() (Scene, error) {
	next, err := NewPuzzle(p.ctx)
	if err != nil {
		// Pictures vanished since the last round; fall back to the menu
		log.Printf("puzzle: restart failed: %v", err)
		if !p.ctx.navigate(state.EventBack) {
			return nil, nil
		}
		menu := NewMainMenu(p.ctx)
		menu.notice = err.Error()
		return menu, nil
	}
	if !p.ctx.navigate(state.EventRestart) {
		return nil, nil
	}
	return next, nil
}

// Update implements scene.Scene
func (p *Puzzle) Update(_ float64) {
	p.round.Update(p.ctx.Clock.Now())
}

// Draw implements scene.Scene
func (p *Puzzle) Draw(screen *ebiten.Image) {
	screen.Fill(colorPuzzleBG)
	p.drawTiles(screen)
	p.drawInfo(screen)
}

func (p *Puzzle) drawTiles(screen *ebiten.Image) {
	if p.image == nil {
		p.image = ebiten.NewImageFromImageWithOptions(p.picture.Image, &ebiten.NewImageFromImageOptions{
			PreserveBounds: true,
		})
	}

	board := p.round.Board()
	for i := 0; i < board.Len(); i++ {
		tile := board.At(i)
		r := p.layout.Rect(i)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.layout.Scale, p.layout.Scale)
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(p.image.SubImage(tile.Src).(*ebiten.Image), op)

		if i == p.round.Selected() {
			vector.StrokeRect(screen,
				float32(r.Min.X-2), float32(r.Min.Y-2),
				float32(r.Dx()+4), float32(r.Dy()+4),
				3, colorSelected, false)
		}
	}
}

func (p *Puzzle) drawInfo(screen *ebiten.Image) {
	fonts := p.ctx.Fonts
	w, h := float64(p.screenW), float64(p.screenH)

	remaining := p.round.Remaining(p.ctx.Clock.Now())
	drawText(screen, fmt.Sprintf("Time: %d s", int(remaining.Seconds())), fonts.Small, w-200, h-50, colorText)
	drawText(screen, fmt.Sprintf("Swaps: %d", p.round.Swaps()), fonts.Small, 20, h-50, colorText)
	drawCentered(screen, p.ctx.Config.Menu.BackHint, fonts.Small, w/2, h-30, colorHint)

	switch {
	case p.round.Completed():
		drawCentered(screen, "Puzzle solved!", fonts.Small, w/2, h-80, colorCompleted)
	case p.round.GameOver():
		vector.DrawFilledRect(screen, 0, float32(h/2-90), float32(w), 180, colorOverlay, false)
		drawCentered(screen, "Time is up!", fonts.Small, w/2, h/2-50, colorGameOver)
		drawCentered(screen, "Press R to restart", fonts.Small, w/2, h/2+50, colorText)
	}
}

// Round returns the round being played
func (p *Puzzle) Round() *puzzle.Puzzle {
	return p.round
}

// Layout returns where tiles are placed on screen
func (p *Puzzle) Layout() puzzle.Layout {
	return p.layout
}

func (p *Puzzle) Size() (int, int) { return p.screenW, p.screenH }
func (p *Puzzle) Title() string    { return puzzleTitle }

// OnEnter implements scene.Scene
func (p *Puzzle) OnEnter() {
	log.Printf("puzzle: started with %s, %d tiles, %s limit",
		p.picture.Name, p.round.Board().Len(), p.round.TimeLimit())
}

// OnExit implements scene.Scene
func (p *Puzzle) OnExit() {
	now := p.ctx.Clock.Now()
	switch {
	case p.round.Completed():
		log.Printf("puzzle: solved in %d swaps with %.1fs left", p.round.Swaps(), p.round.Remaining(now).Seconds())
	case p.round.GameOver():
		log.Printf("puzzle: time ran out after %d swaps", p.round.Swaps())
	default:
		log.Printf("puzzle: left after %d swaps", p.round.Swaps())
	}
}

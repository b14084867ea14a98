package scene

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/tileswap/internal/application/state"
	"github.com/younwookim/tileswap/internal/application/system"
	"github.com/younwookim/tileswap/internal/infrastructure/assets"
	"github.com/younwookim/tileswap/internal/infrastructure/config"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// PictureSource supplies the picture a new puzzle is cut from
type PictureSource interface {
	Pick() (*assets.Picture, error)
}

// Fonts holds the faces used by all screens
type Fonts struct {
	Title text.Face // Screen titles
	Menu  text.Face // Menu entries and hints
	Small text.Face // Puzzle HUD
}

// LoadFonts builds the faces from the embedded Go fonts
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &Fonts{
		Title: &text.GoTextFace{Source: bold, Size: 64},
		Menu:  &text.GoTextFace{Source: regular, Size: 48},
		Small: &text.GoTextFace{Source: regular, Size: 30},
	}, nil
}

// Context is shared by every screen. It is built once at startup.
type Context struct {
	Config   *config.GameConfig
	Clock    system.Clock
	Rand     *rand.Rand
	Pictures PictureSource
	Fonts    *Fonts
	Nav      *state.Machine

	// PlayerName is the name last confirmed on the name input screen
	PlayerName string
}

// navigate fires event on the navigation machine, logging a refusal
func (c *Context) navigate(event string) bool {
	if err := c.Nav.Fire(event); err != nil {
		log.Printf("navigation: %v", err)
		return false
	}
	return true
}

func (c *Context) menuSize() (int, int) {
	return c.Config.Display.Menu.Width, c.Config.Display.Menu.Height
}

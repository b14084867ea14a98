package config

import (
	"fmt"
	"time"
)

// MenuOptionCount is the number of main menu entries (play, name, exit)
const MenuOptionCount = 3

// MenuConfig is the root config for menu.json
type MenuConfig struct {
	Title     string          `json:"title"`
	Options   []string        `json:"options"` // Play, choose name, exit (in that order)
	BackHint  string          `json:"backHint"`
	Splash    SplashConfig    `json:"splash"`
	NameInput NameInputConfig `json:"nameInput"`
}

type SplashConfig struct {
	Text    string `json:"text"`
	Hint    string `json:"hint"`
	BlinkMs int    `json:"blinkMs"`
}

type NameInputConfig struct {
	Title         string `json:"title"`
	DefaultName   string `json:"defaultName"`
	MaxLength     int    `json:"maxLength"`
	CursorBlinkMs int    `json:"cursorBlinkMs"`
}

// BlinkInterval returns the splash hint toggle period
func (c SplashConfig) BlinkInterval() time.Duration {
	return time.Duration(c.BlinkMs) * time.Millisecond
}

// CursorBlinkInterval returns the name cursor toggle period
func (c NameInputConfig) CursorBlinkInterval() time.Duration {
	return time.Duration(c.CursorBlinkMs) * time.Millisecond
}

// Validate checks menu settings
func (c *MenuConfig) Validate() error {
	if len(c.Options) != MenuOptionCount {
		return fmt.Errorf("%w: menu needs %d options, got %d", ErrInvalidConfig, MenuOptionCount, len(c.Options))
	}
	if c.NameInput.MaxLength <= 0 {
		return fmt.Errorf("%w: name max length %d", ErrInvalidConfig, c.NameInput.MaxLength)
	}
	if len([]rune(c.NameInput.DefaultName)) > c.NameInput.MaxLength {
		return fmt.Errorf("%w: default name longer than %d", ErrInvalidConfig, c.NameInput.MaxLength)
	}
	if c.Splash.BlinkMs <= 0 || c.NameInput.CursorBlinkMs <= 0 {
		return fmt.Errorf("%w: blink intervals must be positive", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Title     string     `json:"title"`
	Menu      SizeConfig `json:"menu"`   // Window size for splash, menu and name input
	Puzzle    SizeConfig `json:"puzzle"` // Window size while the puzzle is active
	Framerate int        `json:"framerate"`
}

type SizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PuzzleConfig is the root config for puzzle.json
type PuzzleConfig struct {
	Rows         int      `json:"rows"`
	Cols         int      `json:"cols"`
	Margin       int      `json:"margin"`       // Gap between tiles (pixels)
	HUDHeight    int      `json:"hudHeight"`    // Space reserved below the board for text
	TimeLimitSec float64  `json:"timeLimitSec"` // Countdown length
	PictureDir   string   `json:"pictureDir"`
	Extensions   []string `json:"extensions"`
}

// TimeLimit returns the countdown length as a duration
func (c PuzzleConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSec * float64(time.Second))
}

// Validate checks display settings
func (c *DisplayConfig) Validate() error {
	if c.Menu.Width <= 0 || c.Menu.Height <= 0 {
		return fmt.Errorf("%w: menu size %dx%d", ErrInvalidConfig, c.Menu.Width, c.Menu.Height)
	}
	if c.Puzzle.Width <= 0 || c.Puzzle.Height <= 0 {
		return fmt.Errorf("%w: puzzle size %dx%d", ErrInvalidConfig, c.Puzzle.Width, c.Puzzle.Height)
	}
	if c.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Framerate)
	}
	return nil
}

// Validate checks puzzle settings
func (c *PuzzleConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.Margin < 0 || c.HUDHeight < 0 {
		return fmt.Errorf("%w: negative margin or hud height", ErrInvalidConfig)
	}
	if c.TimeLimitSec <= 0 {
		return fmt.Errorf("%w: time limit %.1fs", ErrInvalidConfig, c.TimeLimitSec)
	}
	if c.PictureDir == "" {
		return fmt.Errorf("%w: picture directory is empty", ErrInvalidConfig)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: no picture extensions", ErrInvalidConfig)
	}
	return nil
}

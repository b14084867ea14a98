package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Puzzle  *PuzzleConfig
	Menu    *MenuConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.load("display.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadPuzzle loads puzzle.json
func (l *Loader) LoadPuzzle() (*PuzzleConfig, error) {
	var cfg PuzzleConfig
	if err := l.load("puzzle.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMenu loads menu.json
func (l *Loader) LoadMenu() (*MenuConfig, error) {
	var cfg MenuConfig
	if err := l.load("menu.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadAll loads and validates all configurations (display, puzzle, menu)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}
	if err := display.Validate(); err != nil {
		return nil, fmt.Errorf("display.json: %w", err)
	}

	puzzle, err := l.LoadPuzzle()
	if err != nil {
		return nil, err
	}
	if err := puzzle.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle.json: %w", err)
	}

	menu, err := l.LoadMenu()
	if err != nil {
		return nil, err
	}
	if err := menu.Validate(); err != nil {
		return nil, fmt.Errorf("menu.json: %w", err)
	}

	return &GameConfig{
		Display: display,
		Puzzle:  puzzle,
		Menu:    menu,
	}, nil
}

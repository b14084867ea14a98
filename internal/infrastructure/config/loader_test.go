package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadDisplay(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadDisplay()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Menu.Width)
	assert.Equal(t, 720, cfg.Menu.Height)
	assert.Equal(t, 1000, cfg.Puzzle.Width)
	assert.Equal(t, 800, cfg.Puzzle.Height)
	assert.Equal(t, 60, cfg.Framerate)
}

func TestLoader_LoadPuzzle(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPuzzle()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 3, cfg.Cols)
	assert.Equal(t, 2, cfg.Margin)
	assert.Equal(t, 30*time.Second, cfg.TimeLimit())
	assert.Equal(t, "picture", cfg.PictureDir)
	assert.ElementsMatch(t, []string{".png", ".jpg", ".jpeg"}, cfg.Extensions)
}

func TestLoader_LoadMenu(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMenu()
	require.NoError(t, err)

	assert.Len(t, cfg.Options, MenuOptionCount)
	assert.Equal(t, 15, cfg.NameInput.MaxLength)
	assert.Equal(t, 800*time.Millisecond, cfg.Splash.BlinkInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.NameInput.CursorBlinkInterval())
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Display)
	assert.NotNil(t, cfg.Puzzle)
	assert.NotNil(t, cfg.Menu)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "empty")

	_, err := loader.LoadDisplay()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.json")
}

func TestLoader_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"puzzle.json": {Data: []byte(`{"rows": "three"`)},
	}
	loader := NewFSLoader(fsys, "bad")

	_, err := loader.LoadPuzzle()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse puzzle.json")
}

func TestLoader_LoadAll_RejectsInvalidPuzzle(t *testing.T) {
	fsys := fstest.MapFS{
		"display.json": {Data: []byte(`{"menu":{"width":1280,"height":720},"puzzle":{"width":1000,"height":800},"framerate":60}`)},
		"puzzle.json":  {Data: []byte(`{"rows":0,"cols":3,"timeLimitSec":30,"pictureDir":"p","extensions":[".png"]}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPuzzleConfig_Validate(t *testing.T) {
	valid := PuzzleConfig{Rows: 3, Cols: 3, Margin: 2, TimeLimitSec: 30, PictureDir: "picture", Extensions: []string{".png"}}

	tests := []struct {
		name   string
		mutate func(c *PuzzleConfig)
		ok     bool
	}{
		{"valid", func(c *PuzzleConfig) {}, true},
		{"zero rows", func(c *PuzzleConfig) { c.Rows = 0 }, false},
		{"negative margin", func(c *PuzzleConfig) { c.Margin = -1 }, false},
		{"no time", func(c *PuzzleConfig) { c.TimeLimitSec = 0 }, false},
		{"no dir", func(c *PuzzleConfig) { c.PictureDir = "" }, false},
		{"no extensions", func(c *PuzzleConfig) { c.Extensions = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestMenuConfig_Validate(t *testing.T) {
	cfg := MenuConfig{
		Options:   []string{"Play", "Name", "Exit"},
		Splash:    SplashConfig{BlinkMs: 800},
		NameInput: NameInputConfig{DefaultName: "Anonymous", MaxLength: 15, CursorBlinkMs: 500},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Options = cfg.Options[:2]
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Options = []string{"Play", "Name", "Exit"}
	cfg.NameInput.DefaultName = "a name that is far too long"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

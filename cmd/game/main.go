package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tileswap/internal/application/game"
	"github.com/younwookim/tileswap/internal/application/replay"
	"github.com/younwookim/tileswap/internal/application/scene"
	"github.com/younwookim/tileswap/internal/application/state"
	"github.com/younwookim/tileswap/internal/application/system"
	"github.com/younwookim/tileswap/internal/infrastructure/assets"
	"github.com/younwookim/tileswap/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	picturesFlag := flag.String("pictures", "", "Picture directory (defaults to puzzle.json pictureDir)")
	configFlag := flag.String("config", "", "Load configuration from this directory instead of the built-in one")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	seedFlag := flag.Int64("seed", 0, "Shuffle seed (0 picks one from the clock)")
	debugFlag := flag.Bool("debug", false, "Show TPS/FPS overlay")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Input and clock come from the player or from a recording
	var (
		input system.InputSource = system.NewInputSystem()
		clock system.Clock       = system.SystemClock{}
	)
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer := replay.NewReplayer(*data, time.Now())
		input = replayer
		clock = replayer.Clock()
		seed = replayer.Seed()
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, replayer.TotalFrames(), seed)
	}
	rng := rand.New(rand.NewSource(seed))

	pictureDir := cfg.Puzzle.PictureDir
	if *picturesFlag != "" {
		pictureDir = *picturesFlag
	}
	library := assets.NewLibrary(pictureDir, cfg.Puzzle.Extensions, rng)
	names, err := library.List()
	if err != nil {
		log.Fatalf("Failed to read pictures: %v", err)
	}
	log.Printf("Found %d pictures in %s", len(names), library.Dir())

	fonts, err := scene.LoadFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	nav := state.NewMachine()
	ctx := &scene.Context{
		Config:   cfg,
		Clock:    clock,
		Rand:     rng,
		Pictures: library,
		Fonts:    fonts,
		Nav:      nav,
	}

	g := game.New(scene.NewSplash(ctx), input, game.EbitenWindow{})
	g.SetNavigator(nav)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))
	g.SetDebug(*debugFlag)

	if *recordFlag != "" {
		g.SetRecorder(replay.NewRecorder(seed, clock.Now()), clock, *recordFlag)
		log.Printf("Recording enabled: %s (seed: %d)", *recordFlag, seed)
	}

	// Set up ebiten
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	// Run game
	runErr := ebiten.RunGame(g)
	if err := g.Shutdown(); err != nil {
		log.Printf("Failed to save recording: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadConfig reads the configuration from dir, or from the embedded
// defaults when dir is empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/hunter/internal/application/game"
	"github.com/younwookim/hunter/internal/application/scene/stealth"
	"github.com/younwookim/hunter/internal/infrastructure/config"
	"github.com/younwookim/hunter/internal/log"
)

func main() {
	// Parse command line flags
	configsFlag := flag.String("configs", "", "Config directory (default: embedded configs)")
	sceneFlag := flag.String("scene", "demo", "Scene to load from scenes/")
	recordFlag := flag.String("record", "", "Record the intruder to file (e.g., -record replay.json)")
	levelFlag := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log.Init(*levelFlag)

	loader, err := newLoader(*configsFlag)
	if err != nil {
		fatal("failed to open configs", err)
	}
	cfg, err := loader.LoadAll(*sceneFlag)
	if err != nil {
		fatal("failed to load config", err)
	}

	g := game.New(stealth.New(cfg, *recordFlag), cfg.Display)

	// Set up ebiten
	scale := cfg.Display.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*scale, cfg.Display.ScreenHeight*scale)
	ebiten.SetWindowTitle(fmt.Sprintf("hunter - %s", cfg.Scene.Name))
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		fatal("game stopped", err)
	}
	g.Current().OnExit()
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "."), nil
}

func fatal(msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}

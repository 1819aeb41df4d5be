// Command headless runs a scene without a window, from a replay file or a
// built-in script, and prints what the adversaries did.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/younwookim/hunter/internal/application/presentation"
	"github.com/younwookim/hunter/internal/application/replay"
	"github.com/younwookim/hunter/internal/ecs"
	"github.com/younwookim/hunter/internal/infrastructure/config"
	"github.com/younwookim/hunter/internal/infrastructure/telemetry"
	"github.com/younwookim/hunter/internal/log"
)

type options struct {
	configs     string
	scene       string
	replayPath  string
	script      string
	telemetry   string
	statusEvery int
	realtime    bool
	jsonOut     bool
	logLevel    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configs, "configs", "cmd/game/configs", "Config directory")
	flag.StringVar(&opts.scene, "scene", "", "Scene to load (default: the replay's scene, or demo)")
	flag.StringVar(&opts.replayPath, "replay", "", "Replay file to play")
	flag.StringVar(&opts.script, "script", "approach", "Built-in script when no replay is given")
	flag.StringVar(&opts.telemetry, "telemetry", "", "Serve telemetry on this address (e.g., :8089)")
	flag.IntVar(&opts.statusEvery, "status-every", 6, "Frames between telemetry status events")
	flag.BoolVar(&opts.realtime, "realtime", false, "Pace the run at the recording's TPS")
	flag.BoolVar(&opts.jsonOut, "json", false, "Print the report as JSON")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	log.SetOutput(os.Stderr, opts.logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Error("headless run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	var data *replay.ReplayData
	if opts.replayPath != "" {
		loaded, err := replay.LoadReplay(opts.replayPath)
		if err != nil {
			return err
		}
		data = loaded
	}

	sceneName := opts.scene
	if sceneName == "" {
		sceneName = "demo"
		if data != nil && data.Scene != "" {
			sceneName = data.Scene
		}
	}

	cfg, err := config.NewLoader(opts.configs).LoadAll(sceneName)
	if err != nil {
		return err
	}

	director := presentation.NewDirector()
	w := ecs.Build(cfg.Scene, cfg.Adversary, director)

	if data == nil {
		scripted, err := buildScript(opts.script, w, sceneName, cfg.Display.Framerate)
		if err != nil {
			return err
		}
		data = &scripted
	} else if data.Scene != "" && data.Scene != sceneName {
		log.Warn("replay recorded on another scene", "replay", data.Scene, "scene", sceneName)
	}

	runner := NewRunner(w, director)
	runner.Realtime = opts.realtime
	runner.StatusEvery = opts.statusEvery

	if opts.telemetry != "" {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		hub := telemetry.NewHub()
		srv := telemetry.NewServer(opts.telemetry, hub)
		errc := srv.Start(ctx)
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			_ = srv.Shutdown(shutdownCtx)
		}()

		select {
		case err := <-errc:
			if err != nil {
				return err
			}
		default:
		}
		runner.Sink = hub
	}

	report, err := runner.Run(ctx, *data)
	if err != nil {
		log.Warn("run interrupted", "frames", report.Frames, "error", err)
	}

	if opts.jsonOut {
		return report.WriteJSON(out)
	}
	if err := report.WriteText(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

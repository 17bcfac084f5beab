package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
)

func init() {
	// raylib and OpenGL must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Headless:  *headless,
	}

	if *headless {
		os.Exit(runHeadless(opts, *maxTicks))
	}
	os.Exit(runWindowed(cfg, opts, *maxTicks))
}

// runHeadless steps the tank at the configured frame rate without a window.
func runHeadless(opts game.Options, maxTicks int) int {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return 1
	}
	defer g.Unload()

	slog.Info("starting headless simulation", "seed", opts.Seed, "max_ticks", maxTicks)

	for maxTicks <= 0 || int(g.Tick()) < maxTicks {
		g.UpdateHeadless()
	}
	slog.Info("max ticks reached", "tick", g.Tick())
	return 0
}

func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) int {
	rl.SetConfigFlags(rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		slog.Error("failed to create window")
		return 1
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return 1
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return 0
}

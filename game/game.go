package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/geometry"
	"github.com/pthm-cable/aquarium/inspector"
	"github.com/pthm-cable/aquarium/persist"
	"github.com/pthm-cable/aquarium/renderer"
	"github.com/pthm-cable/aquarium/sim"
	"github.com/pthm-cable/aquarium/telemetry"
	"github.com/pthm-cable/aquarium/ui"
)

// Time scale limits for the debug panel slider.
const (
	MinTimeScale = 0.25
	MaxTimeScale = 8.0
)

// Inspector panel position in pixels, below the vitals bars.
const (
	inspectorX = 10
	inspectorY = 80
)

// Options configures a game instance.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// Game holds the complete aquarium state.
type Game struct {
	tank  *sim.Tank
	store persist.Store
	vp    geometry.Viewport

	// Rendering (nil when headless)
	renderer  *renderer.Renderer
	inspector *inspector.Inspector

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	// Reused every frame
	fish    []components.Fish
	scratch []float64

	// State
	tick      int32
	paused    bool
	timeScale float32
	showDebug bool
	request   debugRequest
	fixedDT   float32
}

// NewGameWithOptions creates a game. Outside headless mode the window must
// already exist. A texture that cannot be loaded is returned as an error.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	// Headless runs start from the saved tank but never overwrite it
	var store persist.Store = persist.NewFileStore(cfg.Assets.Status)
	if opts.Headless {
		store = persist.ReadOnly(store)
	}
	status := loadStatus(store)

	rng := rand.New(rand.NewSource(opts.Seed))
	tank := sim.New(sim.ParamsFromConfig(cfg), status, rng)

	g := &Game{
		tank:      tank,
		store:     store,
		vp:        geometry.NewViewport(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		collector: telemetry.NewCollector(cfg.Telemetry.SampleInterval, cfg.Telemetry.StatsWindow),
		logStats:  opts.LogStats,
		fish:      make([]components.Fish, 0, cfg.Tank.FishCount),
		timeScale: 1,
		fixedDT:   1 / float32(cfg.Screen.TargetFPS),
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Warn("telemetry output disabled", "dir", opts.OutputDir, "error", err)
	} else if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}
	g.output = output

	if !opts.Headless {
		r, err := renderer.New(g.vp, cfg.Assets.Texture)
		if err != nil {
			g.output.Close()
			return nil, err
		}
		g.renderer = r
		g.inspector = inspector.NewInspector(inspectorX, inspectorY)
	}

	slog.Info("tank ready",
		"fish", tank.Pool.Len(),
		"oxygen", status.Oxygen,
		"food", status.Food,
		"seed", opts.Seed,
		"headless", opts.Headless,
	)
	return g, nil
}

// Update runs one displayed frame: input, then simulation for the elapsed time.
func (g *Game) Update() {
	g.applyDebugRequest()

	for _, intent := range g.pollIntents() {
		g.apply(intent)
	}

	if g.paused {
		return
	}
	g.step(rl.GetFrameTime() * g.timeScale)
}

// UpdateHeadless advances the simulation by one fixed tick without raylib.
func (g *Game) UpdateHeadless() {
	g.step(g.fixedDT)
}

func (g *Game) apply(intent ui.Intent) {
	if intent == ui.IntentNone {
		return
	}
	g.tank.Apply(intent)
	g.collector.RecordIntent(intent)
	slog.Debug("intent", "intent", intent.String(), "oxygen", g.tank.Vitals.Oxygen, "food", g.tank.Vitals.Food)
}

func (g *Game) step(dt float32) {
	ev := g.tank.Step(dt)
	g.collector.RecordEvent(ev)
	g.tick++
	g.recordTelemetry()
}

// Tick returns the number of simulation steps run so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload saves the vitals (except in headless runs) and frees every resource.
func (g *Game) Unload() {
	saveStatus(g.store, g.tank.Status())

	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close telemetry output", "error", err)
	}
	if g.renderer != nil {
		g.renderer.Unload()
	}
	slog.Info("tank closed", "ticks", g.tick, "sim_time", g.tank.SimTime())
}

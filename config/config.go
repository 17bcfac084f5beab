// Package config provides configuration loading and access for the aquarium.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all aquarium configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Tank      TankConfig      `yaml:"tank"`
	Vitals    VitalsConfig    `yaml:"vitals"`
	UI        UIConfig        `yaml:"ui"`
	Assets    AssetsConfig    `yaml:"assets"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
// The resolution is fixed for the run; the background aspect correction and
// the fish vertical half-extent both depend on it.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// TankConfig holds fish spawning and physics parameters.
type TankConfig struct {
	FishCount      int     `yaml:"fish_count"`
	MinSize        float64 `yaml:"min_size"`        // Sprite diameter lower bound (NDC)
	MaxSize        float64 `yaml:"max_size"`        // Sprite diameter upper bound (NDC)
	MaxSpeedX      float64 `yaml:"max_speed_x"`     // Horizontal speed drawn from [-v, v]
	MaxSpeedY      float64 `yaml:"max_speed_y"`     // Vertical speed drawn from [-v, v]
	SinkRate       float64 `yaml:"sink_rate"`       // Downward speed of dying fish
	Floor          float64 `yaml:"floor"`           // Resting height of sunk fish
	HappinessDecay float64 `yaml:"happiness_decay"` // Per second, scaled by hunger
}

// VitalsConfig holds decay and boost parameters for oxygen and food.
type VitalsConfig struct {
	OxygenDecay float64 `yaml:"oxygen_decay"` // Per second
	FoodDecay   float64 `yaml:"food_decay"`   // Per second
	Boost       float64 `yaml:"boost"`        // Added per button click
	FeedCheer   float64 `yaml:"feed_cheer"`   // Happiness added to every fish on feed
	RecoverGate float64 `yaml:"recover_gate"` // Both vitals must exceed this to leave dying mode
}

// ButtonConfig describes one clickable rectangle in NDC. X, Y is the lower-left corner.
type ButtonConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Label  string  `yaml:"label"`
}

// ButtonsConfig holds the two action buttons.
type ButtonsConfig struct {
	Feed   ButtonConfig `yaml:"feed"`
	Oxygen ButtonConfig `yaml:"oxygen"`
}

// UIConfig holds HUD geometry.
type UIConfig struct {
	BarX          float64       `yaml:"bar_x"`
	BarY          float64       `yaml:"bar_y"`
	BarWidth      float64       `yaml:"bar_width"`
	BarHeight     float64       `yaml:"bar_height"`
	BarSpacing    float64       `yaml:"bar_spacing"`
	LabelX        float64       `yaml:"label_x"`         // Bar label x in pixels
	LabelFontSize int           `yaml:"label_font_size"` // Base font size; buttons scale it by 1.5
	Buttons       ButtonsConfig `yaml:"buttons"`
}

// AssetsConfig holds file locations.
type AssetsConfig struct {
	Texture string `yaml:"texture"` // Fish sprite image
	Status  string `yaml:"status"`  // Persisted vitals
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	SampleInterval float64 `yaml:"sample_interval"` // Seconds between vitals samples
	StatsWindow    float64 `yaml:"stats_window"`    // Seconds per logged stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	Aspect32  float32 // Height / Width
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Tank.FishCount < 0 {
		return fmt.Errorf("tank.fish_count must not be negative, got %d", c.Tank.FishCount)
	}
	if c.Tank.MaxSize < c.Tank.MinSize {
		return fmt.Errorf("tank.max_size %.3f is below tank.min_size %.3f", c.Tank.MaxSize, c.Tank.MinSize)
	}
	if c.Tank.MaxSpeedX <= 0 || c.Tank.MaxSpeedY <= 0 {
		return fmt.Errorf("tank speeds must be positive")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.Aspect32 = c.Derived.ScreenH32 / c.Derived.ScreenW32

	if c.Telemetry.SampleInterval <= 0 {
		c.Telemetry.SampleInterval = 1.0
	}
	if c.Telemetry.StatsWindow < c.Telemetry.SampleInterval {
		c.Telemetry.StatsWindow = c.Telemetry.SampleInterval
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

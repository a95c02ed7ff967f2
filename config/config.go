// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Park rules decide which cell stops a robot.
const (
	ParkAtCenter = "center" // geometric center of the grid
	ParkAtBase   = "base"   // the Base entity's actual position
)

// Noise algorithms.
const (
	NoisePerlin      = "perlin"
	NoiseOpenSimplex = "opensimplex"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen         ScreenConfig         `yaml:"screen"`
	Grid           GridConfig           `yaml:"grid"`
	Noise          NoiseConfig          `yaml:"noise"`
	Classification ClassificationConfig `yaml:"classification"`
	Robots         RobotsConfig         `yaml:"robots"`
	Scheduler      SchedulerConfig      `yaml:"scheduler"`
	Camera         CameraConfig         `yaml:"camera"`
	Telemetry      TelemetryConfig      `yaml:"telemetry"`
	Headless       HeadlessConfig       `yaml:"headless"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds the map dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NoiseConfig selects the coherent noise generator.
type NoiseConfig struct {
	Algorithm string  `yaml:"algorithm"` // perlin or opensimplex
	Scale     float64 `yaml:"scale"`     // sample spacing per cell
}

// ClassificationConfig holds the noise thresholds, checked top to bottom.
// A cell takes the first band whose threshold its noise value exceeds.
type ClassificationConfig struct {
	Obstacle       float64 `yaml:"obstacle"`
	Energy         float64 `yaml:"energy"`
	Mineral        float64 `yaml:"mineral"`
	ScientificSite float64 `yaml:"scientific_site"`
}

// RobotsConfig holds robot spawn parameters.
type RobotsConfig struct {
	Count     int    `yaml:"count"`
	MaxHealth int    `yaml:"max_health"`
	Speed     int    `yaml:"speed"`
	ParkRule  string `yaml:"park_rule"` // center or base
}

// SchedulerConfig holds the movement timer.
type SchedulerConfig struct {
	MovePeriod float64 `yaml:"move_period"` // seconds between movement ticks
}

// CameraConfig holds viewer camera parameters.
type CameraConfig struct {
	CellSize float64 `yaml:"cell_size"` // pixels per cell at zoom 1
	PanSpeed float64 `yaml:"pan_speed"` // cells per second
	ZoomStep float64 `yaml:"zoom_step"` // zoom change per wheel notch
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int  `yaml:"window_ticks"` // movement ticks per stats window
	LogStats    bool `yaml:"log_stats"`
}

// HeadlessConfig holds parameters for runs without a window.
type HeadlessConfig struct {
	FrameDT float64 `yaml:"frame_dt"` // simulated seconds per frame
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CenterX, CenterY int // grid center (integer division)
	Cells            int // Grid.Width * Grid.Height
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

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the invariants the simulation relies on.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	t := c.Classification
	if !(t.Obstacle >= t.Energy && t.Energy >= t.Mineral && t.Mineral >= t.ScientificSite) {
		return fmt.Errorf("%w: classification thresholds must descend (obstacle %.2f, energy %.2f, mineral %.2f, scientific_site %.2f)",
			ErrInvalidConfig, t.Obstacle, t.Energy, t.Mineral, t.ScientificSite)
	}
	if c.Noise.Scale <= 0 {
		return fmt.Errorf("%w: noise scale must be positive, got %v", ErrInvalidConfig, c.Noise.Scale)
	}
	switch c.Noise.Algorithm {
	case NoisePerlin, NoiseOpenSimplex:
	default:
		return fmt.Errorf("%w: unknown noise algorithm %q", ErrInvalidConfig, c.Noise.Algorithm)
	}
	if c.Scheduler.MovePeriod <= 0 {
		return fmt.Errorf("%w: move period must be positive, got %v", ErrInvalidConfig, c.Scheduler.MovePeriod)
	}
	if c.Robots.Count < 0 {
		return fmt.Errorf("%w: robot count must not be negative, got %d", ErrInvalidConfig, c.Robots.Count)
	}
	switch c.Robots.ParkRule {
	case ParkAtCenter, ParkAtBase:
	default:
		return fmt.Errorf("%w: unknown park rule %q", ErrInvalidConfig, c.Robots.ParkRule)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CenterX = c.Grid.Width / 2
	c.Derived.CenterY = c.Grid.Height / 2
	c.Derived.Cells = c.Grid.Width * c.Grid.Height

	if c.Telemetry.WindowTicks < 1 {
		c.Telemetry.WindowTicks = 1
	}
	if c.Headless.FrameDT <= 0 {
		c.Headless.FrameDT = 1.0 / 60.0
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

// SPDX-License-Identifier: MIT

// Package config loads numlab settings: a TOML file, defaults for every
// field the file leaves out, NUMLAB_* environment overrides, validation.
//
// Environment keys follow the section and field names, e.g.
// NUMLAB_GENERAL_OUT_DIR, NUMLAB_PLOT_DPI, NUMLAB_ROOTS_TOLERANCE.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/rootfind"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "NUMLAB"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Plot    PlotConfig    `toml:"plot"`
	Roots   RootsConfig   `toml:"roots"`
}

// GeneralConfig holds input/output locations and logging.
type GeneralConfig struct {
	DataDir  string   `toml:"data_dir" split_words:"true"`
	OutDir   string   `toml:"out_dir" split_words:"true"`
	LogLevel string   `toml:"log_level" split_words:"true"`
	LogDev   bool     `toml:"log_dev" split_words:"true"`
	Labs     []string `toml:"labs" split_words:"true"` // empty = all
}

// PlotConfig holds the raster canvas settings, in inches and dots per inch.
type PlotConfig struct {
	Width  float64 `toml:"width" split_words:"true"`
	Height float64 `toml:"height" split_words:"true"`
	DPI    int     `toml:"dpi" split_words:"true"`
}

// RootsConfig holds root-finding parameters.
type RootsConfig struct {
	Tolerance     float64 `toml:"tolerance" split_words:"true"`
	MaxIterations int     `toml:"max_iterations" split_words:"true"`
	Samples       int     `toml:"samples" split_words:"true"`
	ScanMin       float64 `toml:"scan_min" split_words:"true"`
	ScanMax       float64 `toml:"scan_max" split_words:"true"`
	ValueClip     float64 `toml:"value_clip" split_words:"true"` // |f(x)| above this is not drawn
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads path (when non-empty), fills defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyDefaults()

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.General.DataDir == "" {
		c.General.DataDir = "."
	}
	if c.General.OutDir == "" {
		c.General.OutDir = "out"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}

	if c.Plot.Width == 0 {
		c.Plot.Width = chart.DefaultWidth
	}
	if c.Plot.Height == 0 {
		c.Plot.Height = chart.DefaultHeight
	}
	if c.Plot.DPI == 0 {
		c.Plot.DPI = chart.DefaultDPI
	}

	if c.Roots.Tolerance == 0 {
		c.Roots.Tolerance = rootfind.DefaultTolerance
	}
	if c.Roots.MaxIterations == 0 {
		c.Roots.MaxIterations = rootfind.DefaultMaxIterations
	}
	if c.Roots.Samples == 0 {
		c.Roots.Samples = rootfind.DefaultSamples
	}
	if c.Roots.ScanMin == 0 && c.Roots.ScanMax == 0 {
		c.Roots.ScanMin, c.Roots.ScanMax = -3, 4
	}
	if c.Roots.ValueClip == 0 {
		c.Roots.ValueClip = 100
	}
}

// Validate reports every out-of-range field at once.
func (c *Config) Validate() error {
	var problems []string
	switch strings.ToLower(c.General.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("general.log_level %q", c.General.LogLevel))
	}
	if !(c.Plot.Width > 0) || !(c.Plot.Height > 0) {
		problems = append(problems, "plot.width and plot.height must be > 0")
	}
	if c.Plot.DPI < 1 {
		problems = append(problems, "plot.dpi must be >= 1")
	}
	if !(c.Roots.Tolerance > 0) {
		problems = append(problems, "roots.tolerance must be > 0")
	}
	if c.Roots.MaxIterations < 1 {
		problems = append(problems, "roots.max_iterations must be >= 1")
	}
	if c.Roots.Samples < 2 {
		problems = append(problems, "roots.samples must be >= 2")
	}
	if !(c.Roots.ScanMin < c.Roots.ScanMax) {
		problems = append(problems, "roots.scan_min must be < roots.scan_max")
	}
	if !(c.Roots.ValueClip > 0) {
		problems = append(problems, "roots.value_clip must be > 0")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// Options converts the root-finding section into rootfind options.
func (r RootsConfig) Options() []rootfind.Option {
	return []rootfind.Option{
		rootfind.WithTolerance(r.Tolerance),
		rootfind.WithMaxIterations(r.MaxIterations),
		rootfind.WithSamples(r.Samples),
	}
}

// Options converts the plot section into chart options.
func (p PlotConfig) Options() []chart.Option {
	return []chart.Option{chart.WithSize(p.Width, p.Height), chart.WithDPI(p.DPI)}
}

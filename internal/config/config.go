// Package config holds the settings of the bastools command and the
// YAML description of curve families.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bastools/bastools"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by all errors returned from Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the configuration of the bastools command.
type Config struct {
	ColorMap string        `yaml:"colormap"`
	Progress bool          `yaml:"progress"` // show progress bars on a terminal
	Logging  LoggingConfig `yaml:"logging"`
	Figure   FigureConfig  `yaml:"figure"`
	Grid     GridConfig    `yaml:"grid"`
	SVG      SVGConfig     `yaml:"svg"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// FigureConfig sets the size of curve family figures.
type FigureConfig struct {
	Width    float64 `yaml:"width"`  // inch
	Height   float64 `yaml:"height"` // inch
	FontSize float64 `yaml:"font_size"`
}

// GridConfig sets the size of one subplot of a grid figure.
type GridConfig struct {
	Width  float64 `yaml:"width"`  // inch
	Height float64 `yaml:"height"` // inch
	Lines  bool    `yaml:"lines"`
}

// SVGConfig holds the defaults of the svg command.
type SVGConfig struct {
	Unit    float64 `yaml:"unit"` // user units per data unit
	Samples int     `yaml:"samples"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		ColorMap: bastools.DefaultColorMap,
		Progress: true,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Figure: FigureConfig{Width: 7, Height: 5, FontSize: 12},
		Grid:   GridConfig{Width: 5, Height: 4, Lines: true},
		SVG:    SVGConfig{Unit: 100, Samples: 100},
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if name := os.Getenv("BASTOOLS_COLORMAP"); name != "" {
		c.ColorMap = name
	}
	if level := os.Getenv("BASTOOLS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	// Unparsable values are ignored.
	if v := os.Getenv("BASTOOLS_PROGRESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Progress = b
		}
	}
}

// Validate checks c for unknown names and bad sizes.
func (c *Config) Validate() error {
	if _, err := bastools.ColorMap(c.ColorMap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q (valid: json, console)", ErrInvalid, c.Logging.Format)
	}
	if !(c.Figure.Width > 0 && c.Figure.Height > 0 && c.Figure.FontSize > 0) {
		return fmt.Errorf("%w: figure %gx%g in, font size %g",
			ErrInvalid, c.Figure.Width, c.Figure.Height, c.Figure.FontSize)
	}
	if !(c.Grid.Width > 0 && c.Grid.Height > 0) {
		return fmt.Errorf("%w: grid cell %gx%g in", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if !(c.SVG.Unit > 0) || c.SVG.Samples < 1 {
		return fmt.Errorf("%w: svg unit %g with %d samples", ErrInvalid, c.SVG.Unit, c.SVG.Samples)
	}
	return nil
}

// Logger builds a zap logger from the logging section. With verbose
// the level is lowered to debug.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if c.Logging.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zc.Build()
}

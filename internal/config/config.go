// Package config loads the window, grid and styling settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at the config file.
const EnvPath = "HEXDRAG_CONFIG"

// Config holds all application settings
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Grid      GridConfig      `yaml:"grid"`
	Highlight HighlightConfig `yaml:"highlight"`
	Render    RenderConfig    `yaml:"render"`
	Log       LogConfig       `yaml:"log"`
}

// WindowConfig sizes the window and therefore the canvas
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type GridConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	HexSize int `yaml:"hex_size"` // corner-to-center, pixels
}

// HighlightConfig controls selection feedback
type HighlightConfig struct {
	Radius     int     `yaml:"radius"` // steps around the selected cell
	Selected   Color   `yaml:"selected"`
	Neighbor   Color   `yaml:"neighbor"`
	Hover      Color   `yaml:"hover"`
	HoverWidth float32 `yaml:"hover_width"`
}

type RenderConfig struct {
	Background Color   `yaml:"background"`
	GridColor  Color   `yaml:"grid_color"`
	GridWidth  float32 `yaml:"grid_width"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the settings used when no file is present.
func Default() *Config {
	cfg := &Config{Highlight: HighlightConfig{Radius: 3}}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults, fills fields left at zero and
// validates. highlight.radius keeps an explicit 0.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Resolve finds and loads the config. An explicit path must exist; without
// one, $HEXDRAG_CONFIG or <user config dir>/HexDrag/hexdrag.yaml is tried and
// a missing file falls back to Default. The returned string is the file
// actually read, or "" for defaults.
func Resolve(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	path = implicitPath()
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	return cfg, path, err
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "What a Drag"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 1000
	}
	if c.Window.Height == 0 {
		c.Window.Height = 1000
	}
	if c.Grid.Rows == 0 {
		c.Grid.Rows = 12
	}
	if c.Grid.Columns == 0 {
		c.Grid.Columns = 14
	}
	if c.Grid.HexSize == 0 {
		c.Grid.HexSize = 40
	}
	setColor(&c.Highlight.Selected, Color{220, 40, 40, 255})
	setColor(&c.Highlight.Neighbor, Color{250, 200, 60, 255})
	setColor(&c.Highlight.Hover, Color{30, 90, 220, 255})
	if c.Highlight.HoverWidth == 0 {
		c.Highlight.HoverWidth = 3
	}
	setColor(&c.Render.Background, Color{255, 255, 255, 255})
	setColor(&c.Render.GridColor, Color{0, 0, 0, 255})
	if c.Render.GridWidth == 0 {
		c.Render.GridWidth = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func setColor(c *Color, def Color) {
	if *c == (Color{}) {
		*c = def
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	positive("grid.rows", c.Grid.Rows)
	positive("grid.columns", c.Grid.Columns)
	positive("grid.hex_size", c.Grid.HexSize)
	if c.Highlight.Radius < 0 {
		errs = append(errs, fmt.Errorf("highlight.radius must not be negative, got %d", c.Highlight.Radius))
	}
	if c.Highlight.HoverWidth < 0 {
		errs = append(errs, fmt.Errorf("highlight.hover_width must not be negative, got %g", c.Highlight.HoverWidth))
	}
	if c.Render.GridWidth < 0 {
		errs = append(errs, fmt.Errorf("render.grid_width must not be negative, got %g", c.Render.GridWidth))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel converts the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

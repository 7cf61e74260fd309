// Package config holds the shell configuration.
//
// A configuration starts from [Default], is optionally overlaid by a YAML
// file ([Load]), then by the environment ([Config.FromEnv]), then by
// command line flags through the With* builders:
//
//	cfg := config.Default().
//	    WithTitle("quartz").
//	    WithSize(1280, 800)
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/quartz/internal/theme"
)

// Defaults.
const (
	DefaultTitle         = "Ladybird"
	DefaultWidth         = 900
	DefaultHeight        = 650
	DefaultStartURL      = "https://lite.duckduckgo.com"
	DefaultInputInterval = 4 * time.Millisecond
	DefaultPaintInterval = 16 * time.Millisecond
	DefaultBackground    = "#ffffff"
)

// EnvStartURL overrides the start URL from the environment.
const EnvStartURL = "QUARTZ_URL"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the shell configuration.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	StartURL string `yaml:"start_url"`

	InputInterval time.Duration `yaml:"input_interval"`
	PaintInterval time.Duration `yaml:"paint_interval"`

	// Background is the window clear colour, "#rrggbb".
	Background string `yaml:"background"`

	// ThemeFile is a YAML theme. Empty means the built-in theme that
	// matches the system colour preference.
	ThemeFile  string `yaml:"theme_file"`
	WatchTheme bool   `yaml:"watch_theme"`

	// Platform names the platform driver. Empty picks the best available.
	Platform string `yaml:"platform"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:         DefaultTitle,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		StartURL:      DefaultStartURL,
		InputInterval: DefaultInputInterval,
		PaintInterval: DefaultPaintInterval,
		Background:    DefaultBackground,
	}
}

// Load reads a YAML file over Default. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv applies environment overrides. lookup is usually os.LookupEnv.
func (c Config) FromEnv(lookup func(string) (string, bool)) Config {
	if v, ok := lookup(EnvStartURL); ok && v != "" {
		c.StartURL = v
	}
	return c
}

// WithTitle sets the initial window title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize sets the initial logical window size.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithStartURL sets the first page loaded.
func (c Config) WithStartURL(url string) Config {
	c.StartURL = url
	return c
}

// WithIntervals sets the input poll and paint periods.
func (c Config) WithIntervals(input, paint time.Duration) Config {
	c.InputInterval = input
	c.PaintInterval = paint
	return c
}

// WithBackground sets the window clear colour.
func (c Config) WithBackground(hex string) Config {
	c.Background = hex
	return c
}

// WithTheme sets the theme file and whether to watch it.
func (c Config) WithTheme(path string, watch bool) Config {
	c.ThemeFile = path
	c.WatchTheme = watch
	return c
}

// WithPlatform selects a platform driver by name.
func (c Config) WithPlatform(name string) Config {
	c.Platform = name
	return c
}

// Validate reports the first problem found.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.InputInterval <= 0:
		return fmt.Errorf("%w: input interval %v", ErrInvalid, c.InputInterval)
	case c.PaintInterval <= 0:
		return fmt.Errorf("%w: paint interval %v", ErrInvalid, c.PaintInterval)
	case c.StartURL == "":
		return fmt.Errorf("%w: empty start url", ErrInvalid)
	}
	if _, err := theme.ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	return nil
}

// BackgroundColor returns the parsed background, white if malformed.
func (c Config) BackgroundColor() color.RGBA {
	bg, err := theme.ParseColor(c.Background)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return bg
}

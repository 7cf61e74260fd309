// Package theme loads the system theme handed to the web engine.
//
// A theme is a small YAML document of named colours. The same YAML is the
// blob sent to the engine, so an engine decodes it with [Decode].
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for themes with missing or malformed colours.
var ErrInvalid = errors.New("theme: invalid theme")

// Theme is a set of named colours in "#rrggbb" or "#rrggbbaa" form.
type Theme struct {
	Name       string `yaml:"name"`
	Dark       bool   `yaml:"dark"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Chrome     string `yaml:"chrome"`
	Muted      string `yaml:"muted"`
}

// Light is the built-in light theme.
func Light() Theme {
	return Theme{
		Name:       "Default",
		Background: "#ffffff",
		Foreground: "#1b1b1f",
		Accent:     "#3366cc",
		Chrome:     "#eeeef2",
		Muted:      "#6b6b76",
	}
}

// Dark is the built-in dark theme.
func Dark() Theme {
	return Theme{
		Name:       "Default Dark",
		Dark:       true,
		Background: "#1e1e22",
		Foreground: "#e6e6ea",
		Accent:     "#7aa2f7",
		Chrome:     "#2b2b31",
		Muted:      "#9a9aa6",
	}
}

// Default returns the built-in theme for the given colour preference.
func Default(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// Load reads a theme file. Colours missing from the file are taken from
// the default theme matching the file's dark flag.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	t, err := Decode(data)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %s: %w", path, err)
	}
	return t, nil
}

// Decode parses a theme blob.
func Decode(blob []byte) (Theme, error) {
	var probe struct {
		Dark bool `yaml:"dark"`
	}
	if err := yaml.Unmarshal(blob, &probe); err != nil {
		return Theme{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	t := Default(probe.Dark)
	if err := yaml.Unmarshal(blob, &t); err != nil {
		return Theme{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Encode returns the blob sent to the engine.
func (t Theme) Encode() ([]byte, error) {
	return yaml.Marshal(t)
}

// Validate checks every colour.
func (t Theme) Validate() error {
	for _, c := range []struct{ name, value string }{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"accent", t.Accent},
		{"chrome", t.Chrome},
		{"muted", t.Muted},
	} {
		if _, err := ParseColor(c.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, c.name, err)
		}
	}
	return nil
}

// Palette is a Theme with parsed colours.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
	Accent     color.RGBA
	Chrome     color.RGBA
	Muted      color.RGBA
}

// Palette parses the theme colours. Malformed colours become opaque black.
func (t Theme) Palette() Palette {
	return Palette{
		Background: mustColor(t.Background),
		Foreground: mustColor(t.Foreground),
		Accent:     mustColor(t.Accent),
		Chrome:     mustColor(t.Chrome),
		Muted:      mustColor(t.Muted),
	}
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, errors.New("empty colour")
	}
	c, err := gg.ParseHex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}, nil
}

func mustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// Package config loads the editor's settings from a TOML file.
package config

import (
	"os"
	"time"

	"github.com/go-errors/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"pie/internal/raster"
)

// DefaultPath is read when no -config flag is given. A missing file there
// is not an error.
const DefaultPath = "~/.config/pie/config.toml"

type Config struct {
	Window Window `toml:"window"`
	Canvas Canvas `toml:"canvas"`
	Brush  Brush  `toml:"brush"`
	Keys   Keys   `toml:"keys"`
	Picker Picker `toml:"picker"`
}

type Window struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	Viewport int `toml:"viewport"` // side of the square the canvas is fitted into
}

// Canvas is the size of a new blank canvas.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Brush struct {
	Size  float64 `toml:"size"`
	Step  float64 `toml:"step"`
	Max   float64 `toml:"max"`
	Color string  `toml:"color"`
}

// Keys are fyne key names, e.g. "C", "[", "Up".
type Keys struct {
	Picker string `toml:"picker"`
	Grow   string `toml:"grow"`
	Shrink string `toml:"shrink"`
}

type Picker struct {
	Command string   `toml:"command"`
	MaxRead int      `toml:"max_read"`
	Timeout Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a string like "2s".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Viewport: 512},
		Canvas: Canvas{Width: 128, Height: 256},
		Brush:  Brush{Size: 0, Step: 0.5, Max: 64, Color: raster.Black.Hex()},
		Keys:   Keys{Picker: "C", Grow: "]", Shrink: "["},
		Picker: Picker{Command: "pie-colorpicker", MaxRead: 16},
	}
}

// Load reads path over the defaults. An empty path means DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, errors.Wrap(err, 0)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, 0)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Errorf("config %s: %w", expanded, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Errorf("config %s: %w", expanded, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width < 1 || c.Window.Height < 1:
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.Viewport < 1:
		return errors.Errorf("viewport %d must be positive", c.Window.Viewport)
	case c.Window.Viewport > c.Window.Width || c.Window.Viewport > c.Window.Height:
		return errors.Errorf("viewport %d does not fit a %dx%d window",
			c.Window.Viewport, c.Window.Width, c.Window.Height)
	case c.Canvas.Width < 1 || c.Canvas.Height < 1:
		return errors.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	case c.Brush.Step < 0:
		return errors.Errorf("brush step %v must not be negative", c.Brush.Step)
	case c.Brush.Max < 0 || c.Brush.Size < 0 || c.Brush.Size > c.Brush.Max:
		return errors.Errorf("brush size %v must be within [0, %v]", c.Brush.Size, c.Brush.Max)
	case c.Picker.Timeout < 0:
		return errors.Errorf("picker timeout must not be negative")
	}
	if _, err := c.BrushColor(); err != nil {
		return err
	}
	return nil
}

// BrushColor parses the configured initial brush color.
func (c Config) BrushColor() (raster.Color, error) {
	return raster.ParseHex(c.Brush.Color)
}

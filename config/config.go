// Package config provides YAML-based configuration for the engine and the
// demo binary.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Config contains all engine configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Canvas CanvasConfig `yaml:"canvas"`
	Loop   LoopConfig   `yaml:"loop"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig defines the native window. In a browser only the size is
// used.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// CanvasConfig names the page element hosting the canvas.
type CanvasConfig struct {
	ID string `yaml:"id"`
}

// LoopConfig controls the frame loop.
type LoopConfig struct {
	TPS      int     `yaml:"tps"`
	MaxDelta float64 `yaml:"max_delta"` // Seconds, 0 = unbounded
}

// RenderConfig controls drawing.
type RenderConfig struct {
	Background string `yaml:"background"`
	Debug      bool   `yaml:"debug"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Loop.TPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.tps must be positive, got %d", c.Loop.TPS))
	}
	if c.Loop.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("loop.max_delta must not be negative, got %v", c.Loop.MaxDelta))
	}
	if _, err := ParseColor(c.Render.Background); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}
	return errors.Join(errs...)
}

// BackgroundColor returns the parsed background color.
func (r RenderConfig) BackgroundColor() (color.Color, error) {
	return ParseColor(r.Background)
}

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

package engine

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/frameloop/config"
)

// ErrCanvasNotFound is returned when the configured page element does not
// exist.
var ErrCanvasNotFound = errors.New("canvas element not found")

// ErrNoLoader is reported by LoadSprite when the engine has no loader.
var ErrNoLoader = errors.New("no asset loader configured")

// NewFromConfig creates an engine from cfg. Options are applied after the
// configured values and override them.
func NewFromConfig(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := SetLogLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	bg, err := cfg.Render.BackgroundColor()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithBackground(bg),
		WithMaxDelta(cfg.Loop.MaxDelta),
		WithDebug(cfg.Render.Debug),
	}
	e := New(append(base, opts...)...)
	e.ScreenWidth = cfg.Window.Width
	e.ScreenHeight = cfg.Window.Height
	return e, nil
}

// Run sets up the window or page canvas from cfg and blocks running the
// frame loop.
func (e *Engine) Run(cfg config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Loop.TPS)
	ebiten.SetVsyncEnabled(true)

	if err := attachCanvas(cfg.Canvas.ID); err != nil {
		// Keep Ebitengine's own canvas placement
		LogWarn("%v", err)
	}

	LogInfo("starting frame loop (%dx%d, %d TPS)", cfg.Window.Width, cfg.Window.Height, cfg.Loop.TPS)
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("frame loop stopped: %w", err)
	}
	return nil
}

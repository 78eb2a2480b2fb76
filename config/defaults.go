package config

import (
	_ "embed"
)

//go:embed defaults/frameloop.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "frameloop",
			Resizable: true,
		},
		Canvas: CanvasConfig{
			ID: "game",
		},
		Loop: LoopConfig{
			TPS:      60,
			MaxDelta: 0,
		},
		Render: RenderConfig{
			Background: "#2b2b2b",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

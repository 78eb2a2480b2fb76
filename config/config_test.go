package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaultYAML) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("loop:\n  max_delta: 0.1\nrender:\n  debug: true\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Loop.MaxDelta != 0.1 {
		t.Errorf("MaxDelta = %v, expected 0.1", cfg.Loop.MaxDelta)
	}
	if !cfg.Render.Debug {
		t.Error("Debug should be true")
	}
	// Unset fields keep their defaults
	if cfg.Window.Width != 800 || cfg.Loop.TPS != 60 || cfg.Canvas.ID != "game" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"negative max delta", "loop: {max_delta: -1}", "max_delta"},
		{"zero tps", "loop: {tps: 0}", "tps"},
		{"zero width", "window: {width: 0}", "window size"},
		{"bad color", "render: {background: purple}", "background"},
		{"bad yaml", "window: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Title != "custom" {
		t.Errorf("Title = %q, expected custom", cfg.Window.Title)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalPath, []byte("window: {title: local}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ := Load(""); cfg.Window.Title != "local" {
		t.Errorf("Title = %q, expected local", cfg.Window.Title)
	}

	// User config wins over the local one
	userDir := filepath.Join(home, ".frameloop")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("window: {title: user}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ := Load(""); cfg.Window.Title != "user" {
		t.Errorf("Title = %q, expected user", cfg.Window.Title)
	}

	// An unusable user config falls through
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("loop: {tps: -5}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ := Load(""); cfg.Window.Title != "local" {
		t.Errorf("Title = %q, expected local", cfg.Window.Title)
	}
}

func TestBackgroundColor(t *testing.T) {
	c, err := RenderConfig{Background: "#ff0000"}.BackgroundColor()
	if err != nil {
		t.Fatalf("BackgroundColor() error = %v", err)
	}
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x, expected opaque red", r, g, b, a)
	}
}

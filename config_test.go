package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mandelbrot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingOptional(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), true)
	if err != nil {
		t.Fatalf("optional missing config: %v", err)
	}
	if cfg.Window.Width != DefaultWindowWidth || cfg.View.Iterations != DefaultIterations {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), false); err == nil {
		t.Error("required missing config should fail")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1600
  height: 900
view:
  iterations: 500
  auto_precision: true
log:
  level: debug
bindings:
  reset: Home
`)
	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Window.Width != 1600 || cfg.Window.Height != 900 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Title != DefaultWindowTitle {
		t.Errorf("title = %q, want default", cfg.Window.Title)
	}
	if cfg.View.Iterations != 500 || !cfg.View.AutoPrecision {
		t.Errorf("view = %+v", cfg.View)
	}
	if cfg.View.AutoPrecisionThreshold != 10000 {
		t.Errorf("threshold = %v, want default 10000", cfg.View.AutoPrecisionThreshold)
	}
	if lvl, _ := cfg.LogLevel(); lvl != slog.LevelDebug {
		t.Errorf("log level = %v", lvl)
	}
	if cfg.Bindings["reset"] != "Home" {
		t.Errorf("bindings = %v", cfg.Bindings)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"bad yaml", "window: [", "parse config"},
		{"zero width", "window:\n  width: 0\n", "window size"},
		{"iterations", "view:\n  iterations: 5000\n", "iterations"},
		{"threshold", "view:\n  auto_precision_threshold: -1\n", "auto_precision_threshold"},
		{"log level", "log:\n  level: loud\n", "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body), false)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"mandelbrot-explorer/viewport"
)

const (
	// --- Window ---
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 800
	DefaultWindowTitle  = "Mandelbrot Explorer"
	TicksPerSecond      = 60

	// --- View ---
	DefaultIterations = 200

	// --- Files ---
	DefaultConfigFile = "mandelbrot.yaml"
	ScreenshotPrefix  = "mandelbrot-"
	FontFile          = "fonts/Roboto-Regular.ttf"
)

var (
	ColorGrid = color.RGBA{255, 255, 255, 40}
	ColorAxis = color.RGBA{255, 100, 100, 150}
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ViewConfig struct {
	Iterations             int     `yaml:"iterations"`
	AutoPrecision          bool    `yaml:"auto_precision"`
	AutoPrecisionThreshold float64 `yaml:"auto_precision_threshold"`
}

type ShaderConfig struct {
	Dir string `yaml:"dir"`
}

type PaletteConfig struct {
	Script string `yaml:"script"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Window   WindowConfig      `yaml:"window"`
	View     ViewConfig        `yaml:"view"`
	Shaders  ShaderConfig      `yaml:"shaders"`
	Palette  PaletteConfig     `yaml:"palette"`
	Log      LogConfig         `yaml:"log"`
	Bindings map[string]string `yaml:"bindings"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		View: ViewConfig{
			Iterations:             DefaultIterations,
			AutoPrecisionThreshold: viewport.DefaultAutoPrecisionThreshold,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads filename over the defaults. When optional is set a
// missing file is not an error.
func LoadConfig(filename string, optional bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.View.Iterations < viewport.MinIterations || c.View.Iterations > viewport.MaxIterations {
		return fmt.Errorf("iterations %d outside [%d, %d]", c.View.Iterations, viewport.MinIterations, viewport.MaxIterations)
	}
	if !(c.View.AutoPrecisionThreshold > 0) {
		return fmt.Errorf("auto_precision_threshold %v must be positive", c.View.AutoPrecisionThreshold)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return l, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

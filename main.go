package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"mandelbrot-explorer/input"
	"mandelbrot-explorer/palette"
	"mandelbrot-explorer/render"
)

func main() {
	if err := run(); err != nil {
		slog.Error("mandelbrot explorer", "err", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "YAML config file (default "+DefaultConfigFile+" if present)")
	shaderDir := flag.String("shaders", "", "directory with mandelbrot32.kage and mandelbrot64.kage (default: built in)")
	paletteFile := flag.String("palette", "", "Starlark palette script")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	flag.Parse()

	path, optional := *configFile, false
	if path == "" {
		path, optional = DefaultConfigFile, true
	}
	cfg, err := LoadConfig(path, optional)
	if err != nil {
		return err
	}
	if *shaderDir != "" {
		cfg.Shaders.Dir = *shaderDir
	}
	if *paletteFile != "" {
		cfg.Palette.Script = *paletteFile
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger.With("component", "render"))

	bindings := input.DefaultBindings()
	if err := bindings.Override(cfg.Bindings); err != nil {
		return err
	}

	pal := palette.Default
	if cfg.Palette.Script != "" {
		if pal, err = palette.Load(cfg.Palette.Script); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
		logger.Info("palette loaded", "script", cfg.Palette.Script)
	}

	src := render.EmbeddedSources()
	if cfg.Shaders.Dir != "" {
		if src, err = render.LoadSources(os.DirFS(cfg.Shaders.Dir)); err != nil {
			return err
		}
		logger.Info("shaders loaded", "dir", cfg.Shaders.Dir)
	}
	renderer, err := render.New(src, pal)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TicksPerSecond)

	return ebiten.RunGame(NewGame(cfg, renderer, bindings, logger))
}

package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mandelbrot-explorer/canvas"
	"mandelbrot-explorer/input"
	"mandelbrot-explorer/ui"
	"mandelbrot-explorer/viewport"
)

// Drawer is the rendering side of the game: it draws a snapshot and
// carries out precision switches. *render.Renderer implements it.
type Drawer interface {
	Draw(screen *ebiten.Image, snap viewport.Snapshot)
	Apply(cmd viewport.SwitchPrecision)
}

type Game struct {
	cfg    Config
	ctrl   *viewport.Controller
	drawer Drawer
	log    *slog.Logger

	// Sub-systems
	input *input.InputSystem
	ui    *ui.UISystem

	face    font.Face
	printer *message.Printer

	showAxes            bool
	screenshotRequested bool
	title               string
}

func NewGame(cfg Config, drawer Drawer, bindings input.Bindings, logger *slog.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		ctrl:    viewport.NewController(cfg.Window.Width, cfg.Window.Height, cfg.View.Iterations),
		drawer:  drawer,
		log:     logger,
		face:    LoadUIFont(),
		printer: message.NewPrinter(language.English),
	}
	g.ctrl.SetAutoPrecision(cfg.View.AutoPrecision)

	g.input = input.NewInputSystem(g, bindings)
	g.ui = ui.NewUISystem(
		func() font.Face { return g.face },
		func() (int, int) { geo := g.ctrl.Geometry(); return geo.Width, geo.Height },
		ui.Callbacks{
			ZoomIn:          func() { g.Scroll(g.centre(), 1) },
			ZoomOut:         func() { g.Scroll(g.centre(), -1) },
			TogglePrecision: func() { g.Trigger(input.TogglePrecision, g.centre()) },
		},
		DrawTextLines,
	)
	return g
}

func (g *Game) Update() error {
	// Delegate to sub-systems
	g.input.Update()
	g.ui.Update()
	g.checkPrecision()
	g.ui.HUD = g.hudLines()
	g.updateTitle()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawer.Draw(screen, g.ctrl.Snapshot())
	if g.showAxes {
		canvas.DrawAxes(g.ctrl, screen, ColorGrid, ColorAxis)
	}

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}

	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	geo := g.ctrl.Geometry()
	if outsideWidth != geo.Width || outsideHeight != geo.Height {
		g.ctrl.OnResize(outsideWidth, outsideHeight)
		g.log.Debug("resized", "width", outsideWidth, "height", outsideHeight, "aspect", g.ctrl.Geometry().AspectRatio)
	}
	return outsideWidth, outsideHeight
}

// --- input.Host ---

func (g *Game) Scroll(cursor viewport.Vec2, delta float64) {
	g.ctrl.OnScroll(cursor, delta)
}

func (g *Game) BeginDrag(pos viewport.Vec2) { g.ctrl.OnDragStart(pos) }
func (g *Game) Drag(pos viewport.Vec2)      { g.ctrl.OnDragMove(pos) }
func (g *Game) EndDrag()                    { g.ctrl.OnDragEnd() }

func (g *Game) IsMouseOver(mx, my int) bool { return g.ui.IsMouseOver(mx, my) }

func (g *Game) Trigger(a input.Action, cursor viewport.Vec2) {
	switch a {
	case input.Reset:
		g.ctrl.OnReset()
	case input.Info:
		g.log.Info(g.Diagnostics(cursor))
	case input.IterationsUp, input.IterationsDown:
		n := g.ctrl.OnIterationBudgetChange(a == input.IterationsUp)
		g.ui.Debug.SetStatus(g.printer.Sprintf("iterations: %d", n))
	case input.ToggleAutoPrecision:
		on := g.ctrl.ToggleAutoPrecision()
		g.log.Info("auto precision", "enabled", on)
		g.ui.Debug.SetStatus(fmt.Sprintf("auto precision: %t", on))
	case input.TogglePrecision:
		g.applyPrecision(g.ctrl.OnPrecisionToggle(), "manual")
	case input.Screenshot:
		g.screenshotRequested = true
	case input.ToggleAxes:
		g.showAxes = !g.showAxes
	}
}

// checkPrecision runs the automatic precision switch once per tick.
func (g *Game) checkPrecision() {
	if cmd, ok := g.ctrl.AutoPrecisionCheck(g.cfg.View.AutoPrecisionThreshold); ok {
		g.applyPrecision(cmd, "auto")
	}
}

func (g *Game) applyPrecision(cmd viewport.SwitchPrecision, reason string) {
	g.drawer.Apply(cmd)
	g.log.Info("precision", "mode", cmd.To.String(), "reason", reason, "zoom", g.ctrl.State().Zoom)
	g.ui.Debug.SetStatus(fmt.Sprintf("precision: %s (%s)", cmd.To, reason))
}

// Diagnostics describes the view and the plane point under cursor.
func (g *Game) Diagnostics(cursor viewport.Vec2) string {
	s := g.ctrl.State()
	n := g.ctrl.NDC(cursor)
	p := g.ctrl.PlaneCoordinates(cursor)
	tl := g.ctrl.VisibleRect().TopLeft()
	return g.printer.Sprintf(
		"mouse (%.0f, %.0f)  ndc (%.4f, %.4f)  plane (%.15g, %.15g)  top left (%.15g, %.15g)  pan (%.15g, %.15g)  zoom %.6g  iterations %d  precision %s",
		cursor.X, cursor.Y, n.X, n.Y, p.X, p.Y, tl.X, tl.Y, s.Pan.X, s.Pan.Y, s.Zoom, g.ctrl.Iterations(), s.Precision,
	)
}

func (g *Game) hudLines() []string {
	s := g.ctrl.State()
	mx, my := ebiten.CursorPosition()
	p := g.ctrl.PlaneCoordinates(viewport.Vec2{X: float64(mx), Y: float64(my)})
	auto := "off"
	if g.ctrl.AutoPrecision() {
		auto = "on"
	}
	return []string{
		g.printer.Sprintf("Zoom: %.4g  Iterations: %d", s.Zoom, g.ctrl.Iterations()),
		g.printer.Sprintf("Precision: %s  Auto: %s", s.Precision, auto),
		g.printer.Sprintf("Mouse: %.10g, %.10g", p.X, p.Y),
	}
}

func (g *Game) updateTitle() {
	title := fmt.Sprintf("%s - FPS: %.0f", g.cfg.Window.Title, ebiten.ActualFPS())
	if title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
}

func (g *Game) centre() viewport.Vec2 {
	geo := g.ctrl.Geometry()
	return viewport.Vec2{X: float64(geo.Width) / 2, Y: float64(geo.Height) / 2}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	name := ScreenshotPrefix + time.Now().Format("20060102-150405") + ".png"
	f, err := os.Create(name)
	if err != nil {
		g.log.Error("screenshot", "err", err)
		g.ui.Debug.SetError("screenshot failed: " + err.Error())
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		g.log.Error("screenshot", "file", name, "err", err)
		g.ui.Debug.SetError("screenshot failed: " + err.Error())
		return
	}
	g.log.Info("screenshot saved", "file", name)
	g.ui.Debug.SetStatus("saved " + name)
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	ColorButton = color.RGBA{60, 60, 70, 200}
	ColorPanel  = color.RGBA{20, 20, 25, 200}
	ColorStatus = color.RGBA{220, 220, 220, 255}
	ColorError  = color.RGBA{255, 200, 50, 255}
)

const (
	buttonSize   = 30
	buttonMargin = 10
)

// Callbacks connects the on-screen controls to the application.
type Callbacks struct {
	ZoomIn          func()
	ZoomOut         func()
	TogglePrecision func()
}

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      TextDrawer
	Debug         *DebugPanel

	// HUD lines shown in the top-left corner.
	HUD []string
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), cb Callbacks, drawText TextDrawer) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
	ui.buttons = []*Button{
		{Label: "+", W: buttonSize, H: buttonSize, OnClick: cb.ZoomIn},
		{Label: "-", W: buttonSize, H: buttonSize, OnClick: cb.ZoomOut},
		{Label: "P", W: buttonSize, H: buttonSize, OnClick: cb.TogglePrecision},
	}
	ui.updateButtonPositions()
	return ui
}

// updateButtonPositions lays the buttons out right to left from the
// top-right corner; the window may have been resized since the last call.
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w)
	for _, b := range ui.buttons {
		x -= b.W + buttonMargin
		b.X = x
		b.Y = buttonMargin
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click activates the button under (mx, my), if any.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	ui.Debug.Tick()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	if len(ui.HUD) > 0 {
		vector.DrawFilledRect(screen, 0, 0, 360, float32(18*len(ui.HUD)+12), ColorPanel, false)
		if face := ui.getFontFace(); face != nil && ui.drawText != nil {
			for i, line := range ui.HUD {
				ui.drawText(screen, face, line, 8, 6+18*i, ColorStatus)
			}
		}
	}
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
}

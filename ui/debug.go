package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatusTicks is how long a status message stays on screen (at 60 TPS).
const StatusTicks = 180

// DebugPanel shows the latest status or error message in the bottom-right
// corner until it expires.
type DebugPanel struct {
	Message string
	IsError bool
	ttl     int
}

func (d *DebugPanel) SetStatus(msg string) {
	d.Message, d.IsError, d.ttl = msg, false, StatusTicks
}

func (d *DebugPanel) SetError(msg string) {
	d.Message, d.IsError, d.ttl = msg, true, StatusTicks
}

func (d *DebugPanel) Clear() {
	d.Message, d.IsError, d.ttl = "", false, 0
}

// Tick ages the current message and clears it once it expires.
func (d *DebugPanel) Tick() {
	if d.ttl == 0 {
		return
	}
	d.ttl--
	if d.ttl == 0 {
		d.Clear()
	}
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText TextDrawer) {
	if d == nil || d.Message == "" {
		return
	}
	w, h := getScreenSize()
	pw, ph := 320, 32
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), ColorPanel, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	clr := color.Color(ColorStatus)
	if d.IsError {
		clr = ColorError
	}
	drawText(screen, face, d.Message, x+8, y+8, clr)
}

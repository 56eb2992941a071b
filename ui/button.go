package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextDrawer draws s with its top-left corner at (x, y).
type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button background and, when a face is available, its label.
func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText TextDrawer) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, ColorButton, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, b.Label, int(b.X)+8, int(b.Y)+8, color.White)
}

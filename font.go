package main

import (
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads FontFile, falling back to basicfont.Face7x13.
func LoadUIFont() font.Face {
	data, err := os.ReadFile(FontFile)
	if err != nil {
		slog.Debug("UI font not found, using basic font", "file", FontFile, "err", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		slog.Warn("UI font parse error, using basic font", "file", FontFile, "err", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		slog.Warn("UI font face error, using basic font", "file", FontFile, "err", err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with its top-left corner at (x, y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// text.Draw takes the baseline, so shift the first line by the ascent.
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+i*lineHeight, clr)
	}
}

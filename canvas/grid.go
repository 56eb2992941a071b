package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mandelbrot-explorer/viewport"
)

// Mapper converts plane points to screen pixels and reports the visible
// region. *viewport.Controller satisfies it.
type Mapper interface {
	ScreenCoordinates(plane viewport.Vec2) viewport.Vec2
	VisibleRect() viewport.Rect
}

// gridLines is roughly how many grid lines span the visible width.
const gridLines = 8

// GridStep returns a 1, 2 or 5 times power-of-ten step giving about
// gridLines lines across span.
func GridStep(span float64) float64 {
	if !(span > 0) || math.IsInf(span, 0) {
		return 1
	}
	raw := span / gridLines
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f < 1.5:
		return base
	case f < 3.5:
		return 2 * base
	case f < 7.5:
		return 5 * base
	}
	return 10 * base
}

// Ticks lists the multiples of step within [lo, hi].
func Ticks(lo, hi, step float64) []float64 {
	if !(step > 0) || hi < lo {
		return nil
	}
	first := math.Ceil(lo/step) * step
	n := int(math.Floor((hi-first)/step)) + 1
	if n <= 0 || n > 4*gridLines {
		return nil
	}
	ticks := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, first+float64(i)*step)
	}
	return ticks
}

// DrawAxes strokes a coordinate grid over the plane and the real and
// imaginary axes on top of it.
func DrawAxes(m Mapper, screen *ebiten.Image, gridColor, axisColor color.Color) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	r := m.VisibleRect()
	step := GridStep(r.Width())

	for _, x := range Ticks(r.Min.X, r.Max.X, step) {
		sx := float32(m.ScreenCoordinates(viewport.Vec2{X: x}).X)
		vector.StrokeLine(screen, sx, 0, sx, h, 1, gridColor, false)
	}
	for _, y := range Ticks(r.Min.Y, r.Max.Y, step) {
		sy := float32(m.ScreenCoordinates(viewport.Vec2{Y: y}).Y)
		vector.StrokeLine(screen, 0, sy, w, sy, 1, gridColor, false)
	}

	origin := m.ScreenCoordinates(viewport.Vec2{})
	ox, oy := float32(origin.X), float32(origin.Y)
	if ox >= 0 && ox <= w {
		vector.StrokeLine(screen, ox, 0, ox, h, 2, axisColor, false)
	}
	if oy >= 0 && oy <= h {
		vector.StrokeLine(screen, 0, oy, w, oy, 2, axisColor, false)
	}
}

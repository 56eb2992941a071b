// Package render draws the Mandelbrot set with Kage shaders.
//
// Two program variants exist: one computes in float32, the other in
// double-single arithmetic (pairs of float32) for deep zooms. Both are
// compiled up front so switching between them never stalls a frame.
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"mandelbrot-explorer/palette"
	"mandelbrot-explorer/viewport"
)

// Renderer owns the compiled shader programs.
type Renderer struct {
	programs [2]*ebiten.Shader
	palette  palette.Palette
	active   viewport.Precision
}

// New compiles both shader variants.
func New(src Sources, pal palette.Palette) (*Renderer, error) {
	r := &Renderer{palette: pal}
	for _, p := range []viewport.Precision{viewport.Single, viewport.Double} {
		s, err := ebiten.NewShader(src.For(p))
		if err != nil {
			return nil, fmt.Errorf("compile %s precision shader: %w", p, err)
		}
		r.programs[p] = s
		Logger().Debug("shader compiled", "precision", p.String(), "bytes", len(src.For(p)))
	}
	return r, nil
}

// Apply makes the program named by cmd the active one.
func (r *Renderer) Apply(cmd viewport.SwitchPrecision) {
	if cmd.From == cmd.To {
		return
	}
	r.active = cmd.To
	Logger().Info("shader program switched", "from", cmd.From.String(), "to", cmd.To.String())
}

// Active is the precision of the program used by the last Apply.
func (r *Renderer) Active() viewport.Precision { return r.active }

// Draw fills screen with the fractal described by snap.
func (r *Renderer) Draw(screen *ebiten.Image, snap viewport.Snapshot) {
	if snap.Precision != r.active {
		Logger().Warn("snapshot precision differs from active program", "snapshot", snap.Precision.String(), "active", r.active.String())
		r.active = snap.Precision
	}
	b := screen.Bounds()
	op := &ebiten.DrawRectShaderOptions{Uniforms: Uniforms(snap, r.palette)}
	screen.DrawRectShader(b.Dx(), b.Dy(), r.programs[snap.Precision], op)
}

// Uniforms builds the shader parameters for one frame.
func Uniforms(snap viewport.Snapshot, pal palette.Palette) map[string]any {
	u := map[string]any{
		"Resolution":    []float32{float32(snap.Width), float32(snap.Height)},
		"MaxIterations": float32(snap.Iterations),
		"PaletteA":      pal.A[:],
		"PaletteB":      pal.B[:],
		"PaletteC":      pal.C[:],
		"PaletteD":      pal.D[:],
	}

	if snap.Precision == viewport.Single {
		u["Zoom"] = float32(snap.Zoom)
		u["Pan"] = []float32{float32(snap.Pan.X), float32(snap.Pan.Y)}
		u["AspectRatio"] = float32(snap.AspectRatio)
		return u
	}

	sxHi, sxLo := Split(1 / snap.Zoom)
	syHi, syLo := Split(1 / (snap.Zoom * snap.AspectRatio))
	pxHi, pxLo := Split(snap.Pan.X)
	pyHi, pyLo := Split(snap.Pan.Y)
	u["ScaleHi"] = []float32{sxHi, syHi}
	u["ScaleLo"] = []float32{sxLo, syLo}
	u["PanHi"] = []float32{pxHi, pyHi}
	u["PanLo"] = []float32{pxLo, pyLo}
	return u
}

// Split represents v as the sum of two float32 values, hi carrying the
// leading 24 bits of the mantissa and lo the next 24.
func Split(v float64) (hi, lo float32) {
	hi = float32(v)
	lo = float32(v - float64(hi))
	return hi, lo
}

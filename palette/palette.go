// Package palette evaluates Starlark colour scripts into the cosine palette
// used by the fractal shaders:
//
//	colour(t) = a + b * cos(2π * (c*t + d))
//
// A script binds the globals a, b, c and d, each a list or tuple of three
// numbers (red, green, blue). The math module is predeclared.
package palette

import (
	"fmt"
	"os"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
)

// Palette holds the four RGB coefficient vectors of a cosine palette.
type Palette struct {
	A, B, C, D [3]float32
}

// Default is a smooth blue/orange palette.
var Default = Palette{
	A: [3]float32{0.5, 0.5, 0.5},
	B: [3]float32{0.5, 0.5, 0.5},
	C: [3]float32{1.0, 1.0, 1.0},
	D: [3]float32{0.0, 0.10, 0.20},
}

// Load reads and executes a palette script.
func Load(filename string) (Palette, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return Palette{}, err
	}
	return Exec(filename, string(src))
}

// Exec executes script and reads the palette coefficients from its globals.
func Exec(name, script string) (Palette, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}
	predeclared := starlark.StringDict{"math": starlarkmath.Module}

	globals, err := starlark.ExecFile(thread, name, script, predeclared)
	if err != nil {
		return Palette{}, err
	}

	var p Palette
	for _, coef := range []struct {
		name string
		dst  *[3]float32
	}{
		{"a", &p.A},
		{"b", &p.B},
		{"c", &p.C},
		{"d", &p.D},
	} {
		v, ok := globals[coef.name]
		if !ok {
			return Palette{}, fmt.Errorf("%s: global %q not defined", name, coef.name)
		}
		rgb, err := toRGB(v)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: global %q: %w", name, coef.name, err)
		}
		*coef.dst = rgb
	}
	return p, nil
}

func toRGB(v starlark.Value) ([3]float32, error) {
	seq, ok := v.(starlark.Indexable)
	if !ok {
		return [3]float32{}, fmt.Errorf("want list or tuple, got %s", v.Type())
	}
	if seq.Len() != 3 {
		return [3]float32{}, fmt.Errorf("want 3 components, got %d", seq.Len())
	}
	var rgb [3]float32
	for i := 0; i < 3; i++ {
		f, ok := starlark.AsFloat(seq.Index(i))
		if !ok {
			return [3]float32{}, fmt.Errorf("component %d: want number, got %s", i, seq.Index(i).Type())
		}
		rgb[i] = float32(f)
	}
	return rgb, nil
}

package render

import (
	"embed"
	"fmt"
	"io/fs"

	"mandelbrot-explorer/viewport"
)

const (
	singleFile = "mandelbrot32.kage"
	doubleFile = "mandelbrot64.kage"
)

//go:embed shaders/*.kage
var embedded embed.FS

// Sources holds the Kage source of both program variants.
type Sources struct {
	Single []byte
	Double []byte
}

// For returns the source of the variant rendering at precision p.
func (s Sources) For(p viewport.Precision) []byte {
	if p == viewport.Double {
		return s.Double
	}
	return s.Single
}

// EmbeddedSources returns the shaders compiled into the binary.
func EmbeddedSources() Sources {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err)
	}
	src, err := LoadSources(sub)
	if err != nil {
		panic(err)
	}
	return src
}

// LoadSources reads both shader variants from the root of fsys.
func LoadSources(fsys fs.FS) (Sources, error) {
	var src Sources
	for _, f := range []struct {
		name string
		dst  *[]byte
	}{
		{singleFile, &src.Single},
		{doubleFile, &src.Double},
	} {
		b, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return Sources{}, fmt.Errorf("load shader: %w", err)
		}
		if len(b) == 0 {
			return Sources{}, fmt.Errorf("load shader %s: empty source", f.name)
		}
		*f.dst = b
	}
	return src, nil
}

package viewport

// Vec2 is a point or offset, either in screen pixels or in the complex plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned region of the complex plane.
type Rect struct {
	Min, Max Vec2
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// TopLeft is the plane point shown at screen pixel (0, 0).
func (r Rect) TopLeft() Vec2 { return Vec2{r.Min.X, r.Max.Y} }

// ndc maps a screen pixel into [-1,1]x[-1,1] with Y pointing up.
func ndc(p Vec2, g Geometry) Vec2 {
	return Vec2{
		X: 2*p.X/float64(g.Width) - 1,
		Y: 1 - 2*p.Y/float64(g.Height),
	}
}

// screenFromNDC is the inverse of ndc.
func screenFromNDC(n Vec2, g Geometry) Vec2 {
	return Vec2{
		X: (n.X + 1) * float64(g.Width) / 2,
		Y: (1 - n.Y) * float64(g.Height) / 2,
	}
}

// planeFromNDC is the single screen-to-plane formula shared by zooming,
// dragging, diagnostics and the shaders.
func planeFromNDC(n Vec2, s ViewState, aspect float64) Vec2 {
	return Vec2{
		X: s.Pan.X + n.X/s.Zoom,
		Y: s.Pan.Y + n.Y/(s.Zoom*aspect),
	}
}

func ndcFromPlane(p Vec2, s ViewState, aspect float64) Vec2 {
	return Vec2{
		X: (p.X - s.Pan.X) * s.Zoom,
		Y: (p.Y - s.Pan.Y) * s.Zoom * aspect,
	}
}

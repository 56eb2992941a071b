package viewport

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController(1200, 800, 200)

	s := c.State()
	if s.Zoom != DefaultZoom || s.Pan != (Vec2{}) || s.Precision != Single {
		t.Fatalf("unexpected initial state %+v", s)
	}
	if got := c.Geometry().AspectRatio; got != 1.5 {
		t.Errorf("aspect ratio = %v, want 1.5", got)
	}
	if c.Iterations() != 200 {
		t.Errorf("iterations = %d, want 200", c.Iterations())
	}
}

func TestScrollAtCentre(t *testing.T) {
	c := NewController(1200, 800, 200)

	s := c.OnScroll(Vec2{600, 400}, 1)

	if !approx(s.Zoom, 0.6, 1e-12) {
		t.Errorf("zoom = %v, want 0.6", s.Zoom)
	}
	if s.Pan != (Vec2{}) {
		t.Errorf("pan = %+v, want origin", s.Pan)
	}
}

func TestScrollKeepsPointUnderCursor(t *testing.T) {
	cursors := []Vec2{{0, 0}, {123, 456}, {1199, 799}, {900, 50}}
	deltas := []float64{1, -1, 3.5, -7, 0.25}

	for _, cur := range cursors {
		c := NewController(1200, 800, 200)
		c.OnDragStart(Vec2{10, 10})
		c.OnDragMove(Vec2{250, 310})
		c.OnDragEnd()
		for _, d := range deltas {
			before := c.PlaneCoordinates(cur)
			c.OnScroll(cur, d)
			after := c.PlaneCoordinates(cur)
			if !approx(before.X, after.X, 1e-9) || !approx(before.Y, after.Y, 1e-9) {
				t.Errorf("cursor %+v delta %v: plane point moved from %+v to %+v", cur, d, before, after)
			}
		}
	}
}

func TestScrollZoomStaysPositive(t *testing.T) {
	c := NewController(800, 600, 200)
	deltas := []float64{-50, -1e6, math.Inf(-1), 3, math.NaN(), 1e6, math.Inf(1), -2}

	for _, d := range deltas {
		s := c.OnScroll(Vec2{100, 500}, d)
		if !(s.Zoom > 0) || math.IsInf(s.Zoom, 0) {
			t.Fatalf("delta %v: zoom = %v", d, s.Zoom)
		}
		if !finite(s.Pan) {
			t.Fatalf("delta %v: pan = %+v", d, s.Pan)
		}
	}
}

func TestScrollClampKeepsCursorInvariant(t *testing.T) {
	c := NewController(800, 600, 200)
	cur := Vec2{700, 100}

	before := c.PlaneCoordinates(cur)
	s := c.OnScroll(cur, -100)
	after := c.PlaneCoordinates(cur)

	if s.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want clamp to %v", s.Zoom, MinZoom)
	}
	if !approx(before.X, after.X, 1e-9) || !approx(before.Y, after.Y, 1e-9) {
		t.Errorf("plane point moved from %+v to %+v", before, after)
	}
}

func TestDragPansOneToOne(t *testing.T) {
	c := NewController(1000, 500, 200)
	c.OnScroll(Vec2{500, 250}, 4)

	start := Vec2{300, 200}
	grabbed := c.PlaneCoordinates(start)

	c.OnDragStart(start)
	c.OnDragMove(Vec2{350, 260})
	c.OnDragMove(Vec2{420, 180})
	end := Vec2{480, 300}
	c.OnDragMove(end)

	got := c.PlaneCoordinates(end)
	if !approx(got.X, grabbed.X, 1e-9) || !approx(got.Y, grabbed.Y, 1e-9) {
		t.Errorf("grabbed point %+v ended at %+v", grabbed, got)
	}
}

func TestDragMatchesPixelFormula(t *testing.T) {
	c := NewController(1200, 800, 200)
	c.OnDragStart(Vec2{100, 100})
	s := c.OnDragMove(Vec2{160, 70})

	z, g := 0.5, c.Geometry()
	wantX := -2 * 60 / (float64(g.Width) * z)
	wantY := 2 * -30 / (float64(g.Height) * g.AspectRatio * z)
	if !approx(s.Pan.X, wantX, 1e-12) || !approx(s.Pan.Y, wantY, 1e-12) {
		t.Errorf("pan = %+v, want (%v, %v)", s.Pan, wantX, wantY)
	}
}

func TestDragMoveWithoutStartIsNoop(t *testing.T) {
	c := NewController(800, 600, 200)
	s := c.OnDragMove(Vec2{400, 300})
	if s.Pan != (Vec2{}) {
		t.Errorf("pan = %+v, want origin", s.Pan)
	}

	c.OnDragStart(Vec2{0, 0})
	c.OnDragEnd()
	if c.Dragging() {
		t.Fatal("still dragging after OnDragEnd")
	}
	s = c.OnDragMove(Vec2{400, 300})
	if s.Pan != (Vec2{}) {
		t.Errorf("pan after release = %+v, want origin", s.Pan)
	}
}

func TestResize(t *testing.T) {
	c := NewController(1200, 800, 200)
	c.OnScroll(Vec2{10, 10}, 2)
	want := c.State()

	c.OnResize(1600, 900)

	if got := c.Geometry().AspectRatio; !approx(got, 1600.0/900.0, 1e-12) {
		t.Errorf("aspect ratio = %v, want %v", got, 1600.0/900.0)
	}
	if c.State() != want {
		t.Errorf("state changed on resize: %+v -> %+v", want, c.State())
	}
}

func TestResizeIgnoresDegenerateSizes(t *testing.T) {
	c := NewController(1200, 800, 200)
	for _, sz := range [][2]int{{0, 0}, {0, 800}, {1200, 0}, {-5, 10}} {
		c.OnResize(sz[0], sz[1])
		if g := c.Geometry(); g.Width != 1200 || g.Height != 800 || g.AspectRatio != 1.5 {
			t.Errorf("resize %v changed geometry to %+v", sz, g)
		}
	}

	z := NewController(0, 0, 200)
	if g := z.Geometry(); g.AspectRatio != 1 {
		t.Errorf("zero-size controller aspect = %v, want 1", g.AspectRatio)
	}
}

func TestReset(t *testing.T) {
	c := NewController(1200, 800, 200)
	c.OnScroll(Vec2{5, 700}, 9)
	c.OnDragStart(Vec2{1, 1})
	c.OnDragMove(Vec2{500, 20})
	c.OnPrecisionToggle()

	s := c.OnReset()

	if s.Zoom != 0.5 || s.Pan != (Vec2{}) {
		t.Errorf("reset state = %+v", s)
	}
	if s.Precision != Double {
		t.Errorf("reset changed precision to %v", s.Precision)
	}
}

func TestVisibleRect(t *testing.T) {
	c := NewController(1200, 800, 200)
	r := c.VisibleRect()

	if !approx(r.Min.X, -2, 1e-12) || !approx(r.Max.X, 2, 1e-12) {
		t.Errorf("x range = [%v, %v], want [-2, 2]", r.Min.X, r.Max.X)
	}
	if !approx(r.Height(), 4/1.5, 1e-12) {
		t.Errorf("height = %v, want %v", r.Height(), 4/1.5)
	}
	tl := c.PlaneCoordinates(Vec2{0, 0})
	if !approx(tl.X, r.TopLeft().X, 1e-12) || !approx(tl.Y, r.TopLeft().Y, 1e-12) {
		t.Errorf("top left = %+v, pixel (0,0) maps to %+v", r.TopLeft(), tl)
	}
}

func TestScreenCoordinatesInvertsPlaneCoordinates(t *testing.T) {
	c := NewController(1024, 768, 200)
	c.OnScroll(Vec2{200, 600}, 6)

	for _, p := range []Vec2{{0, 0}, {512, 384}, {1023, 1}, {77.5, 700.25}} {
		back := c.ScreenCoordinates(c.PlaneCoordinates(p))
		if !approx(back.X, p.X, 1e-9) || !approx(back.Y, p.Y, 1e-9) {
			t.Errorf("%+v round-tripped to %+v", p, back)
		}
	}
}

func TestSnapshot(t *testing.T) {
	c := NewController(1600, 900, 300)
	c.OnPrecisionToggle()
	snap := c.Snapshot()

	want := Snapshot{
		Zoom:        DefaultZoom,
		AspectRatio: 1600.0 / 900.0,
		Width:       1600,
		Height:      900,
		Iterations:  300,
		Precision:   Double,
	}
	if snap != want {
		t.Errorf("snapshot = %+v, want %+v", snap, want)
	}
}

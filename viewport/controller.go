// Package viewport holds the pan/zoom/precision state of the explorer and
// the mapping between screen pixels and the complex plane.
//
// A Controller is owned by a single goroutine. Renderers receive Snapshot
// values, never the controller itself.
package viewport

import "math"

const (
	DefaultZoom = 0.5

	// Zoom is clamped to this range; beyond MaxZoom even the extended
	// precision shader only shows noise.
	MinZoom = 1e-3
	MaxZoom = 1e15

	// ZoomBase is the zoom factor applied per unit of scroll.
	ZoomBase = 1.2
)

// ViewState is the part of the view that the user drives directly.
type ViewState struct {
	Zoom      float64 // inverse of the visible half-width
	Pan       Vec2    // plane point at the centre of the viewport
	Precision Precision
}

// Geometry is the size of the drawable area in pixels.
type Geometry struct {
	Width, Height int
	AspectRatio   float64
}

type pointerState struct {
	dragging bool
	last     Vec2
}

// Snapshot is the read-only per-frame view of the controller.
type Snapshot struct {
	Zoom        float64
	Pan         Vec2
	AspectRatio float64
	Width       int
	Height      int
	Iterations  int
	Precision   Precision
}

// Controller converts input events into view state updates.
type Controller struct {
	state      ViewState
	geom       Geometry
	iterations int
	pointer    pointerState
	auto       autoPrecision
}

// NewController returns a controller showing the default view in a
// width x height viewport with the given iteration budget.
func NewController(width, height, iterations int) *Controller {
	c := &Controller{
		state:      ViewState{Zoom: DefaultZoom},
		geom:       Geometry{Width: 1, Height: 1, AspectRatio: 1},
		iterations: clampIterations(iterations),
	}
	c.OnResize(width, height)
	return c
}

func (c *Controller) State() ViewState   { return c.state }
func (c *Controller) Geometry() Geometry { return c.geom }
func (c *Controller) Iterations() int    { return c.iterations }
func (c *Controller) Dragging() bool     { return c.pointer.dragging }

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Zoom:        c.state.Zoom,
		Pan:         c.state.Pan,
		AspectRatio: c.geom.AspectRatio,
		Width:       c.geom.Width,
		Height:      c.geom.Height,
		Iterations:  c.iterations,
		Precision:   c.state.Precision,
	}
}

// OnScroll zooms by ZoomBase^delta while keeping the plane point under
// cursor fixed on screen.
func (c *Controller) OnScroll(cursor Vec2, delta float64) ViewState {
	if math.IsNaN(delta) {
		return c.state
	}
	before := 1 / c.state.Zoom
	c.state.Zoom = clampZoom(c.state.Zoom * math.Pow(ZoomBase, delta))
	after := 1 / c.state.Zoom

	n := c.NDC(cursor)
	shrink := before - after
	c.state.Pan.X += n.X * shrink
	c.state.Pan.Y += n.Y * shrink / c.geom.AspectRatio
	return c.state
}

func (c *Controller) OnDragStart(pos Vec2) {
	c.pointer = pointerState{dragging: true, last: pos}
}

// OnDragMove pans so the plane point grabbed at drag start follows the
// pointer. It does nothing unless a drag is in progress.
func (c *Controller) OnDragMove(pos Vec2) ViewState {
	if !c.pointer.dragging {
		return c.state
	}
	moved := c.PlaneCoordinates(pos).Sub(c.PlaneCoordinates(c.pointer.last))
	pan := c.state.Pan.Sub(moved)
	if finite(pan) {
		c.state.Pan = pan
	}
	c.pointer.last = pos
	return c.state
}

func (c *Controller) OnDragEnd() {
	c.pointer = pointerState{}
}

// OnResize records the new viewport size. Zoom and pan are kept, so the
// same plane region stays visible stretched to the new aspect ratio.
// Non-positive sizes (minimised windows) are ignored.
func (c *Controller) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.geom = Geometry{
		Width:       width,
		Height:      height,
		AspectRatio: float64(width) / float64(height),
	}
}

// OnReset restores the default zoom and pan. The precision mode is left
// alone; with auto precision on, the next check switches it back.
func (c *Controller) OnReset() ViewState {
	c.state.Zoom = DefaultZoom
	c.state.Pan = Vec2{}
	return c.state
}

// NDC maps a screen pixel to normalised device coordinates.
func (c *Controller) NDC(screen Vec2) Vec2 { return ndc(screen, c.geom) }

// PlaneCoordinates maps a screen pixel to the plane point rendered there.
func (c *Controller) PlaneCoordinates(screen Vec2) Vec2 {
	return planeFromNDC(ndc(screen, c.geom), c.state, c.geom.AspectRatio)
}

// ScreenCoordinates maps a plane point to the screen pixel showing it.
func (c *Controller) ScreenCoordinates(plane Vec2) Vec2 {
	return screenFromNDC(ndcFromPlane(plane, c.state, c.geom.AspectRatio), c.geom)
}

// VisibleRect is the region of the plane currently on screen.
func (c *Controller) VisibleRect() Rect {
	lo := planeFromNDC(Vec2{-1, -1}, c.state, c.geom.AspectRatio)
	hi := planeFromNDC(Vec2{1, 1}, c.state, c.geom.AspectRatio)
	return Rect{Min: lo, Max: hi}
}

func clampZoom(z float64) float64 {
	switch {
	case math.IsNaN(z) || z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}

func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

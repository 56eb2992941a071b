package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mandelbrot-explorer/viewport"
)

// Host receives the commands the input system derives from raw events.
type Host interface {
	Scroll(cursor viewport.Vec2, delta float64)
	BeginDrag(pos viewport.Vec2)
	Drag(pos viewport.Vec2)
	EndDrag()
	Trigger(a Action, cursor viewport.Vec2)
	// IsMouseOver reports whether the UI owns the pixel, in which case
	// a press there does not start a drag.
	IsMouseOver(mx, my int) bool
}

// Event is one discrete input event.
type Event interface {
	event()
}

type Scroll struct {
	Cursor viewport.Vec2
	Delta  float64
}

type MouseButton struct {
	Button  ebiten.MouseButton
	Pressed bool
	Cursor  viewport.Vec2
}

type CursorMove struct {
	Pos viewport.Vec2
}

type KeyPress struct {
	Key    ebiten.Key
	Cursor viewport.Vec2
}

func (Scroll) event()      {}
func (MouseButton) event() {}
func (CursorMove) event()  {}
func (KeyPress) event()    {}

// keyZoomStep is the scroll delta applied per tick while a zoom key is held.
const keyZoomStep = 0.1

type InputSystem struct {
	host     Host
	bindings Bindings

	dragging bool
	lastX    int
	lastY    int
	events   []Event
}

func NewInputSystem(h Host, b Bindings) *InputSystem {
	return &InputSystem{host: h, bindings: b}
}

// Update polls ebiten and dispatches the resulting events.
func (is *InputSystem) Update() {
	for _, ev := range is.Poll() {
		is.Dispatch(ev)
	}
}

// Poll collects this tick's events from ebiten.
func (is *InputSystem) Poll() []Event {
	is.events = is.events[:0]
	mx, my := ebiten.CursorPosition()
	cursor := viewport.Vec2{X: float64(mx), Y: float64(my)}

	if _, dy := ebiten.Wheel(); dy != 0 {
		is.events = append(is.events, Scroll{Cursor: cursor, Delta: dy})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		is.events = append(is.events, MouseButton{Button: ebiten.MouseButtonLeft, Pressed: true, Cursor: cursor})
	}
	if mx != is.lastX || my != is.lastY {
		is.events = append(is.events, CursorMove{Pos: cursor})
		is.lastX, is.lastY = mx, my
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		is.events = append(is.events, MouseButton{Button: ebiten.MouseButtonLeft, Pressed: false, Cursor: cursor})
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		is.events = append(is.events, KeyPress{Key: k, Cursor: cursor})
	}
	// Held zoom keys repeat every tick.
	for _, k := range is.bindings.KeysFor(ZoomIn) {
		if ebiten.IsKeyPressed(k) && !inpututil.IsKeyJustPressed(k) {
			is.events = append(is.events, KeyPress{Key: k, Cursor: cursor})
		}
	}
	for _, k := range is.bindings.KeysFor(ZoomOut) {
		if ebiten.IsKeyPressed(k) && !inpututil.IsKeyJustPressed(k) {
			is.events = append(is.events, KeyPress{Key: k, Cursor: cursor})
		}
	}
	return is.events
}

// Dispatch translates a single event into host calls.
func (is *InputSystem) Dispatch(ev Event) {
	switch e := ev.(type) {
	case Scroll:
		is.host.Scroll(e.Cursor, e.Delta)
	case MouseButton:
		if e.Button != ebiten.MouseButtonLeft {
			return
		}
		if e.Pressed {
			if is.host.IsMouseOver(int(e.Cursor.X), int(e.Cursor.Y)) {
				return
			}
			is.dragging = true
			is.host.BeginDrag(e.Cursor)
		} else if is.dragging {
			is.dragging = false
			is.host.EndDrag()
		}
	case CursorMove:
		if is.dragging {
			is.host.Drag(e.Pos)
		}
	case KeyPress:
		a, ok := is.bindings[e.Key]
		if !ok {
			return
		}
		switch a {
		case ZoomIn:
			is.host.Scroll(e.Cursor, keyZoomStep)
		case ZoomOut:
			is.host.Scroll(e.Cursor, -keyZoomStep)
		default:
			is.host.Trigger(a, e.Cursor)
		}
	}
}

func (is *InputSystem) Dragging() bool { return is.dragging }

package input

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Action is something a key can be bound to.
type Action int

const (
	Reset Action = iota
	Info
	IterationsUp
	IterationsDown
	ToggleAutoPrecision
	TogglePrecision
	Screenshot
	ToggleAxes
	ZoomIn
	ZoomOut
)

var actionNames = map[Action]string{
	Reset:               "reset",
	Info:                "info",
	IterationsUp:        "iterations_up",
	IterationsDown:      "iterations_down",
	ToggleAutoPrecision: "auto_precision",
	TogglePrecision:     "precision",
	Screenshot:          "screenshot",
	ToggleAxes:          "axes",
	ZoomIn:              "zoom_in",
	ZoomOut:             "zoom_out",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (Action, bool) {
	for a, s := range actionNames {
		if s == name {
			return a, true
		}
	}
	return 0, false
}

// Bindings maps keys to actions. Several keys may share an action.
type Bindings map[ebiten.Key]Action

func DefaultBindings() Bindings {
	return Bindings{
		ebiten.KeyR:          Reset,
		ebiten.KeySpace:      Info,
		ebiten.KeyArrowUp:    IterationsUp,
		ebiten.KeyArrowDown:  IterationsDown,
		ebiten.KeyA:          ToggleAutoPrecision,
		ebiten.KeyX:          TogglePrecision,
		ebiten.KeyF12:        Screenshot,
		ebiten.KeyG:          ToggleAxes,
		ebiten.KeyEqual:      ZoomIn,
		ebiten.KeyKPAdd:      ZoomIn,
		ebiten.KeyMinus:      ZoomOut,
		ebiten.KeyKPSubtract: ZoomOut,
	}
}

// KeysFor lists the keys bound to a, in key order.
func (b Bindings) KeysFor(a Action) []ebiten.Key {
	var keys []ebiten.Key
	for k, v := range b {
		if v == a {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Override rebinds actions from a config map of action name to key name
// (as understood by ebiten.Key.UnmarshalText, e.g. "R", "ArrowUp", "F5").
// A rebound action loses its previous keys.
func (b Bindings) Override(m map[string]string) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := ParseAction(name)
		if !ok {
			return fmt.Errorf("bindings: unknown action %q", name)
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(m[name])); err != nil {
			return fmt.Errorf("bindings: action %q: %w", name, err)
		}
		for _, old := range b.KeysFor(a) {
			delete(b, old)
		}
		b[k] = a
	}
	return nil
}

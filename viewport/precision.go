package viewport

// Precision selects which shader program variant renders the view.
type Precision int

const (
	Single Precision = iota
	Double
)

func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	}
	return "unknown"
}

// Other returns the opposite precision tier.
func (p Precision) Other() Precision {
	if p == Double {
		return Single
	}
	return Double
}

// SwitchPrecision is emitted whenever the precision mode changes. The
// controller never touches the GPU; whoever owns the shader programs acts on it.
type SwitchPrecision struct {
	From, To Precision
}

// DefaultAutoPrecisionThreshold is the zoom above which single precision
// visibly breaks down into blocks.
const DefaultAutoPrecisionThreshold = 10000.0

// autoPrecision remembers which side of the threshold the zoom was on at
// the previous check, so switching happens on crossings only.
type autoPrecision struct {
	enabled bool
	above   bool
}

// OnPrecisionToggle flips the precision mode.
func (c *Controller) OnPrecisionToggle() SwitchPrecision {
	cmd := SwitchPrecision{From: c.state.Precision, To: c.state.Precision.Other()}
	c.state.Precision = cmd.To
	return cmd
}

func (c *Controller) AutoPrecision() bool { return c.auto.enabled }

func (c *Controller) SetAutoPrecision(enabled bool) { c.auto.enabled = enabled }

// ToggleAutoPrecision flips automatic switching and returns the new setting.
func (c *Controller) ToggleAutoPrecision() bool {
	c.auto.enabled = !c.auto.enabled
	return c.auto.enabled
}

// AutoPrecisionCheck toggles the precision mode when the zoom has crossed
// threshold since the previous check and the mode does not already match
// the new side (above means Double). The side is tracked even while
// automatic switching is disabled, so enabling it never fires on its own.
func (c *Controller) AutoPrecisionCheck(threshold float64) (SwitchPrecision, bool) {
	above := c.state.Zoom > threshold
	crossed := above != c.auto.above
	c.auto.above = above
	if !crossed || !c.auto.enabled {
		return SwitchPrecision{}, false
	}
	want := Single
	if above {
		want = Double
	}
	if c.state.Precision == want {
		return SwitchPrecision{}, false
	}
	return c.OnPrecisionToggle(), true
}

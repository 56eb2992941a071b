package viewport

const (
	MinIterations = 10
	MaxIterations = 1000
)

// OnIterationBudgetChange grows the budget by 20% or shrinks it by 20%,
// truncating to an integer and clamping to [MinIterations, MaxIterations].
//
// The truncation makes the two directions non-inverse: 200 goes up to 240
// and back down to 192. That is how the budget has always behaved and is
// kept as is.
func (c *Controller) OnIterationBudgetChange(increase bool) int {
	if increase {
		c.iterations = clampIterations(int(float64(c.iterations) * 1.2))
	} else {
		c.iterations = clampIterations(int(float64(c.iterations) * 0.8))
	}
	return c.iterations
}

func clampIterations(n int) int {
	if n < MinIterations {
		return MinIterations
	}
	if n > MaxIterations {
		return MaxIterations
	}
	return n
}

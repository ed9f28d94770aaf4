package core

// StepClock accumulates frame time and reports when a simulation should
// advance by one generation. Blend exposes the fraction of the interval
// elapsed since the last step, used for inter-step color blending.
type StepClock struct {
	interval    float64
	accumulator float64
}

// NewStepClock constructs a clock that fires every interval seconds. A zero
// or negative interval means "fire every update" with a blend pinned to 1.
func NewStepClock(interval float64) *StepClock {
	return &StepClock{interval: interval}
}

// Advance adds dt seconds and reports whether a step is due. The accumulator
// resets on firing instead of carrying the remainder, so a long frame never
// triggers a burst of catch-up steps.
func (c *StepClock) Advance(dt float64) bool {
	if c.interval <= 0 {
		return true
	}
	c.accumulator += dt
	if c.accumulator >= c.interval {
		c.accumulator = 0
		return true
	}
	return false
}

// Blend returns the elapsed fraction of the current interval, in [0, 1].
func (c *StepClock) Blend() float64 {
	if c.interval <= 0 {
		return 1
	}
	b := c.accumulator / c.interval
	if b > 1 {
		return 1
	}
	return b
}

package core

// Rate limits for the step clock, in generations per second.
const (
	MinRate     = 0.1
	MaxRate     = 1000.0
	DefaultRate = 10.0
)

// rateFactor is the multiplicative step used by SpeedUp and SlowDown.
const rateFactor = 1.5

// StepClock accumulates frame time and fires simulation steps at a
// configurable generations-per-second rate.
type StepClock struct {
	rate        float64
	accumulator float64
}

// NewStepClock constructs a clock targeting the given rate. Non-positive
// rates fall back to DefaultRate.
func NewStepClock(rate float64) *StepClock {
	if rate <= 0 {
		rate = DefaultRate
	}
	c := &StepClock{}
	c.SetRate(rate)
	return c
}

// Rate returns the current target rate in generations per second.
func (c *StepClock) Rate() float64 { return c.rate }

// SetRate changes the target rate, clamped to [MinRate, MaxRate].
func (c *StepClock) SetRate(rate float64) {
	if rate < MinRate {
		rate = MinRate
	}
	if rate > MaxRate {
		rate = MaxRate
	}
	c.rate = rate
}

// SpeedUp raises the rate by one step, saturating at MaxRate.
func (c *StepClock) SpeedUp() {
	c.SetRate(c.rate * rateFactor)
}

// SlowDown lowers the rate by one step, saturating at MinRate.
func (c *StepClock) SlowDown() {
	c.SetRate(c.rate / rateFactor)
}

// Tick adds elapsed frame time in seconds and reports whether a step is
// due. The accumulator resets to zero when it fires, so a long frame
// produces at most one step.
func (c *StepClock) Tick(dt float64) bool {
	if dt > 0 {
		c.accumulator += dt
	}
	if c.accumulator >= 1.0/c.rate {
		c.accumulator = 0
		return true
	}
	return false
}

// Reset drops any accumulated frame time.
func (c *StepClock) Reset() {
	c.accumulator = 0
}

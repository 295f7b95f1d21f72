package worker

import "time"

// Accumulator counts frame time down to fixed-interval ticks.
type Accumulator struct {
	Interval time.Duration
	// MaxCatchUp caps the ticks returned by one Advance. Backlog beyond it is
	// dropped. Zero means no cap.
	MaxCatchUp int

	remaining time.Duration
}

// NewAccumulator returns an accumulator whose first tick is one interval
// away.
func NewAccumulator(interval time.Duration, maxCatchUp int) *Accumulator {
	return &Accumulator{
		Interval:   interval,
		MaxCatchUp: maxCatchUp,
		remaining:  interval,
	}
}

// Advance subtracts dt from the countdown and returns how many ticks are due.
// A tick is due once the countdown reaches zero.
func (a *Accumulator) Advance(dt time.Duration) int {
	if a.Interval <= 0 {
		return 1
	}
	a.remaining -= dt
	if a.remaining > 0 {
		return 0
	}
	n := int(-a.remaining/a.Interval) + 1
	a.remaining += time.Duration(n) * a.Interval
	if a.MaxCatchUp > 0 && n > a.MaxCatchUp {
		n = a.MaxCatchUp
	}
	return n
}

// Remaining is the time left until the next tick.
func (a *Accumulator) Remaining() time.Duration { return a.remaining }

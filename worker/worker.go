// Package worker provides the actual running of games. It owns the frame
// loop: it counts down to the next tick, ticks the game, feeds input to the
// snake and hands frames to whatever is drawing them.
package worker

import (
	"time"

	"github.com/battlesnakeio/solo/rules"
)

// Simulation is the game state the runner drives. *rules.Game implements it.
type Simulation interface {
	Tick() (*rules.TickResult, error)
	Steer(keys rules.KeyState)
	Frame() *rules.Frame
}

// Frontend draws frames and reports input and elapsed time. It is polled once
// per frame from the goroutine calling Run.
type Frontend interface {
	rules.KeyState
	// FrameTime is the time elapsed since the previous frame.
	FrameTime() time.Duration
	Draw(frame *rules.Frame) error
	// Closed reports whether the player asked to quit.
	Closed() bool
}

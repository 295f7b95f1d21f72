package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/solo/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Runner ties a simulation to a fixed tick rate.
type Runner struct {
	GameID    string
	Sim       Simulation
	Clock     *Accumulator
	FrameRate rate.Limit
	// OnTick, if set, is called after every tick.
	OnTick func(*rules.TickResult)

	over bool
}

// NewRunner creates a runner ticking sim every interval.
func NewRunner(id string, sim Simulation, interval time.Duration, maxCatchUp int, fps rate.Limit) *Runner {
	return &Runner{
		GameID:    id,
		Sim:       sim,
		Clock:     NewAccumulator(interval, maxCatchUp),
		FrameRate: fps,
	}
}

// Step runs one frame worth of simulation: dt is counted off the clock, the
// game is ticked for every tick that came due, and then the held keys steer
// the snake for the next tick. It returns the last tick result, or nil when
// no tick was due.
func (r *Runner) Step(dt time.Duration, keys rules.KeyState) (*rules.TickResult, error) {
	var last *rules.TickResult
	for n := r.Clock.Advance(dt); n > 0; n-- {
		res, err := r.Sim.Tick()
		if err != nil {
			return nil, err
		}
		last = res
		if r.OnTick != nil {
			r.OnTick(res)
		}
		if res.Death != nil && !r.over {
			r.over = true
			log.WithFields(log.Fields{
				"GameID": r.GameID,
				"Turn":   res.Turn,
				"Cause":  res.Death.Cause,
				"Size":   res.Size,
			}).Info("game over")
		}
	}
	r.Sim.Steer(keys)
	return last, nil
}

// Run loops frames until the frontend closes, ctx is done or a tick fails.
// Frames are paced by the runner's frame rate.
func (r *Runner) Run(ctx context.Context, fe Frontend) error {
	limiter := rate.NewLimiter(r.FrameRate, 1)
	log.WithFields(log.Fields{
		"GameID":    r.GameID,
		"Interval":  r.Clock.Interval,
		"FrameRate": float64(r.FrameRate),
	}).Info("starting game")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if fe.Closed() {
			log.WithField("GameID", r.GameID).Info("frontend closed")
			return nil
		}
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		if _, err := r.Step(fe.FrameTime(), fe); err != nil {
			// A failed tick leaves the game in an unknown state, nothing
			// more can be simulated.
			log.WithError(err).
				WithField("GameID", r.GameID).
				Error("ending game due to fatal error")
			return err
		}
		if err := fe.Draw(r.Sim.Frame()); err != nil {
			return errors.Wrap(err, "worker: draw")
		}
	}
}

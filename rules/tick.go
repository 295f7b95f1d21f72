package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// TickResult describes what happened during one tick.
type TickResult struct {
	Turn  int64
	Eaten []Point
	Grew  int
	Size  int
	Death *Death
}

// Tick runs the game forward one tick: the snake moves, any food under the
// new head position is eaten, the snake grows once per item eaten and the
// food respawns elsewhere. A game that is over does not change.
func (g *Game) Tick() (*TickResult, error) {
	if g.Death != nil {
		return &TickResult{Turn: g.Turn, Size: g.Snake.Size(), Death: g.Death}, nil
	}
	g.Turn++
	res := &TickResult{Turn: g.Turn}

	// 1. move the snake and pass directions down the chain
	g.Snake.Move()
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Head":   g.Snake.Head.Position,
	}).Debug("move")

	// 2. eat, respawn and grow
	if err := g.handleFood(res); err != nil {
		return nil, err
	}

	// 3. check for death, only when a collision rule is on
	if d := checkForDeath(g); d != nil {
		g.Death = d
		res.Death = d
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Cause":  d.Cause,
		}).Info("snake died")
	}

	res.Size = g.Snake.Size()
	return res, nil
}

func (g *Game) handleFood(res *TickResult) error {
	head := g.Snake.Head.Position
	for i := 0; i < g.Food.Len(); i++ {
		eaten := g.Food.At(i)
		if !eaten.Equal(head) {
			continue
		}
		if err := g.Snake.Grow(); err != nil {
			return errors.Wrapf(err, "rules: growing past %d segments", g.Snake.Size())
		}
		next, err := g.Food.Relocate(i, g.Width, g.Height, g.rng, g.opts.SpawnAttempts)
		if err != nil {
			return errors.Wrapf(err, "rules: respawning food at %s", eaten)
		}
		res.Eaten = append(res.Eaten, eaten)
		res.Grew++

		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Food":   eaten,
			"Next":   next,
		}).Debug("food respawned")
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Size":   g.Snake.Size(),
		}).Info("snake grew")
	}
	return nil
}

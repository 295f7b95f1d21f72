package commands

import (
	"time"

	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ticks int
	dump  bool
)

func init() {
	simulateCmd.Flags().IntVarP(&ticks, "ticks", "n", 1000, "number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&dump, "dump", false, "dump the final frame")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "run a game without a display, steered by a bot that chases food",
	RunE: func(*cobra.Command, []string) error {
		start := time.Now()
		g, err := simulate(cfg, ticks)
		if err != nil {
			return err
		}
		fields := log.Fields{
			"GameID":  g.ID,
			"Turn":    g.Turn,
			"Size":    g.Snake.Size(),
			"elapsed": time.Since(start),
		}
		if g.Death != nil {
			fields["Cause"] = g.Death.Cause
		}
		log.WithFields(fields).Info("simulation complete")
		logMetrics()

		if dump {
			spew.Dump(g.Frame())
		}
		return nil
	},
}

// simulate plays up to n ticks, stopping early if the snake dies.
func simulate(cfg config.Config, n int) (*rules.Game, error) {
	g, r, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	defer withChime(cfg, r)()

	b := &bot{game: g}
	for i := 0; i < n && !g.Over(); i++ {
		// one interval per step means exactly one tick per step
		if _, err := r.Step(cfg.TickInterval, b); err != nil {
			return g, err
		}
	}
	return g, nil
}

// bot steers toward the nearest food, closing the horizontal gap first.
type bot struct {
	game *rules.Game
}

func (b *bot) IsKeyDown(m rules.Move) bool {
	return b.next() == m
}

func (b *bot) next() rules.Move {
	head := b.game.Snake.Head
	target, ok := nearest(head.Position, b.game.Food.Points())
	if !ok {
		return ""
	}
	dx := target.X - head.Position.X
	dy := target.Y - head.Position.Y

	var want rules.Move
	switch {
	case dx > 0:
		want = rules.MoveRight
	case dx < 0:
		want = rules.MoveLeft
	case dy > 0:
		want = rules.MoveDown
	case dy < 0:
		want = rules.MoveUp
	default:
		return ""
	}

	if !want.Vector().Opposite(head.Direction) {
		return want
	}
	// food is straight behind, turn off the current axis first
	if want.Horizontal() {
		if dy < 0 {
			return rules.MoveUp
		}
		return rules.MoveDown
	}
	if dx < 0 {
		return rules.MoveLeft
	}
	return rules.MoveRight
}

func nearest(from rules.Point, points []rules.Point) (rules.Point, bool) {
	var (
		best  rules.Point
		bestD int32 = -1
	)
	for _, p := range points {
		d := abs(p.X-from.X) + abs(p.Y-from.Y)
		if bestD < 0 || d < bestD {
			best, bestD = p, d
		}
	}
	return best, bestD >= 0
}

func abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

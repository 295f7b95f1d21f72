package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource returns its values in order, wrapped to the requested
// range, then zeroes.
type scriptedSource struct {
	vals []int32
}

func (s *scriptedSource) Int31n(n int32) int32 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

type heldKeys map[Move]bool

func (h heldKeys) IsKeyDown(m Move) bool { return h[m] }

func newTestGame(t *testing.T, width, height int32, opts Options, food ...Point) *Game {
	t.Helper()
	opts = opts.withDefaults()
	if len(food) > 0 {
		opts.FoodCount = len(food)
	}
	g := &Game{
		ID:     "test",
		Width:  width,
		Height: height,
		Snake:  NewSnake(Point{X: width / 2, Y: height / 2}, MoveRight, NewTail(opts.TailCapacity, opts.TailIncrement, opts.MaxTail)),
		Food:   &Food{cells: food},
		opts:   opts,
		rng:    rand.New(rand.NewSource(1)),
	}
	g.Snake.GuardReversal = opts.ReversalGuard
	if len(food) == 0 {
		var err error
		g.Food, err = NewFood(opts.FoodCount, width, height, g.rng, opts.SpawnAttempts)
		require.NoError(t, err)
	}
	return g
}

func snapshot(s *Snake) (Point, []Point) {
	return s.Head.Position, s.Tail()
}

package rules

import (
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Options tune a game. The zero value of every field selects the default.
type Options struct {
	FoodCount     int
	TailCapacity  int
	TailIncrement int
	// MaxTail caps the number of tail segments. Zero means unbounded.
	MaxTail       int
	SpawnAttempts int
	// WallCollision ends the game when the head leaves the board.
	WallCollision bool
	// SelfCollision ends the game when the head runs into the tail.
	SelfCollision bool
	// ReversalGuard stops two turns within one tick from reversing the
	// snake. See Snake.GuardReversal.
	ReversalGuard bool
}

// Game is the full simulation state of a single-player game. It is owned by
// one goroutine and is not safe for concurrent use.
type Game struct {
	ID     string
	Width  int32
	Height int32
	Turn   int64
	Snake  *Snake
	Food   *Food
	Death  *Death

	opts Options
	rng  RandomSource
}

// CreateInitialGame builds a width x height game with the snake in the
// centre of the board heading right and the food scattered at random.
func CreateInitialGame(width, height int32, opts Options, rng RandomSource) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidBoard, "rules: %dx%d", width, height)
	}
	opts = opts.withDefaults()

	food, err := NewFood(opts.FoodCount, width, height, rng, opts.SpawnAttempts)
	if err != nil {
		return nil, err
	}

	tail := NewTail(opts.TailCapacity, opts.TailIncrement, opts.MaxTail)
	start := Point{X: width / 2, Y: height / 2}
	snake := NewSnake(start, MoveRight, tail)
	snake.GuardReversal = opts.ReversalGuard

	return &Game{
		ID:     uuid.NewV4().String(),
		Width:  width,
		Height: height,
		Snake:  snake,
		Food:   food,
		opts:   opts,
		rng:    rng,
	}, nil
}

func (o Options) withDefaults() Options {
	if o.FoodCount <= 0 {
		o.FoodCount = DefaultFoodCount
	}
	if o.TailCapacity <= 0 {
		o.TailCapacity = DefaultTailCapacity
	}
	if o.TailIncrement <= 0 {
		o.TailIncrement = DefaultTailIncrement
	}
	if o.SpawnAttempts <= 0 {
		o.SpawnAttempts = DefaultSpawnAttempts
	}
	return o
}

// Options returns the options the game was created with, defaults filled in.
func (g *Game) Options() Options { return g.opts }

// Over reports whether the snake has died.
func (g *Game) Over() bool { return g.Death != nil }

// Frame is a snapshot of the game for renderers.
type Frame struct {
	Turn   int64
	Width  int32
	Height int32
	Head   Segment
	Tail   []Point
	Food   []Point
	Death  *Death
}

// Frame captures the current state of the game.
func (g *Game) Frame() *Frame {
	return &Frame{
		Turn:   g.Turn,
		Width:  g.Width,
		Height: g.Height,
		Head:   g.Snake.Head,
		Tail:   g.Snake.Tail(),
		Food:   g.Food.Points(),
		Death:  g.Death,
	}
}

// Steer applies held keys to the snake before the next tick.
func (g *Game) Steer(keys KeyState) {
	Steer(g.Snake, keys)
}

package commands

import (
	"testing"

	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	c := config.Default()
	c.Width = 10
	c.Height = 10
	c.FoodCount = 3
	c.Seed = 11
	return c
}

func TestSimulateBotEats(t *testing.T) {
	g, err := simulate(testConfig(), 300)
	require.NoError(t, err)
	require.Equal(t, int64(300), g.Turn)
	require.True(t, g.Snake.Size() > 0, "bot never reached food")
	require.True(t, g.Snake.Cap() >= g.Snake.Size())
}

func TestSimulateStopsOnDeath(t *testing.T) {
	c := testConfig()
	// a one column board: the first move right leaves it
	c.Width = 1
	c.Height = 3
	c.FoodCount = 1
	c.WallCollision = true
	g, err := simulate(c, 5000)
	require.NoError(t, err)
	require.True(t, g.Over())
	require.Equal(t, int64(1), g.Turn)
	require.Equal(t, g.Turn, g.Death.Turn)
	require.Equal(t, rules.DeathCauseWallCollision, g.Death.Cause)
}

func TestSimulateTailLimit(t *testing.T) {
	c := testConfig()
	c.MaxTail = 2
	_, err := simulate(c, 1000)
	require.Error(t, err)
	require.Contains(t, err.Error(), rules.ErrTailExhausted.Error())
}

func TestBotTurnsAwayFromReversal(t *testing.T) {
	g := &rules.Game{
		Snake: rules.NewSnake(rules.Point{X: 5, Y: 5}, rules.MoveRight, nil),
	}
	var err error
	g.Food, err = rules.NewFood(1, 1, 1, &zeroSource{}, 1)
	require.NoError(t, err)

	b := &bot{game: g}
	// food at (0, 0) is behind and above the snake
	require.Equal(t, rules.MoveUp, b.next())
	require.True(t, b.IsKeyDown(rules.MoveUp))
	require.False(t, b.IsKeyDown(rules.MoveLeft))

	g.Snake = rules.NewSnake(rules.Point{X: 5, Y: 5}, rules.MoveDown, nil)
	require.Equal(t, rules.MoveLeft, b.next())
}

func TestNearest(t *testing.T) {
	p, ok := nearest(rules.Point{X: 0, Y: 0}, []rules.Point{{X: 5, Y: 5}, {X: -1, Y: 2}, {X: 9, Y: 0}})
	require.True(t, ok)
	require.Equal(t, rules.Point{X: -1, Y: 2}, p)

	_, ok = nearest(rules.Point{}, nil)
	require.False(t, ok)
}

type zeroSource struct{}

func (zeroSource) Int31n(int32) int32 { return 0 }

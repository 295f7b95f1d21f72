package rules

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRelocateFoodNeverDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	food, err := NewFood(8, 4, 4, rng, 0)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		_, err := food.Relocate(i%food.Len(), 4, 4, rng, 0)
		require.NoError(t, err)

		seen := map[Point]bool{}
		for _, p := range food.Points() {
			require.False(t, seen[p], "duplicate food at %s after %d relocations", p, i)
			require.True(t, p.X >= 0 && p.X < 4 && p.Y >= 0 && p.Y < 4)
			seen[p] = true
		}
	}
}

func TestRelocateFoodSingleFreeCell(t *testing.T) {
	food := []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2},
	}

	p, err := RelocateFood(3, 3, food, rand.New(rand.NewSource(1)), 0)
	require.NoError(t, err)
	require.Equal(t, Point{X: 2, Y: 2}, p)

	// a source that only ever lands on food still terminates
	p, err = RelocateFood(3, 3, food, &scriptedSource{}, 5)
	require.NoError(t, err)
	require.Equal(t, Point{X: 2, Y: 2}, p)
}

func TestRelocateFoodSampling(t *testing.T) {
	food := []Point{{X: 1, Y: 1}}
	rng := &scriptedSource{vals: []int32{1, 1, 3, 2}}
	p, err := RelocateFood(5, 5, food, rng, 4)
	require.NoError(t, err)
	require.Equal(t, Point{X: 3, Y: 2}, p)
}

func TestRelocateFoodFullBoard(t *testing.T) {
	food := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	_, err := RelocateFood(2, 1, food, rand.New(rand.NewSource(1)), 3)
	require.Equal(t, ErrNoUnoccupiedPoint, err)

	_, err = RelocateFood(0, 1, nil, rand.New(rand.NewSource(1)), 3)
	require.Equal(t, ErrInvalidBoard, err)
}

func TestFoodRelocateInPlace(t *testing.T) {
	f := &Food{cells: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}}
	p, err := f.Relocate(1, 3, 2, &scriptedSource{vals: []int32{2, 1}}, 1)
	require.NoError(t, err)
	require.Equal(t, Point{X: 2, Y: 1}, p)
	require.Equal(t, []Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 0}}, f.Points())
}

func TestNewFoodTooMany(t *testing.T) {
	_, err := NewFood(10, 3, 3, rand.New(rand.NewSource(1)), 0)
	require.Error(t, err)
	require.Equal(t, ErrNoUnoccupiedPoint, errors.Cause(err))
}

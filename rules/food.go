package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultFoodCount is the number of food items on the board.
	DefaultFoodCount = 8
	// DefaultSpawnAttempts is how many random cells RelocateFood samples
	// before falling back to scanning the board.
	DefaultSpawnAttempts = 64
)

// RandomSource supplies uniformly distributed integers. *rand.Rand
// satisfies it.
type RandomSource interface {
	Int31n(n int32) int32
}

// Food is a fixed-size set of food cells. No two items share a cell.
type Food struct {
	cells []Point
}

// NewFood places count food items on a width x height board, one slot at a
// time.
func NewFood(count int, width, height int32, rng RandomSource, attempts int) (*Food, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBoard
	}
	f := &Food{cells: make([]Point, 0, count)}
	for i := 0; i < count; i++ {
		p, err := RelocateFood(width, height, f.cells, rng, attempts)
		if err != nil {
			return nil, errors.Wrapf(err, "rules: placing food %d of %d", i+1, count)
		}
		f.cells = append(f.cells, p)
	}
	return f, nil
}

// Len is the number of food items.
func (f *Food) Len() int { return len(f.cells) }

// At returns the cell of food item i.
func (f *Food) At(i int) Point { return f.cells[i] }

// Points returns a copy of the food cells.
func (f *Food) Points() []Point {
	out := make([]Point, len(f.cells))
	copy(out, f.cells)
	return out
}

// Relocate moves food item i to a random cell not holding any food.
func (f *Food) Relocate(i int, width, height int32, rng RandomSource, attempts int) (Point, error) {
	p, err := RelocateFood(width, height, f.cells, rng, attempts)
	if err != nil {
		return Point{}, err
	}
	f.cells[i] = p
	return p, nil
}

// RelocateFood picks a random cell on the board not occupied by any of food.
// It samples up to attempts cells and then falls back to choosing among the
// free cells directly, so it terminates even on a nearly full board.
func RelocateFood(width, height int32, food []Point, rng RandomSource, attempts int) (Point, error) {
	if width <= 0 || height <= 0 {
		return Point{}, ErrInvalidBoard
	}
	if attempts <= 0 {
		attempts = DefaultSpawnAttempts
	}
	for i := 0; i < attempts; i++ {
		p := Point{X: rng.Int31n(width), Y: rng.Int31n(height)}
		if !containsPoint(food, p) {
			return p, nil
		}
	}

	log.WithFields(log.Fields{
		"Attempts": attempts,
		"Food":     len(food),
	}).Debug("random food placement exhausted, scanning board")

	open := getUnoccupiedPoints(width, height, food)
	if len(open) == 0 {
		return Point{}, ErrNoUnoccupiedPoint
	}
	return open[rng.Int31n(int32(len(open)))], nil
}

func getUnoccupiedPoints(width, height int32, occupied []Point) []Point {
	size := int(width)*int(height) - len(occupied)
	if size < 0 {
		size = 0
	}
	candidates := make([]Point, 0, size)
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			p := Point{X: x, Y: y}
			if !containsPoint(occupied, p) {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}

func containsPoint(points []Point, p Point) bool {
	for _, o := range points {
		if o.Equal(p) {
			return true
		}
	}
	return false
}

package rules

import "github.com/pkg/errors"

// Move is one of the four directions a snake can be steered in.
type Move string

const (
	// MoveUp decreases Y.
	MoveUp Move = "up"
	// MoveDown increases Y.
	MoveDown Move = "down"
	// MoveLeft decreases X.
	MoveLeft Move = "left"
	// MoveRight increases X.
	MoveRight Move = "right"
)

// Moves lists every valid move.
var Moves = []Move{MoveUp, MoveDown, MoveLeft, MoveRight}

// Vector returns the unit direction for the move, or the zero Point for an
// unknown move.
func (m Move) Vector() Point {
	switch m {
	case MoveUp:
		return Point{X: 0, Y: -1}
	case MoveDown:
		return Point{X: 0, Y: 1}
	case MoveLeft:
		return Point{X: -1, Y: 0}
	case MoveRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Horizontal reports whether the move changes X.
func (m Move) Horizontal() bool {
	return m == MoveLeft || m == MoveRight
}

// ParseMove validates a move name.
func ParseMove(s string) (Move, error) {
	for _, m := range Moves {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidMove, "rules: %q", s)
}

// MoveFor maps a unit direction back to its move.
func MoveFor(dir Point) (Move, bool) {
	for _, m := range Moves {
		if m.Vector().Equal(dir) {
			return m, true
		}
	}
	return "", false
}

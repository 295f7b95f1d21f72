package rules

import "errors"

var (
	// ErrTailExhausted is returned when the tail cannot grow past its
	// configured limit.
	ErrTailExhausted = errors.New("rules: tail storage exhausted")
	// ErrNoUnoccupiedPoint is returned when every cell on the board holds food.
	ErrNoUnoccupiedPoint = errors.New("rules: no unoccupied points left")
	// ErrInvalidMove is returned for an unknown move name.
	ErrInvalidMove = errors.New("rules: invalid move")
	// ErrInvalidBoard is returned for non-positive board dimensions.
	ErrInvalidBoard = errors.New("rules: invalid board size")
)

package rules

import "fmt"

// Point is a cell on the board. It doubles as a unit direction vector.
type Point struct {
	X int32
	Y int32
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by the inverse of o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Opposite reports whether p points the exact other way to o.
func (p Point) Opposite(o Point) bool {
	return !p.IsZero() && p.X == -o.X && p.Y == -o.Y
}

// IsZero reports whether p has no length.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

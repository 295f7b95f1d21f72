package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when a snake runs its head into its own tail
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)

// Death records when and why the snake died.
type Death struct {
	Turn  int64
	Cause string
}

package rules

// KeyState reports which directional keys are currently held.
type KeyState interface {
	IsKeyDown(m Move) bool
}

// Steer applies the held keys to the snake's head direction. Horizontal keys
// are checked first, left before right, then vertical keys, up before down.
func Steer(s *Snake, keys KeyState) {
	steerFirst(s, keys, MoveLeft, MoveRight)
	steerFirst(s, keys, MoveUp, MoveDown)
}

func steerFirst(s *Snake, keys KeyState, moves ...Move) {
	for _, m := range moves {
		if keys.IsKeyDown(m) && s.Steer(m) {
			return
		}
	}
}

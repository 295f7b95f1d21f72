package rules

// checkForDeath looks at the snake after it has moved and reports a death if
// the game has the matching collision rule enabled. With both rules off the
// snake can never die.
func checkForDeath(g *Game) *Death {
	head := g.Snake.Head.Position
	if g.opts.WallCollision && deathByOutOfBounds(head, g.Width, g.Height) {
		return &Death{Turn: g.Turn, Cause: DeathCauseWallCollision}
	}
	if g.opts.SelfCollision {
		for _, seg := range g.Snake.Segments() {
			if deathByBodyCollision(head, seg.Position) {
				return &Death{Turn: g.Turn, Cause: DeathCauseSnakeSelfCollision}
			}
		}
	}
	return nil
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point, width, height int32) bool {
	return (head.X < 0) || (head.X >= width) || (head.Y < 0) || (head.Y >= height)
}

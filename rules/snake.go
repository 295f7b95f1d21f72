package rules

// Segment is one unit of a snake's body. Direction is the direction the
// segment moves with on the next tick.
type Segment struct {
	Position  Point
	Direction Point
}

// Snake is the player: a head followed by a tail that trails it one tick
// behind.
type Snake struct {
	Head Segment
	// GuardReversal refuses a move straight back along the direction the
	// head last moved with, even when the axis check alone would allow it.
	GuardReversal bool

	tail *Tail
	// trail is where the last element of the chain came from on the most
	// recent tick, together with the direction it moved with. Growth places
	// the new segment there.
	trail Segment
	// moved is the direction the head last moved with.
	moved Point
}

// NewSnake creates a snake with an empty tail at start, heading in dir.
func NewSnake(start Point, dir Move, tail *Tail) *Snake {
	if tail == nil {
		tail = NewTail(DefaultTailCapacity, DefaultTailIncrement, 0)
	}
	v := dir.Vector()
	return &Snake{
		Head:  Segment{Position: start, Direction: v},
		tail:  tail,
		trail: Segment{Position: start.Sub(v), Direction: v},
		moved: v,
	}
}

// Size is the number of tail segments.
func (s *Snake) Size() int { return s.tail.Len() }

// Cap is the tail storage capacity.
func (s *Snake) Cap() int { return s.tail.Cap() }

// Segments returns the tail segments, nearest the head first.
func (s *Snake) Segments() []Segment { return s.tail.Segments() }

// Tail returns the positions of the tail segments, nearest the head first.
func (s *Snake) Tail() []Point {
	segs := s.tail.Segments()
	out := make([]Point, len(segs))
	for i, seg := range segs {
		out[i] = seg.Position
	}
	return out
}

// Body returns the head position followed by the tail positions.
func (s *Snake) Body() []Point {
	return append([]Point{s.Head.Position}, s.Tail()...)
}

// Move advances every segment one cell along its own direction and then
// hands each segment the direction of the segment ahead of it.
func (s *Snake) Move() {
	segs := s.tail.Segments()

	last := s.Head
	if n := len(segs); n > 0 {
		last = segs[n-1]
	}

	s.Head.Position = s.Head.Position.Add(s.Head.Direction)
	for i := range segs {
		segs[i].Position = segs[i].Position.Add(segs[i].Direction)
	}

	propagating := s.Head.Direction
	for i := range segs {
		segs[i].Direction, propagating = propagating, segs[i].Direction
	}

	s.trail = Segment{
		Position:  last.Position,
		Direction: propagating,
	}
	s.moved = s.Head.Direction
}

// Grow appends one segment behind the last element of the chain, where that
// element was before the most recent tick. The new segment moves with the
// direction the element it follows just used, so it closes up on the next
// tick.
func (s *Snake) Grow() error {
	if err := s.tail.Append(s.trail); err != nil {
		return err
	}
	s.trail.Position = s.trail.Position.Sub(s.trail.Direction)
	return nil
}

// Steer changes the head direction. A horizontal move is only accepted while
// the head has no horizontal motion, and likewise for vertical moves. With
// GuardReversal set, two quick turns within one tick cannot fold the snake
// back onto itself.
func (s *Snake) Steer(m Move) bool {
	v := m.Vector()
	if v.IsZero() {
		return false
	}
	if m.Horizontal() && s.Head.Direction.X != 0 {
		return false
	}
	if !m.Horizontal() && s.Head.Direction.Y != 0 {
		return false
	}
	if s.GuardReversal && v.Opposite(s.moved) {
		return false
	}
	s.Head.Direction = v
	return true
}

package rules

const (
	// DefaultTailCapacity is the number of segments preallocated for a new
	// snake.
	DefaultTailCapacity = 16
	// DefaultTailIncrement is how many segments the tail storage grows by
	// when it runs out of room.
	DefaultTailIncrement = 16
)

// Tail is the ordered body of a snake behind its head. Index 0 is the
// segment closest to the head. Storage grows by a fixed increment and is
// hidden behind Append.
type Tail struct {
	segments  []Segment
	size      int
	increment int
	limit     int
}

// NewTail creates tail storage with room for capacity segments. A limit of
// zero means the tail may grow without bound.
func NewTail(capacity, increment, limit int) *Tail {
	if capacity < 0 {
		capacity = 0
	}
	if increment <= 0 {
		increment = DefaultTailIncrement
	}
	if limit > 0 && capacity > limit {
		capacity = limit
	}
	return &Tail{
		segments:  make([]Segment, capacity),
		increment: increment,
		limit:     limit,
	}
}

// Len is the number of segments in the tail.
func (t *Tail) Len() int { return t.size }

// Cap is the number of segments the tail can hold before reallocating.
func (t *Tail) Cap() int { return len(t.segments) }

// At returns the segment at index i.
func (t *Tail) At(i int) Segment { return t.segments[i] }

// Segments returns the live segments. The slice aliases the tail storage.
func (t *Tail) Segments() []Segment { return t.segments[:t.size] }

// Append adds s after the last segment, reallocating when full.
func (t *Tail) Append(s Segment) error {
	if t.size+1 > len(t.segments) {
		if err := t.reserve(len(t.segments) + t.increment); err != nil {
			return err
		}
	}
	t.segments[t.size] = s
	t.size++
	return nil
}

func (t *Tail) reserve(capacity int) error {
	if t.limit > 0 && capacity > t.limit {
		capacity = t.limit
	}
	if capacity <= t.size {
		return ErrTailExhausted
	}
	grown := make([]Segment, capacity)
	copy(grown, t.segments[:t.size])
	t.segments = grown
	return nil
}

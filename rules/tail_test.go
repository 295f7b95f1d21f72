package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTail_AppendGrowsByIncrement(t *testing.T) {
	tail := NewTail(2, 3, 0)
	require.Equal(t, 0, tail.Len())
	require.Equal(t, 2, tail.Cap())

	for i := 0; i < 6; i++ {
		require.NoError(t, tail.Append(Segment{
			Position:  Point{X: int32(i), Y: int32(-i)},
			Direction: MoveLeft.Vector(),
		}))
		require.True(t, tail.Cap() >= tail.Len())
	}
	require.Equal(t, 6, tail.Len())
	require.Equal(t, 8, tail.Cap())

	for i, seg := range tail.Segments() {
		require.Equal(t, Point{X: int32(i), Y: int32(-i)}, seg.Position)
		require.Equal(t, MoveLeft.Vector(), seg.Direction)
	}
}

func TestTail_DefaultIncrement(t *testing.T) {
	tail := NewTail(DefaultTailCapacity, 0, 0)
	for i := 0; i < DefaultTailCapacity+1; i++ {
		require.NoError(t, tail.Append(Segment{}))
	}
	require.Equal(t, DefaultTailCapacity+DefaultTailIncrement, tail.Cap())
}

func TestTail_Exhausted(t *testing.T) {
	tail := NewTail(2, 16, 3)
	require.NoError(t, tail.Append(Segment{}))
	require.NoError(t, tail.Append(Segment{}))
	require.NoError(t, tail.Append(Segment{}))
	require.Equal(t, 3, tail.Cap())

	err := tail.Append(Segment{Position: Point{X: 9, Y: 9}})
	require.Equal(t, ErrTailExhausted, err)
	require.Equal(t, 3, tail.Len())
}

func TestTail_CapacityClampedToLimit(t *testing.T) {
	tail := NewTail(16, 16, 4)
	require.Equal(t, 4, tail.Cap())
}

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corechess/engine/internal/types"
)

func TestPushBackAndAt(t *testing.T) {
	require := assert.New(t)
	ms := NewMoveSlice(4)
	require.Equal(0, ms.Len())

	m1 := NewMove(SqE2, SqE4, FlagDoublePawnPush)
	m2 := NewMove(SqG1, SqF3, FlagQuiet)
	ms.PushBack(m1)
	ms.PushBack(m2)

	require.Equal(2, ms.Len())
	require.Equal(m1, ms.At(0))
	require.Equal(m2, ms.At(1))
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	ms := NewMoveSlice(1)
	assert.Panics(t, func() { ms.At(0) })
}

func TestClear(t *testing.T) {
	require := assert.New(t)
	ms := NewMoveSlice(4)
	ms.PushBack(NewMove(SqE2, SqE4, FlagDoublePawnPush))
	ms.Clear()
	require.Equal(0, ms.Len())
}

func TestClone(t *testing.T) {
	require := assert.New(t)
	ms := NewMoveSlice(4)
	ms.PushBack(NewMove(SqE2, SqE4, FlagDoublePawnPush))

	clone := ms.Clone()
	clone.PushBack(NewMove(SqG1, SqF3, FlagQuiet))

	require.Equal(1, ms.Len(), "mutating the clone must not affect the original")
	require.Equal(2, clone.Len())
}

func TestSortDescendingByScore(t *testing.T) {
	require := assert.New(t)
	ms := NewMoveSlice(3)
	low := NewMove(SqA2, SqA3, FlagQuiet)
	mid := NewMove(SqB2, SqB3, FlagQuiet)
	high := NewMove(SqC2, SqC3, FlagQuiet)
	ms.PushBack(low)
	ms.PushBack(high)
	ms.PushBack(mid)

	scores := []int{1, 100, 50}
	ms.Sort(scores)

	require.Equal(high, ms.At(0))
	require.Equal(mid, ms.At(1))
	require.Equal(low, ms.At(2))
	require.Equal([]int{100, 50, 1}, scores)
}

func TestForEachVisitsEveryIndex(t *testing.T) {
	require := assert.New(t)
	ms := NewMoveSlice(3)
	ms.PushBack(NewMove(SqA2, SqA3, FlagQuiet))
	ms.PushBack(NewMove(SqB2, SqB3, FlagQuiet))

	var visited []int
	ms.ForEach(func(i int) { visited = append(visited, i) })
	require.Equal([]int{0, 1}, visited)
}

// Package moveslice provides a thin, reusable wrapper around a []Move,
// grounded on FrankyGo's internal/moveslice.MoveSlice: the same
// PushBack/Clear/At/ForEach shape, trimmed to what the legal move generator
// and search actually need. FrankyGo sorts in place by a score packed into
// high bits of its 32-bit Move; this module's Move is a 16-bit spec-encoded
// value with no room for that, so sorting here takes a parallel score slice
// instead (see Sort).
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/corechess/engine/internal/types"
)

// MoveSlice is a growable list of moves. Clear empties it while keeping its
// capacity, so one MoveSlice can be reused instead of reallocated.
type MoveSlice []Move

// NewMoveSlice returns an empty MoveSlice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int { return len(*ms) }

// PushBack appends m to the end of the slice.
func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

// At returns the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Clear empties the slice while retaining its capacity, so a MoveSlice can
// be reused at every ply of a search without reallocating.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// ForEach calls f with each index in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for i := range *ms {
		f(i)
	}
}

// Clone returns an independent copy of ms.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Sort reorders the moves by descending score using a stable insertion sort
// (move lists are short and search move-ordering only needs "roughly
// descending", so the simplicity of insertion sort over a generic sort.Sort
// outweighs its worse asymptotic behaviour - same tradeoff FrankyGo's own
// MoveSlice.Sort makes). scores must have the same length as ms.
func (ms *MoveSlice) Sort(scores []int) {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmpM, tmpS := (*ms)[i], scores[i]
		j := i
		for j > 0 && scores[j-1] < tmpS {
			(*ms)[j] = (*ms)[j-1]
			scores[j] = scores[j-1]
			j--
		}
		(*ms)[j] = tmpM
		scores[j] = tmpS
	}
}

// String renders the move list for debugging and test failure output.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveSlice[%d]{", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// StringUci renders the move list as a space-separated list of UCI move
// strings, e.g. for logging a principal variation.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}

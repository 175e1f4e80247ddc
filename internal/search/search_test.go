package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func mustPos(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.NewPosition(fen)
	assert.NoError(t, err, fen)
	return p
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Classic back-rank mate: the black king on g8 is boxed in by its own
	// pawns, and Rd1-d8 delivers check along the entirely open back rank -
	// with the opponent attack map seeing through the king's own square,
	// h8 is covered too, so there is no escape.
	p := mustPos(t, "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1")
	s := NewSearcher()
	config.Settings.Search.Depth = 1

	m, value := s.Search(p)
	assert.Equal(t, NewMove(SqD1, SqD8, FlagQuiet), m)
	assert.Greater(t, value, Value(9000), "a forced mate must score near +mate")
}

func TestSearchReturnsMoveNoneOnCheckmatePosition(t *testing.T) {
	// The position one ply after TestSearchFindsMateInOne's Rd8#: black to
	// move, already checkmated, so no legal move exists.
	p := mustPos(t, "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 1 1")
	s := NewSearcher()
	config.Settings.Search.Depth = 1

	m, value := s.Search(p)
	assert.Equal(t, MoveNone, m)
	assert.Less(t, value, Value(-9000))
}

func TestSearchPrefersCaptureOfHangingQueen(t *testing.T) {
	p := mustPos(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	s := NewSearcher()
	config.Settings.Search.Depth = 2

	m, _ := s.Search(p)
	assert.True(t, m.IsCapture())
	assert.Equal(t, SqD5, m.To())
}

func TestSearchDetectsFiftyMoveDraw(t *testing.T) {
	p := mustPos(t, "k7/8/8/8/8/8/8/KR6 w - - 99 1")
	s := NewSearcher()
	config.Settings.Search.Depth = 2

	_, value := s.Search(p)
	// Every reply reaches the fifty-move mark immediately, so even a rook up
	// the best the searcher can do is the draw score.
	assert.Equal(t, ValueDraw, value)
}

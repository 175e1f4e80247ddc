package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corechess/engine/internal/types"
)

func TestNewPositionRejectsMalformedFen(t *testing.T) {
	_, err := NewPosition("not a fen")
	assert.Error(t, err)
}

func TestStartPositionFields(t *testing.T) {
	require := assert.New(t)
	p := MustNewPosition(StartFen)

	require.Equal(White, p.SideToMove())
	require.Equal(SqNone, p.EpSquare())
	require.Equal(0, p.HalfMoveClock())
	require.Equal(SqE1, p.KingSquare(White))
	require.Equal(SqE8, p.KingSquare(Black))
	require.Equal(Rank2Bb, p.PiecesOf(White, Pawn))
	require.Equal(Rank7Bb, p.PiecesOf(Black, Pawn))
	require.True(p.CastlingRights().Has(CastleWK))
	require.True(p.CastlingRights().Has(CastleWQ))
	require.True(p.CastlingRights().Has(CastleBK))
	require.True(p.CastlingRights().Has(CastleBQ))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"8/P6k/8/8/8/8/7K/8 w - - 0 1",
	}
	for _, fen := range fens {
		p := MustNewPosition(fen)
		assert.Equal(t, fen, p.Fen(), fen)
	}
}

func TestMakeUnmakeRestoresHashAndState(t *testing.T) {
	require := assert.New(t)
	p := MustNewPosition(StartFen)
	hashBefore := p.ZobristKey()
	fenBefore := p.Fen()

	p.Make(NewMove(SqE2, SqE4, FlagDoublePawnPush))
	require.NotEqual(hashBefore, p.ZobristKey())
	require.Equal(SqE3, p.EpSquare())

	p.Unmake()
	require.Equal(hashBefore, p.ZobristKey())
	require.Equal(fenBefore, p.Fen())
}

func TestEnPassantSquareClearsAfterOneUnrelatedMove(t *testing.T) {
	require := assert.New(t)
	p := MustNewPosition(StartFen)
	p.Make(NewMove(SqE2, SqE4, FlagDoublePawnPush))
	require.Equal(SqE3, p.EpSquare())

	p.Make(NewMove(SqB8, SqC6, FlagQuiet))
	require.Equal(SqNone, p.EpSquare(), "the en passant square only survives the immediately following move")
}

func TestCastlingRightsClearOnKingMove(t *testing.T) {
	require := assert.New(t)
	p := MustNewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.Make(NewMove(SqE1, SqE2, FlagQuiet))
	require.False(p.CastlingRights().Has(CastleWK))
	require.False(p.CastlingRights().Has(CastleWQ))
	require.True(p.CastlingRights().Has(CastleBK))
	require.True(p.CastlingRights().Has(CastleBQ))
}

func TestCastlingRightsClearOnRookCapture(t *testing.T) {
	require := assert.New(t)
	p := MustNewPosition("r3k2r/2N5/8/8/8/8/8/R3K2R w KQkq - 0 1")
	// Knight captures the a8 rook, removing black's queenside right even
	// though black's own king and rook never moved.
	p.Make(NewMove(SqC7, SqA8, FlagCapture))
	require.False(p.CastlingRights().Has(CastleBQ))
	require.True(p.CastlingRights().Has(CastleBK))
}

func TestHalfMoveClockResetsOnPawnMoveAndCapture(t *testing.T) {
	require := assert.New(t)
	p := MustNewPosition("4k3/8/8/8/8/8/4P3/4KN2 w - - 10 1")
	p.Make(NewMove(SqF1, SqG3, FlagQuiet))
	require.Equal(11, p.HalfMoveClock())

	p.Make(NewMove(SqE8, SqD8, FlagQuiet))
	p.Make(NewMove(SqE2, SqE4, FlagDoublePawnPush))
	require.Equal(0, p.HalfMoveClock(), "a pawn move resets the clock")
}

func TestCloneIsIndependent(t *testing.T) {
	require := assert.New(t)
	p := MustNewPosition(StartFen)
	clone := p.Clone()
	clone.Make(NewMove(SqE2, SqE4, FlagDoublePawnPush))

	require.Equal(SqNone, p.EpSquare(), "mutating the clone must not affect the original")
	require.Equal(SqE3, clone.EpSquare())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	p := MustNewPosition("k7/8/8/8/8/8/8/KR6 w - - 100 1")
	assert.True(t, p.IsFiftyMoveDraw())
}

func TestHasInsufficientMaterial(t *testing.T) {
	require := assert.New(t)
	require.True(hasInsufficientMaterial(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1"))
	require.True(hasInsufficientMaterial(t, "4k3/8/8/8/8/8/8/4KN2 w - - 0 1"))
	require.False(hasInsufficientMaterial(t, "4k3/8/8/8/8/8/8/4KR2 w - - 0 1"))
}

func hasInsufficientMaterial(t *testing.T, fen string) bool {
	t.Helper()
	p := MustNewPosition(fen)
	return p.HasInsufficientMaterial()
}

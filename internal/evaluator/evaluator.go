// Package evaluator scores a position from the side-to-move's perspective:
// material balance plus piece-square tables (spec §4.H). No pawn structure,
// king safety, mobility or game-phase interpolation - those belong to a
// fuller evaluator than this spec calls for.
//
// Grounded on FrankyGo's internal/evaluator.Evaluator (NewEvaluator() /
// Evaluate(position) shape, config-driven piece values) and its
// internal/types/posValues.go piece-square tables, collapsed from
// FrankyGo's separate midgame/endgame-interpolated tables to the single
// static table the spec's simpler evaluator calls for.
package evaluator

import (
	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

// Evaluator scores positions using material and piece-square tables. It
// holds no per-position state, so a single instance may be reused and
// shared across goroutines.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator { return &Evaluator{} }

// Evaluate returns the static evaluation of p from the side-to-move's
// perspective: positive means the side to move stands better.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	var white, black Value
	for pt := Pawn; pt <= King; pt++ {
		white += scorePieces(p.PiecesOf(White, pt), pt, White)
		black += scorePieces(p.PiecesOf(Black, pt), pt, Black)
	}
	if p.SideToMove() == White {
		return white - black
	}
	return black - white
}

func scorePieces(bb Bitboard, pt PieceType, c Color) Value {
	var total Value
	material := pieceValue(pt)
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLsb()
		total += material
		if config.Settings.Eval.UsePieceSquareTables {
			total += pieceSquareValue(pt, c, sq)
		}
	}
	return total
}

func pieceValue(pt PieceType) Value {
	switch pt {
	case Pawn:
		return Value(config.Settings.Eval.PawnValue)
	case Knight:
		return Value(config.Settings.Eval.KnightValue)
	case Bishop:
		return Value(config.Settings.Eval.BishopValue)
	case Rook:
		return Value(config.Settings.Eval.RookValue)
	case Queen:
		return Value(config.Settings.Eval.QueenValue)
	default:
		return 0
	}
}

// pieceSquareValue looks up pt's table entry for sq, mirroring the board
// vertically for White (FrankyGo's tables, like most PST sets in the
// literature, are written from Black's viewpoint with rank 8 first).
func pieceSquareValue(pt PieceType, c Color, sq Square) Value {
	idx := int(sq)
	if c == White {
		idx = 63 - idx
	}
	return pst(pt)[idx]
}

func pst(pt PieceType) *[SqLength]Value {
	switch pt {
	case Pawn:
		return &pawnTable
	case Knight:
		return &knightTable
	case Bishop:
		return &bishopTable
	case Rook:
		return &rookTable
	case Queen:
		return &queenTable
	default:
		return &kingTable
	}
}

var (
	pawnTable = [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -30, -30, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 5, 5, 5, 5, 5, 5, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightTable = [SqLength]Value{
		-50, -25, -20, -30, -30, -20, -25, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}

	bishopTable = [SqLength]Value{
		-20, -10, -40, -10, -10, -40, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}

	rookTable = [SqLength]Value{
		-15, -10, 15, 15, 15, 15, -10, -15,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		5, 5, 5, 5, 5, 5, 5, 5,
	}

	queenTable = [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}

	kingTable = [SqLength]Value{
		20, 50, 0, -20, -20, 0, 50, 20,
		0, 0, -20, -20, -20, -20, 0, 0,
		-10, -20, -20, -30, -30, -30, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
)

// Package position represents a chess position as piece-indexed bitboards
// plus a redundant 8x8 piece array, and provides incremental make/unmake
// with Zobrist hashing and repetition tracking (spec §3, §4.C, §4.G).
//
// Grounded on FrankyGo's internal/position.Position: same
// struct-plus-history-stack shape, same doMove/undoMove dispatch by move
// kind, same putPiece/removePiece/movePiece helpers - but the bitboard set
// is piece-code-indexed per the spec's data model (15 bitboards, codes
// 0..14, color bit 3) rather than FrankyGo's separate color/piece-type
// arrays.
package position

import (
	"fmt"

	"github.com/corechess/engine/internal/assert"
	"github.com/corechess/engine/internal/logging"
	. "github.com/corechess/engine/internal/types"
)

var log = logging.GetLog("position")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoState is one entry of the history stack pushed by Make and popped by
// Unmake (spec §3 "History stack").
type undoState struct {
	move                  Move
	movedPiece            Piece
	capturedPiece         Piece
	castlingRights        CastlingRights
	epSquare              Square
	halfMoveClock         int
	repetitionWindowStart int
	hashBefore            Key
}

// Position is the mutable chess board state. Create one with NewPosition.
type Position struct {
	// bb is indexed by Piece code (0..14). bb[0] and bb[8] are never set by
	// putPiece/removePiece directly for an actual piece (PieceNone never
	// occupies a bitboard slot); they are maintained as the running union of
	// White's and Black's piece bitboards respectively (spec §3 invariant 2).
	bb    [PieceLength]Bitboard
	board [64]Piece

	sideToMove     Color
	castling       CastlingRights
	epSquare       Square
	halfMoveClock  int
	fullMoveNumber int

	ply                   int
	repetitionWindowStart int
	hash                  Key

	history   []undoState
	posHashes []Key
}

// whiteAll / blackAll name the two repurposed aggregate-occupancy slots.
const (
	whiteAll = Piece(0)
	blackAll = Piece(8)
)

// NewPosition parses fen and returns a ready-to-use Position. A malformed
// FEN is fatal to the caller (spec §7): there is no meaningful default to
// fall back to, so the error is returned rather than panicking.
func NewPosition(fen string) (*Position, error) {
	p := &Position{epSquare: SqNone}
	if err := p.setupFromFen(fen); err != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", err)
		return nil, err
	}
	return p, nil
}

// MustNewPosition is NewPosition but panics on a malformed FEN; convenient
// for tests and for the standard start position.
func MustNewPosition(fen string) *Position {
	p, err := NewPosition(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// Clone returns a deep, independent copy of p.
func (p *Position) Clone() *Position {
	cp := *p
	cp.history = append([]undoState(nil), p.history...)
	cp.posHashes = append([]Key(nil), p.posHashes...)
	return &cp
}

// --- accessors -------------------------------------------------------------

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// IsWhiteTurn reports whether it is White's turn to move.
func (p *Position) IsWhiteTurn() bool { return p.sideToMove == White }

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// Bitboard returns the raw bitboard stored at piece-code index i (0..14),
// per the public API's bitboard(i) accessor (spec §6). Indices 0 and 8
// return the full White/Black occupancy.
func (p *Position) Bitboard(i int) Bitboard { return p.bb[i] }

// PiecesOf returns the bitboard of all pieces of kind pt and color c.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard { return p.bb[MakePiece(c, pt)] }

// Occupied returns the union of all pieces of color c.
func (p *Position) Occupied(c Color) Bitboard {
	if c == White {
		return p.bb[whiteAll]
	}
	return p.bb[blackAll]
}

// OccupiedAll returns the union of every piece on the board.
func (p *Position) OccupiedAll() Bitboard { return p.bb[whiteAll] | p.bb[blackAll] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.bb[MakePiece(c, King)].Lsb()
}

// CastlingRights returns the current castling-rights bitmask.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EpSquare returns the en-passant target square, or SqNone if none.
func (p *Position) EpSquare() Square { return p.epSquare }

// HalfMoveClock returns the number of plies since the last pawn move or
// capture.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Ply returns the total number of plies played since the initial FEN.
func (p *Position) Ply() int { return p.ply }

// ZobristKey returns the running Zobrist hash.
func (p *Position) ZobristKey() Key { return p.hash }

// RepetitionWindowStart returns the ply at which the current irreversible
// window began.
func (p *Position) RepetitionWindowStart() int { return p.repetitionWindowStart }

// State returns the full 64-entry square array (spec §6 state()).
func (p *Position) State() [64]Piece { return p.board }

// String renders an ASCII board diagram for logging/debugging.
func (p *Position) String() string {
	var out string
	for r := 7; r >= 0; r-- {
		out += Rank(r).String() + " "
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank(r))]
			if pc == PieceNone {
				out += ". "
			} else {
				out += pc.Char() + " "
			}
		}
		out += "\n"
	}
	out += "  a b c d e f g h\n"
	out += fmt.Sprintf("side=%s castling=%s ep=%s halfmove=%d ply=%d hash=%x\n",
		p.sideToMove, p.castling, p.epSquare, p.halfMoveClock, p.ply, uint64(p.hash))
	return out
}

// --- board mutation primitives ---------------------------------------------
// These three helpers are the only code that touches bb/board/hash at once;
// every higher-level move application (Make/Unmake in domove.go) is built from
// them, mirroring FrankyGo's putPiece/removePiece/movePiece split.

func (p *Position) putPiece(piece Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece: square %s already occupied", sq)
	}
	p.board[sq] = piece
	p.bb[piece] = p.bb[piece].PushSquare(sq)
	if piece.ColorOf() == White {
		p.bb[whiteAll] = p.bb[whiteAll].PushSquare(sq)
	} else {
		p.bb[blackAll] = p.bb[blackAll].PushSquare(sq)
	}
	p.hash ^= ZobristPieceSquare(piece, sq)
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "removePiece: square %s is empty", sq)
	}
	p.board[sq] = PieceNone
	p.bb[piece] = p.bb[piece].PopSquare(sq)
	if piece.ColorOf() == White {
		p.bb[whiteAll] = p.bb[whiteAll].PopSquare(sq)
	} else {
		p.bb[blackAll] = p.bb[blackAll].PopSquare(sq)
	}
	p.hash ^= ZobristPieceSquare(piece, sq)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	p.putPiece(piece, to)
}

// castleRightsMask[sq], ANDed into the castling rights whenever a move's
// origin or destination is sq, clears the right(s) tied to that square: the
// two king squares clear both of their side's rights, the four rook-home
// squares clear one right each (spec §9 point iii).
var castleRightsMask [64]CastlingRights

func init() {
	for sq := range castleRightsMask {
		castleRightsMask[sq] = CastleAll
	}
	castleRightsMask[SqE1] = CastleAll &^ (CastleWK | CastleWQ)
	castleRightsMask[SqH1] = CastleAll &^ CastleWK
	castleRightsMask[SqA1] = CastleAll &^ CastleWQ
	castleRightsMask[SqE8] = CastleAll &^ (CastleBK | CastleBQ)
	castleRightsMask[SqH8] = CastleAll &^ CastleBK
	castleRightsMask[SqA8] = CastleAll &^ CastleBQ
}

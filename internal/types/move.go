package types

import "strings"

// Move packs a chess move into one 16-bit word (spec §4.B):
//
//	bits 0-5   destination square
//	bits 6-11  origin square
//	bits 12-15 flag
//
// This mirrors FrankyGo's packed Move encoding (pkg/types/move.go) but uses
// the flag layout from the spec instead of FrankyGo's separate
// move-type/promotion-type fields, so that bit 2 of the flag alone tells a
// capture and bit 3 alone tells a promotion - useful for search move
// ordering (captures and promotions sort first).
type Move uint16

// Flag values (spec §4.B).
const (
	FlagQuiet           = 0
	FlagDoublePawnPush  = 1
	FlagCastleKingside  = 2
	FlagCastleQueenside = 3
	FlagCapture         = 4
	FlagEnPassant       = 5
	FlagPromoKnight     = 8
	FlagPromoBishop     = 9
	FlagPromoRook       = 10
	FlagPromoQueen      = 11
	FlagPromoKnightCap  = 12
	FlagPromoBishopCap  = 13
	FlagPromoRookCap    = 14
	FlagPromoQueenCap   = 15
)

const (
	MoveNone Move = 0

	toShift   = 0
	fromShift = 6
	flagShift = 12

	toMask   Move = 0x3F
	fromMask Move = 0x3F << fromShift
	flagMask Move = 0xF << flagShift
)

// NewMove encodes a move from its origin, destination and flag.
func NewMove(from, to Square, flag uint8) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(flag)<<flagShift
}

// To returns the destination square.
func (m Move) To() Square { return Square((m & toMask) >> toShift) }

// From returns the origin square.
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

// Flag returns the 4-bit move flag.
func (m Move) Flag() uint8 { return uint8((m & flagMask) >> flagShift) }

// IsCapture reports whether the move removes an enemy piece (flag bit 2).
func (m Move) IsCapture() bool { return m.Flag()&0x4 != 0 }

// IsPromotion reports whether the move promotes a pawn (flag bit 3).
func (m Move) IsPromotion() bool { return m.Flag()&0x8 != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsDoublePawnPush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool { return m.Flag() == FlagDoublePawnPush }

// IsCastle reports whether the move is a castling move (either side).
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// IsCastleKingside reports whether the move is an O-O.
func (m Move) IsCastleKingside() bool { return m.Flag() == FlagCastleKingside }

// IsCastleQueenside reports whether the move is an O-O-O.
func (m Move) IsCastleQueenside() bool { return m.Flag() == FlagCastleQueenside }

// PromotionType returns the piece type a promotion move becomes. Only
// meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return Knight + PieceType(m.Flag()&0x3)
}

// IsTactical reports whether the move is a capture or a promotion - the
// ordering predicate quiescence search and move ordering rely on to sort
// tactical moves first (spec §4.B, §4.I).
func (m Move) IsTactical() bool { return m.IsCapture() || m.IsPromotion() }

// IsValid reports whether m encodes distinct, on-board squares. MoveNone is
// never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// promoLetter maps a promotion flag to its UCI suffix letter.
func (m Move) promoLetter() string {
	switch m.PromotionType() {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// StringUci renders the move the way a UCI interface (or our CLI) would,
// e.g. "e2e4" or "a7a8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(m.promoLetter())
	}
	return sb.String()
}

func (m Move) String() string { return m.StringUci() }

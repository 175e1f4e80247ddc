// Package movegen generates legal moves for a position (spec §4.F): pawn,
// knight, bishop, rook, queen and king moves, plus castling, filtered by
// check count, the check-evasion mask and per-piece pin rays computed by
// internal/analysis so that no pseudo-legal-then-discard pass is needed
// except for the narrow en-passant discovery-check case (§4.F.1).
//
// Grounded on FrankyGo's internal/movegen.Movegen: the same
// generatePawnMoves/generateCastling/generateKingMoves/generateMoves split
// and the same "shift the pawn bitboard, AND with target squares" technique,
// adapted to mask-in check evasion and pins during generation rather than
// generating pseudo-legal moves and filtering them out afterward with a
// trial Make/Unmake per move.
package movegen

import (
	"github.com/corechess/engine/internal/analysis"
	"github.com/corechess/engine/internal/logging"
	"github.com/corechess/engine/internal/moveslice"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

var log = logging.GetLog("movegen")

// MaxMoves is the initial capacity of a generated move slice. It covers the
// move count of typical positions; a position with more legal moves grows
// the slice on append.
const MaxMoves = 128

// GenerateLegalMoves returns every legal move for the side to move in p.
func GenerateLegalMoves(p *position.Position) *moveslice.MoveSlice {
	info := analysis.Compute(p)
	ml := moveslice.NewMoveSlice(MaxMoves)

	if info.NumChecks < 2 {
		generatePawnMoves(p, &info, ml)
		generateKnightMoves(p, &info, ml)
		generateSliderMoves(p, &info, Bishop, ml)
		generateSliderMoves(p, &info, Rook, ml)
		generateSliderMoves(p, &info, Queen, ml)
		generateCastling(p, &info, ml)
	}
	generateKingMoves(p, &info, ml)

	log.Debugf("generated %d legal moves (checks=%d) for %s to move", ml.Len(), info.NumChecks, p.SideToMove())
	return ml
}

// HasLegalMove reports whether the side to move has at least one legal
// move, for callers where only emptiness matters (checkmate detection). It
// generates the full legal move list and checks its length.
func HasLegalMove(p *position.Position) bool {
	return GenerateLegalMoves(p).Len() > 0
}

// allowedDestinations intersects the check-evasion mask with a piece's pin
// ray (BbAll if it is not pinned) - the single expression that turns
// "pseudo-legal destinations" into "legal destinations" for every piece but
// the king.
func allowedDestinations(info *analysis.Info, fromSq Square) Bitboard {
	mask := info.CheckEvasionMask
	if info.PinnedPieces.Has(fromSq) {
		mask &= info.PinRay(fromSq)
	}
	return mask
}

func generateKnightMoves(p *position.Position, info *analysis.Info, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	ownOccupied := p.Occupied(us)
	oppOccupied := p.Occupied(us.Flip())
	for bb := p.PiecesOf(us, Knight); bb != BbZero; {
		var fromSq Square
		fromSq, bb = bb.PopLsb()
		destinations := KnightAttacks(fromSq) &^ ownOccupied & allowedDestinations(info, fromSq)
		pushDestinations(fromSq, destinations, oppOccupied, ml)
	}
}

func generateSliderMoves(p *position.Position, info *analysis.Info, pt PieceType, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	occupied := p.OccupiedAll()
	ownOccupied := p.Occupied(us)
	oppOccupied := p.Occupied(us.Flip())
	for bb := p.PiecesOf(us, pt); bb != BbZero; {
		var fromSq Square
		fromSq, bb = bb.PopLsb()
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(fromSq, occupied)
		case Rook:
			attacks = RookAttacks(fromSq, occupied)
		case Queen:
			attacks = QueenAttacks(fromSq, occupied)
		}
		destinations := attacks &^ ownOccupied & allowedDestinations(info, fromSq)
		pushDestinations(fromSq, destinations, oppOccupied, ml)
	}
}

func pushDestinations(fromSq Square, destinations, oppOccupied Bitboard, ml *moveslice.MoveSlice) {
	for destinations != 0 {
		var toSq Square
		toSq, destinations = destinations.PopLsb()
		flag := uint8(FlagQuiet)
		if oppOccupied.Has(toSq) {
			flag = FlagCapture
		}
		ml.PushBack(NewMove(fromSq, toSq, flag))
	}
}

func generateKingMoves(p *position.Position, info *analysis.Info, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	fromSq := p.KingSquare(us)
	ownOccupied := p.Occupied(us)
	oppOccupied := p.Occupied(us.Flip())
	destinations := KingAttacks(fromSq) &^ ownOccupied &^ info.OpponentAttackMap
	pushDestinations(fromSq, destinations, oppOccupied, ml)
}

// castleIntermediate returns, for one castling direction, the squares
// between king and rook that must be empty ("is the path clear") and the
// squares the king stands on, crosses and lands on, none of which may be
// attacked ("is the path safe").
func castleIntermediate(c Color, kingside bool) (path, kingSquares Bitboard) {
	if c == White {
		if kingside {
			return SqF1.Bb() | SqG1.Bb(), SqE1.Bb() | SqF1.Bb() | SqG1.Bb()
		}
		return SqB1.Bb() | SqC1.Bb() | SqD1.Bb(), SqE1.Bb() | SqD1.Bb() | SqC1.Bb()
	}
	if kingside {
		return SqF8.Bb() | SqG8.Bb(), SqE8.Bb() | SqF8.Bb() | SqG8.Bb()
	}
	return SqB8.Bb() | SqC8.Bb() | SqD8.Bb(), SqE8.Bb() | SqD8.Bb() | SqC8.Bb()
}

func generateCastling(p *position.Position, info *analysis.Info, ml *moveslice.MoveSlice) {
	if info.NumChecks != 0 {
		return // may not castle out of check
	}
	us := p.SideToMove()
	occupied := p.OccupiedAll()
	kingFrom := p.KingSquare(us)

	tryOne := func(has bool, kingside bool) {
		if !has {
			return
		}
		path, kingSquares := castleIntermediate(us, kingside)
		if path&occupied != 0 {
			return
		}
		if kingSquares&info.OpponentAttackMap != 0 {
			return
		}
		toSq := SqG1
		flag := uint8(FlagCastleKingside)
		switch {
		case us == White && !kingside:
			toSq, flag = SqC1, FlagCastleQueenside
		case us == Black && kingside:
			toSq = SqG8
		case us == Black && !kingside:
			toSq, flag = SqC8, FlagCastleQueenside
		}
		ml.PushBack(NewMove(kingFrom, toSq, flag))
	}

	rights := p.CastlingRights()
	tryOne(rights.Has(KingsideRight(us)), true)
	tryOne(rights.Has(QueensideRight(us)), false)
}

func pawnPushDir(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

func promotionRank(c Color) Bitboard {
	if c == White {
		return Rank8Bb
	}
	return Rank1Bb
}

// doublePushFromRank returns the rank a pawn lands on after one push and
// from which, if still unblocked, it may push a second time: rank 3 for
// White (from rank 2), rank 6 for Black (from rank 7).
func doublePushFromRank(c Color) Bitboard {
	if c == White {
		return Rank3Bb
	}
	return Rank6Bb
}

func pushPromotions(fromSq, toSq Square, capture bool, ml *moveslice.MoveSlice) {
	base := uint8(FlagPromoKnight)
	if capture {
		base = FlagPromoKnightCap
	}
	for _, delta := range []uint8{0, 1, 2, 3} { // knight, bishop, rook, queen order
		ml.PushBack(NewMove(fromSq, toSq, base+delta))
	}
}

func generatePawnMoves(p *position.Position, info *analysis.Info, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	them := us.Flip()
	fwd := pawnPushDir(us)
	occupied := p.OccupiedAll()
	oppOccupied := p.Occupied(them)
	myPawns := p.PiecesOf(us, Pawn)
	promRank := promotionRank(us)

	// single and double pushes
	singlePush := ShiftBitboard(myPawns, fwd) &^ occupied
	doublePush := ShiftBitboard(singlePush&doublePushFromRank(us), fwd) &^ occupied

	for bb := singlePush; bb != 0; {
		var toSq Square
		toSq, bb = bb.PopLsb()
		fromSq := toSq.To(oppositeOf(fwd))
		if !allowedDestinations(info, fromSq).Has(toSq) {
			continue
		}
		if promRank.Has(toSq) {
			pushPromotions(fromSq, toSq, false, ml)
		} else {
			ml.PushBack(NewMove(fromSq, toSq, FlagQuiet))
		}
	}
	for bb := doublePush; bb != 0; {
		var toSq Square
		toSq, bb = bb.PopLsb()
		fromSq := toSq.To(oppositeOf(fwd)).To(oppositeOf(fwd))
		if !allowedDestinations(info, fromSq).Has(toSq) {
			continue
		}
		ml.PushBack(NewMove(fromSq, toSq, FlagDoublePawnPush))
	}

	// captures
	for _, side := range []Direction{West, East} {
		captures := ShiftBitboard(myPawns, fwd+side) & oppOccupied
		for bb := captures; bb != 0; {
			var toSq Square
			toSq, bb = bb.PopLsb()
			fromSq := toSq.To(oppositeOf(fwd + side))
			if !allowedDestinations(info, fromSq).Has(toSq) {
				continue
			}
			if promRank.Has(toSq) {
				pushPromotions(fromSq, toSq, true, ml)
			} else {
				ml.PushBack(NewMove(fromSq, toSq, FlagCapture))
			}
		}
	}

	generateEnPassant(p, info, us, them, fwd, ml)
}

// generateEnPassant handles the single current en-passant target, including
// the discovery-check edge case (spec §4.F.1): removing both the capturing
// and captured pawn from the same rank can expose the king to a rook or
// queen that neither pawn was individually pinning against, so - unlike
// every other move above - this is validated by actually playing the move
// on a scratch copy of the position rather than by a pin-ray intersection.
func generateEnPassant(p *position.Position, info *analysis.Info, us, them Color, fwd Direction, ml *moveslice.MoveSlice) {
	epSq := p.EpSquare()
	if epSq == SqNone {
		return
	}
	myPawns := p.PiecesOf(us, Pawn)
	for _, side := range []Direction{West, East} {
		fromSq := epSq.To(oppositeOf(fwd + side))
		if fromSq == SqNone || !myPawns.Has(fromSq) {
			continue
		}
		if !allowedDestinations(info, fromSq).Has(epSq) {
			continue
		}
		m := NewMove(fromSq, epSq, FlagEnPassant)
		cp := p.Clone()
		cp.Make(m)
		if analysis.AttackersTo(cp, cp.KingSquare(us), them) != BbZero {
			continue
		}
		ml.PushBack(m)
	}
}

func oppositeOf(d Direction) Direction { return -d }

package position

import (
	"github.com/corechess/engine/internal/assert"
	. "github.com/corechess/engine/internal/types"
)

// rookCastleSquares returns the rook's origin and destination for a castling
// move of color c in direction (kingside if kingside is true).
func rookCastleSquares(c Color, kingside bool) (from, to Square) {
	switch {
	case c == White && kingside:
		return SqH1, SqF1
	case c == White && !kingside:
		return SqA1, SqD1
	case c == Black && kingside:
		return SqH8, SqF8
	default:
		return SqA8, SqD8
	}
}

// Make applies m to the position. m must be a move returned by the legal
// move generator for this exact position (spec §7: undefined behavior
// otherwise - this layer does not validate legality, only mechanics).
func (p *Position) Make(m Move) {
	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	mover := fromPc.ColorOf()

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "position Make: invalid move %s", m)
		assert.Assert(fromPc != PieceNone, "position Make: no piece on %s for move %s", fromSq, m)
		assert.Assert(mover == p.sideToMove, "position Make: %s to move, move %s moves the other side", p.sideToMove, m)
	}

	rec := undoState{
		move:                  m,
		movedPiece:            fromPc,
		capturedPiece:         PieceNone,
		castlingRights:        p.castling,
		epSquare:              p.epSquare,
		halfMoveClock:         p.halfMoveClock,
		repetitionWindowStart: p.repetitionWindowStart,
		hashBefore:            p.hash,
	}

	if p.epSquare != SqNone {
		p.hash ^= ZobristEpFile(p.epSquare.FileOf())
		p.epSquare = SqNone
	}

	p.ply++
	p.halfMoveClock++
	if mover == Black {
		p.fullMoveNumber++
	}

	flag := m.Flag()
	irreversible := fromPc.TypeOf() == Pawn

	switch {
	case m.IsEnPassant():
		capSq := toSq.To(South)
		if mover == Black {
			capSq = toSq.To(North)
		}
		rec.capturedPiece = p.removePiece(capSq)
		p.movePiece(fromSq, toSq)
		irreversible = true

	case m.IsCastle():
		p.movePiece(fromSq, toSq)
		rFrom, rTo := rookCastleSquares(mover, flag == FlagCastleKingside)
		p.movePiece(rFrom, rTo)

	case m.IsCapture():
		rec.capturedPiece = p.removePiece(toSq)
		p.removePiece(fromSq)
		if m.IsPromotion() {
			p.putPiece(MakePiece(mover, m.PromotionType()), toSq)
		} else {
			p.putPiece(fromPc, toSq)
		}
		irreversible = true

	case m.IsPromotion():
		p.removePiece(fromSq)
		p.putPiece(MakePiece(mover, m.PromotionType()), toSq)
		irreversible = true

	default:
		p.movePiece(fromSq, toSq)
		if m.IsDoublePawnPush() {
			skipped := fromSq.To(North)
			if mover == Black {
				skipped = fromSq.To(South)
			}
			p.epSquare = skipped
			p.hash ^= ZobristEpFile(skipped.FileOf())
		}
	}

	newRights := p.castling & castleRightsMask[fromSq] & castleRightsMask[toSq]
	p.hash ^= ZobristCastling(p.castling) ^ ZobristCastling(newRights)
	p.castling = newRights

	if irreversible {
		p.halfMoveClock = 0
		p.repetitionWindowStart = p.ply
	}

	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= ZobristSideToMove()

	p.history = append(p.history, rec)
	p.posHashes = append(p.posHashes, p.hash)

	if assert.DEBUG {
		p.assertInvariants()
	}
}

// Unmake reverses the most recent Make call. It is undefined to call Unmake
// on a position with an empty history (spec §7).
func (p *Position) Unmake() {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 0, "position Unmake: no move to undo")
	}

	p.posHashes = p.posHashes[:len(p.posHashes)-1]
	rec := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.ply--
	p.sideToMove = p.sideToMove.Flip()
	mover := rec.movedPiece.ColorOf()
	if mover == Black {
		p.fullMoveNumber--
	}

	m := rec.move
	fromSq, toSq := m.From(), m.To()

	switch {
	case m.IsEnPassant():
		p.movePiece(toSq, fromSq)
		capSq := toSq.To(South)
		if mover == Black {
			capSq = toSq.To(North)
		}
		p.putPiece(rec.capturedPiece, capSq)

	case m.IsCastle():
		p.movePiece(toSq, fromSq)
		rFrom, rTo := rookCastleSquares(mover, m.Flag() == FlagCastleKingside)
		p.movePiece(rTo, rFrom)

	case m.IsPromotion():
		p.removePiece(toSq)
		p.putPiece(rec.movedPiece, fromSq)
		if m.IsCapture() {
			p.putPiece(rec.capturedPiece, toSq)
		}

	default:
		p.movePiece(toSq, fromSq)
		if m.IsCapture() {
			p.putPiece(rec.capturedPiece, toSq)
		}
	}

	p.castling = rec.castlingRights
	p.epSquare = rec.epSquare
	p.halfMoveClock = rec.halfMoveClock
	p.repetitionWindowStart = rec.repetitionWindowStart
	// The hash is popped rather than recomputed (spec §4.G Unmake): the
	// piece shuffling above already re-derives bb/board, but we do not try
	// to mirror its XORs exactly - the saved pre-move hash is authoritative.
	p.hash = rec.hashBefore

	if assert.DEBUG {
		p.assertInvariants()
	}
}

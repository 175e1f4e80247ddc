package position

import (
	"github.com/corechess/engine/internal/assert"
	. "github.com/corechess/engine/internal/types"
)

// assertInvariants checks the §3 invariants that must hold after every
// Make/Unmake. Compiled to nothing unless assert.DEBUG is true; callers
// guard every call site with "if assert.DEBUG" so arguments aren't even
// evaluated in release builds.
func (p *Position) assertInvariants() {
	// 1: board array <-> bitboards agreement.
	for sq := SqA1; sq < SqNone; sq++ {
		pc := p.board[sq]
		for code := 0; code < PieceLength; code++ {
			if code == int(whiteAll) || code == int(blackAll) {
				continue
			}
			has := p.bb[code].Has(sq)
			assert.Assert(has == (pc == Piece(code)), "position invariant 1: square %s piece %s bitboard %d mismatch", sq, pc, code)
		}
	}

	// 2/3: aggregate occupancy bitboards are the union of, and disjoint
	// from, the per-piece bitboards.
	var whiteUnion, blackUnion Bitboard
	for pt := Pawn; pt <= King; pt++ {
		whiteUnion |= p.bb[MakePiece(White, pt)]
		blackUnion |= p.bb[MakePiece(Black, pt)]
	}
	assert.Assert(p.bb[whiteAll] == whiteUnion, "position invariant 2: white aggregate occupancy out of sync")
	assert.Assert(p.bb[blackAll] == blackUnion, "position invariant 2: black aggregate occupancy out of sync")
	assert.Assert(p.bb[whiteAll]&p.bb[blackAll] == 0, "position invariant 3: white/black occupancy overlap")

	// 4: exactly one king per side.
	assert.Assert(p.bb[MakePiece(White, King)].PopCount() == 1, "position invariant 4: white king count != 1")
	assert.Assert(p.bb[MakePiece(Black, King)].PopCount() == 1, "position invariant 4: black king count != 1")

	// 5: hash matches a from-scratch recomputation.
	assert.Assert(p.hash == p.computeHashFromScratch(), "position invariant 5: zobrist hash out of sync")

	// 6: history length equals ply.
	assert.Assert(len(p.history) == p.ply, "position invariant 6: history length %d != ply %d", len(p.history), p.ply)

	// 7: no pawn on rank 1 or 8.
	assert.Assert((p.bb[WhitePawn]|p.bb[BlackPawn])&(Rank1Bb|Rank8Bb) == 0, "position invariant 7: pawn on back rank")
}

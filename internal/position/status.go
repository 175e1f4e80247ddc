package position

import . "github.com/corechess/engine/internal/types"

// IsRepeatedAtLeast reports whether the current position's hash occurs at
// least n times among the hashes recorded since RepetitionWindowStart
// (spec §3 "draw... when the current hash appears at least twice...",
// resolved here as "occurs for the n-th time", the current position itself
// counting as the first occurrence; n=3 for the standard
// threefold-repetition rule - see the status.go entry in DESIGN.md).
func (p *Position) IsRepeatedAtLeast(n int) bool {
	window := p.posHashes[p.repetitionWindowStart:]
	current := p.hash
	count := 0
	for _, h := range window {
		if h == current {
			count++
			if count >= n {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the half-move clock has reached the
// 50-move (100 half-move) mark (spec §3).
func (p *Position) IsFiftyMoveDraw() bool { return p.halfMoveClock >= 100 }

// HasInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate: K vs K, K+N vs K, or K+B vs K (supplemental rule
// carried from the teacher, see SPEC_FULL.md).
func (p *Position) HasInsufficientMaterial() bool {
	nonKing := p.OccupiedAll() &^ (p.bb[WhiteKing] | p.bb[BlackKing])
	if nonKing == BbZero {
		return true
	}
	if nonKing.PopCount() != 1 {
		return false
	}
	minor := p.bb[WhiteKnight] | p.bb[BlackKnight] | p.bb[WhiteBishop] | p.bb[BlackBishop]
	return nonKing&minor == nonKing
}

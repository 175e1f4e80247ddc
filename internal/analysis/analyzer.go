// Package analysis computes, from a Position, the derived per-ply
// information the legal move generator needs: the opponent's attack map,
// the number of checks on the side to move's king, the check-evasion mask,
// and pinned pieces with their pin rays (spec §4.E).
//
// Grounded on FrankyGo's internal/attacks.Attacks (a sibling "compute once
// per ply from a Position" package with the same Compute(position) shape),
// adapted to produce the pin/check-evasion data the spec's move generator
// needs instead of FrankyGo's IsAttacked()-style legality recheck.
package analysis

import (
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

// Info holds everything the move generator needs about checks and pins for
// the side to move, valid for exactly the Position it was computed from.
type Info struct {
	OpponentAttackMap Bitboard
	NumChecks         int
	CheckEvasionMask  Bitboard
	PinnedPieces      Bitboard
	pinRay            [64]Bitboard
}

// PinRay returns the pin-ray mask for a pinned piece's square (only
// meaningful when PinnedPieces.Has(sq)).
func (info *Info) PinRay(sq Square) Bitboard { return info.pinRay[sq] }

var diagonalDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var orthogonalDirs = [4]Direction{North, South, East, West}

// Compute analyzes p from the perspective of its side to move.
func Compute(p *position.Position) Info {
	us := p.SideToMove()
	them := us.Flip()
	ourKing := p.KingSquare(us)
	occupied := p.OccupiedAll()
	occupiedNoKing := occupied.PopSquare(ourKing)

	info := Info{CheckEvasionMask: BbAll}

	// Opponent attack map: sliders see through our king's square, since if
	// the king moves off that square the ray continues past it (spec §4.E.1).
	info.OpponentAttackMap = computeAttackMap(p, them, occupiedNoKing)

	// Checkers against the true occupancy (the king is still on the board
	// for the purpose of asking "is it currently attacked").
	checkers := computeCheckers(p, them, ourKing, occupied)
	info.NumChecks = checkers.PopCount()

	switch info.NumChecks {
	case 0:
		info.CheckEvasionMask = BbAll
	case 1:
		checkerSq := checkers.Lsb()
		mask := checkerSq.Bb()
		checkerPt := p.PieceAt(checkerSq).TypeOf()
		if isSlider(checkerPt) {
			mask |= between(ourKing, checkerSq)
		}
		if checkerPt == Pawn && p.EpSquare() != SqNone && checkerSq == p.EpSquare().To(pawnForward(them)) {
			mask |= p.EpSquare().Bb()
		}
		info.CheckEvasionMask = mask
	default:
		info.CheckEvasionMask = BbZero
	}

	info.PinnedPieces, info.pinRay = computePins(p, us, them, ourKing, occupied)

	return info
}

// AttackersTo returns the set of by-colored pawns, knights, bishops, rooks
// and queens attacking sq given the current board occupancy; the by-colored
// king is not included. Exposed for the legal move generator's
// en-passant discovery-check check (spec §4.F.1), which needs to ask "is my
// king attacked" against a hypothetical position after two pawns vanish at
// once - a case the single-piece pin scan above does not cover.
func AttackersTo(p *position.Position, sq Square, by Color) Bitboard {
	return computeCheckers(p, by, sq, p.OccupiedAll())
}

func isSlider(pt PieceType) bool { return pt == Bishop || pt == Rook || pt == Queen }

func pawnForward(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

func computeAttackMap(p *position.Position, side Color, occupiedNoDefenderKing Bitboard) Bitboard {
	var attacks Bitboard
	for bb := p.PiecesOf(side, Pawn); bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		attacks |= PawnAttacks(side, sq)
	}
	for bb := p.PiecesOf(side, Knight); bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		attacks |= KnightAttacks(sq)
	}
	attacks |= KingAttacks(p.KingSquare(side))
	for bb := p.PiecesOf(side, Bishop) | p.PiecesOf(side, Queen); bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		attacks |= BishopAttacks(sq, occupiedNoDefenderKing)
	}
	for bb := p.PiecesOf(side, Rook) | p.PiecesOf(side, Queen); bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		attacks |= RookAttacks(sq, occupiedNoDefenderKing)
	}
	return attacks
}

// computeCheckers returns the set of them's pieces currently attacking
// kingSq. PawnAttacks(us, kingSq) gives the squares a pawn standing on
// kingSq would capture to if it belonged to us - which is exactly the set of
// squares an enemy pawn attacking kingSq could stand on.
func computeCheckers(p *position.Position, them Color, kingSq Square, occupied Bitboard) Bitboard {
	us := them.Flip()
	var checkers Bitboard
	checkers |= PawnAttacks(us, kingSq) & p.PiecesOf(them, Pawn)
	checkers |= KnightAttacks(kingSq) & p.PiecesOf(them, Knight)
	checkers |= BishopAttacks(kingSq, occupied) & (p.PiecesOf(them, Bishop) | p.PiecesOf(them, Queen))
	checkers |= RookAttacks(kingSq, occupied) & (p.PiecesOf(them, Rook) | p.PiecesOf(them, Queen))
	return checkers
}

func computePins(p *position.Position, us, them Color, kingSq Square, occupied Bitboard) (Bitboard, [64]Bitboard) {
	var pinned Bitboard
	var rays [64]Bitboard

	scan := func(dirs [4]Direction, pinnerTypes func(PieceType) bool) {
		for _, d := range dirs {
			var blocker Square = SqNone
			s := kingSq
			for {
				n := s.To(d)
				if n == SqNone {
					break
				}
				if !occupied.Has(n) {
					s = n
					continue
				}
				if blocker == SqNone {
					pc := p.PieceAt(n)
					if pc.ColorOf() == us {
						blocker = n
						s = n
						continue
					}
					break // first piece on the ray belongs to the opponent: not a pin
				}
				pc := p.PieceAt(n)
				if pc.ColorOf() == them && pinnerTypes(pc.TypeOf()) {
					pinned = pinned.PushSquare(blocker)
					rays[blocker] = between(kingSq, n) | n.Bb()
				}
				break
			}
		}
	}

	scan(diagonalDirs, func(pt PieceType) bool { return pt == Bishop || pt == Queen })
	scan(orthogonalDirs, func(pt PieceType) bool { return pt == Rook || pt == Queen })

	return pinned, rays
}

// between returns the squares strictly between a and b along the rank,
// file, or diagonal that connects them, or BbZero if they are not aligned.
func between(a, b Square) Bitboard {
	af, ar := int(a.FileOf()), int(a.RankOf())
	bf, br := int(b.FileOf()), int(b.RankOf())
	df, dr := sign(bf-af), sign(br-ar)
	if df == 0 && dr == 0 {
		return BbZero
	}
	if df != 0 && dr != 0 && abs(bf-af) != abs(br-ar) {
		return BbZero // not on a shared rank, file or diagonal
	}
	if df == 0 && bf != af {
		return BbZero
	}
	if dr == 0 && br != ar {
		return BbZero
	}
	var mask Bitboard
	f, r := af+df, ar+dr
	for f != bf || r != br {
		mask = mask.PushSquare(SquareOf(File(f), Rank(r)))
		f += df
		r += dr
	}
	return mask
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

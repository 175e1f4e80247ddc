// Package perft counts the leaf nodes of the legal move tree to a fixed
// depth, the standard correctness/performance harness for a move generator
// (spec §6 CLI surface). It exercises exactly the public Make/Unmake and
// legal-move-generation path a real search uses, with no pruning.
//
// Grounded on FrankyGo's internal/movegen.Perft: the same recursive
// miniMax node counter and per-category counters (captures, en passant,
// castles, promotions, checks, checkmates), adapted to call
// movegen.GenerateLegalMoves directly instead of re-deriving legality with
// a separate WasLegalMove() check, since this spec's generator never
// produces an illegal move to begin with.
package perft

import (
	"github.com/corechess/engine/internal/analysis"
	"github.com/corechess/engine/internal/movegen"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

// Result tallies the outcome of a perft run at one depth.
type Result struct {
	Depth      int
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

// Divide reports the node count each root move contributes, keyed by its
// UCI string - the standard way of isolating which root branch disagrees
// with a reference perft value.
type Divide struct {
	Move  string
	Nodes uint64
}

// Run computes perft(depth) from fen, returning node and category counts.
func Run(fen string, depth int) (Result, error) {
	if depth < 1 {
		depth = 1
	}
	p, err := position.NewPosition(fen)
	if err != nil {
		return Result{}, err
	}
	r := Result{Depth: depth}
	walk(p, depth, &r)
	return r, nil
}

// RunDivide is Run plus a per-root-move node-count breakdown.
func RunDivide(fen string, depth int) ([]Divide, Result, error) {
	if depth < 1 {
		depth = 1
	}
	p, err := position.NewPosition(fen)
	if err != nil {
		return nil, Result{}, err
	}
	r := Result{Depth: depth}
	moves := movegen.GenerateLegalMoves(p)
	div := make([]Divide, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		sub := Result{}
		p.Make(m)
		if depth > 1 {
			walk(p, depth-1, &sub)
		} else {
			sub.Nodes = 1
			tallyLeaf(p, m, &sub)
		}
		p.Unmake()
		div = append(div, Divide{Move: m.StringUci(), Nodes: sub.Nodes})
		r.Nodes += sub.Nodes
		r.Captures += sub.Captures
		r.EnPassant += sub.EnPassant
		r.Castles += sub.Castles
		r.Promotions += sub.Promotions
		r.Checks += sub.Checks
		r.CheckMates += sub.CheckMates
	}
	return div, r, nil
}

func walk(p *position.Position, depth int, r *Result) {
	moves := movegen.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if depth > 1 {
			p.Make(m)
			walk(p, depth-1, r)
			p.Unmake()
			continue
		}
		r.Nodes++
		p.Make(m)
		tallyLeaf(p, m, r)
		p.Unmake()
	}
}

// tallyLeaf records per-category counters for the move just made; p is the
// position AFTER the move, matching FrankyGo's "check counters on the
// resulting position" convention.
func tallyLeaf(p *position.Position, m Move, r *Result) {
	if m.IsEnPassant() {
		r.EnPassant++
		r.Captures++
	} else if m.IsCapture() {
		r.Captures++
	}
	if m.IsCastleKingside() || m.IsCastleQueenside() {
		r.Castles++
	}
	if m.IsPromotion() {
		r.Promotions++
	}
	info := analysis.Compute(p)
	if info.NumChecks > 0 {
		r.Checks++
		if !movegen.HasLegalMove(p) {
			r.CheckMates++
		}
	}
}

// Package search implements a single-threaded, fixed-depth negamax search
// with alpha-beta pruning and a capture/promotion quiescence extension
// (spec §4.I). There is no transposition table, iterative deepening,
// null-move pruning, or multi-threading - the spec's Non-goals explicitly
// exclude all of them.
//
// Grounded on FrankyGo's internal/search.Search (alphabeta.go): the same
// negamax-with-quiescence shape and the same "in check during qsearch
// means search every evasion, not just captures" rule, stripped of PVS,
// mate-distance pruning, killer/history heuristics and the transposition
// table that rule out of scope for this spec.
package search

import (
	"github.com/corechess/engine/internal/analysis"
	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/evaluator"
	"github.com/corechess/engine/internal/logging"
	"github.com/corechess/engine/internal/movegen"
	"github.com/corechess/engine/internal/moveslice"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

var log = logging.GetLog("search")

// MaxPly caps recursion in positions with very long forcing check
// sequences; real games are bounded well before this by the 50-move rule.
const MaxPly = 128

// Searcher runs a fixed-depth negamax search against a position. Create one
// with NewSearcher; a Searcher holds only its evaluator and node counter, so
// a fresh instance per search (or per goroutine) is cheap.
type Searcher struct {
	eval  *evaluator.Evaluator
	nodes uint64
}

// NewSearcher returns a ready-to-use Searcher.
func NewSearcher() *Searcher {
	return &Searcher{eval: evaluator.NewEvaluator()}
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search returns the best move and its negamax value for the side to move
// in p, searching to config.Settings.Search.Depth plies. Returns MoveNone if
// p has no legal moves (checkmate or stalemate).
func (s *Searcher) Search(p *position.Position) (Move, Value) {
	log.Debugf("Depth %-2.d start: %s", config.Settings.Search.Depth, p.Fen())
	defer func() { log.Debugf("Depth %-2.d end, nodes %d", config.Settings.Search.Depth, s.nodes) }()

	s.nodes = 0
	depth := config.Settings.Search.Depth
	if depth < 1 {
		depth = 1
	}

	moves := movegen.GenerateLegalMoves(p)
	if moves.Len() == 0 {
		return MoveNone, terminalValue(p, 0)
	}
	orderMoves(p, moves)

	alpha, beta := -ValueInfinite, ValueInfinite
	best := moves.At(0)
	bestValue := -ValueInfinite

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.Make(m)
		value := -s.negamax(p, depth-1, 1, -beta, -alpha)
		p.Unmake()

		if value > bestValue {
			bestValue = value
			best = m
		}
		if value > alpha {
			alpha = value
		}
	}
	return best, bestValue
}

// negamax searches p to depth plies (ply is the distance from the search
// root, used only to scale mate scores so a shorter mate is always
// preferred over a longer one).
func (s *Searcher) negamax(p *position.Position, depth, ply int, alpha, beta Value) Value {
	log.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d start", ply, "", ply, depth, alpha, beta)
	defer log.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d end", ply, "", ply, depth, alpha, beta)

	s.nodes++

	if p.IsFiftyMoveDraw() || p.IsRepeatedAtLeast(3) {
		return ValueDraw
	}

	moves := movegen.GenerateLegalMoves(p)
	if moves.Len() == 0 {
		return terminalValue(p, ply)
	}
	if depth <= 0 || ply >= MaxPly {
		return s.quiescence(p, ply, alpha, beta)
	}

	orderMoves(p, moves)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.Make(m)
		value := -s.negamax(p, depth-1, ply+1, -beta, -alpha)
		p.Unmake()

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// quiescence extends the search past the nominal depth limit over tactical
// moves only, to avoid misjudging a position in the middle of a capture
// exchange (the horizon effect). A position currently in check is searched
// exhaustively instead - there is no "stand pat" available to a king in
// check, and pruning to captures alone would miss forced check evasions.
func (s *Searcher) quiescence(p *position.Position, ply int, alpha, beta Value) Value {
	log.Debugf("%0*s Ply %-2.d QSearch a:%-6.d b:%-6.d start", ply, "", ply, alpha, beta)
	defer log.Debugf("%0*s Ply %-2.d QSearch a:%-6.d b:%-6.d end", ply, "", ply, alpha, beta)

	s.nodes++

	if p.IsFiftyMoveDraw() || p.IsRepeatedAtLeast(3) {
		return ValueDraw
	}

	info := analysis.Compute(p)
	inCheck := info.NumChecks > 0

	moves := movegen.GenerateLegalMoves(p)
	if moves.Len() == 0 {
		return terminalValue(p, ply)
	}

	if !config.Settings.Search.UseQuiescence || ply >= MaxPly {
		return s.eval.Evaluate(p)
	}

	if !inCheck {
		standPat := s.eval.Evaluate(p)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
		tactical := moveslice.NewMoveSlice(moves.Len())
		moves.ForEach(func(i int) {
			if moves.At(i).IsTactical() {
				tactical.PushBack(moves.At(i))
			}
		})
		moves = tactical
	}

	orderMoves(p, moves)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.Make(m)
		value := -s.quiescence(p, ply+1, -beta, -alpha)
		p.Unmake()

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// terminalValue scores a position with no legal moves: checkmate (scaled so
// a mate found closer to the root always outranks one found deeper) or
// stalemate.
func terminalValue(p *position.Position, ply int) Value {
	if analysis.Compute(p).NumChecks > 0 {
		return -ValueMate + Value(ply)
	}
	return ValueDraw
}

// orderMoves sorts ml so captures and promotions are searched before quiet
// moves, most valuable victim/least valuable attacker first - the single
// heuristic this search uses to make alpha-beta pruning effective without a
// transposition table or killer-move table to draw on.
func orderMoves(p *position.Position, ml *moveslice.MoveSlice) {
	scores := make([]int, ml.Len())
	ml.ForEach(func(i int) {
		scores[i] = moveScore(p, ml.At(i))
	})
	ml.Sort(scores)
}

func moveScore(p *position.Position, m Move) int {
	score := 0
	if m.IsCapture() {
		victim := p.PieceAt(captureSquare(p, m))
		attacker := p.PieceAt(m.From())
		score += 10*int(PieceValue(victim.TypeOf())) - int(PieceValue(attacker.TypeOf()))
	}
	if m.IsPromotion() {
		score += int(PieceValue(m.PromotionType()))
	}
	return score
}

// captureSquare returns the square whose piece m removes: the destination
// square for every capture except en passant, where the captured pawn sits
// behind the destination square.
func captureSquare(p *position.Position, m Move) Square {
	if !m.IsEnPassant() {
		return m.To()
	}
	if p.SideToMove() == White {
		return m.To().To(South)
	}
	return m.To().To(North)
}

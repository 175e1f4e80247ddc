// Package engine is the public surface of the chess core (spec §6): a
// single Engine type wrapping a position, its legal moves, and game-status
// detection, so that a UI, a perft harness, or a search driver never needs
// to reach into internal/position or internal/movegen directly.
//
// Grounded on FrankyGo's pattern of a thin pkg/ facade re-exporting a
// curated subset of an internal/ package's functionality (pkg/movegen
// wrapping internal/movegen) - here collapsed into a single Engine type
// since the spec's public API is one cohesive object, not a grab bag of
// free functions.
package engine

import (
	"fmt"

	"github.com/corechess/engine/internal/analysis"
	"github.com/corechess/engine/internal/movegen"
	"github.com/corechess/engine/internal/moveslice"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

// GameStatus classifies a position as ongoing, checkmate, stalemate, or a
// draw by the fifty-move rule, threefold repetition or insufficient
// material (spec §6 game_status()).
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

func (g GameStatus) String() string {
	switch g {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "draw (fifty-move rule)"
	case DrawRepetition:
		return "draw (threefold repetition)"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	default:
		return "unknown"
	}
}

// IsGameOver reports whether g is any terminal status.
func (g GameStatus) IsGameOver() bool { return g != Ongoing }

// Engine wraps a single position and the legal moves available in it,
// recomputing the legal move list whenever the position changes. It is the
// entry point external callers (a UI, the perft CLI, a search driver) are
// expected to use instead of internal/position and internal/movegen
// directly (spec §6 Public API).
type Engine struct {
	pos   *position.Position
	moves *moveslice.MoveSlice
}

// New creates an Engine from a FEN string (spec §6 new(fen)).
func New(fen string) (*Engine, error) {
	p, err := position.NewPosition(fen)
	if err != nil {
		return nil, err
	}
	e := &Engine{pos: p}
	e.refresh()
	return e, nil
}

// MustNew is New but panics on a malformed FEN; convenient for tests and
// callers that already know their FEN is well-formed.
func MustNew(fen string) *Engine {
	e, err := New(fen)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) refresh() {
	e.moves = movegen.GenerateLegalMoves(e.pos)
}

// LegalMoves returns every legal move for the side to move (spec §6
// legal_moves()).
func (e *Engine) LegalMoves() []Move {
	out := make([]Move, e.moves.Len())
	e.moves.ForEach(func(i int) { out[i] = e.moves.At(i) })
	return out
}

// MoveDestinations returns the set of squares a piece on from may legally
// move to (spec §6 move_destinations(from_square)).
func (e *Engine) MoveDestinations(from Square) Bitboard {
	var dest Bitboard
	e.moves.ForEach(func(i int) {
		m := e.moves.At(i)
		if m.From() == from {
			dest = dest.PushSquare(m.To())
		}
	})
	return dest
}

// FlagFor returns the legal move's flag from "from" to "to" and true, or
// (0, false) if no legal move connects those two squares (spec §6
// flag_for(from,to)). When more than one legal move shares the same
// from/to pair - only possible for under-promotions - the queen promotion
// is preferred as the representative flag.
func (e *Engine) FlagFor(from, to Square) (uint8, bool) {
	found := false
	var flag uint8
	e.moves.ForEach(func(i int) {
		m := e.moves.At(i)
		if m.From() != from || m.To() != to {
			return
		}
		if !found || m.Flag() == FlagPromoQueen || m.Flag() == FlagPromoQueenCap {
			flag = m.Flag()
			found = true
		}
	})
	return flag, found
}

// Make applies m and recomputes the legal move list for the resulting
// position (spec §6 make(move)). m must be one of the moves LegalMoves()
// most recently returned.
func (e *Engine) Make(m Move) {
	e.pos.Make(m)
	e.refresh()
}

// Unmake reverses the most recent Make call and recomputes the legal move
// list (spec §6 unmake()).
func (e *Engine) Unmake() {
	e.pos.Unmake()
	e.refresh()
}

// IsWhiteTurn reports whether it is White's turn to move (spec §6
// is_white_turn()).
func (e *Engine) IsWhiteTurn() bool { return e.pos.IsWhiteTurn() }

// EpSquare returns the current en-passant target square, or SqNone (spec §6
// ep_square()).
func (e *Engine) EpSquare() Square { return e.pos.EpSquare() }

// OpponentAttackMap returns every square attacked by the side NOT to move,
// with the side-to-move's king removed from the blocking occupancy (spec §6
// opponent_attack_map(), spec §4.E.1).
func (e *Engine) OpponentAttackMap() Bitboard {
	return analysis.Compute(e.pos).OpponentAttackMap
}

// GameStatus classifies the current position (spec §6 game_status()).
func (e *Engine) GameStatus() GameStatus {
	if e.moves.Len() == 0 {
		if analysis.Compute(e.pos).NumChecks > 0 {
			return Checkmate
		}
		return Stalemate
	}
	if e.pos.IsFiftyMoveDraw() {
		return DrawFiftyMove
	}
	if e.pos.IsRepeatedAtLeast(3) {
		return DrawRepetition
	}
	if e.pos.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	return Ongoing
}

// State returns the full 64-square board array (spec §6 state()).
func (e *Engine) State() [64]Piece { return e.pos.State() }

// Bitboard returns the raw bitboard stored at piece-code index i, 0..14
// (spec §6 bitboard(i)).
func (e *Engine) Bitboard(i int) Bitboard { return e.pos.Bitboard(i) }

// Fen serializes the current position back to FEN.
func (e *Engine) Fen() string { return e.pos.Fen() }

// String renders the board for debugging/CLI output.
func (e *Engine) String() string { return e.pos.String() }

// Position exposes the underlying position for callers that need direct
// access (for example to hand it to the search package) without going
// through the narrower Engine surface.
func (e *Engine) Position() *position.Position { return e.pos }

// ParseUciMove resolves a UCI-style move string ("e2e4", "a7a8q") against
// the current legal move list, returning an error if it does not name a
// legal move.
func (e *Engine) ParseUciMove(uci string) (Move, error) {
	for i := 0; i < e.moves.Len(); i++ {
		if e.moves.At(i).StringUci() == uci {
			return e.moves.At(i), nil
		}
	}
	return MoveNone, fmt.Errorf("engine: %q is not a legal move in this position", uci)
}

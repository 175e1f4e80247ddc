package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/corechess/engine/internal/types"
)

// setupFromFen parses a six-field FEN string into p (spec §4.D, §6).
func (p *Position) setupFromFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: malformed FEN %q: need at least 4 space-separated fields", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	p.castling = CastleNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling |= CastleWK
			case 'Q':
				p.castling |= CastleWQ
			case 'k':
				p.castling |= CastleBK
			case 'q':
				p.castling |= CastleBQ
			default:
				return fmt.Errorf("position: malformed FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	p.epSquare = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return fmt.Errorf("position: malformed FEN %q: bad en-passant square %q", fen, fields[3])
		}
		p.epSquare = sq
	}

	halfMoves, err := strconv.Atoi(fields[4])
	if err != nil || halfMoves < 0 {
		return fmt.Errorf("position: malformed FEN %q: bad half-move clock %q", fen, fields[4])
	}
	p.halfMoveClock = halfMoves

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil || fullMoves < 1 {
		fullMoves = 1
	}
	p.fullMoveNumber = fullMoves

	p.ply = 0
	p.repetitionWindowStart = 0
	p.history = p.history[:0]
	p.hash = p.computeHashFromScratch()
	p.posHashes = append(p.posHashes[:0], p.hash)

	return p.validate(fen)
}

func (p *Position) parsePlacement(placement string) error {
	for i := range p.bb {
		p.bb[i] = BbZero
	}
	for i := range p.board {
		p.board[i] = PieceNone
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: malformed FEN placement %q: need 8 ranks, got %d", placement, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == PieceNone || !file.IsValid() {
				return fmt.Errorf("position: malformed FEN placement %q: bad token %q", placement, c)
			}
			sq := SquareOf(file, rank)
			p.board[sq] = piece
			p.bb[piece] = p.bb[piece].PushSquare(sq)
			if piece.ColorOf() == White {
				p.bb[whiteAll] = p.bb[whiteAll].PushSquare(sq)
			} else {
				p.bb[blackAll] = p.bb[blackAll].PushSquare(sq)
			}
			file++
		}
		if file != FileNone {
			return fmt.Errorf("position: malformed FEN placement %q: rank %d does not sum to 8 files", placement, rank+1)
		}
	}
	return nil
}

// validate rejects a small set of structurally impossible FENs (spec §3
// invariant 4 and 7): exactly one king per side, no pawns on the back ranks.
func (p *Position) validate(fen string) error {
	if p.bb[MakePiece(White, King)].PopCount() != 1 || p.bb[MakePiece(Black, King)].PopCount() != 1 {
		return fmt.Errorf("position: malformed FEN %q: must have exactly one king per side", fen)
	}
	if (p.bb[WhitePawn]|p.bb[BlackPawn])&(Rank1Bb|Rank8Bb) != 0 {
		return fmt.Errorf("position: malformed FEN %q: pawn on rank 1 or 8", fen)
	}
	return nil
}

// computeHashFromScratch rebuilds the Zobrist key from the current board,
// side to move, castling rights and en-passant square - used both to load a
// FEN and to verify the incrementally maintained hash (spec §8 property 2).
func (p *Position) computeHashFromScratch() Key {
	var h Key
	for sq := SqA1; sq < SqNone; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			h ^= ZobristPieceSquare(pc, sq)
		}
	}
	if p.sideToMove == Black {
		h ^= ZobristSideToMove()
	}
	h ^= ZobristCastling(p.castling)
	if p.epSquare != SqNone {
		h ^= ZobristEpFile(p.epSquare.FileOf())
	}
	return h
}

// Fen serializes the position back to a FEN string (supplemental to the
// distilled spec; required to satisfy the to_fen(from_fen(F))==F round-trip
// property in spec §8).
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank(r))]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castling.String())
	sb.WriteString(" ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveNumber))
	return sb.String()
}

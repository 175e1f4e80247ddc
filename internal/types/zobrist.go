package types

// Key is a Zobrist hash fingerprint of a position.
type Key uint64

// zobrist key tables (§4.A): 12x64 piece-square keys, one side-to-move key,
// 16 castling-rights keys (indexed by the full 4-bit value) and 8
// en-passant-file keys. Generated once at init with a fixed PRNG seed so
// that identical move sequences always hash identically across runs.
var (
	zobristPieceSquare [12][SqLength]Key
	zobristSideToMove  Key
	zobristCastling    [16]Key
	zobristEpFile      [8]Key
)

const zobristSeed uint64 = 0x9E3779B97F4A7C15

func init() {
	rng := &prng{s: zobristSeed}
	for pt := 0; pt < 12; pt++ {
		for sq := 0; sq < SqLength; sq++ {
			zobristPieceSquare[pt][sq] = Key(rng.next())
		}
	}
	zobristSideToMove = Key(rng.next())
	for i := range zobristCastling {
		zobristCastling[i] = Key(rng.next())
	}
	for i := range zobristEpFile {
		zobristEpFile[i] = Key(rng.next())
	}
}

// zobristPieceIndex maps a Piece's (color, type) to a 0..11 row in the
// piece-square table.
func zobristPieceIndex(p Piece) int {
	return int(p.ColorOf())*6 + int(p.TypeOf()) - 1
}

// ZobristPieceSquare returns the key for a piece standing on a square.
func ZobristPieceSquare(p Piece, sq Square) Key {
	return zobristPieceSquare[zobristPieceIndex(p)][sq]
}

// ZobristSideToMove returns the key XORed in/out whenever the side to move
// changes.
func ZobristSideToMove() Key { return zobristSideToMove }

// ZobristCastling returns the key for a given 4-bit castling-rights value.
func ZobristCastling(rights CastlingRights) Key { return zobristCastling[rights&15] }

// ZobristEpFile returns the key for an en-passant file (0=a..7=h).
func ZobristEpFile(f File) Key { return zobristEpFile[f] }

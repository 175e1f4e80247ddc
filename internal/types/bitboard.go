package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of board squares; bit i corresponds to Square(i).
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

var sqBb [SqLength]Bitboard

var (
	FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb Bitboard
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb Bitboard
	fileBb                                                                [8]Bitboard
	rankBb                                                                [8]Bitboard
)

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	for f := FileA; f <= FileH; f++ {
		var b Bitboard
		for r := Rank1; r <= Rank8; r++ {
			b |= SquareOf(f, r).Bb()
		}
		fileBb[f] = b
	}
	for r := Rank1; r <= Rank8; r++ {
		var b Bitboard
		for f := FileA; f <= FileH; f++ {
			b |= SquareOf(f, r).Bb()
		}
		rankBb[r] = b
	}
	FileABb, FileBBb, FileCBb, FileDBb = fileBb[FileA], fileBb[FileB], fileBb[FileC], fileBb[FileD]
	FileEBb, FileFBb, FileGBb, FileHBb = fileBb[FileE], fileBb[FileF], fileBb[FileG], fileBb[FileH]
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb = rankBb[Rank1], rankBb[Rank2], rankBb[Rank3], rankBb[Rank4]
	Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb = rankBb[Rank5], rankBb[Rank6], rankBb[Rank7], rankBb[Rank8]
}

// FileBb returns the bitboard of an entire file.
func FileBb(f File) Bitboard { return fileBb[f] }

// RankBb returns the bitboard of an entire rank.
func RankBb(r Rank) Bitboard { return rankBb[r] }

// Bb returns the singleton bitboard containing only sq.
func (sq Square) Bb() Bitboard { return sqBb[sq] }

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool { return b&sqBb[sq] != 0 }

// PushSquare returns b with sq added.
func (b Bitboard) PushSquare(sq Square) Bitboard { return b | sqBb[sq] }

// PopSquare returns b with sq removed.
func (b Bitboard) PopSquare(sq Square) Bitboard { return b &^ sqBb[sq] }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Lsb returns the square of the least-significant set bit, or SqNone if b is
// empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least-significant square and b with that bit cleared.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// bits that would wrap around the a/h files.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	}
	return b
}

// String renders b as an 8x8 diagram with rank 8 on top, for debugging and
// test failure output.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank(r))
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBbHasAndPushPop(t *testing.T) {
	var b Bitboard
	assert.False(t, b.Has(SqE4))
	b = b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	b = b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBbPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	b := SqA1.Bb().PushSquare(SqH8).PushSquare(SqE4)
	assert.Equal(t, 3, b.PopCount())
}

func TestBbLsbAndPopLsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	b := SqE4.Bb().PushSquare(SqA1)
	assert.Equal(t, SqA1, b.Lsb(), "a1 is the lowest-indexed square")

	sq, rest := b.PopLsb()
	assert.Equal(t, SqA1, sq)
	assert.Equal(t, SqE4.Bb(), rest)
}

func TestFileAndRankBb(t *testing.T) {
	assert.True(t, FileBb(FileA).Has(SqA1))
	assert.True(t, FileBb(FileA).Has(SqA8))
	assert.False(t, FileBb(FileA).Has(SqB1))
	assert.Equal(t, 8, FileBb(FileA).PopCount())

	assert.True(t, RankBb(Rank1).Has(SqA1))
	assert.True(t, RankBb(Rank1).Has(SqH1))
	assert.False(t, RankBb(Rank1).Has(SqA2))
}

func TestShiftBitboard(t *testing.T) {
	assert.Equal(t, SqA2.Bb(), ShiftBitboard(SqA1.Bb(), North))
	assert.Equal(t, BbZero, ShiftBitboard(SqA1.Bb(), South), "shifting off the board produces an empty set")
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bb(), East), "east shift must not wrap the h-file onto the a-file")
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bb(), West), "west shift must not wrap the a-file onto the h-file")
}

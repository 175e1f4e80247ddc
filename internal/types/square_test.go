package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFileAndRank(t *testing.T) {
	assert.Equal(t, FileA, SqA1.FileOf())
	assert.Equal(t, Rank1, SqA1.RankOf())
	assert.Equal(t, FileH, SqH8.FileOf())
	assert.Equal(t, Rank8, SqH8.RankOf())
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
	assert.False(t, Square(100).IsValid())
}

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqA1, SquareOf(FileA, Rank1))
	assert.Equal(t, SqH8, SquareOf(FileH, Rank8))
	assert.Equal(t, SqNone, SquareOf(FileNone, RankNone))
	assert.Equal(t, SqNone, SquareOf(FileA, Rank(50)))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare(""))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqA2, SqA1.To(North))
	assert.Equal(t, SqB1, SqA1.To(East))
	assert.Equal(t, SqA1, SqA2.To(South))
	assert.Equal(t, SqNone, SqA1.To(West), "a-file squares have no western neighbour")
	assert.Equal(t, SqNone, SqH8.To(East), "h-file squares have no eastern neighbour")
	assert.Equal(t, SqNone, SqH8.To(North), "rank-8 squares have no northern neighbour")
	assert.Equal(t, SqNone, SqA1.To(Northwest), "diagonal steps must also respect file wrap")
}

func TestEdgeDistance(t *testing.T) {
	assert.Equal(t, 7, EdgeDistance(SqA1, North))
	assert.Equal(t, 0, EdgeDistance(SqH8, North))
	assert.Equal(t, 7, EdgeDistance(SqA1, East))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
	assert.Equal(t, 2, SquareDistance(SqA1, SqC2), "Chebyshev distance takes the larger of file/rank delta")
}

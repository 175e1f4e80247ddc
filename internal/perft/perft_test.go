package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corechess/engine/internal/position"
)

// Perft results from https://www.chessprogramming.org/Perft_Results
func TestStandardPerft(t *testing.T) {
	require := assert.New(t)

	var results = [6][6]uint64{
		{0, 1, 0, 0, 0, 0},
		{1, 20, 0, 0, 0, 0},
		{2, 400, 0, 0, 0, 0},
		{3, 8_902, 34, 0, 12, 0},
		{4, 197_281, 1_576, 0, 469, 8},
		{5, 4_865_609, 82_719, 258, 27_351, 347},
	}

	for i := 1; i <= 5; i++ {
		r, err := Run(position.StartFen, i)
		require.NoError(err)
		require.Equal(results[i][1], r.Nodes, "depth %d nodes", i)
		require.Equal(results[i][2], r.Captures, "depth %d captures", i)
		require.Equal(results[i][3], r.EnPassant, "depth %d en passant", i)
		require.Equal(results[i][4], r.Checks, "depth %d checks", i)
		require.Equal(results[i][5], r.CheckMates, "depth %d checkmates", i)
	}
}

// Kiwipete, the classic pin/castling/en-passant-heavy perft stress position.
const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestKiwipetePerft(t *testing.T) {
	require := assert.New(t)

	r1, err := Run(kiwipeteFen, 1)
	require.NoError(err)
	require.Equal(uint64(48), r1.Nodes)

	r3, err := Run(kiwipeteFen, 3)
	require.NoError(err)
	require.Equal(uint64(97_862), r3.Nodes)
	require.Equal(uint64(17_102), r3.Captures)
	require.Equal(uint64(45), r3.EnPassant)
	require.Equal(uint64(3_162), r3.Castles)
	require.Equal(uint64(993), r3.Checks)
}

func TestDivideSumsToTotal(t *testing.T) {
	require := assert.New(t)

	div, total, err := RunDivide(position.StartFen, 3)
	require.NoError(err)

	var sum uint64
	for _, d := range div {
		sum += d.Nodes
	}
	require.Equal(total.Nodes, sum)
	require.Equal(uint64(8_902), total.Nodes)
	require.Len(div, 20) // 20 legal moves from the start position
}

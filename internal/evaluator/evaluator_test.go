package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func TestStartPositionIsBalanced(t *testing.T) {
	p, err := position.NewPosition(position.StartFen)
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.Equal(t, Value(0), e.Evaluate(p))
}

func TestMaterialAdvantageFavorsSideUp(t *testing.T) {
	// White is up a queen with otherwise bare kings.
	p, err := position.NewPosition("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.Greater(t, e.Evaluate(p), Value(0))
}

func TestEvaluationFlipsSignWithSideToMove(t *testing.T) {
	white, err := position.NewPosition("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	black, err := position.NewPosition("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.Equal(t, e.Evaluate(white), -e.Evaluate(black))
}

func TestPieceSquareTablesAreMirroredForWhite(t *testing.T) {
	// A lone white knight centralized on d4 should score higher than the
	// same knight on the corner a1, per the knight's piece-square table.
	center, err := position.NewPosition("4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	corner, err := position.NewPosition("4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.Greater(t, e.Evaluate(center), e.Evaluate(corner))
}

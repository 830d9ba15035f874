package search_test

import (
	"testing"

	"github.com/proc36/pairfield/field"
	"github.com/proc36/pairfield/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeFromBoard(t *testing.T, b *field.Board, ops []field.Operation) *search.Node {
	t.Helper()
	return &search.Node{Board: b, Ops: ops, Metrics: b.EvaluatePairMetrics()}
}

func TestGenerateCandidates_ExcludesImmediatelyPreviousOp(t *testing.T) {
	b, err := field.New(2, []int{0, 1, 0, 1})
	require.NoError(t, err)
	previous := field.Operation{X: 0, Y: 0, K: 2}
	node := nodeFromBoard(t, b, []field.Operation{previous})

	ops := search.GenerateCandidates(search.DefaultConfig(), node)
	for _, op := range ops {
		assert.False(t, op.Equal(previous))
	}
}

func TestGenerateCandidates_ImpactNonIncreasing(t *testing.T) {
	b, err := field.New(4, []int{
		0, 1, 3, 1,
		2, 0, 2, 3,
		4, 4, 5, 5,
		6, 6, 7, 7,
	})
	require.NoError(t, err)
	node := nodeFromBoard(t, b, nil)

	ops := search.GenerateCandidates(search.DefaultConfig(), node)
	require.NotEmpty(t, ops)

	metrics := b.EvaluatePairMetrics()
	impactOf := func(op field.Operation) int {
		sum := 0
		for dy := 0; dy < op.K; dy++ {
			for dx := 0; dx < op.K; dx++ {
				idx := (op.Y+dy)*b.Size() + (op.X + dx)
				sum += int(metrics.UnmatchedMask[idx])
			}
		}
		return sum
	}

	last := impactOf(ops[0])
	for _, op := range ops[1:] {
		impact := impactOf(op)
		assert.LessOrEqual(t, impact, last)
		assert.Greater(t, impact, 0)
		last = impact
	}
}

func TestGenerateCandidates_NoMaskEmitsEveryOpOnce(t *testing.T) {
	b, err := field.New(2, []int{0, 0, 1, 1})
	require.NoError(t, err)
	node := nodeFromBoard(t, b, nil)
	require.True(t, b.IsGoal())

	cfg := search.DefaultConfig()
	ops := search.GenerateCandidates(cfg, node)
	assert.Len(t, ops, 1) // one 2x2 op fits a 2x2 board
}

package search_test

import (
	"testing"
	"time"

	"github.com/proc36/pairfield/field"
	"github.com/proc36/pairfield/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_TrivialSolvedInput checks spec scenario 1: an already-solved
// board is returned immediately with an empty op list.
func TestSolve_TrivialSolvedInput(t *testing.T) {
	b, err := field.New(2, []int{0, 0, 1, 1})
	require.NoError(t, err)

	solver := search.New(search.DefaultConfig()).WithSeed(1)
	result, err := solver.Solve(b)
	require.NoError(t, err)

	assert.True(t, result.Solved)
	assert.Empty(t, result.Ops)
	assert.Equal(t, 2, result.Status.Matched)
	assert.Equal(t, 0, result.Status.Unmatched)
}

// TestSolve_OneMoveSolve checks spec scenario 2: a board solvable in one
// rotation is found quickly, and replaying the returned ops reproduces the
// reported pair status.
func TestSolve_OneMoveSolve(t *testing.T) {
	b, err := field.New(4, []int{
		0, 1, 3, 1,
		2, 0, 2, 3,
		4, 4, 5, 5,
		6, 6, 7, 7,
	})
	require.NoError(t, err)

	cfg := search.DefaultConfig()
	cfg.TimeLimit = 2 * time.Second
	solver := search.New(cfg).WithSeed(42)

	result, err := solver.Solve(b)
	require.NoError(t, err)
	require.True(t, result.Solved)

	replayed := b.Clone()
	for _, op := range result.Ops {
		require.NoError(t, replayed.Apply(op))
	}
	assert.Equal(t, result.Status, replayed.EvaluatePairs())
	assert.True(t, replayed.IsGoal())
}

func TestSolve_ExploredNodesNonNegativeAndReplayConsistent(t *testing.T) {
	b, err := field.New(4, []int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		0, 1, 2, 3,
		4, 5, 6, 7,
	})
	require.NoError(t, err)

	cfg := search.DefaultConfig()
	cfg.TimeLimit = 2 * time.Second
	cfg.MaxIterations = 3
	solver := search.New(cfg).WithSeed(7)

	result, err := solver.Solve(b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.ExploredNodes, 0)

	replayed := b.Clone()
	for _, op := range result.Ops {
		require.NoError(t, replayed.Apply(op))
	}
	assert.Equal(t, result.Status, replayed.EvaluatePairs())
}

func TestSolve_DeadlineReturnsBestEffort(t *testing.T) {
	b, err := field.New(8, make([]int, 64))
	require.NoError(t, err)
	for i := 0; i < 32; i++ {
		require.NoError(t, b.Set(i%8, i/8, i))
		require.NoError(t, b.Set((i+32)%8, (i+32)/8, i))
	}

	cfg := search.DefaultConfig()
	cfg.TimeLimit = 1 * time.Millisecond
	cfg.MaxIterations = 1000

	solver := search.New(cfg).WithSeed(3)
	result, err := solver.Solve(b)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

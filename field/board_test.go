package field_test

import (
	"testing"

	"github.com/proc36/pairfield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		cells []int
		want  error
	}{
		{"ZeroSize", 0, nil, field.ErrInvalidBoard},
		{"CountMismatch", 2, []int{0, 0, 1}, field.ErrInvalidBoard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.New(tc.size, tc.cells)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAtSet_OutOfBounds(t *testing.T) {
	b, err := field.New(2, []int{0, 0, 1, 1})
	require.NoError(t, err)

	_, err = b.At(-1, 0)
	assert.ErrorIs(t, err, field.ErrOutOfBounds)

	err = b.Set(2, 0, 5)
	assert.ErrorIs(t, err, field.ErrOutOfBounds)
}

// TestRotationLaw checks spec scenario 3: rotating a 3x3 sub-square once
// yields the documented permutation, and four applications restore it.
func TestRotationLaw(t *testing.T) {
	b, err := field.New(3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	original := b.Clone()
	op := field.Operation{X: 0, Y: 0, K: 3}

	require.NoError(t, b.Apply(op))
	want, err := field.New(3, []int{7, 4, 1, 8, 5, 2, 9, 6, 3})
	require.NoError(t, err)
	assert.Equal(t, want.Cells(), b.Cells())

	require.NoError(t, b.Apply(op))
	require.NoError(t, b.Apply(op))
	require.NoError(t, b.Apply(op))
	assert.Equal(t, original.Cells(), b.Cells(), "four 90-degree rotations must restore the board")
}

func TestApply_InvalidOperation(t *testing.T) {
	b, err := field.New(3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	cases := []field.Operation{
		{X: 0, Y: 0, K: 1}, // k < 2
		{X: 0, Y: 0, K: 4}, // k > size
		{X: 2, Y: 0, K: 2}, // footprint off-grid
		{X: 0, Y: 2, K: 2}, // footprint off-grid
	}
	for _, op := range cases {
		err := b.Apply(op)
		assert.ErrorIs(t, err, field.ErrInvalidOperation)
	}
}

func TestApply_DoesNotAlias(t *testing.T) {
	b, err := field.New(2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	next, err := b.Applied(field.Operation{X: 0, Y: 0, K: 2})
	require.NoError(t, err)

	// Mutating next must not affect b (Applied must clone first).
	require.NoError(t, next.Set(0, 0, 99))
	v, _ := b.At(0, 0)
	assert.NotEqual(t, 99, v)
}

// TestPairMetrics_Scenario4 checks spec scenario 4 exactly.
func TestPairMetrics_Scenario4(t *testing.T) {
	b, err := field.New(2, []int{0, 1, 1, 0})
	require.NoError(t, err)

	metrics := b.EvaluatePairMetrics()
	assert.Equal(t, 0, metrics.Status.Matched)
	assert.Equal(t, 2, metrics.Status.Unmatched)
	assert.Equal(t, 4, metrics.TotalUnmatchedDistance)
	assert.Equal(t, 2, metrics.MaxUnmatchedDistance)
	for _, m := range metrics.UnmatchedMask {
		assert.Equal(t, byte(1), m)
	}
}

func TestEvaluatePairs_MatchesInvariant(t *testing.T) {
	b, err := field.New(4, []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7})
	require.NoError(t, err)
	status := b.EvaluatePairs()
	assert.Equal(t, b.CellCount()/2, status.Matched+status.Unmatched)
}

func TestIsGoal(t *testing.T) {
	solved, err := field.New(2, []int{0, 0, 1, 1})
	require.NoError(t, err)
	assert.True(t, solved.IsGoal())

	unsolved, err := field.New(2, []int{0, 1, 1, 0})
	require.NoError(t, err)
	assert.False(t, unsolved.IsGoal())
}

func TestHash_DeterministicAndOrderSensitive(t *testing.T) {
	a, err := field.New(2, []int{0, 1, 0, 1})
	require.NoError(t, err)
	b, err := field.New(2, []int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, a.Hash(), b.Hash())

	c, err := field.New(2, []int{1, 0, 1, 0})
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash(), c.Hash())

	opA, _ := a.Applied(field.Operation{X: 0, Y: 0, K: 2})
	opB, _ := b.Applied(field.Operation{X: 0, Y: 0, K: 2})
	assert.Equal(t, opA.Hash(), opB.Hash())
}

func TestPositionsOf(t *testing.T) {
	b, err := field.New(2, []int{0, 1, 1, 0})
	require.NoError(t, err)
	positions := b.PositionsOf(0)
	assert.Len(t, positions, 2)
	assert.Contains(t, positions, field.Position{X: 0, Y: 0})
	assert.Contains(t, positions, field.Position{X: 1, Y: 1})

	assert.Empty(t, b.PositionsOf(42))
}

func TestOneMoveSolve_Scenario2(t *testing.T) {
	b, err := field.New(4, []int{
		0, 1, 3, 1,
		2, 0, 2, 3,
		4, 4, 5, 5,
		6, 6, 7, 7,
	})
	require.NoError(t, err)
	next, err := b.Applied(field.Operation{X: 1, Y: 0, K: 2})
	require.NoError(t, err)
	assert.True(t, next.IsGoal())
}

package matrix_test

import (
	"testing"

	"github.com/proc36/pairfield/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Errors(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SetAt_Roundtrip(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestPrefixSumOf_RegionSum(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	grid := [][]float64{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	}
	for row := range grid {
		for col := range grid[row] {
			require.NoError(t, m.Set(row, col, grid[row][col]))
		}
	}

	p := matrix.PrefixSumOf(m)

	whole, err := matrix.RegionSum(p, 0, 0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, whole)

	topLeft2x2, err := matrix.RegionSum(p, 0, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, topLeft2x2)

	single, err := matrix.RegionSum(p, 1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, single)
}

func TestRegionSum_InvalidRectangle(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	p := matrix.PrefixSumOf(m)

	_, err = matrix.RegionSum(p, 1, 1, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 5))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 5.0, v)
}

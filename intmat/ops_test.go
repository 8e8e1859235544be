package intmat_test

import (
	"testing"

	"github.com/osmiumic/temper/intmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul checks a small product and the shape guard.
func TestMul(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 0, -4}, {0, 1, 4}})
	c := intmat.Col(-4, 4, -1)

	p, err := intmat.Mul(a, c)
	require.NoError(t, err)
	assert.True(t, p.IsZero(), "meantone tempers out 81/80")

	_, err = intmat.Mul(a, a)
	require.ErrorIs(t, err, intmat.ErrDimensionMismatch)

	_, err = intmat.Mul(nil, a)
	require.ErrorIs(t, err, intmat.ErrNilMatrix)
}

// TestTransposeFlip checks transpose and the row/column flips used by antitranspose.
func TestTransposeFlip(t *testing.T) {
	m := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	assert.True(t, intmat.Equal(mustInts(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}), m.Transpose()))
	assert.True(t, intmat.Equal(mustInts(t, [][]int64{{4, 5, 6}, {1, 2, 3}}), m.FlipRows()))
	assert.True(t, intmat.Equal(mustInts(t, [][]int64{{3, 2, 1}, {6, 5, 4}}), m.FlipCols()))
	assert.True(t, intmat.Equal(mustInts(t, [][]int64{{-1, -2, -3}, {-4, -5, -6}}), m.Neg()))

	// operands are untouched
	assert.Equal(t, "[1 2 3]\n[4 5 6]\n", m.String())
}

// TestStackAndSlice covers block assembly and extraction.
func TestStackAndSlice(t *testing.T) {
	a := intmat.Row(12, 19, 28)
	b := intmat.Row(7, 11, 16)

	v, err := intmat.VStack(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Rows())

	h, err := intmat.HStack(v.Transpose(), intmat.Identity(3))
	require.NoError(t, err)
	assert.Equal(t, 3, h.Rows())
	assert.Equal(t, 5, h.Cols())

	s, err := h.Slice(1, 3, 2, 5)
	require.NoError(t, err)
	assert.True(t, intmat.Equal(mustInts(t, [][]int64{{0, 1, 0}, {0, 0, 1}}), s))

	_, err = h.Slice(0, 4, 0, 1)
	require.ErrorIs(t, err, intmat.ErrOutOfRange)

	_, err = intmat.VStack(a, intmat.Row(1, 2))
	require.ErrorIs(t, err, intmat.ErrDimensionMismatch)
	_, err = intmat.HStack(a, intmat.Col(1, 2))
	require.ErrorIs(t, err, intmat.ErrDimensionMismatch)
}

// TestGCDAndZeroRows covers the contortion check helper and zero-row detection.
func TestGCDAndZeroRows(t *testing.T) {
	assert.Equal(t, int64(1), intmat.Row(12, 19, 28).GCD().Int64())
	assert.Equal(t, int64(2), intmat.Row(24, 38, -56).GCD().Int64())
	assert.Equal(t, int64(0), intmat.Row(0, 0).GCD().Int64())

	m := mustInts(t, [][]int64{{1, 0}, {0, 0}})
	assert.False(t, m.RowIsZero(0))
	assert.True(t, m.RowIsZero(1))
	assert.False(t, m.RowIsZero(5))
}

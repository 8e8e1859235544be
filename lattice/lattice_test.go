package lattice_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/lattice"
	"github.com/osmiumic/temper/normalform"
	"github.com/osmiumic/temper/weighting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var fiveLimitLogs = []float64{1, math.Log2(3), math.Log2(5)}

func tenney(t *testing.T) *mat.DiagDense {
	t.Helper()
	w, err := weighting.Tenney.Matrix(fiveLimitLogs)
	require.NoError(t, err)

	return w
}

func columns(t *testing.T, cols ...[]int64) *intmat.Matrix {
	t.Helper()
	m, err := intmat.FromInts(cols)
	require.NoError(t, err)

	return m.Transpose()
}

// TestLLLSkewedBasis reduces {81/80, (81/80)⁵·128/125} to the diminished
// comma 648/625 and the syntonic comma.
func TestLLLSkewedBasis(t *testing.T) {
	w := tenney(t)
	basis := columns(t, []int64{-4, 4, -1}, []int64{-13, 20, -8})

	reduced, err := lattice.LLL(basis, w)
	require.NoError(t, err)
	assert.True(t, intmat.Equal(columns(t, []int64{3, 4, -4}, []int64{-4, 4, -1}), reduced), "got\n%s", reduced)

	// same lattice
	before, err := normalform.HNF(basis.Transpose())
	require.NoError(t, err)
	after, err := normalform.HNF(reduced.Transpose())
	require.NoError(t, err)
	assert.True(t, intmat.Equal(before, after))
}

// TestLLLSortedByComplexity: output columns ascend in weighted norm.
func TestLLLSortedByComplexity(t *testing.T) {
	w := tenney(t)
	basis := columns(t, []int64{7, 0, -3}, []int64{-4, 4, -1})

	reduced, err := lattice.LLL(basis, w)
	require.NoError(t, err)

	rows := reduced.Transpose().BigRows()
	require.Len(t, rows, 2)
	assert.LessOrEqual(t, lattice.Norm(rows[0], w), lattice.Norm(rows[1], w))
}

// TestReduceErrors covers the validation sentinels.
func TestReduceErrors(t *testing.T) {
	w := tenney(t)
	v := []*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(0)}

	_, err := lattice.Reduce([][]*big.Int{v}, 0.2, w)
	require.ErrorIs(t, err, lattice.ErrBadDelta)

	_, err = lattice.Reduce([][]*big.Int{v, v}, lattice.DefaultDelta, w)
	require.ErrorIs(t, err, lattice.ErrDependent)

	_, err = lattice.Reduce([][]*big.Int{{big.NewInt(1)}}, lattice.DefaultDelta, w)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)

	out, err := lattice.Reduce(nil, lattice.DefaultDelta, w)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestSimplifySyntonic: 16/3 simplifies to 27/5 under 81/80, and the
// weighted norm strictly drops.
func TestSimplifySyntonic(t *testing.T) {
	w := tenney(t)
	interval := intmat.Col(4, -1, 0)
	comma := intmat.Col(-4, 4, -1)

	got, err := lattice.Simplify(interval, comma, w)
	require.NoError(t, err)
	assert.True(t, intmat.Equal(intmat.Col(0, 3, -1), got), "got\n%s", got)

	before := lattice.Norm(interval.Transpose().BigRows()[0], w)
	after := lattice.Norm(got.Transpose().BigRows()[0], w)
	assert.Less(t, after, before)
}

// TestSimplifyFixedPoint: an already simple interval is left alone.
func TestSimplifyFixedPoint(t *testing.T) {
	w := tenney(t)
	fifth := intmat.Col(-1, 1, 0)

	got, err := lattice.Simplify(fifth, intmat.Col(-4, 4, -1), w)
	require.NoError(t, err)
	assert.True(t, intmat.Equal(fifth, got))

	_, err = lattice.Simplify(fifth, intmat.Col(1, 2), w)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}

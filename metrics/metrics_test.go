package metrics_test

import (
	"testing"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/metrics"
	"github.com/osmiumic/temper/subgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveLimit = subgroup.MustParse("2.3.5")

// TestTwelveEdoMeasures pins the scores of the 5-limit 12-edo val.
func TestTwelveEdoMeasures(t *testing.T) {
	got, err := metrics.Measure(intmat.Row(12, 19, 28), fiveLimit)
	require.NoError(t, err)

	assert.InDelta(t, 3.10636, got.Error, 1e-4)
	assert.InDelta(t, 12.01558, got.Complexity, 1e-4)
	assert.InDelta(t, 129.3805, got.Badness, 1e-2)
}

// TestMeantoneMeasures pins the scores of 5-limit meantone (rank 2, exponent 3).
func TestMeantoneMeasures(t *testing.T) {
	m, err := intmat.FromInts([][]int64{{1, 0, -4}, {0, 1, 4}})
	require.NoError(t, err)

	got, err := metrics.Measure(m, fiveLimit)
	require.NoError(t, err)

	assert.InDelta(t, 1.58222, got.Error, 1e-4)
	assert.InDelta(t, 1.23115, got.Complexity, 1e-4)
	assert.InDelta(t, 2.95253, got.Badness, 1e-3)
}

// TestBadnessOrdering: 12 beats 19, which beats 31, in the 5-limit.
func TestBadnessOrdering(t *testing.T) {
	var prev float64
	for i, val := range []*intmat.Matrix{intmat.Row(12, 19, 28), intmat.Row(19, 30, 44), intmat.Row(31, 49, 72)} {
		got, err := metrics.Measure(val, fiveLimit)
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, got.Badness, prev)
		}
		prev = got.Badness
	}
}

// TestMeasureErrors covers the precondition sentinels.
func TestMeasureErrors(t *testing.T) {
	_, err := metrics.Measure(nil, fiveLimit)
	require.ErrorIs(t, err, metrics.ErrNilMatrix)

	_, err = metrics.Measure(intmat.Row(12, 19), fiveLimit)
	require.ErrorIs(t, err, metrics.ErrDimensionMismatch)

	_, err = metrics.Measure(intmat.Identity(3), fiveLimit)
	require.ErrorIs(t, err, metrics.ErrNoCodimension)

	c, err := metrics.Complexity(intmat.Identity(3), fiveLimit)
	require.NoError(t, err)
	assert.Greater(t, c, 0.0)
}

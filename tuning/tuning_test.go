package tuning_test

import (
	"math"
	"testing"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/tuning"
	"github.com/osmiumic/temper/weighting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveLimit = []float64{1, math.Log2(3), math.Log2(5)}

// TestTwelveEdo checks the Tenney-optimal step of 12-edo in the 5-limit.
// With weighted val w = m/logs the optimum is 1200·Σw / Σw².
func TestTwelveEdo(t *testing.T) {
	val := intmat.Row(12, 19, 28)

	tun, err := tuning.LeastSquares(val, fiveLimit, weighting.Tenney)
	require.NoError(t, err)
	require.Len(t, tun.Generators, 1)

	var sw, sww float64
	for i, m := range []float64{12, 19, 28} {
		w := m / fiveLimit[i]
		sw += w
		sww += w * w
	}
	assert.InDelta(t, 1200*sw/sww, tun.Generators[0], 1e-9)
	assert.InDelta(t, 100.0, tun.Generators[0], 0.5, "close to a 100-cent step")

	for i := range tun.Residual {
		assert.InDelta(t, tun.Tempered[i]-1200*fiveLimit[i], tun.Residual[i], 1e-9)
	}
}

// TestJustIntonation: the identity mapping tunes every prime exactly.
func TestJustIntonation(t *testing.T) {
	tun, err := tuning.LeastSquares(intmat.Identity(3), fiveLimit, weighting.Tenney)
	require.NoError(t, err)
	for _, e := range tun.Residual {
		assert.InDelta(t, 0, e, 1e-9)
	}
}

// TestLeastSquaresErrors covers the precondition sentinels.
func TestLeastSquaresErrors(t *testing.T) {
	_, err := tuning.LeastSquares(nil, fiveLimit, weighting.Tenney)
	require.ErrorIs(t, err, tuning.ErrNilMatrix)

	_, err = tuning.LeastSquares(intmat.Row(12, 19), fiveLimit, weighting.Tenney)
	require.ErrorIs(t, err, tuning.ErrDimensionMismatch)

	_, err = tuning.LeastSquares(intmat.Row(12, 19, 28), []float64{1, 0, 2}, weighting.Tenney)
	require.ErrorIs(t, err, weighting.ErrBadLogs)
}

package search_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/search"
	"github.com/osmiumic/temper/subgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveLimit = subgroup.MustParse("2.3.5")

func meantone(t *testing.T) *intmat.Matrix {
	t.Helper()
	m, err := intmat.FromInts([][]int64{{1, 0, -4}, {0, 1, 4}})
	require.NoError(t, err)

	return m
}

func divisions(t *testing.T, cs []search.Candidate) []int64 {
	t.Helper()
	out := make([]int64, len(cs))
	for i, c := range cs {
		d, err := c.Map.Int64At(0, 0)
		require.NoError(t, err)
		out[i] = d
	}

	return out
}

// TestFindEDOsMeantone: 12, 19 and 31 surface as good meantone edos, 12 first.
func TestFindEDOsMeantone(t *testing.T) {
	res, err := search.FindEDOs(meantone(t), fiveLimit, search.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int64{12, 7, 19, 5, 31, 26, 17, 43, 50, 9, 33, 45, 29, 55}, divisions(t, res.Candidates))
	assert.True(t, intmat.Equal(intmat.Row(12, 19, 28), res.Candidates[0].Map))
	assert.InDelta(t, 129.38, res.Candidates[0].Badness, 1e-2)
	for i := 1; i < len(res.Candidates); i++ {
		assert.LessOrEqual(t, res.Candidates[i-1].Badness, res.Candidates[i].Badness)
	}
	assert.Equal(t, 249, res.Checked)
	assert.GreaterOrEqual(t, res.Accepted, len(res.Candidates))
}

// TestFindPatentEDOsMeantone runs the patent variant over 0..665.
func TestFindPatentEDOsMeantone(t *testing.T) {
	res, err := search.FindPatentEDOs(meantone(t), fiveLimit, search.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int64{12, 7, 19, 5, 31, 26, 43, 50, 45, 55, 69, 74, 67}, divisions(t, res.Candidates))
	assert.Equal(t, 75, res.Checked)
	assert.Equal(t, 13, res.Accepted)
}

// TestFindEDOsCandidateCap stops after MaxCandidates vals.
func TestFindEDOsCandidateCap(t *testing.T) {
	var buf bytes.Buffer
	opts := search.DefaultOptions()
	opts.MaxCandidates = 10
	opts.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	res, err := search.FindEDOs(meantone(t), fiveLimit, opts)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Checked)
	assert.Contains(t, buf.String(), "candidate cap reached")
}

// TestFindEDOsRankOne: a single val has nothing to reconstruct.
func TestFindEDOsRankOne(t *testing.T) {
	res, err := search.FindEDOs(intmat.Row(12, 19, 28), fiveLimit, search.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
	assert.Zero(t, res.Checked)

	res, err = search.FindPatentEDOs(intmat.Row(12, 19, 28), fiveLimit, search.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
}

// TestFindEDOsErrors covers the validation sentinels.
func TestFindEDOsErrors(t *testing.T) {
	opts := search.DefaultOptions()

	_, err := search.FindEDOs(nil, fiveLimit, opts)
	require.ErrorIs(t, err, search.ErrNilMatrix)

	_, err = search.FindEDOs(intmat.Row(12, 19), fiveLimit, opts)
	require.ErrorIs(t, err, search.ErrBadTarget)

	zero, err := intmat.FromInts([][]int64{{0, 1, 4}, {1, 0, -4}})
	require.NoError(t, err)
	_, err = search.FindPatentEDOs(zero, fiveLimit, opts)
	require.ErrorIs(t, err, search.ErrBadTarget)

	bad := opts
	bad.GPVHigh = bad.GPVLow
	_, err = search.FindEDOs(meantone(t), fiveLimit, bad)
	require.ErrorIs(t, err, search.ErrBadOptions)
}

// TestFindJoinMeantone: 12 & 7 rebuild meantone on the first try.
func TestFindJoinMeantone(t *testing.T) {
	opts := search.DefaultOptions()
	edos, err := search.FindEDOs(meantone(t), fiveLimit, opts)
	require.NoError(t, err)

	res, err := search.FindJoin(meantone(t), edos.Candidates, opts)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 1}, res.Indices)
	assert.Equal(t, 1, res.Tried)

	want, err := intmat.FromInts([][]int64{{12, 19, 28}, {7, 11, 16}})
	require.NoError(t, err)
	assert.True(t, intmat.Equal(want, res.Maps))
}

// TestFindJoinNotFound: a dependent pair never joins, and that is not an error.
func TestFindJoinNotFound(t *testing.T) {
	var buf bytes.Buffer
	opts := search.DefaultOptions()
	opts.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	cands := []search.Candidate{
		{Map: intmat.Row(12, 19, 28)},
		{Map: intmat.Row(24, 38, 56)},
	}
	res, err := search.FindJoin(meantone(t), cands, opts)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Maps)
	assert.Equal(t, 1, res.Tried)
	assert.Contains(t, buf.String(), "join not found")

	_, err = search.FindJoin(meantone(t), []search.Candidate{{Map: intmat.Row(12, 19)}}, opts)
	require.ErrorIs(t, err, search.ErrBadCandidate)
}

// TestFindJoinCap stops after MaxCombinations subsets.
func TestFindJoinCap(t *testing.T) {
	opts := search.DefaultOptions()
	opts.MaxCombinations = 2

	cands := []search.Candidate{
		{Map: intmat.Row(12, 19, 28)},
		{Map: intmat.Row(24, 38, 56)},
		{Map: intmat.Row(36, 57, 84)},
		{Map: intmat.Row(7, 11, 16)},
	}
	res, err := search.FindJoin(meantone(t), cands, opts)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Tried)

	opts.MaxCombinations = 500
	res, err = search.FindJoin(meantone(t), cands, opts)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 3}, res.Indices)
}

package search_test

import (
	"testing"

	"github.com/osmiumic/temper/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions pins the search bounds.
func TestDefaultOptions(t *testing.T) {
	opts := search.DefaultOptions()

	assert.Equal(t, 8000, opts.MaxCandidates)
	assert.Equal(t, 500, opts.MaxCombinations)
	assert.Equal(t, 4.5, opts.GPVLow)
	assert.Equal(t, 1999.5, opts.GPVHigh)
	assert.Equal(t, 665, opts.PatentMax)
	assert.Equal(t, 25, opts.ExtraDistinct)
	assert.Equal(t, 10, opts.PatentExtraDistinct)
	assert.Equal(t, 12, opts.KeepExtra)
	assert.NotNil(t, opts.Logger)
	require.NoError(t, opts.Validate())
}

// TestOptionsFromEnv overlays set variables on the defaults.
func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("TEMPER_MAX_CANDIDATES", "100")
	t.Setenv("TEMPER_GPV_HIGH", "99.5")

	opts, err := search.OptionsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 100, opts.MaxCandidates)
	assert.Equal(t, 99.5, opts.GPVHigh)
	assert.Equal(t, 500, opts.MaxCombinations)
	assert.Equal(t, 4.5, opts.GPVLow)
}

// TestOptionsFromEnvErrors: malformed values fail parsing, bad values fail validation.
func TestOptionsFromEnvErrors(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		t.Setenv("TEMPER_MAX_COMBINATIONS", "many")
		_, err := search.OptionsFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
	t.Run("validate", func(t *testing.T) {
		t.Setenv("TEMPER_MAX_COMBINATIONS", "0")
		_, err := search.OptionsFromEnv()
		require.ErrorIs(t, err, search.ErrBadOptions)
	})
	t.Run("range", func(t *testing.T) {
		t.Setenv("TEMPER_GPV_LOW", "3000")
		_, err := search.OptionsFromEnv()
		require.ErrorIs(t, err, search.ErrBadOptions)
	})
}

// TestValidateNilLogger: a nil logger is allowed and discards output.
func TestValidateNilLogger(t *testing.T) {
	opts := search.DefaultOptions()
	opts.Logger = nil
	require.NoError(t, opts.Validate())

	opts.KeepExtra = -1
	require.ErrorIs(t, opts.Validate(), search.ErrBadOptions)
}

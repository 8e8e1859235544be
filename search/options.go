// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"io"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// Options bounds and tunes both searches.
type Options struct {
	// MaxCandidates caps the edo vals examined by one EDO search.
	MaxCandidates int

	// MaxCombinations caps the subsets tried by FindJoin.
	MaxCombinations int

	// GPVLow and GPVHigh delimit the equave multipliers walked by FindEDOs.
	GPVLow  float64
	GPVHigh float64

	// PatentMax is the largest division tried by FindPatentEDOs.
	PatentMax int

	// ExtraDistinct and PatentExtraDistinct: the searches stop once more
	// than rank+extra distinct divisions were accepted.
	ExtraDistinct       int
	PatentExtraDistinct int

	// KeepExtra truncates FindEDOs output to rank+KeepExtra entries.
	KeepExtra int

	// Logger receives Debug/Warn diagnostics. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the search bounds:
//   - 8000 candidates, 500 combinations
//   - GPV range (4.5, 1999.5), patent divisions 0..665
//   - stop after rank+25 (rank+10 patent) distinct divisions
//   - keep rank+12 results
//   - a logger writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		MaxCandidates:       8000,
		MaxCombinations:     500,
		GPVLow:              4.5,
		GPVHigh:             1999.5,
		PatentMax:           665,
		ExtraDistinct:       25,
		PatentExtraDistinct: 10,
		KeepExtra:           12,
		Logger:              discardLogger(),
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: "temper/search"})
}

// optionsEnv holds the raw environment overrides.
type optionsEnv struct {
	MaxCandidates       int     `env:"TEMPER_MAX_CANDIDATES"`
	MaxCombinations     int     `env:"TEMPER_MAX_COMBINATIONS"`
	GPVLow              float64 `env:"TEMPER_GPV_LOW"`
	GPVHigh             float64 `env:"TEMPER_GPV_HIGH"`
	PatentMax           int     `env:"TEMPER_PATENT_MAX"`
	ExtraDistinct       int     `env:"TEMPER_EXTRA_DISTINCT"`
	PatentExtraDistinct int     `env:"TEMPER_PATENT_EXTRA_DISTINCT"`
	KeepExtra           int     `env:"TEMPER_KEEP_EXTRA"`
}

// OptionsFromEnv returns DefaultOptions overlaid with the TEMPER_*
// environment variables that are set. The result is validated.
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions()
	raw := optionsEnv{
		MaxCandidates:       opts.MaxCandidates,
		MaxCombinations:     opts.MaxCombinations,
		GPVLow:              opts.GPVLow,
		GPVHigh:             opts.GPVHigh,
		PatentMax:           opts.PatentMax,
		ExtraDistinct:       opts.ExtraDistinct,
		PatentExtraDistinct: opts.PatentExtraDistinct,
		KeepExtra:           opts.KeepExtra,
	}
	if err := env.Parse(&raw); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}

	opts.MaxCandidates = raw.MaxCandidates
	opts.MaxCombinations = raw.MaxCombinations
	opts.GPVLow = raw.GPVLow
	opts.GPVHigh = raw.GPVHigh
	opts.PatentMax = raw.PatentMax
	opts.ExtraDistinct = raw.ExtraDistinct
	opts.PatentExtraDistinct = raw.PatentExtraDistinct
	opts.KeepExtra = raw.KeepExtra
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// Validate reports ErrBadOptions for unusable bounds.
func (o Options) Validate() error {
	switch {
	case o.MaxCandidates <= 0:
		return fmt.Errorf("MaxCandidates=%d: %w", o.MaxCandidates, ErrBadOptions)
	case o.MaxCombinations <= 0:
		return fmt.Errorf("MaxCombinations=%d: %w", o.MaxCombinations, ErrBadOptions)
	case math.IsNaN(o.GPVLow) || math.IsNaN(o.GPVHigh) || o.GPVLow < 0 || o.GPVLow >= o.GPVHigh:
		return fmt.Errorf("GPV range [%g, %g): %w", o.GPVLow, o.GPVHigh, ErrBadOptions)
	case o.PatentMax < 0:
		return fmt.Errorf("PatentMax=%d: %w", o.PatentMax, ErrBadOptions)
	case o.ExtraDistinct < 0 || o.PatentExtraDistinct < 0 || o.KeepExtra < 0:
		return fmt.Errorf("negative slack (%d, %d, %d): %w", o.ExtraDistinct, o.PatentExtraDistinct, o.KeepExtra, ErrBadOptions)
	}

	return nil
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return discardLogger()
	}

	return o.Logger
}

// SPDX-License-Identifier: MIT

package search

import (
	"cmp"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/osmiumic/temper/gpv"
	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/metrics"
	"github.com/osmiumic/temper/normalform"
	"github.com/osmiumic/temper/subgroup"
)

// Candidate is an accepted edo val and its badness over the subgroup.
type Candidate struct {
	Map     *intmat.Matrix // 1×d
	Badness float64
}

// EDOResult lists accepted vals ascending by badness, one per division.
type EDOResult struct {
	Candidates []Candidate
	Checked    int // vals examined (right equave division), at most MaxCandidates
	Accepted   int // vals that passed before deduplication
}

// target is a validated search target.
type target struct {
	rank   int
	div    int64 // equave division every candidate must be a multiple of
	commas *intmat.Matrix
}

var bigOne = big.NewInt(1)

// FindEDOs walks the GPVs over (opts.GPVLow, opts.GPVHigh) and returns the
// best rank+opts.KeepExtra vals consistent with t. A rank-1 target yields
// an empty result.
//
// Errors: ErrBadOptions, ErrNilMatrix, ErrBadTarget, gpv.ErrInvariant.
func FindEDOs(t *intmat.Matrix, s subgroup.Subgroup, opts Options) (EDOResult, error) {
	tg, err := prepare(opFindEDOs, t, s, opts)
	if err != nil || tg.rank == 1 {
		return EDOResult{}, err
	}
	e, err := gpv.NewEnumerator(opts.GPVLow, opts.GPVHigh, s.Logs())
	if err != nil {
		return EDOResult{}, searchErrorf(opFindEDOs, err)
	}
	next := func() ([]int64, bool) {
		step, ok := e.Next()

		return step.Map, ok
	}

	res, err := collect(opFindEDOs, tg, s, opts, opts.ExtraDistinct, next)
	if err == nil {
		err = e.Err()
	}
	if err != nil {
		return EDOResult{}, searchErrorf(opFindEDOs, err)
	}
	if keep := tg.rank + opts.KeepExtra; len(res.Candidates) > keep {
		res.Candidates = res.Candidates[:keep]
	}

	return res, nil
}

// FindPatentEDOs tries the patent val of every division 0..opts.PatentMax
// and returns every consistent one found before the distinct-division
// budget rank+opts.PatentExtraDistinct ran out. A rank-1 target yields an
// empty result.
//
// Errors: ErrBadOptions, ErrNilMatrix, ErrBadTarget.
func FindPatentEDOs(t *intmat.Matrix, s subgroup.Subgroup, opts Options) (EDOResult, error) {
	tg, err := prepare(opFindPatentEDOs, t, s, opts)
	if err != nil || tg.rank == 1 {
		return EDOResult{}, err
	}
	logs := s.Logs()
	var (
		k       int
		walkErr error
	)
	next := func() ([]int64, bool) {
		if k > opts.PatentMax {
			return nil, false
		}
		val, err := gpv.PatentMap(float64(k), logs)
		if err != nil {
			walkErr = err

			return nil, false
		}
		k++

		return val, true
	}

	res, err := collect(opFindPatentEDOs, tg, s, opts, opts.PatentExtraDistinct, next)
	if err == nil {
		err = walkErr
	}
	if err != nil {
		return EDOResult{}, searchErrorf(opFindPatentEDOs, err)
	}

	return res, nil
}

func prepare(tag string, t *intmat.Matrix, s subgroup.Subgroup, opts Options) (target, error) {
	if err := opts.Validate(); err != nil {
		return target{}, searchErrorf(tag, err)
	}
	if t == nil {
		return target{}, searchErrorf(tag, ErrNilMatrix)
	}
	r, d := t.Dims()
	if d != s.Len() || r == 0 || r > d {
		return target{}, searchErrorf(tag, fmt.Errorf("%dx%d target over %s: %w", r, d, s, ErrBadTarget))
	}
	if r == 1 {
		opts.logger().Debug("rank-1 target, nothing to join", "op", tag)

		return target{rank: 1}, nil
	}
	div, err := t.Int64At(0, 0)
	if err != nil {
		return target{}, searchErrorf(tag, err)
	}
	if div <= 0 {
		return target{}, searchErrorf(tag, fmt.Errorf("equave division %d: %w", div, ErrBadTarget))
	}
	commas, err := normalform.Kernel(t)
	if err != nil {
		return target{}, searchErrorf(tag, err)
	}

	return target{rank: r, div: div, commas: commas}, nil
}

// errStop ends a walk early; it never leaves collect.
var errStop = errors.New("stop")

// collect runs the acceptance filter over the vals produced by next.
//
// Implementation:
//   - Stage 1: Skip vals whose equave division is not a multiple of tg.div;
//     count the rest against MaxCandidates.
//   - Stage 2: Accept vals that annihilate the comma basis and have
//     content 1 (not contorted); score them with metrics.Measure.
//   - Stage 3: Stop once more than rank+extra distinct divisions were seen.
//   - Stage 4: Sort by badness and keep the first val of each division.
func collect(tag string, tg target, s subgroup.Subgroup, opts Options, extra int, next func() ([]int64, bool)) (EDOResult, error) {
	var (
		res      EDOResult
		accepted []Candidate
		seen     = make(map[int64]struct{})
	)

	step := func(val []int64) error {
		// Stage 1: multiples of the equave division only
		if val[0]%tg.div != 0 {
			return nil
		}
		if res.Checked == opts.MaxCandidates {
			opts.logger().Warn("candidate cap reached", "op", tag, "cap", opts.MaxCandidates)

			return errStop
		}
		res.Checked++

		// Stage 2: consistency and contorsion
		m := intmat.Row(val...)
		prod, err := intmat.Mul(m, tg.commas)
		if err != nil {
			return err
		}
		if !prod.IsZero() || m.GCD().Cmp(bigOne) != 0 {
			return nil
		}
		score, err := metrics.Measure(m, s)
		if err != nil {
			return err
		}
		accepted = append(accepted, Candidate{Map: m, Badness: score.Badness})

		// Stage 3: distinct divisions budget
		if _, ok := seen[val[0]]; !ok {
			seen[val[0]] = struct{}{}
			if len(seen) > tg.rank+extra {
				return errStop
			}
		}

		return nil
	}

	for val, ok := next(); ok; val, ok = next() {
		if err := step(val); err != nil {
			if errors.Is(err, errStop) {
				break
			}
			return EDOResult{}, err
		}
	}
	res.Accepted = len(accepted)
	opts.logger().Debug("edo search done", "op", tag, "accepted", res.Accepted, "checked", res.Checked, "divisions", len(seen))

	// Stage 4: rank and deduplicate
	slices.SortStableFunc(accepted, func(a, b Candidate) int {
		return cmp.Compare(a.Badness, b.Badness)
	})
	divs := make(map[int64]struct{}, len(seen))
	for _, c := range accepted {
		d, err := c.Map.Int64At(0, 0)
		if err != nil {
			return EDOResult{}, err
		}
		if _, dup := divs[d]; dup {
			continue
		}
		divs[d] = struct{}{}
		res.Candidates = append(res.Candidates, c)
	}

	return res, nil
}

// SPDX-License-Identifier: MIT

// Package gpv enumerates general vals (GPVs): the integer maps
// round(t·J) obtained as the equave multiplier t sweeps a range, where J is
// the log-subgroup vector normalized to its first entry.
//
// Every val is valid on an interval of t. The Enumerator walks these
// intervals left to right, so consecutive vals differ in one coordinate.
package gpv

import (
	"fmt"
	"math"
	"slices"
)

func checkLogs(logs []float64) error {
	if len(logs) == 0 {
		return ErrBadLogs
	}
	for i, l := range logs {
		if !(l > 0) || math.IsInf(l, 0) {
			return fmt.Errorf("logs[%d]=%g: %w", i, l, ErrBadLogs)
		}
	}

	return nil
}

// PatentMap returns the patent val of t equal divisions of the equave:
// ⌊t·logs[i]/logs[0] + ½⌋. Halves round up.
func PatentMap(t float64, logs []float64) ([]int64, error) {
	if err := checkLogs(logs); err != nil {
		return nil, fmt.Errorf("PatentMap: %w", err)
	}
	t /= logs[0]
	out := make([]int64, len(logs))
	for i, l := range logs {
		out[i] = int64(math.Floor(t*l + 0.5))
	}

	return out, nil
}

// Step is one enumerated val and the t-interval on which it is the
// rounding of t·J.
type Step struct {
	Map   []int64
	Lower float64
	Upper float64
}

// Enumerator yields every GPV whose interval starts below hi, starting from
// the patent val of lo. It follows the bufio.Scanner protocol:
//
//	e, _ := gpv.NewEnumerator(4.5, 100, logs)
//	for step, ok := e.Next(); ok; step, ok = e.Next() {
//	    ...
//	}
//	if err := e.Err(); err != nil { ... }
//
// An Enumerator is single-pass and not safe for concurrent use.
type Enumerator struct {
	logs  []float64
	hi    float64
	cmap  []int64
	upper []float64
	first bool
	done  bool
	err   error
}

// NewEnumerator prepares the walk over [lo, hi).
//
// Errors: ErrBadRange, ErrBadLogs.
func NewEnumerator(lo, hi float64, logs []float64) (*Enumerator, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo >= hi {
		return nil, fmt.Errorf("NewEnumerator: [%g, %g): %w", lo, hi, ErrBadRange)
	}
	start, err := PatentMap(lo, logs)
	if err != nil {
		return nil, fmt.Errorf("NewEnumerator: %w", err)
	}

	return &Enumerator{
		logs:  slices.Clone(logs),
		hi:    hi,
		cmap:  start,
		upper: make([]float64, len(logs)),
		first: true,
	}, nil
}

// Next advances to the following val. It returns false once the next
// interval starts at or beyond hi, or after an invariant failure (see Err).
func (e *Enumerator) Next() (Step, bool) {
	if e.done {
		return Step{}, false
	}
	if !e.first {
		// the coordinate whose interval ends first rolls over
		e.cmap[argmin(e.upper)]++
	}
	e.first = false

	lb, ub := math.Inf(-1), math.Inf(1)
	for i, l := range e.logs {
		lo := (float64(e.cmap[i]) - 0.5) / l
		e.upper[i] = (float64(e.cmap[i]) + 0.5) / l
		lb = math.Max(lb, lo)
		ub = math.Min(ub, e.upper[i])
	}
	if lb >= e.hi {
		e.done = true

		return Step{}, false
	}

	mid := (lb + ub) / 2
	for i, l := range e.logs {
		if want := int64(math.Round(mid * l)); want != e.cmap[i] {
			e.done = true
			e.err = fmt.Errorf("Next: val %v on [%g, %g], coordinate %d rounds to %d: %w", e.cmap, lb, ub, i, want, ErrInvariant)

			return Step{}, false
		}
	}

	return Step{Map: slices.Clone(e.cmap), Lower: lb, Upper: ub}, true
}

// Err returns the invariant failure that stopped iteration, if any.
func (e *Enumerator) Err() error { return e.err }

// argmin returns the first index of the smallest value.
func argmin(xs []float64) int {
	best := 0
	for i, x := range xs[1:] {
		if x < xs[best] {
			best = i + 1
		}
	}

	return best
}

// SPDX-License-Identifier: MIT

// Package temperament ties a mapping to its subgroup and keeps it in
// canonical form, so two temperaments are equal exactly when they temper
// out the same commas.
//
// A Temperament is immutable. Derived data (comma basis, generators,
// scores, tuning) is recomputed on every call.
package temperament

import (
	"fmt"

	"github.com/osmiumic/temper/diophantine"
	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/lattice"
	"github.com/osmiumic/temper/metrics"
	"github.com/osmiumic/temper/normalform"
	"github.com/osmiumic/temper/subgroup"
	"github.com/osmiumic/temper/tuning"
	"github.com/osmiumic/temper/weighting"
)

// Temperament is a canonical (mapping, subgroup) pair.
type Temperament struct {
	mapping *intmat.Matrix
	sub     subgroup.Subgroup
}

// FromMapping builds a temperament from an r×d mapping (rows are vals)
// over s. The mapping is replaced by its defactored HNF.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrTrivial, ErrRankDeficient.
func FromMapping(m *intmat.Matrix, s subgroup.Subgroup) (Temperament, error) {
	if m == nil {
		return Temperament{}, temperamentErrorf(opFromMapping, ErrNilMatrix)
	}
	r, d := m.Dims()
	if d != s.Len() {
		return Temperament{}, temperamentErrorf(opFromMapping, fmt.Errorf("%dx%d mapping over %s: %w", r, d, s, ErrDimensionMismatch))
	}
	if r == 0 {
		return Temperament{}, temperamentErrorf(opFromMapping, ErrTrivial)
	}
	rank, err := normalform.Rank(m)
	if err != nil {
		return Temperament{}, temperamentErrorf(opFromMapping, err)
	}
	if rank < r {
		return Temperament{}, temperamentErrorf(opFromMapping, fmt.Errorf("%dx%d has rank %d: %w", r, d, rank, ErrRankDeficient))
	}

	c, err := normalform.Canonical(m)
	if err != nil {
		return Temperament{}, temperamentErrorf(opFromMapping, err)
	}

	return Temperament{mapping: c, sub: s}, nil
}

// FromCommas builds the temperament that tempers out the columns of c
// (d×n, n < d) over s.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrRankDeficient, ErrTrivial.
func FromCommas(c *intmat.Matrix, s subgroup.Subgroup) (Temperament, error) {
	if c == nil {
		return Temperament{}, temperamentErrorf(opFromCommas, ErrNilMatrix)
	}
	d, n := c.Dims()
	if d != s.Len() {
		return Temperament{}, temperamentErrorf(opFromCommas, fmt.Errorf("%dx%d comma basis over %s: %w", d, n, s, ErrDimensionMismatch))
	}
	rank, err := normalform.Rank(c.Transpose())
	if err != nil {
		return Temperament{}, temperamentErrorf(opFromCommas, err)
	}
	if rank < n {
		return Temperament{}, temperamentErrorf(opFromCommas, fmt.Errorf("%d commas of rank %d: %w", n, rank, ErrRankDeficient))
	}
	if n >= d {
		return Temperament{}, temperamentErrorf(opFromCommas, fmt.Errorf("%d commas in dimension %d: %w", n, d, ErrTrivial))
	}

	m, err := normalform.Cokernel(c)
	if err != nil {
		return Temperament{}, temperamentErrorf(opFromCommas, err)
	}
	t, err := FromMapping(m, s)
	if err != nil {
		return Temperament{}, temperamentErrorf(opFromCommas, err)
	}

	return t, nil
}

// Mapping returns the canonical mapping.
func (t Temperament) Mapping() *intmat.Matrix { return t.mapping.Clone() }

// Subgroup returns the subgroup the mapping acts on.
func (t Temperament) Subgroup() subgroup.Subgroup { return t.sub }

// Rank returns the number of generators.
func (t Temperament) Rank() int { return t.mapping.Rows() }

// Dim returns the subgroup dimension.
func (t Temperament) Dim() int { return t.mapping.Cols() }

// Equal reports whether t and o are the same temperament of the same subgroup.
func (t Temperament) Equal(o Temperament) bool {
	return t.sub.Equal(o.sub) && intmat.Equal(t.mapping, o.mapping)
}

// String renders the subgroup followed by the canonical mapping rows.
func (t Temperament) String() string {
	return fmt.Sprintf("%s\n%s", t.sub, t.mapping)
}

// Commas returns a saturated comma basis, one comma per column.
func (t Temperament) Commas() (*intmat.Matrix, error) {
	k, err := normalform.Kernel(t.mapping)
	if err != nil {
		return nil, temperamentErrorf(opCommas, err)
	}

	return k, nil
}

// ReducedCommas returns the comma basis LLL-reduced under Tenney weighting,
// simplest comma first.
func (t Temperament) ReducedCommas() (*intmat.Matrix, error) {
	k, err := t.Commas()
	if err != nil {
		return nil, temperamentErrorf(opReducedCommas, err)
	}
	w, err := weighting.Tenney.Matrix(t.sub.Logs())
	if err != nil {
		return nil, temperamentErrorf(opReducedCommas, err)
	}
	red, err := lattice.LLL(k, w)
	if err != nil {
		return nil, temperamentErrorf(opReducedCommas, err)
	}

	return red, nil
}

// Generators returns a d×r preimage G of the mapping (M·G = I): column i is
// an interval mapped to generator i.
func (t Temperament) Generators() (*intmat.Matrix, error) {
	g, err := diophantine.Preimage(t.mapping)
	if err != nil {
		return nil, temperamentErrorf(opGenerators, err)
	}

	return g, nil
}

// Measures scores t. Full-rank temperaments (nothing tempered out) report
// metrics.ErrNoCodimension.
func (t Temperament) Measures() (metrics.Measures, error) {
	m, err := metrics.Measure(t.mapping, t.sub)
	if err != nil {
		return metrics.Measures{}, temperamentErrorf(opMeasures, err)
	}

	return m, nil
}

// Tuning returns the Tenney-weighted least-squares tuning of t.
func (t Temperament) Tuning() (tuning.Tuning, error) {
	tun, err := tuning.LeastSquares(t.mapping, t.sub.Logs(), weighting.Tenney)
	if err != nil {
		return tuning.Tuning{}, temperamentErrorf(opTuning, err)
	}

	return tun, nil
}

// Simplify replaces every interval (column of intervals, prime-subgroup
// exponents of t's subgroup elements) with a simpler interval it is tempered
// together with, walking the reduced comma basis.
func (t Temperament) Simplify(intervals *intmat.Matrix) (*intmat.Matrix, error) {
	c, err := t.ReducedCommas()
	if err != nil {
		return nil, temperamentErrorf(opSimplify, err)
	}
	w, err := weighting.Tenney.Matrix(t.sub.Logs())
	if err != nil {
		return nil, temperamentErrorf(opSimplify, err)
	}
	out, err := lattice.Simplify(intervals, c, w)
	if err != nil {
		return nil, temperamentErrorf(opSimplify, err)
	}

	return out, nil
}

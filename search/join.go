// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/normalform"
)

// JoinResult reports the outcome of FindJoin.
type JoinResult struct {
	Maps    *intmat.Matrix // chosen vals stacked as rows; nil unless Found
	Indices []int          // positions of the chosen vals in the candidate list
	Tried   int            // subsets examined
	Found   bool
}

// FindJoin looks for rank-many candidates whose stacked vals have the same
// HNF as t. Subsets are tried in ComboBySum order, at most
// opts.MaxCombinations of them. Running out is not an error: the result
// has Found == false and Tried set.
//
// Errors: ErrBadOptions, ErrNilMatrix, ErrBadCandidate.
func FindJoin(t *intmat.Matrix, candidates []Candidate, opts Options) (JoinResult, error) {
	if err := opts.Validate(); err != nil {
		return JoinResult{}, searchErrorf(opFindJoin, err)
	}
	if t == nil {
		return JoinResult{}, searchErrorf(opFindJoin, ErrNilMatrix)
	}
	r, d := t.Dims()
	for i, c := range candidates {
		if c.Map == nil || c.Map.Rows() != 1 || c.Map.Cols() != d {
			return JoinResult{}, searchErrorf(opFindJoin, fmt.Errorf("candidate %d for a %dx%d target: %w", i, r, d, ErrBadCandidate))
		}
	}
	want, err := normalform.HNF(t, normalform.WithRemoveZeros())
	if err != nil {
		return JoinResult{}, searchErrorf(opFindJoin, err)
	}

	var res JoinResult
	logger := opts.logger()
	combos := ComboBySum(r, len(candidates))
	for idx, ok := combos.Next(); ok; idx, ok = combos.Next() {
		if res.Tried == opts.MaxCombinations {
			break
		}
		res.Tried++

		rows := make([]*intmat.Matrix, len(idx))
		for i, j := range idx {
			rows[i] = candidates[j].Map
		}
		stack, err := intmat.VStack(rows...)
		if err != nil {
			return JoinResult{}, searchErrorf(opFindJoin, err)
		}
		h, err := normalform.HNF(stack)
		if err != nil {
			return JoinResult{}, searchErrorf(opFindJoin, err)
		}
		if intmat.Equal(h, want) {
			res.Maps, res.Indices, res.Found = stack, idx, true
			logger.Debug("join found", "indices", idx, "tried", res.Tried)

			return res, nil
		}
	}
	logger.Warn("join not found", "tried", res.Tried, "candidates", len(candidates))

	return res, nil
}

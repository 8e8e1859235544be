// SPDX-License-Identifier: MIT

package search

import "slices"

// Combos enumerates the strictly increasing k-subsets of {0, …, n−1} in
// order of increasing index sum, lexicographically within one sum. With
// candidates ranked best first, low sums pair up the best candidates.
//
// Subsets are produced one sum level at a time; a Combos value is
// single-pass.
type Combos struct {
	k, n   int
	sum    int
	maxSum int
	level  [][]int
	pos    int
}

// ComboBySum returns the enumerator for k-subsets of n indices. It yields
// nothing when k < 1 or k > n.
func ComboBySum(k, n int) *Combos {
	c := &Combos{k: k, n: n}
	if k < 1 || k > n {
		c.sum, c.maxSum = 1, 0

		return c
	}
	c.sum = k * (k - 1) / 2
	c.maxSum = k*(n-1) - k*(k-1)/2

	return c
}

// Next returns the following subset. The slice is owned by the caller.
func (c *Combos) Next() ([]int, bool) {
	for c.pos == len(c.level) {
		if c.sum > c.maxSum {
			return nil, false
		}
		c.level = c.level[:0]
		c.pos = 0
		c.fill(make([]int, 0, c.k), 0, c.sum)
		c.sum++
	}
	out := c.level[c.pos]
	c.pos++

	return out, true
}

// fill appends, in lexicographic order, every completion of prefix by
// values ≥ start that adds up to remaining.
func (c *Combos) fill(prefix []int, start, remaining int) {
	j := c.k - len(prefix)
	if j == 0 {
		if remaining == 0 {
			c.level = append(c.level, slices.Clone(prefix))
		}
		return
	}
	for v := start; v < c.n; v++ {
		// v, v+1, …, v+j−1 is the smallest completion
		if j*v+j*(j-1)/2 > remaining {
			break
		}
		// v followed by the j−1 largest indices is the largest
		if v+(j-1)*(c.n-1)-(j-1)*(j-2)/2 < remaining {
			continue
		}
		c.fill(append(prefix, v), v+1, remaining-v)
	}
}

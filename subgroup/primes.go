// SPDX-License-Identifier: MIT

package subgroup

import "sync"

// maxPrime is the largest prime in the table (the 1000th prime).
const maxPrime = 7919

// primeTable returns the read-only ascending list of primes ≤ maxPrime,
// sieved once on first call.
var primeTable = sync.OnceValue(func() []int64 {
	composite := make([]bool, maxPrime+1)
	out := make([]int64, 0, 1000)
	for n := 2; n <= maxPrime; n++ {
		if composite[n] {
			continue
		}
		out = append(out, int64(n))
		for k := n * n; k <= maxPrime; k += n {
			composite[k] = true
		}
	}

	return out
})

// Primes returns a copy of the prime table.
func Primes() []int64 {
	return append([]int64(nil), primeTable()...)
}

// SPDX-License-Identifier: MIT

// Package subgroup models just-intonation subgroups: ordered lists of
// positive rationals such as 2.3.5 or 2.3.7/5 that span the pitch space a
// temperament is defined on.
//
// A Subgroup knows its sorted prime expansion, the exponent vector of every
// element over those primes (Basis), and its log-subgroup vector (Logs, base
// 2), which is the source of every Tenney weight in this module.
//
// The prime table covers the first 1000 primes (up to 7919). It is built
// once on first use and never mutated afterwards.
package subgroup

// Package temper computes with regular temperaments: integer mappings that
// reduce a just-intonation subgroup to a few generators, and the
// equal divisions of the octave that realize them.
//
// 🚀 What is temper?
//
//	An exact, single-threaded engine that brings together:
//		• Integer matrices: arbitrary-precision, immutable values
//		• Normal forms: Hermite normal form, kernel/cokernel, saturation
//		• Diophantine solving: integer systems, mapping preimages
//		• Lattices: weighted LLL comma bases, interval simplification
//		• Metrics: Tenney-weighted error, complexity, logflat badness
//		• Search: GPV enumeration, edo search, join reconstruction
//
// ✨ Why temper?
//
//   - Exact where it matters: every normal form runs on math/big
//   - Errors, not panics: malformed input reports a sentinel error
//   - Bounded searches with counters, never silent truncation
//
// Subpackages, bottom up:
//
//	intmat/       integer matrix value type and elementary operations
//	normalform/   HNF, kernel, cokernel, defactoring, determinant, canonical form
//	diophantine/  A·X = B over the integers, preimages of mappings
//	subgroup/     rational subgroups, prime factorization, log vectors
//	weighting/    weighting schemes and weight matrices
//	tuning/       weighted least-squares optimal tunings
//	metrics/      error, complexity and badness
//	lattice/      LLL reduction and interval simplification
//	temperament/  canonical (mapping, subgroup) values
//	gpv/          patent vals and the GPV enumerator
//	search/       edo search and join search
//
// Quick example:
//
//	s := subgroup.MustParse("2.3.5")
//	t, _ := temperament.FromCommas(intmat.Col(-4, 4, -1), s) // meantone
//	edos, _ := search.FindEDOs(t.Mapping(), s, search.DefaultOptions())
//	// edos.Candidates: 12, 7, 19, 5, 31, ...
//
//	go get github.com/osmiumic/temper
package temper

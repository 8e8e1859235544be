// SPDX-License-Identifier: MIT

// Package intmat provides an immutable, arbitrary-precision integer matrix.
//
// Every temperament computation in this module (Hermite normal forms,
// kernels, determinants, Diophantine solutions) runs on exact integers whose
// magnitudes are not bounded in advance, so entries are stored as *big.Int.
//
// Key properties:
//   - Row-major flat storage, r×c with r, c ≥ 0 (zero-width kernels are legal).
//   - Values are immutable: accessors hand out copies, operations allocate
//     fresh results and never touch their operands.
//   - Shape errors are reported through the package sentinels (errors.go);
//     nothing in this package panics on malformed input.
//
// Usage:
//
//	m, _ := intmat.FromInts([][]int64{{1, 0, -4}, {0, 1, 4}})
//	t := m.Transpose()
//	p, _ := intmat.Mul(m, t)
//	fmt.Print(p)
package intmat

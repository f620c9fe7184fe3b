// SPDX-License-Identifier: MIT

// Package arrowhead computes pivot-free LU factorizations and triangular
// solves for banded arrowhead matrices, touching only entries that can be
// structurally nonzero.
//
// 🚀 What is the pattern S(m,k)?
//
//	An m×m matrix belongs to S(m,k) when its nonzeros are confined to a
//	lower-triangular band of half-width k (row i may be nonzero only in
//	columns max(0, i-k+1)..i) plus k trailing dense rows and columns —
//	the "arrow". Everything else is structurally zero, and stays zero
//	throughout elimination: the only fill-in ever produced lands in the
//	arrow columns.
//
// ✨ Key features:
//   - FactorInPlace: outer-product Gaussian elimination restricted to the
//     pattern; O(m·k²) arithmetic instead of O(m³), no ×0/×1 or /1 ops
//   - Factor: non-destructive variant returning separate L and U
//   - SolveLower / SolveUpper: substitution over the same index windows
//   - Solve: factor + two substitutions, end to end
//   - RandomPattern: deterministic random fixtures exactly on S(m,k)
//
// ⚙️ Usage:
//
//	import "github.com/ndrosen/arrowlu/arrowhead"
//
//	a, _ := arrowhead.RandomPattern(9, 2,
//	    arrowhead.WithSeed(42),
//	    arrowhead.WithDiagonalShift(9), // diagonal dominance, see below
//	)
//	b := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}
//	x, err := arrowhead.Solve(a, 2, b) // a now holds the L/U factors
//
// No pivoting is performed — pivoting would destroy the very sparsity this
// package exists to exploit. The caller guarantees stability (diagonally
// dominant inputs, e.g. A + m·I); a pivot that is exactly zero surfaces as
// ErrZeroPivot, never as a silent row swap.
//
// The factorization is single-use per buffer: once FactorInPlace or Solve
// has overwritten A with its factors, the buffer is an (L,U) container and
// must not be factored again.
//
// Performance:
//
//   - Factorization: O(m·k²) time, O(1) extra memory (in-place)
//   - Substitution:  O(m·k) time per solve
package arrowhead

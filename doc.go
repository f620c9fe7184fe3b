// Package arrowlu is a structure-exploiting LU factorization and
// triangular-solve engine for banded arrowhead matrices.
//
// 🚀 What is a banded arrowhead matrix?
//
//	A square matrix whose nonzero entries are confined to a leading
//	lower-banded block of half-width k and a trailing dense block of k
//	rows and columns (the "arrow"). Such systems arise when a small set
//	of global couplings (the arrow) is bolted onto an otherwise local,
//	chain-like model: periodic boundary conditions, shared constraint
//	variables, border-block reorderings of nested-dissection solvers.
//
// ✨ Key features:
//   - pivot-free LU factorization restricted to the nonzero pattern:
//     O(m·k²) arithmetic instead of O(m³)
//   - in-place factorization into one buffer (strict-lower L, upper U)
//     or a non-destructive copy variant returning separate factors
//   - forward/backward substitution specialized to the same pattern
//   - deterministic elimination order, sentinel errors, no hidden state
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/    — dense row-major storage, validators and generic kernels
//	arrowhead/ — the pattern S(m,k), structured factorizer and solvers
//
// Stability is the caller's contract: no pivoting is performed, so supply
// matrices that eliminate stably without it (diagonally dominant inputs,
// e.g. A + m·I, are the canonical choice).
package arrowlu

// SPDX-License-Identifier: MIT

// Package matrix provides dense linear-algebra primitives for arrowlu.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix backed by one flat slice, with
//     bounds-checked At/Set and a documented raw accessor (RowMajor) for
//     kernels that need contiguous storage.
//   - Generic kernels (Add, Sub, Mul, MatVec, Transpose) used by the
//     arrowhead package and its verification tests.
//   - A deterministic Doolittle LU factorization without pivoting and an
//     Inverse built on it, serving as the dense reference that structured
//     factorizations are checked against.
//   - Central validators and sentinel errors shared by every kernel.
//
// All kernels carry a *Dense fast path over flat slices and a generic
// At/Set fallback for foreign Matrix implementations. Loop orders are
// fixed, so results are bit-for-bit reproducible for identical inputs.
//
// See the arrowhead package for the structure-exploiting factorizer.
package matrix

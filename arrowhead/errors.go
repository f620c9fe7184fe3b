// SPDX-License-Identifier: MIT
// Package arrowhead: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// arrowhead package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are confined to option constructors (WithX).

package arrowhead

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// nil matrix -> non-square -> bandwidth out of range -> vector length
// -> numerical failures (zero pivot). Validation errors are raised at the
// entry point before any computation or mutation begins; zero pivots
// surface at the division site mid-elimination.

var (
	// ErrNilMatrix indicates that a nil matrix was passed to an operation.
	ErrNilMatrix = errors.New("arrowhead: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// has Rows() != Cols().
	ErrNonSquare = errors.New("arrowhead: matrix is not square")

	// ErrBandwidth indicates that the band/arrow half-width k violates the
	// pattern invariant 1 ≤ k < floor(m/2). Outside that range the banded
	// region and the arrow overlap pathologically and the index windows
	// of the structured elimination are no longer well-defined.
	ErrBandwidth = errors.New("arrowhead: bandwidth out of range")

	// ErrVectorLength indicates that a right-hand-side vector is nil or its
	// length does not match the matrix order.
	ErrVectorLength = errors.New("arrowhead: vector length mismatch")

	// ErrZeroPivot is returned when elimination or backward substitution
	// meets an exactly-zero pivot/diagonal. There is no pivoting fallback by
	// design; the caller must supply matrices that eliminate stably.
	ErrZeroPivot = errors.New("arrowhead: zero pivot")

	// ErrRandSource indicates that a stochastic generator was invoked
	// without an RNG (use WithSeed or WithRand).
	ErrRandSource = errors.New("arrowhead: rng is required")
)

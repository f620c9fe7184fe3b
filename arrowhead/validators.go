// SPDX-License-Identifier: MIT
// Package arrowhead: canonical validation helpers.
//
// Purpose:
//   - Keep every public operation behind the same fail-fast sequence:
//     nil -> square -> bandwidth -> vector length.
//   - Return plain sentinels; call sites wrap with their operation tag.
//
// All checks are pure, deterministic and allocate nothing on success.

package arrowhead

import (
	"fmt"

	"github.com/ndrosen/arrowlu/matrix"
)

// validateSquare ensures a is non-nil and square, returning the order m.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func validateSquare(a matrix.Matrix) (int, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return 0, fmt.Errorf("%dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}

	return a.Rows(), nil
}

// validatePattern composes the square check with pattern validation,
// returning the order and the pattern descriptor.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBandwidth.
// Complexity: O(1).
func validatePattern(a matrix.Matrix, k int) (Pattern, error) {
	m, err := validateSquare(a)
	if err != nil {
		return Pattern{}, err
	}

	return NewPattern(m, k)
}

// validateVector ensures b is a length-m vector. A nil slice is rejected
// explicitly: a missing argument must not slip through as a zero-length
// vector (a correct one-dimensional shape check, by contract).
//
// Errors: ErrVectorLength.
// Complexity: O(1).
func validateVector(b []float64, m int) error {
	if b == nil || len(b) != m {
		return fmt.Errorf("len=%d, want %d: %w", len(b), m, ErrVectorLength)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package arrowhead

import "golang.org/x/exp/constraints"

// clamp restricts v to the closed interval [lo, hi].
// Callers must ensure lo ≤ hi; window arithmetic in this package always
// derives the bounds from a validated Pattern, so the precondition holds.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// SPDX-License-Identifier: MIT

// Package arrowhead: the Pattern type — closed-form index geometry of the
// banded arrowhead sparsity class S(m,k). Every loop bound used by the
// factorizer and the solvers is derived from the small set of methods
// defined here, so the window arithmetic is testable in isolation at the
// phase boundaries (n = 0, n = m-2k-1, n = m-2k, n = m-2).
package arrowhead

import "fmt"

// patternErrorf wraps an underlying error with Pattern construction context.
func patternErrorf(m, k int, err error) error {
	return fmt.Errorf("NewPattern(m=%d,k=%d): %w", m, k, err)
}

// Pattern describes the banded arrowhead sparsity class S(m,k):
// an m×m matrix whose entry (i, j) may be nonzero only when it lies in the
// lower band (j ≤ i ≤ j+k-1, both outside the arrow) or in one of the k
// trailing dense rows/columns.
//
// The zero value is not valid; construct via NewPattern.
type Pattern struct {
	m int // matrix order
	k int // band/arrow half-width, 1 ≤ k < floor(m/2)
}

// NewPattern validates (m, k) and returns the pattern descriptor.
//
// Errors:
//   - ErrBandwidth when k < 1 or k ≥ floor(m/2) (this also rejects any
//     m < 3, for which no valid k exists).
//
// Complexity: O(1).
func NewPattern(m, k int) (Pattern, error) {
	// The invariant k < floor(m/2) keeps band and arrow disjoint.
	if k < 1 || k >= m/2 {
		return Pattern{}, patternErrorf(m, k, ErrBandwidth)
	}

	return Pattern{m: m, k: k}, nil
}

// Order returns the matrix order m.
func (p Pattern) Order() int { return p.m }

// Bandwidth returns the band/arrow half-width k.
func (p Pattern) Bandwidth() int { return p.k }

// ArrowStart returns m-k, the first arrow row/column index.
// Rows and columns ArrowStart()..m-1 may be fully dense.
func (p Pattern) ArrowStart() int { return p.m - p.k }

// TailStart returns the elimination step at which the banded phase ends and
// the dense-tail phase begins: max(m-2k, 0). For steps n < TailStart the
// rows below the pivot split into a short band segment plus the arrow; from
// TailStart on, the remaining rows collapse into one dense trailing block.
func (p Pattern) TailStart() int {
	// With a valid pattern m-2k ≥ 1; the clamp guards the degenerate
	// geometry explicitly rather than relying on the constructor.
	return clamp(p.m-2*p.k, 0, p.m)
}

// BandStart returns the first column that may be nonzero in banded row i:
// max(0, i-k+1). For arrow rows (i ≥ ArrowStart) the whole row may be
// nonzero and BandStart is not meaningful.
func (p Pattern) BandStart(i int) int {
	return clamp(i-p.k+1, 0, i)
}

// Contains reports whether entry (i, j) can be structurally nonzero in
// S(m,k). Out-of-range indices are simply not contained.
// Complexity: O(1).
func (p Pattern) Contains(i, j int) bool {
	// Reject out-of-range indices first.
	if i < 0 || i >= p.m || j < 0 || j >= p.m {
		return false
	}
	// Arrow rows and columns are dense.
	arrow := p.ArrowStart()
	if i >= arrow || j >= arrow {
		return true
	}

	// Banded block: lower triangular band of half-width k.
	return j <= i && i <= j+p.k-1
}

// String implements fmt.Stringer for diagnostics.
func (p Pattern) String() string {
	return fmt.Sprintf("S(m=%d,k=%d)", p.m, p.k)
}

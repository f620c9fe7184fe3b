// SPDX-License-Identifier: MIT
// Package arrowhead: the structured factorizer.
//
// Elimination geometry, derived once and reused by both code paths:
//
//   - Step n of outer-product Gaussian elimination only has multipliers in
//     rows whose column n can be nonzero: the short band segment
//     n+1..n+k-1 and the arrow rows m-k..m-1.
//   - The pivot row n (for n < m-k) has nonzeros right of the diagonal in
//     the arrow columns ONLY, because the banded block is lower triangular.
//     Hence every rank-1 update lands in arrow columns, and by induction the
//     banded block never fills in. This is the invariant that keeps the
//     whole factorization at O(m·k²).
//   - From step n = m-2k on, the band below the pivot has merged with the
//     arrow: the remaining steps are ordinary dense elimination on rows
//     n+1..m-1 restricted to columns max(m-k, n+1)..m-1.

package arrowhead

import (
	"fmt"

	"github.com/ndrosen/arrowlu/matrix"
)

// zeroPivot is the sentinel value for detecting an exactly-zero pivot.
const zeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opFactorInPlace = "FactorInPlace"
	opFactor        = "Factor"
	opSolveLower    = "SolveLower"
	opSolveUpper    = "SolveUpper"
	opSolve         = "Solve"
	opRandomPattern = "RandomPattern"
)

// arrowErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func arrowErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FactorInPlace computes the pivot-free LU factorization of a ∈ S(m,k),
// overwriting a: the strict lower triangle receives the multipliers of L
// (unit diagonal implied, never stored), the upper triangle including the
// diagonal receives U.
//
// Implementation:
//   - Stage 1: validate (nil → square → bandwidth); no mutation on failure.
//   - Stage 2: banded phase n = 0..m-2k-1 — eliminate the band segment and
//     the arrow rows, updating arrow columns only.
//   - Stage 3: dense tail n = m-2k..m-2 — eliminate rows n+1..m-1 over
//     columns max(m-k, n+1)..m-1.
//
// Behavior highlights:
//   - Arithmetic touches only structurally-nonzero positions: no ×0, ×1
//     or /1 operations anywhere, which is the entire point.
//   - Deterministic elimination order; fast path on *Dense flat storage,
//     generic At/Set fallback otherwise (identical visitation order).
//   - Single-use contract: the overwritten buffer is an (L,U) container;
//     factoring it again is undefined and unsupported.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBandwidth (validation, eager).
//   - ErrZeroPivot when a pivot is exactly zero mid-elimination (the buffer
//     is left partially factored; there is no pivoting fallback by design).
//
// Complexity: Time O(m·k²), Space O(1) extra.
func FactorInPlace(a matrix.Matrix, k int) error {
	// Validate before any computation begins.
	p, err := validatePattern(a, k)
	if err != nil {
		return arrowErrorf(opFactorInPlace, err)
	}

	// Fast path: flat row-major elimination on the caller's buffer.
	if d, ok := a.(*matrix.Dense); ok {
		if err = factorFlat(d.RowMajor(), p); err != nil {
			return arrowErrorf(opFactorInPlace, err)
		}

		return nil
	}

	// Fallback: generic interface elimination, same order.
	if err = factorGeneric(a, p); err != nil {
		return arrowErrorf(opFactorInPlace, err)
	}

	return nil
}

// Factor is the non-destructive variant: it leaves a untouched and returns
// fresh factors L (unit diagonal, explicit zeros outside its strict-lower
// pattern) and U (upper triangular). The elimination performs exactly the
// same arithmetic, in the same order, as FactorInPlace; the two variants
// therefore agree bit-for-bit.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBandwidth, ErrZeroPivot.
// Complexity: Time O(m·k²) + O(m²) for the copy/split, Space O(m²).
func Factor(a matrix.Matrix, k int) (*matrix.Dense, *matrix.Dense, error) {
	p, err := validatePattern(a, k)
	if err != nil {
		return nil, nil, arrowErrorf(opFactor, err)
	}

	// Work on a private dense copy so the input survives.
	work, err := cloneToDense(a)
	if err != nil {
		return nil, nil, arrowErrorf(opFactor, err)
	}
	if err = factorFlat(work.RowMajor(), p); err != nil {
		return nil, nil, arrowErrorf(opFactor, err)
	}

	// Split the combined buffer: strict lower → L, the rest → U.
	m := p.Order()
	l, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, nil, arrowErrorf(opFactor, err)
	}
	u, err := matrix.NewZeros(m, m)
	if err != nil {
		return nil, nil, arrowErrorf(opFactor, err)
	}
	var (
		i, j, base int
		ld         = l.RowMajor()
		ud         = u.RowMajor()
		w          = work.RowMajor()
	)
	for i = 0; i < m; i++ {
		base = i * m
		for j = 0; j < i; j++ {
			ld[base+j] = w[base+j] // multiplier of L
		}
		for j = i; j < m; j++ {
			ud[base+j] = w[base+j] // row of U, diagonal included
		}
	}

	return l, u, nil
}

// factorFlat runs the structured elimination over a flat row-major buffer.
// Window derivation lives in the package comment above; p is validated.
func factorFlat(data []float64, p Pattern) error {
	m, k := p.Order(), p.Bandwidth()
	arrow := p.ArrowStart()
	tail := p.TailStart()

	var (
		n, r, j     int     // step, row, column
		base, row   int     // flat offsets of pivot row and target row
		rEnd, jFrom int     // exclusive band-row bound, first update column
		piv, mult   float64 // pivot value and stored multiplier
	)

	// Phase 1: banded steps. Rows n+1..n+k-1 sit strictly inside the band
	// here (n+k-1 ≤ m-k-2 for n < tail), so the segment needs no clipping;
	// all fill-in lands in the arrow columns.
	for n = 0; n < tail; n++ {
		base = n * m
		piv = data[base+n]
		if piv == zeroPivot {
			return fmt.Errorf("step %d: %w", n, ErrZeroPivot)
		}

		// Band segment below the pivot.
		rEnd = n + k
		for r = n + 1; r < rEnd; r++ {
			row = r * m
			mult = data[row+n] / piv
			data[row+n] = mult
			for j = arrow; j < m; j++ {
				data[row+j] -= mult * data[base+j]
			}
		}
		// Arrow rows couple into every pivot column.
		for r = arrow; r < m; r++ {
			row = r * m
			mult = data[row+n] / piv
			data[row+n] = mult
			for j = arrow; j < m; j++ {
				data[row+j] -= mult * data[base+j]
			}
		}
	}

	// Phase 2: dense tail. Every remaining row carries a nonzero in the
	// pivot column; updates span max(arrow, n+1)..m-1.
	for n = tail; n < m-1; n++ {
		base = n * m
		piv = data[base+n]
		if piv == zeroPivot {
			return fmt.Errorf("step %d: %w", n, ErrZeroPivot)
		}

		jFrom = clamp(n+1, arrow, m)
		for r = n + 1; r < m; r++ {
			row = r * m
			mult = data[row+n] / piv
			data[row+n] = mult
			for j = jFrom; j < m; j++ {
				data[row+j] -= mult * data[base+j]
			}
		}
	}

	return nil
}

// factorGeneric mirrors factorFlat over the Matrix interface, visiting the
// same positions in the same order. Kept separate so foreign Matrix
// implementations (and the operation-counting tests built on them) exercise
// exactly one At/Set per arithmetic access.
func factorGeneric(a matrix.Matrix, p Pattern) error {
	m, k := p.Order(), p.Bandwidth()
	arrow := p.ArrowStart()
	tail := p.TailStart()

	var (
		n, r, j             int
		rEnd, jFrom         int
		piv, mult, pv, cell float64
		err                 error
	)

	// eliminateRow folds the shared "scale + update window" body.
	eliminateRow := func(n, r, jFrom int, piv float64) error {
		mult, err = a.At(r, n)
		if err != nil {
			return err
		}
		mult /= piv
		if err = a.Set(r, n, mult); err != nil {
			return err
		}
		for j = jFrom; j < m; j++ {
			if pv, err = a.At(n, j); err != nil {
				return err
			}
			if cell, err = a.At(r, j); err != nil {
				return err
			}
			if err = a.Set(r, j, cell-mult*pv); err != nil {
				return err
			}
		}

		return nil
	}

	// Phase 1: banded steps.
	for n = 0; n < tail; n++ {
		if piv, err = a.At(n, n); err != nil {
			return err
		}
		if piv == zeroPivot {
			return fmt.Errorf("step %d: %w", n, ErrZeroPivot)
		}
		rEnd = n + k
		for r = n + 1; r < rEnd; r++ {
			if err = eliminateRow(n, r, arrow, piv); err != nil {
				return err
			}
		}
		for r = arrow; r < m; r++ {
			if err = eliminateRow(n, r, arrow, piv); err != nil {
				return err
			}
		}
	}

	// Phase 2: dense tail.
	for n = tail; n < m-1; n++ {
		if piv, err = a.At(n, n); err != nil {
			return err
		}
		if piv == zeroPivot {
			return fmt.Errorf("step %d: %w", n, ErrZeroPivot)
		}
		jFrom = clamp(n+1, arrow, m)
		for r = n + 1; r < m; r++ {
			if err = eliminateRow(n, r, jFrom, piv); err != nil {
				return err
			}
		}
	}

	return nil
}

// cloneToDense copies an arbitrary Matrix into fresh *Dense storage.
func cloneToDense(a matrix.Matrix) (*matrix.Dense, error) {
	// *Dense clones stay *Dense.
	if d, ok := a.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	rows, cols := a.Rows(), a.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	data := out.RowMajor()
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			data[i*cols+j] = v
		}
	}

	return out, nil
}

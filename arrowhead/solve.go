// SPDX-License-Identifier: MIT
// Package arrowhead: structured triangular solvers and the end-to-end
// orchestration.
//
// Substitution geometry:
//
//   - L is unit lower triangular with the S(m,k) profile: banded row i
//     (i < m-k) carries multipliers only in columns max(0, i-k)..i-1;
//     arrow rows are dense over the whole prefix 0..i-1.
//   - U is upper triangular with nonzeros right of the diagonal confined to
//     the arrow columns: row i sums over max(m-k, i+1)..m-1 only.
//
// Both scans are inherently sequential — x[i] depends on earlier (lower
// solve) or later (upper solve) entries — so rows are processed strictly in
// index order; only each row's inner product is vectorizable.

package arrowhead

import (
	"fmt"

	"github.com/ndrosen/arrowlu/matrix"
)

// SolveLower solves L·x = b by forward substitution, where l holds the
// strict-lower multipliers of a unit lower-triangular factor with band
// parameter k (the diagonal is implied and never read — the same buffer may
// simultaneously hold U, as produced by FactorInPlace).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBandwidth, ErrVectorLength.
// Complexity: Time O(m·k), Space O(m) for the result.
func SolveLower(l matrix.Matrix, k int, b []float64) ([]float64, error) {
	p, err := validatePattern(l, k)
	if err != nil {
		return nil, arrowErrorf(opSolveLower, err)
	}
	if err = validateVector(b, p.Order()); err != nil {
		return nil, arrowErrorf(opSolveLower, err)
	}

	x := make([]float64, p.Order())
	if d, ok := l.(*matrix.Dense); ok {
		solveLowerFlat(d.RowMajor(), p, b, x)

		return x, nil
	}
	if err = solveLowerGeneric(l, p, b, x); err != nil {
		return nil, arrowErrorf(opSolveLower, err)
	}

	return x, nil
}

// SolveUpper solves U·x = b by backward substitution, where u holds an
// upper-triangular factor with band parameter k (as produced by
// FactorInPlace; strict-lower content of the buffer is ignored).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBandwidth, ErrVectorLength,
// ErrZeroPivot (zero diagonal — degenerate triangular system).
// Complexity: Time O(m·k), Space O(m) for the result.
func SolveUpper(u matrix.Matrix, k int, b []float64) ([]float64, error) {
	p, err := validatePattern(u, k)
	if err != nil {
		return nil, arrowErrorf(opSolveUpper, err)
	}
	if err = validateVector(b, p.Order()); err != nil {
		return nil, arrowErrorf(opSolveUpper, err)
	}

	x := make([]float64, p.Order())
	if d, ok := u.(*matrix.Dense); ok {
		if err = solveUpperFlat(d.RowMajor(), p, b, x); err != nil {
			return nil, arrowErrorf(opSolveUpper, err)
		}

		return x, nil
	}
	if err = solveUpperGeneric(u, p, b, x); err != nil {
		return nil, arrowErrorf(opSolveUpper, err)
	}

	return x, nil
}

// Solve solves A·x = b for A ∈ S(m,k): it validates everything up front,
// factors A in place (A is consumed — it holds L and U afterwards), then
// forward- and backward-substitutes.
//
// Implementation:
//   - Stage 1: validate (nil → square → bandwidth → vector length) before
//     any mutation.
//   - Stage 2: FactorInPlace(a, k); a becomes the combined (L,U) buffer.
//   - Stage 3: SolveLower (L·y = b), then SolveUpper (U·x = y).
//
// Behavior highlights:
//   - Reproduces a generic dense solve to floating-point tolerance whenever
//     A eliminates stably without pivoting.
//   - a is single-use: to keep the original matrix, Clone it first or use
//     Factor + the two solvers.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBandwidth, ErrVectorLength (eager).
//   - ErrZeroPivot from factorization or backward substitution.
//
// Complexity: Time O(m·k²), Space O(m) beyond the caller's buffer.
func Solve(a matrix.Matrix, k int, b []float64) ([]float64, error) {
	// Validate the full argument set before any computation begins.
	p, err := validatePattern(a, k)
	if err != nil {
		return nil, arrowErrorf(opSolve, err)
	}
	if err = validateVector(b, p.Order()); err != nil {
		return nil, arrowErrorf(opSolve, err)
	}

	// Factor, then substitute twice.
	if err = FactorInPlace(a, k); err != nil {
		return nil, arrowErrorf(opSolve, err)
	}
	y, err := SolveLower(a, k, b)
	if err != nil {
		return nil, arrowErrorf(opSolve, err)
	}
	x, err := SolveUpper(a, k, y)
	if err != nil {
		return nil, arrowErrorf(opSolve, err)
	}

	return x, nil
}

// solveLowerFlat: forward substitution over flat storage. Cannot fail — the
// unit diagonal is implied, so no division occurs.
func solveLowerFlat(data []float64, p Pattern, b, x []float64) {
	m, k := p.Order(), p.Bandwidth()
	arrow := p.ArrowStart()

	var (
		i, j, jFrom, row int
		sum              float64
	)
	for i = 0; i < m; i++ {
		// Banded rows sum a k-wide window; arrow rows the full prefix.
		if i < arrow {
			jFrom = clamp(i-k, 0, i)
		} else {
			jFrom = 0
		}
		sum = 0
		row = i * m
		for j = jFrom; j < i; j++ {
			sum += data[row+j] * x[j]
		}
		x[i] = b[i] - sum
	}
}

// solveLowerGeneric mirrors solveLowerFlat over the Matrix interface.
func solveLowerGeneric(l matrix.Matrix, p Pattern, b, x []float64) error {
	m, k := p.Order(), p.Bandwidth()
	arrow := p.ArrowStart()

	var (
		i, j, jFrom int
		sum, v      float64
		err         error
	)
	for i = 0; i < m; i++ {
		if i < arrow {
			jFrom = clamp(i-k, 0, i)
		} else {
			jFrom = 0
		}
		sum = 0
		for j = jFrom; j < i; j++ {
			if v, err = l.At(i, j); err != nil {
				return err
			}
			sum += v * x[j]
		}
		x[i] = b[i] - sum
	}

	return nil
}

// solveUpperFlat: backward substitution over flat storage.
func solveUpperFlat(data []float64, p Pattern, b, x []float64) error {
	m := p.Order()
	arrow := p.ArrowStart()

	var (
		i, j, jFrom, row int
		sum, diag        float64
	)
	for i = m - 1; i >= 0; i-- {
		// Right of the diagonal only the arrow columns can be nonzero;
		// near the bottom the window must not start before i+1.
		jFrom = clamp(i+1, arrow, m)
		sum = 0
		row = i * m
		for j = jFrom; j < m; j++ {
			sum += data[row+j] * x[j]
		}
		diag = data[row+i]
		if diag == zeroPivot {
			return fmt.Errorf("row %d: %w", i, ErrZeroPivot)
		}
		x[i] = (b[i] - sum) / diag
	}

	return nil
}

// solveUpperGeneric mirrors solveUpperFlat over the Matrix interface.
func solveUpperGeneric(u matrix.Matrix, p Pattern, b, x []float64) error {
	m := p.Order()
	arrow := p.ArrowStart()

	var (
		i, j, jFrom int
		sum, v      float64
		diag        float64
		err         error
	)
	for i = m - 1; i >= 0; i-- {
		jFrom = clamp(i+1, arrow, m)
		sum = 0
		for j = jFrom; j < m; j++ {
			if v, err = u.At(i, j); err != nil {
				return err
			}
			sum += v * x[j]
		}
		if diag, err = u.At(i, i); err != nil {
			return err
		}
		if diag == zeroPivot {
			return fmt.Errorf("row %d: %w", i, ErrZeroPivot)
		}
		x[i] = (b[i] - sum) / diag
	}

	return nil
}

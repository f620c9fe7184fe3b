// SPDX-License-Identifier: MIT
// Factorization tests: reconstruction over the full small-order sweep,
// factor structure (no fill-in), in-place vs copying agreement, generic-path
// parity, validation ordering, zero-pivot detection and the operation-count
// scaling law.

package arrowhead_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ndrosen/arrowlu/arrowhead"
	"github.com/ndrosen/arrowlu/matrix"
)

// TestFactor_Reconstruction sweeps every order 1..9 with every admissible
// bandwidth and checks L·U ≈ A entrywise.
func TestFactor_Reconstruction(t *testing.T) {
	t.Parallel()

	for m := 1; m <= 9; m++ {
		for _, k := range validBandwidths(m) {
			a := mustRandom(t, m, k, int64(100*m+k))

			l, u, err := arrowhead.Factor(a, k)
			if err != nil {
				t.Fatalf("Factor(m=%d,k=%d): %v", m, k, err)
			}

			prod, err := matrix.Mul(l, u)
			if err != nil {
				t.Fatalf("Mul(L,U): %v", err)
			}
			for i := 0; i < m; i++ {
				for j := 0; j < m; j++ {
					want := mustAt(t, a, i, j)
					got := mustAt(t, prod, i, j)
					if math.Abs(want-got) > testTol {
						t.Fatalf("m=%d k=%d: (L·U)[%d][%d] = %g, want %g",
							m, k, i, j, got, want)
					}
				}
			}
		}
	}
}

// TestFactor_Structure verifies the triangular shape of both factors and the
// no-fill-in guarantee: every entry outside the sparsity class stays exactly
// zero after elimination.
func TestFactor_Structure(t *testing.T) {
	t.Parallel()

	const (
		m = 9
		k = 2
	)
	a := mustRandom(t, m, k, 7)
	p, err := arrowhead.NewPattern(m, k)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}

	l, u, err := arrowhead.Factor(a, k)
	if err != nil {
		t.Fatalf("Factor: %v", err)
	}

	for i := 0; i < m; i++ {
		if d := mustAt(t, l, i, i); d != 1 {
			t.Fatalf("L[%d][%d] = %g, want unit diagonal", i, i, d)
		}
		for j := 0; j < m; j++ {
			lv := mustAt(t, l, i, j)
			uv := mustAt(t, u, i, j)
			if j > i && lv != 0 {
				t.Fatalf("L[%d][%d] = %g, want upper triangle zero", i, j, lv)
			}
			if j < i && uv != 0 {
				t.Fatalf("U[%d][%d] = %g, want lower triangle zero", i, j, uv)
			}
			// No fill-in: elimination may not create nonzeros outside S(m,k).
			if !p.Contains(i, j) && (lv != 0 || uv != 0) {
				t.Fatalf("fill-in at (%d,%d): L=%g U=%g", i, j, lv, uv)
			}
		}
	}
}

// TestFactorInPlace_MatchesFactor asserts the destructive and the copying
// variants produce bit-identical factors.
func TestFactorInPlace_MatchesFactor(t *testing.T) {
	t.Parallel()

	const (
		m = 8
		k = 3
	)
	a := mustRandom(t, m, k, 11)
	buf := mustClone(t, a)

	l, u, err := arrowhead.Factor(a, k)
	if err != nil {
		t.Fatalf("Factor: %v", err)
	}
	if err = arrowhead.FactorInPlace(buf, k); err != nil {
		t.Fatalf("FactorInPlace: %v", err)
	}

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			var want float64
			if j < i {
				want = mustAt(t, l, i, j)
			} else {
				want = mustAt(t, u, i, j)
			}
			if got := mustAt(t, buf, i, j); got != want {
				t.Fatalf("buffer[%d][%d] = %g, want %g", i, j, got, want)
			}
		}
	}
}

// TestFactorInPlace_GenericParity runs the interface fallback against the
// flat fast path and expects bit-identical results.
func TestFactorInPlace_GenericParity(t *testing.T) {
	t.Parallel()

	const (
		m = 9
		k = 3
	)
	a := mustRandom(t, m, k, 13)
	flat := mustClone(t, a)
	slow := mustClone(t, a)

	if err := arrowhead.FactorInPlace(flat, k); err != nil {
		t.Fatalf("FactorInPlace(flat): %v", err)
	}
	if err := arrowhead.FactorInPlace(hide{slow}, k); err != nil {
		t.Fatalf("FactorInPlace(generic): %v", err)
	}

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if f, g := mustAt(t, flat, i, j), mustAt(t, slow, i, j); f != g {
				t.Fatalf("paths disagree at (%d,%d): flat %g, generic %g",
					i, j, f, g)
			}
		}
	}
}

func TestFactorInPlace_Validation(t *testing.T) {
	t.Parallel()

	if err := arrowhead.FactorInPlace(nil, 1); !errors.Is(err, arrowhead.ErrNilMatrix) {
		t.Fatalf("nil matrix: got %v, want ErrNilMatrix", err)
	}

	rect, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err = arrowhead.FactorInPlace(rect, 1); !errors.Is(err, arrowhead.ErrNonSquare) {
		t.Fatalf("rectangular: got %v, want ErrNonSquare", err)
	}

	sq := mustRandom(t, 6, 2, 1)
	for _, k := range []int{-1, 0, 3, 6} {
		if err = arrowhead.FactorInPlace(sq, k); !errors.Is(err, arrowhead.ErrBandwidth) {
			t.Fatalf("k=%d: got %v, want ErrBandwidth", k, err)
		}
	}

	// Factor shares the validation sequence.
	if _, _, err = arrowhead.Factor(nil, 1); !errors.Is(err, arrowhead.ErrNilMatrix) {
		t.Fatalf("Factor(nil): got %v, want ErrNilMatrix", err)
	}
}

// TestFactorInPlace_LeavesInputIntactOnValidationError: a rejected call must
// not have touched the buffer.
func TestFactorInPlace_LeavesInputIntactOnValidationError(t *testing.T) {
	t.Parallel()

	a := mustRandom(t, 8, 2, 3)
	orig := mustClone(t, a)

	if err := arrowhead.FactorInPlace(a, 4); !errors.Is(err, arrowhead.ErrBandwidth) {
		t.Fatalf("got %v, want ErrBandwidth", err)
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if mustAt(t, a, i, j) != mustAt(t, orig, i, j) {
				t.Fatalf("buffer mutated at (%d,%d) despite validation error", i, j)
			}
		}
	}
}

func TestFactorInPlace_ZeroPivot(t *testing.T) {
	t.Parallel()

	// A zero in the (0,0) position trips the very first pivot check; the
	// fixture is otherwise well-conditioned.
	a := mustRandom(t, 6, 2, 5)
	if err := a.Set(0, 0, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	err := arrowhead.FactorInPlace(mustClone(t, a), 2)
	if !errors.Is(err, arrowhead.ErrZeroPivot) {
		t.Fatalf("flat path: got %v, want ErrZeroPivot", err)
	}
	err = arrowhead.FactorInPlace(hide{mustClone(t, a)}, 2)
	if !errors.Is(err, arrowhead.ErrZeroPivot) {
		t.Fatalf("generic path: got %v, want ErrZeroPivot", err)
	}
}

// TestFactorInPlace_OperationScaling pins the structured cost model: with k
// fixed, doubling m must roughly double the work — a dense elimination would
// multiply it by eight. The generic path performs exactly one element access
// per arithmetic touch, so the Set counter is a faithful operation count.
func TestFactorInPlace_OperationScaling(t *testing.T) {
	t.Parallel()

	const k = 2
	count := func(m int) int {
		c := &countingMatrix{d: mustRandom(t, m, k, int64(m))}
		if err := arrowhead.FactorInPlace(c, k); err != nil {
			t.Fatalf("FactorInPlace(m=%d): %v", m, err)
		}

		return c.sets
	}

	small, large := count(24), count(48)
	ratio := float64(large) / float64(small)
	if ratio < 1.5 || ratio > 3 {
		t.Fatalf("work ratio %g for doubled order (sets: %d -> %d), want ~2",
			ratio, small, large)
	}
}

// SPDX-License-Identifier: MIT
// Package arrowhead_test contains shared helpers: deterministic fixtures on
// the exact S(m,k) pattern, a dense reference solver, and instrumentation
// wrappers that force (and count) the generic interface path.

package arrowhead_test

import (
	"math"
	"testing"

	"github.com/ndrosen/arrowlu/arrowhead"
	"github.com/ndrosen/arrowlu/matrix"
)

// testTol is the absolute tolerance used by approximate comparisons.
const testTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) code paths in the operations under test.
type hide struct{ matrix.Matrix }

// countingMatrix wraps a *Dense and counts every element access. Because it
// is not a *Dense itself, operations take the generic path, where each
// arithmetic access maps to exactly one At/Set call — which makes the
// counters a faithful proxy for the floating-point operation count.
type countingMatrix struct {
	d    *matrix.Dense
	ats  int
	sets int
}

func (c *countingMatrix) Rows() int { return c.d.Rows() }
func (c *countingMatrix) Cols() int { return c.d.Cols() }

func (c *countingMatrix) At(i, j int) (float64, error) {
	c.ats++

	return c.d.At(i, j)
}

func (c *countingMatrix) Set(i, j int, v float64) error {
	c.sets++

	return c.d.Set(i, j, v)
}

func (c *countingMatrix) Clone() matrix.Matrix {
	return &countingMatrix{d: c.d.Clone().(*matrix.Dense)}
}

// mustRandom builds the canonical test fixture: a random matrix exactly on
// S(m,k) with diagonal shift m (diagonal dominance ⇒ stable pivot-free
// elimination).
func mustRandom(t testing.TB, m, k int, seed int64) *matrix.Dense {
	t.Helper()
	a, err := arrowhead.RandomPattern(m, k,
		arrowhead.WithSeed(seed),
		arrowhead.WithDiagonalShift(float64(m)),
	)
	if err != nil {
		t.Fatalf("RandomPattern(%d,%d): %v", m, k, err)
	}

	return a
}

// mustClone deep-copies a fixture so destructive operations keep a pristine
// original around.
func mustClone(t testing.TB, a *matrix.Dense) *matrix.Dense {
	t.Helper()

	return a.Clone().(*matrix.Dense)
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// denseSolveRef solves A·x = b with the generic dense machinery
// (Inverse + MatVec), the reference the structured path must reproduce.
func denseSolveRef(t testing.TB, a matrix.Matrix, b []float64) []float64 {
	t.Helper()
	inv, err := matrix.Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	x, err := matrix.MatVec(inv, b)
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}

	return x
}

// vecClose asserts |want[i] - got[i]| ≤ tol for all i.
func vecClose(t testing.TB, want, got []float64, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("vector length: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > tol {
			t.Fatalf("x[%d]: want %g, got %g (tol %g)", i, want[i], got[i], tol)
		}
	}
}

// validBandwidths lists every legal k for order m (possibly empty).
func validBandwidths(m int) []int {
	var ks []int
	for k := 1; k < m/2; k++ {
		ks = append(ks, k)
	}

	return ks
}

// SPDX-License-Identifier: MIT

// Package arrowhead: functional configuration for the fixture generator.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer errors, caught at construction time),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness —
//     stochastic generators require an explicit RNG via WithSeed/WithRand.

package arrowhead

import (
	"math"
	"math/rand"
)

// Panic messages for option-constructor misuse (stable, grep-friendly).
const (
	panicNilRand    = "arrowhead: WithRand requires a non-nil *rand.Rand"
	panicNilValueFn = "arrowhead: WithValueFn requires a non-nil function"
	panicBadShift   = "arrowhead: WithDiagonalShift requires a finite, non-negative shift"
)

// config stores the effective generator configuration after applying Option
// setters. It is intentionally unexported; public entry points accept
// `...Option` and resolve them via gatherOptions.
type config struct {
	rng     *rand.Rand                // explicit randomness source; nil until provided
	valueFn func(*rand.Rand) float64  // per-entry value sampler
	shift   float64                   // added to every diagonal entry after filling
}

// Option mutates the generator configuration.
type Option func(*config)

// defaultValueFn samples uniformly from [-1, 1).
func defaultValueFn(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}

// gatherOptions resolves defaults and applies setters in call order.
func gatherOptions(opts ...Option) config {
	cfg := config{valueFn: defaultValueFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies the randomness source directly.
// Panics on a nil source (constructor-time programmer error).
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(c *config) { c.rng = r }
}

// WithSeed supplies randomness via a fresh deterministic source seeded with
// seed. Identical seed + identical options ⇒ identical fixture.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithValueFn replaces the per-entry sampler (default: uniform [-1, 1)).
// The function receives the configured RNG and returns the entry value.
// Panics on nil.
// Complexity: O(1).
func WithValueFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic(panicNilValueFn)
	}

	return func(c *config) { c.valueFn = fn }
}

// WithDiagonalShift adds shift to every diagonal entry after filling.
//
// A shift of the order of the matrix size (e.g. m) makes the fixture
// diagonally dominant, which is the caller-side stability guarantee the
// pivot-free factorizer relies on. Panics on NaN/Inf or negative shift.
// Complexity: O(1).
func WithDiagonalShift(shift float64) Option {
	if math.IsNaN(shift) || math.IsInf(shift, 0) || shift < 0 {
		panic(panicBadShift)
	}

	return func(c *config) { c.shift = shift }
}

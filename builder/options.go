// SPDX-License-Identifier: MIT
// Package: endcap/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes mesh construction by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithSpacing sets the lattice spacing. Panics unless spacing is finite and > 0.
func WithSpacing(spacing float64) BuilderOption {
	if !(spacing > 0) || math.IsInf(spacing, 1) {
		panic("builder: WithSpacing: spacing must be finite and > 0")
	}
	return func(c *builderConfig) {
		c.spacing = spacing
	}
}

// WithHeightFn lifts every vertex to z = fn(x, y), evaluated on the scaled
// planar position. Panics on nil.
func WithHeightFn(fn func(x, y float64) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithHeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.heightFn = fn
	}
}

// WithOpen makes Fan leave a gap: the centre and the first and last spokes
// become boundary vertices.
func WithOpen() BuilderOption {
	return func(c *builderConfig) {
		c.open = true
	}
}

// WithRand provides an explicit RNG for jitter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter perturbs every vertex height by a uniform amount in
// [-amount, amount]. Requires WithSeed or WithRand. Panics on negative or
// non-finite amount.
func WithJitter(amount float64) BuilderOption {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		panic("builder: WithJitter: amount must be finite and >= 0")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}

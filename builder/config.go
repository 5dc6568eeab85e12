// SPDX-License-Identifier: MIT
// Package: endcap/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • spacing  = DefaultSpacing
//   • heightFn = nil  (flat, z = 0)
//   • open     = false (fans close around their centre)
//   • rng      = nil  (no randomness unless seeded)
//   • jitter   = 0

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	spacing  float64
	heightFn func(x, y float64) float64
	open     bool

	// RNG for jitter; nil means “no randomness”.
	rng    *rand.Rand
	jitter float64 // >= 0, max |Δz| added per vertex
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{spacing: DefaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// point maps lattice coordinates (x, y) to a position: scaled by spacing,
// lifted by heightFn.
func (cfg builderConfig) point(x, y float64) r3.Vec {
	p := r3.Vec{X: x * cfg.spacing, Y: y * cfg.spacing}
	if cfg.heightFn != nil {
		p.Z = cfg.heightFn(p.X, p.Y)
	}

	return p
}

// perturb adds uniform noise in [-jitter, jitter] to the z coordinate of
// positions[from:]. Returns ErrNeedRandSource when jitter is set without rng.
func (cfg builderConfig) perturb(method string, positions []r3.Vec, from int) error {
	if cfg.jitter == 0 {
		return nil
	}
	if cfg.rng == nil {
		return wrapf(method, "jitter", ErrNeedRandSource)
	}
	for i := from; i < len(positions); i++ {
		positions[i].Z += cfg.jitter * (2*cfg.rng.Float64() - 1)
	}

	return nil
}

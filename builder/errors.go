// SPDX-License-Identifier: MIT
// Package: endcap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrBadDimension indicates a size parameter (rows, cols, sectors, rings)
// below the constructor minimum.
var ErrBadDimension = errors.New("builder: dimension too small")

// ErrNeedRandSource indicates that jitter was requested without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a mesh that does not
// form a valid level.
var ErrConstructFailed = errors.New("builder: construction failed")

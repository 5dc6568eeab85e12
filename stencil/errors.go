// SPDX-License-Identifier: MIT

// Package stencil: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) so that
// callers can branch with errors.Is. Nothing in this package panics on
// user-triggered conditions.
package stencil

import "errors"

var (
	// ErrOutOfRange indicates a negative index, or an index past the end of
	// the referenced index space (control vertices plus table entries).
	ErrOutOfRange = errors.New("stencil: index out of range")

	// ErrForwardReference indicates that an entry references itself or a
	// later entry of the table it is appended to.
	ErrForwardReference = errors.New("stencil: forward or self reference")

	// ErrBadControlCount indicates a negative control-vertex count.
	ErrBadControlCount = errors.New("stencil: control vertex count must be >= 0")

	// ErrTableFull indicates that growing the table would exceed MaxEntries.
	ErrTableFull = errors.New("stencil: table capacity exceeded")

	// ErrNotFactorized indicates an operation that requires every entry to
	// reference control vertices only.
	ErrNotFactorized = errors.New("stencil: table is not factorized")

	// ErrShortValues indicates that fewer source values than control
	// vertices were supplied to an evaluation.
	ErrShortValues = errors.New("stencil: not enough source values")

	// ErrMalformed indicates corrupt or inconsistent encoded data.
	ErrMalformed = errors.New("stencil: malformed encoding")

	// ErrLengthMismatch indicates Indices and Weights of different lengths.
	ErrLengthMismatch = errors.New("stencil: indices and weights differ in length")

	// ErrNilTable indicates a nil *Table argument.
	ErrNilTable = errors.New("stencil: table is nil")
)

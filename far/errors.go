// SPDX-License-Identifier: MIT

package far

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is; implementations add
// context with %w.
var (
	// ErrNilLevel indicates a nil level passed to a constructor.
	ErrNilLevel = errors.New("far: level is nil")

	// ErrInvalidFace indicates a face that cannot carry a Gregory basis:
	// out of range, not a quad, tagged regular, already patched, or with
	// inconsistent neighbourhood topology.
	ErrInvalidFace = errors.New("far: invalid face")

	// ErrValenceExceeded indicates a corner vertex whose valence exceeds
	// MaxValence(). Never clamped.
	ErrValenceExceeded = errors.New("far: valence exceeds maximum")

	// ErrTagMismatch indicates a face tag that disagrees with the topology
	// around the face, or tags that do not parallel their faces.
	ErrTagMismatch = errors.New("far: tag does not match topology")

	// ErrInconsistentSharedVertex indicates two patches computing different
	// stencils for the same shared control point. It means the surface would
	// crack and aborts batch processing.
	ErrInconsistentSharedVertex = errors.New("far: inconsistent shared vertex")

	// ErrAllocationFailure indicates that slot or stencil table growth
	// cannot be satisfied.
	ErrAllocationFailure = errors.New("far: allocation failure")

	// ErrNilBase indicates append requested without a base table.
	ErrNilBase = errors.New("far: base table is nil")

	// ErrBadPermutation indicates a permutation that is not a bijection of
	// 0..19.
	ErrBadPermutation = errors.New("far: malformed permutation")

	// ErrPermuteShared indicates a permutation requested while control
	// points are shared between patches.
	ErrPermuteShared = errors.New("far: cannot permute shared control points")

	// ErrUnknownPatch indicates a patch index or face without a patch.
	ErrUnknownPatch = errors.New("far: unknown patch")
)

// FaceError reports the failure of a single face in a batch.
type FaceError struct {
	Face int
	Err  error
}

// Error implements error.
func (e *FaceError) Error() string {
	return fmt.Sprintf("far: face %d: %v", e.Face, e.Err)
}

// Unwrap returns the underlying error.
func (e *FaceError) Unwrap() error { return e.Err }

// isFatal reports whether err must abort a batch.
func isFatal(err error) bool {
	return errors.Is(err, ErrInconsistentSharedVertex) || errors.Is(err, ErrAllocationFailure)
}

// SPDX-License-Identifier: MIT
//
// options.go — functional options for EndCapFactory and NewBasis.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Defaults are documented here, no hidden globals.

package far

import "math"

// Default option values.
const (
	// DefaultShareBoundaryVertices enables slot sharing between patches.
	DefaultShareBoundaryVertices = true
	// DefaultEpsilon is the tolerance used to verify reused shared points.
	DefaultEpsilon = 1e-9
	// DefaultWorkers is the number of goroutines computing bases in AddPatches.
	DefaultWorkers = 1
	// NoFVarChannel marks vertex (not face-varying) data.
	NoFVarChannel = -1
)

// Option configures an EndCapFactory or a single NewBasis call.
type Option func(*options)

type options struct {
	share       bool
	levelOffset int
	workers     int
	eps         float64
	fvarChannel int
}

func newOptions(opts ...Option) options {
	o := options{
		share:       DefaultShareBoundaryVertices,
		workers:     DefaultWorkers,
		eps:         DefaultEpsilon,
		fvarChannel: NoFVarChannel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithShareBoundaryVertices toggles reuse of limit and edge points between
// adjacent patches. Disabled, every patch owns 20 fresh slots.
func WithShareBoundaryVertices(share bool) Option {
	return func(o *options) { o.share = share }
}

// WithLevelVertexOffset shifts every level vertex index by offset, the
// position of the level's first vertex in the index space of the base
// stencil table (control vertices followed by base entries).
// Panics on negative offset.
func WithLevelVertexOffset(offset int) Option {
	if offset < 0 {
		panic("far: WithLevelVertexOffset: offset must be >= 0")
	}
	return func(o *options) { o.levelOffset = offset }
}

// WithWorkers sets how many goroutines compute bases in AddPatches.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("far: WithWorkers: n must be >= 1")
	}
	return func(o *options) { o.workers = n }
}

// WithEpsilon sets the tolerance for verifying reused shared points.
// Panics unless eps is finite and >= 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("far: WithEpsilon: eps must be finite and >= 0")
	}
	return func(o *options) { o.eps = eps }
}

// WithFVarChannel records the face-varying channel the bases are built for.
// The channel is passed through untouched. Panics if channel < NoFVarChannel.
func WithFVarChannel(channel int) Option {
	if channel < NoFVarChannel {
		panic("far: WithFVarChannel: channel must be >= -1")
	}
	return func(o *options) { o.fvarChannel = channel }
}

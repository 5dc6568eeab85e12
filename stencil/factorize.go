package stencil

import "fmt"

// Factorizer substitutes stencils expressed over a layered index space
// down to pure combinations of control vertices.
//
// Index space seen by Resolve:
//
//	[0, nc)              control vertex, kept as is
//	[nc, nc+base.Len)    base entry idx-nc, replaced by its own factorization
//
// Base entries are resolved once, in ascending order, and memoized. Since a
// base entry only references earlier entries, every dependency of entry k is
// already resolved when k is, so no recursion is needed however deep the
// chain of levels is.
//
// A Factorizer is not safe for concurrent use.
type Factorizer struct {
	nc       int
	base     *Table // may be nil: control vertices only
	resolved []Stencil
	acc      Accumulator
}

// NewFactorizer returns a factorizer over nc control vertices and an
// optional base table. A non-nil base must be layered over the same nc.
func NewFactorizer(nc int, base *Table) (*Factorizer, error) {
	if nc < 0 {
		return nil, fmt.Errorf("NewFactorizer(%d): %w", nc, ErrBadControlCount)
	}
	if base != nil && base.nc != nc {
		return nil, fmt.Errorf("NewFactorizer: base has %d control vertices, want %d: %w",
			base.nc, nc, ErrBadControlCount)
	}

	return &Factorizer{nc: nc, base: base}, nil
}

// Limit returns the exclusive upper bound of the index space accepted by
// Resolve.
func (f *Factorizer) Limit() int {
	if f.base == nil {
		return f.nc
	}
	return f.nc + f.base.NumStencils()
}

// Entry returns the factorization of base entry k.
func (f *Factorizer) Entry(k int) (Stencil, error) {
	if f.base == nil || k < 0 || k >= f.base.NumStencils() {
		return Stencil{}, fmt.Errorf("Factorizer.Entry(%d): %w", k, ErrOutOfRange)
	}
	f.ensure(k)

	return f.resolved[k], nil
}

// Resolve substitutes s down to control vertices, summing the weights of
// duplicate indices.
func (f *Factorizer) Resolve(s Stencil) (Stencil, error) {
	limit := f.Limit()
	for _, idx := range s.Indices {
		if idx < 0 || idx >= limit {
			return Stencil{}, fmt.Errorf("Factorizer.Resolve: index %d (limit %d): %w", idx, limit, ErrOutOfRange)
		}
	}

	f.acc.Reset()
	for i, idx := range s.Indices {
		if idx < f.nc {
			f.acc.AddWithWeight(idx, s.Weights[i])
			continue
		}
		k := idx - f.nc
		f.ensure(k)
		f.acc.AddStencil(f.resolved[k], s.Weights[i])
	}

	return f.acc.Stencil(), nil
}

// ensure resolves base entries up to and including k.
func (f *Factorizer) ensure(k int) {
	var acc Accumulator
	for j := len(f.resolved); j <= k; j++ {
		e := f.base.entry(j)
		acc.Reset()
		for i, idx := range e.Indices {
			if idx < f.nc {
				acc.AddWithWeight(idx, e.Weights[i])
			} else {
				// idx-nc < j by the no-forward-reference invariant.
				acc.AddStencil(f.resolved[idx-f.nc], e.Weights[i])
			}
		}
		f.resolved = append(f.resolved, acc.Stencil())
	}
}

// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"
	"math"
)

// MaxEntries bounds both the number of stencils and the number of stored
// (index, weight) elements of a Table. Indices are exchanged with 32-bit
// consumers, so neither count may exceed the int32 range.
const MaxEntries = math.MaxInt32

// Table is an append-only, indexed collection of stencils.
//
// Entry k references control vertices [0, nc) or earlier entries
// [nc, nc+k); Append enforces this, so a Table is always acyclic.
// Storage is flat and row-major in the manner of a dense matrix: entry k
// occupies indices[offsets[k] : offsets[k]+sizes[k]].
//
// A Table is not safe for concurrent mutation; concurrent reads are safe.
type Table struct {
	nc      int       // number of control vertices
	sizes   []int     // per-entry element count
	offsets []int     // per-entry start into indices/weights
	indices []int     // flat element indices
	weights []float64 // flat element weights
}

// NewTable returns an empty table layered over nc control vertices.
// Returns ErrBadControlCount if nc < 0.
func NewTable(nc int) (*Table, error) {
	if nc < 0 {
		return nil, fmt.Errorf("NewTable(%d): %w", nc, ErrBadControlCount)
	}

	return &Table{nc: nc}, nil
}

// NumStencils returns the number of entries.
func (t *Table) NumStencils() int { return len(t.sizes) }

// NumControlVertices returns the size of the raw control-vertex index space.
func (t *Table) NumControlVertices() int { return t.nc }

// NumElements returns the total number of stored (index, weight) pairs.
func (t *Table) NumElements() int { return len(t.indices) }

// Sizes returns the per-entry sizes. The slice must not be modified.
func (t *Table) Sizes() []int { return t.sizes }

// Offsets returns the per-entry offsets. The slice must not be modified.
func (t *Table) Offsets() []int { return t.offsets }

// Indices returns the flat index storage. The slice must not be modified.
func (t *Table) Indices() []int { return t.indices }

// Weights returns the flat weight storage. The slice must not be modified.
func (t *Table) Weights() []float64 { return t.weights }

// Stencil returns a copy of entry i.
func (t *Table) Stencil(i int) (Stencil, error) {
	if i < 0 || i >= len(t.sizes) {
		return Stencil{}, fmt.Errorf("Table.Stencil(%d): %w", i, ErrOutOfRange)
	}

	return t.entry(i).Clone(), nil
}

// entry returns a view of entry i sharing the table's storage.
func (t *Table) entry(i int) Stencil {
	lo, hi := t.offsets[i], t.offsets[i]+t.sizes[i]

	return Stencil{Indices: t.indices[lo:hi:hi], Weights: t.weights[lo:hi:hi]}
}

// Append adds s as the next entry.
// Stage 1 (Validate): lengths, canonical order, index bounds.
// Stage 2 (Capacity): refuse growth past MaxEntries.
// Stage 3 (Execute): copy into flat storage.
//
// Errors:
//   - ErrLengthMismatch if len(Indices) != len(Weights).
//   - ErrOutOfRange on a negative or unsorted/duplicate index.
//   - ErrForwardReference if an index is >= nc + NumStencils().
//   - ErrTableFull past MaxEntries.
func (t *Table) Append(s Stencil) error {
	if len(s.Indices) != len(s.Weights) {
		return fmt.Errorf("Table.Append: %w", ErrLengthMismatch)
	}
	limit := t.nc + len(t.sizes)
	for i, idx := range s.Indices {
		if idx < 0 || (i > 0 && idx <= s.Indices[i-1]) {
			return fmt.Errorf("Table.Append: index %d at %d: %w", idx, i, ErrOutOfRange)
		}
		if idx >= limit {
			return fmt.Errorf("Table.Append: entry %d references %d (limit %d): %w",
				len(t.sizes), idx, limit, ErrForwardReference)
		}
	}
	if len(t.sizes) >= MaxEntries || len(t.indices)+len(s.Indices) > MaxEntries {
		return fmt.Errorf("Table.Append: %w", ErrTableFull)
	}

	t.offsets = append(t.offsets, len(t.indices))
	t.sizes = append(t.sizes, len(s.Indices))
	t.indices = append(t.indices, s.Indices...)
	t.weights = append(t.weights, s.Weights...)

	return nil
}

// Clone returns a deep copy of the table.
// Complexity: O(elements).
func (t *Table) Clone() *Table {
	return &Table{
		nc:      t.nc,
		sizes:   append([]int(nil), t.sizes...),
		offsets: append([]int(nil), t.offsets...),
		indices: append([]int(nil), t.indices...),
		weights: append([]float64(nil), t.weights...),
	}
}

// IsFactorized reports whether every entry references control vertices only.
func (t *Table) IsFactorized() bool {
	for _, idx := range t.indices {
		if idx >= t.nc {
			return false
		}
	}
	return true
}

// Factorize returns a new table with the same control-vertex count in
// which every entry has been substituted down to control vertices.
// The receiver is not modified.
func (t *Table) Factorize() (*Table, error) {
	fz, err := NewFactorizer(t.nc, t)
	if err != nil {
		return nil, err
	}
	out := &Table{nc: t.nc}
	for k := range t.sizes {
		s, err := fz.Entry(k)
		if err != nil {
			return nil, fmt.Errorf("Table.Factorize: %w", err)
		}
		if err = out.Append(s); err != nil {
			return nil, fmt.Errorf("Table.Factorize: %w", err)
		}
	}

	return out, nil
}

// Validate re-checks the structural invariants of the table.
// Used after decoding; tables built through Append are valid by construction.
func (t *Table) Validate() error {
	if t.nc < 0 {
		return ErrBadControlCount
	}
	if len(t.sizes) != len(t.offsets) || len(t.indices) != len(t.weights) {
		return fmt.Errorf("Table.Validate: %w", ErrMalformed)
	}
	next := 0
	for k, size := range t.sizes {
		if size < 0 || t.offsets[k] != next || next+size > len(t.indices) {
			return fmt.Errorf("Table.Validate: entry %d layout: %w", k, ErrMalformed)
		}
		e := t.entry(k)
		for i, idx := range e.Indices {
			if idx < 0 || (i > 0 && idx <= e.Indices[i-1]) {
				return fmt.Errorf("Table.Validate: entry %d index %d: %w", k, idx, ErrOutOfRange)
			}
			if idx >= t.nc+k {
				return fmt.Errorf("Table.Validate: entry %d references %d: %w", k, idx, ErrForwardReference)
			}
		}
		next += size
	}
	if next != len(t.indices) {
		return fmt.Errorf("Table.Validate: trailing elements: %w", ErrMalformed)
	}

	return nil
}

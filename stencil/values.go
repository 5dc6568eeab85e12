package stencil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// UpdateValues evaluates every entry against the control values src and
// returns one value per entry. Entries that reference earlier entries use
// the values computed for them, so the table need not be factorized.
//
// Errors:
//   - ErrShortValues if len(src) < NumControlVertices().
//
// Complexity: O(elements).
func (t *Table) UpdateValues(src []r3.Vec) ([]r3.Vec, error) {
	if len(src) < t.nc {
		return nil, fmt.Errorf("Table.UpdateValues: %d values for %d control vertices: %w",
			len(src), t.nc, ErrShortValues)
	}
	out := make([]r3.Vec, len(t.sizes))
	for k := range t.sizes {
		e := t.entry(k)
		var v r3.Vec
		for i, idx := range e.Indices {
			var p r3.Vec
			if idx < t.nc {
				p = src[idx]
			} else {
				p = out[idx-t.nc]
			}
			v = r3.Add(v, r3.Scale(e.Weights[i], p))
		}
		out[k] = v
	}

	return out, nil
}

// Matrix exports a factorized table as a dense NumStencils×NumControlVertices
// matrix M with M[k][j] = weight of control vertex j in entry k, so that the
// table applied to a column of control values is the product M·x.
//
// Errors:
//   - ErrNotFactorized if an entry references another entry.
//   - ErrOutOfRange if the table is empty or has no control vertices
//     (gonum does not allow zero-sized dense matrices).
func (t *Table) Matrix() (*mat.Dense, error) {
	if !t.IsFactorized() {
		return nil, fmt.Errorf("Table.Matrix: %w", ErrNotFactorized)
	}
	if len(t.sizes) == 0 || t.nc == 0 {
		return nil, fmt.Errorf("Table.Matrix: %dx%d: %w", len(t.sizes), t.nc, ErrOutOfRange)
	}
	m := mat.NewDense(len(t.sizes), t.nc, nil)
	for k := range t.sizes {
		e := t.entry(k)
		for i, idx := range e.Indices {
			m.Set(k, idx, e.Weights[i])
		}
	}

	return m, nil
}

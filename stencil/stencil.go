package stencil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stencil is a sparse linear combination of source vertices.
// Canonical form: Indices strictly ascending, no exact-zero weights,
// len(Indices) == len(Weights). All constructors and arithmetic in this
// package return canonical stencils; the zero value is the empty stencil.
type Stencil struct {
	Indices []int
	Weights []float64
}

// Vertex returns the stencil selecting source vertex i with weight 1.
func Vertex(i int) Stencil {
	return Stencil{Indices: []int{i}, Weights: []float64{1}}
}

// New builds a canonical stencil from parallel index/weight slices.
// Duplicate indices are coalesced by summation.
// Complexity: O(n log n).
func New(indices []int, weights []float64) (Stencil, error) {
	if len(indices) != len(weights) {
		return Stencil{}, fmt.Errorf("New: %d indices, %d weights: %w",
			len(indices), len(weights), ErrLengthMismatch)
	}
	var acc Accumulator
	for i, idx := range indices {
		if idx < 0 {
			return Stencil{}, fmt.Errorf("New: index %d: %w", idx, ErrOutOfRange)
		}
		acc.AddWithWeight(idx, weights[i])
	}

	return acc.Stencil(), nil
}

// Size returns the number of (index, weight) pairs.
func (s Stencil) Size() int { return len(s.Indices) }

// Sum returns the sum of the weights. Affine stencils sum to 1,
// difference (tangent) stencils to 0.
func (s Stencil) Sum() float64 { return floats.Sum(s.Weights) }

// Clone returns a deep copy.
func (s Stencil) Clone() Stencil {
	if len(s.Indices) == 0 {
		return Stencil{}
	}
	out := Stencil{
		Indices: make([]int, len(s.Indices)),
		Weights: make([]float64, len(s.Weights)),
	}
	copy(out.Indices, s.Indices)
	copy(out.Weights, s.Weights)

	return out
}

// Scale returns s·f.
func (s Stencil) Scale(f float64) Stencil {
	if f == 0 || len(s.Indices) == 0 {
		return Stencil{}
	}
	out := s.Clone()
	floats.Scale(f, out.Weights)

	return out
}

// Add returns s + o.
func (s Stencil) Add(o Stencil) Stencil { return s.AddScaled(o, 1) }

// Sub returns s - o.
func (s Stencil) Sub(o Stencil) Stencil { return s.AddScaled(o, -1) }

// AddScaled returns s + o·f, merging the two sorted index lists.
// Complexity: O(|s| + |o|).
func (s Stencil) AddScaled(o Stencil, f float64) Stencil {
	if f == 0 || len(o.Indices) == 0 {
		return s.Clone()
	}
	idx := make([]int, 0, len(s.Indices)+len(o.Indices))
	w := make([]float64, 0, len(s.Indices)+len(o.Indices))
	push := func(i int, v float64) {
		if v != 0 {
			idx = append(idx, i)
			w = append(w, v)
		}
	}

	i, j := 0, 0
	for i < len(s.Indices) && j < len(o.Indices) {
		switch {
		case s.Indices[i] < o.Indices[j]:
			push(s.Indices[i], s.Weights[i])
			i++
		case s.Indices[i] > o.Indices[j]:
			push(o.Indices[j], o.Weights[j]*f)
			j++
		default:
			push(s.Indices[i], s.Weights[i]+o.Weights[j]*f)
			i++
			j++
		}
	}
	for ; i < len(s.Indices); i++ {
		push(s.Indices[i], s.Weights[i])
	}
	for ; j < len(o.Indices); j++ {
		push(o.Indices[j], o.Weights[j]*f)
	}

	if len(idx) == 0 {
		return Stencil{}
	}
	return Stencil{Indices: idx, Weights: w}
}

// Shift returns s with every index increased by off. Ordering is preserved.
func (s Stencil) Shift(off int) Stencil {
	out := s.Clone()
	for i := range out.Indices {
		out.Indices[i] += off
	}

	return out
}

// MaxIndex returns the largest referenced index, or -1 for an empty stencil.
func (s Stencil) MaxIndex() int {
	if len(s.Indices) == 0 {
		return -1
	}
	return s.Indices[len(s.Indices)-1]
}

// ApproxEqual reports whether s and o reference the same indices with
// weights equal within eps. Both stencils must be canonical.
func (s Stencil) ApproxEqual(o Stencil, eps float64) bool {
	if len(s.Indices) != len(o.Indices) {
		return false
	}
	for i := range s.Indices {
		if s.Indices[i] != o.Indices[i] {
			return false
		}
	}

	return floats.EqualApprox(s.Weights, o.Weights, eps)
}

// Apply evaluates the stencil against src.
// Returns ErrOutOfRange if an index is past the end of src.
func (s Stencil) Apply(src []r3.Vec) (r3.Vec, error) {
	var out r3.Vec
	for i, idx := range s.Indices {
		if idx < 0 || idx >= len(src) {
			return r3.Vec{}, fmt.Errorf("Apply: index %d of %d values: %w", idx, len(src), ErrOutOfRange)
		}
		out = r3.Add(out, r3.Scale(s.Weights[i], src[idx]))
	}

	return out, nil
}

// IsFinite reports whether every weight is finite.
func (s Stencil) IsFinite() bool {
	for _, w := range s.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debugging.
func (s Stencil) String() string {
	out := "{"
	for i := range s.Indices {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d:%g", s.Indices[i], s.Weights[i])
	}

	return out + "}"
}

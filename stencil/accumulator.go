package stencil

import "sort"

// Accumulator gathers weighted contributions and coalesces duplicate
// indices by summation. The zero value is ready to use.
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	weights map[int]float64
}

// AddWithWeight adds w·vertex(index).
func (a *Accumulator) AddWithWeight(index int, w float64) {
	if w == 0 {
		return
	}
	if a.weights == nil {
		a.weights = make(map[int]float64)
	}
	a.weights[index] += w
}

// AddStencil adds w·s.
func (a *Accumulator) AddStencil(s Stencil, w float64) {
	for i, idx := range s.Indices {
		a.AddWithWeight(idx, s.Weights[i]*w)
	}
}

// Len returns the number of distinct indices gathered so far, including
// any whose weights cancelled to zero.
func (a *Accumulator) Len() int { return len(a.weights) }

// Stencil returns the canonical stencil of the gathered contributions.
// The accumulator is left untouched.
// Complexity: O(n log n).
func (a *Accumulator) Stencil() Stencil {
	if len(a.weights) == 0 {
		return Stencil{}
	}
	idx := make([]int, 0, len(a.weights))
	for i, w := range a.weights {
		if w != 0 {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return Stencil{}
	}
	sort.Ints(idx)

	w := make([]float64, len(idx))
	for i, k := range idx {
		w[i] = a.weights[k]
	}

	return Stencil{Indices: idx, Weights: w}
}

// Reset clears the accumulator, keeping its storage.
func (a *Accumulator) Reset() {
	clear(a.weights)
}

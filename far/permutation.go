package far

import "fmt"

// Permutation reorders the control points of every patch in a stencil
// table: entry j of a patch is its canonical control point Permutation[j].
type Permutation [NumControlPoints]int

// IdentityPermutation returns the canonical order.
func IdentityPermutation() Permutation {
	var p Permutation
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate returns ErrBadPermutation unless p is a bijection of 0..19.
func (p *Permutation) Validate() error {
	var seen [NumControlPoints]bool
	for j, i := range p {
		if i < 0 || i >= NumControlPoints || seen[i] {
			return fmt.Errorf("Permutation.Validate: entry %d = %d: %w", j, i, ErrBadPermutation)
		}
		seen[i] = true
	}

	return nil
}

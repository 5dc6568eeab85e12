// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures that got ≥ min for the parameter called name.
// Returns ErrBadDimension wrapped with the method context otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return wrapf(method, fmt.Sprintf("%s=%d (must be ≥ %d)", name, got, min), ErrBadDimension)
	}

	return nil
}

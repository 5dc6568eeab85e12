// Package builder provides internal helper functions used by Constructor
// implementations.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with wrapf for uniform reporting.
package builder

import "fmt"

// wrapf prefixes err with the constructor name and a short context string,
// keeping err reachable through errors.Is.
//
// Complexity: O(1).
func wrapf(method, context string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, context, err)
}

// appendQuad appends face (a, b, c, d) offset by base.
func appendQuad(m *Mesh, base, a, b, c, d int) {
	m.Faces = append(m.Faces, []int{base + a, base + b, base + c, base + d})
}

// Package stencil provides sparse affine stencils and append-only stencil
// tables.
//
// A Stencil expresses one derived vertex as a weighted sum of source
// vertices:
//
//	value = Σ Weights[i] · src[Indices[i]]
//
// Stencils are kept in canonical form (indices strictly ascending, exact-zero
// weights dropped), so two stencils describing the same combination compare
// equal entry by entry.
//
// A Table stores many stencils in flat, row-major slices (sizes, offsets,
// indices, weights). Entry k of a table may reference:
//
//   - raw control vertices, indices [0, nc)
//   - earlier entries of the same table, indices [nc, nc+k)
//
// Forward and self references are rejected on Append, so every table is a
// DAG that Factorize collapses into pure combinations of control vertices.
//
// The package also offers:
//
//   - Factorizer: recursive substitution of stencils through a base table
//   - UpdateValues: re-evaluation of a table against new control positions
//   - Matrix: export of a factorized table as a gonum dense matrix
//   - MarshalBinary/UnmarshalBinary: compact protobuf-wire encoding
//
// Complexity:
//
//   - Append: O(size) amortized.
//   - Factorize: O(Σ size · fan-in) with memoized entries.
//   - UpdateValues: O(total elements).
package stencil

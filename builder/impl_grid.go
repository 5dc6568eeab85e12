// SPDX-License-Identifier: MIT
// Package: endcap/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • Lattice vertex (r, c) for r∈[0..rows], c∈[0..cols] has local index
//     r*(cols+1)+c and planar position (c, r)·spacing.
//   • Face r*cols+c is the quad (r,c) (r,c+1) (r+1,c+1) (r+1,c):
//     counter-clockwise seen from +z.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrBadDimension).
//   • Interior lattice vertices have valence 4; border vertices are boundary
//     vertices; the four lattice corners have a single face.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols) for the appended data.

package builder

// Grid returns a Constructor that builds a rows×cols quad grid.
func Grid(rows, cols int) Constructor {
	return func(m *Mesh, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		base := len(m.Positions)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				m.Positions = append(m.Positions, cfg.point(float64(c), float64(r)))
			}
		}

		stride := cols + 1
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*stride + c
				appendQuad(m, base, v, v+1, v+stride+1, v+stride)
			}
		}

		return nil
	}
}

// GridVertex returns the local index of lattice vertex (r, c) of a grid
// with cols columns.
func GridVertex(cols, r, c int) int { return r*(cols+1) + c }

// GridFace returns the local index of face (r, c) of a grid with cols columns.
func GridFace(cols, r, c int) int { return r*cols + c }

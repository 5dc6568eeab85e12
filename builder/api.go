// SPDX-License-Identifier: MIT
// Package: endcap/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Creates the mesh, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/endcap/vtr"
)

// Mesh is a polygon mesh with one position per vertex. Faces list vertex
// indices counter-clockwise.
type Mesh struct {
	Positions []r3.Vec
	Faces     [][]int
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.Positions) }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Level builds the topology of m as a refinement level.
func (m *Mesh) Level(opts ...vtr.Option) (*vtr.Level, error) {
	lv, err := vtr.NewLevel(len(m.Positions), m.Faces, opts...)
	if err != nil {
		return nil, fmt.Errorf("Mesh.Level: %w", err)
	}

	return lv, nil
}

// Constructor appends vertices and faces to m using the resolved
// builderConfig. Constructors MUST:
//   - Number new vertices from len(m.Positions) and new faces from len(m.Faces).
//   - Validate parameters before appending anything.
//   - Preserve determinism for the same config and call order.
type Constructor func(m *Mesh, cfg builderConfig) error

// BuildMesh resolves the builder configuration from bopts and applies all
// constructors in order to an empty mesh. Any constructor error is wrapped
// with "BuildMesh: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*Mesh, error) {
	m := &Mesh{}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMesh, i, ErrConstructFailed)
		}
		from := len(m.Positions)
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
		}
		if err := cfg.perturb(MethodBuildMesh, m.Positions, from); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Grid builds rows×cols quads over a (rows+1)×(cols+1) lattice.
// Complexity: O(rows*cols).
//func Grid(rows, cols int) Constructor

// Fan builds a centre vertex of valence sectors (sectors+1 edges when open)
// surrounded by sectors patches of rings×rings quads.
// Complexity: O(sectors*rings²).
//func Fan(sectors, rings int) Constructor

// Package builder provides deterministic quad-mesh fixtures for the end-cap
// and stencil packages: regular grids, closed fans around an extraordinary
// vertex and open fans along a boundary.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh:   resolves options and runs constructors in order.
//     – Constructor: a closure appending vertices and faces to a Mesh.
//   - Topologies:
//     – Grid(rows, cols):    rows×cols quads, all vertices regular inside.
//     – Fan(sectors, rings): a centre of valence sectors surrounded by
//     sectors quad patches of rings×rings faces each.
//   - Configuration (functional options, panicking constructors):
//     – WithSpacing, WithHeightFn, WithOpen, WithSeed, WithRand, WithJitter.
//
// Every constructor appends after whatever the mesh already holds, so
// several fixtures can be composed into one disconnected mesh. Vertex and
// face numbering is fixed and documented per constructor; tests rely on it.
//
// Positions are gonum r3 vectors; a finished Mesh converts into a vtr.Level
// with Mesh.Level.
package builder

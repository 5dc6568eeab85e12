// Package vtr implements a refined mesh level: the topology a Gregory end-cap
// factory reads.
//
// A Level is built once from a face-vertex list and is immutable afterwards.
// It exposes:
//
//   - face → vertices, face → edges
//   - edge → vertices, edge → faces
//   - vertex → faces and vertex → edges, both ordered around the vertex
//   - quad-regular ring traversal (QuadRing)
//
// Ordering convention. For a vertex v, face i of VertexFaces(v) is rotated so
// that v comes first: (v, n_i, d_i, p_i). Face i+1 shares the edge (v, p_i),
// so p_i == n_{i+1}. On a boundary vertex the first face is the one whose
// edge (v, n_0) is a boundary edge, and the walk ends at the other boundary
// edge (v, p_last).
//
// Only manifold, consistently oriented meshes are accepted: every edge has
// one or two faces, every directed edge occurs once, and the faces around a
// vertex form a single fan.
package vtr

package vtr

import "errors"

var (
	// ErrBadVertexCount indicates a non-positive vertex count.
	ErrBadVertexCount = errors.New("vtr: vertex count must be > 0")

	// ErrBadFace indicates a face with fewer than 3 vertices, a vertex index
	// out of range, or a repeated vertex.
	ErrBadFace = errors.New("vtr: invalid face")

	// ErrNonManifold indicates an edge shared by more than two faces, an
	// inconsistently oriented edge, or a vertex whose faces form several fans.
	ErrNonManifold = errors.New("vtr: non-manifold topology")

	// ErrNotQuad indicates a quad-only query touching a non-quad face.
	ErrNotQuad = errors.New("vtr: face is not a quad")

	// ErrIsolatedVertex indicates a vertex without incident faces.
	ErrIsolatedVertex = errors.New("vtr: vertex has no incident face")

	// ErrOutOfRange indicates a vertex, edge or face index outside the level.
	ErrOutOfRange = errors.New("vtr: index out of range")
)

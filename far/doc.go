// Package far builds Gregory basis end caps over the irregular faces of a
// refined quad mesh level and folds their control points into stencil
// tables.
//
// A Gregory basis patch has 20 control points: for each corner c of the face
// a limit point P, two edge points Ep and Em (toward the next and previous
// corner) and two face points Fp and Fm. They are stored corner-major at
// index 5c+kind. Every control point is a stencil.Stencil, an affine
// combination of level vertices, so a patch is re-evaluated after the control
// mesh moves without revisiting topology.
//
// The flow is:
//
//	level + face tags ─► EndCapFactory.AddPatch/AddPatches
//	                        ├─ basis per face (pure, parallel)
//	                        └─ slot commit (shared points deduplicated)
//	                     ─► CreateVertexStencilTable / CreateVaryingStencilTable
//
// Limit and edge points are keyed by the vertices they belong to, so
// adjacent patches reuse one slot for the same logical point when
// WithShareBoundaryVertices is enabled (the default). Face points are never
// shared.
//
// The package depends on a narrow Level interface; vtr.Level satisfies it.
// Which faces are irregular is the caller's decision, expressed through
// PatchFaceTag. Logging goes through a zap logger set with SetLogger and is
// silent by default.
package far

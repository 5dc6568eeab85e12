// Package endcap computes Gregory basis end caps for Catmull-Clark
// subdivision surfaces: the 20-point patches that stand in for the limit
// surface around extraordinary vertices, expressed as stencils over the
// control mesh so they can be re-evaluated every time the mesh deforms.
//
// 🚀 What is inside?
//
//	stencil/ — sparse affine combinations, stencil tables, factorization,
//	           evaluation and a protobuf wire encoding
//	vtr/     — an immutable quad-mesh level with ordered vertex neighbourhoods
//	far/     — Gregory basis construction, shared-point bookkeeping and
//	           stencil table output (EndCapFactory)
//	builder/ — deterministic test meshes: grids and fans of any valence
//
// Quick ASCII example (a valence-5 vertex, one patch per face):
//
//	      n1
//	   d0 ┼ d1
//	 n0 ──v── n2        v has 5 faces, so every face touching it gets an
//	   d4 ┼ d2          end cap whose control points are stencils over
//	    n4  n3          v, its ring n0…n4 and the diagonals d0…d4.
//
// Typical flow:
//
//	m, _ := builder.BuildMesh(nil, builder.Fan(5, 2))
//	lv, _ := m.Level()
//	f, _ := far.NewEndCapFactory(lv)
//	tag, _ := far.TagFace(lv, face, false)
//	f.AddPatch(face, tag)
//	table, _ := f.CreateVertexStencilTable(nil, false, nil)
//	points, _ := table.UpdateValues(m.Positions)
//
//	go get github.com/katalvlaran/endcap/far
package endcap

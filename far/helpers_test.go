package far_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/endcap/builder"
	"github.com/katalvlaran/endcap/far"
	"github.com/katalvlaran/endcap/vtr"
)

const tol = 1e-9

// fixture builds a mesh and its level.
func fixture(t testing.TB, opts []builder.BuilderOption, cons ...builder.Constructor) (*builder.Mesh, *vtr.Level) {
	t.Helper()
	m, err := builder.BuildMesh(opts, cons...)
	require.NoError(t, err)
	lv, err := m.Level()
	require.NoError(t, err)
	return m, lv
}

// tagOf derives the irregular tag of face from topology.
func tagOf(t testing.TB, lv far.Level, face int) far.PatchFaceTag {
	t.Helper()
	tag, err := far.TagFace(lv, face, false)
	require.NoError(t, err)
	return tag
}

// requireAffine checks every vertex and varying stencil sums to one.
func requireAffine(t testing.TB, b *far.GregoryBasis) {
	t.Helper()
	for i := 0; i < far.NumControlPoints; i++ {
		require.InDelta(t, 1.0, b.Vertex[i].Sum(), tol, "vertex point %d: %v", i, b.Vertex[i])
		require.True(t, b.Vertex[i].IsFinite(), "vertex point %d", i)
		require.InDelta(t, 1.0, b.Varying[i].Sum(), tol, "varying point %d", i)
	}
}

func requireVecNear(t testing.TB, want, got r3.Vec, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, 0, r3.Norm(r3.Sub(want, got)), tol, msgAndArgs...)
}

// idx is a short alias for far.ControlPointIndex.
func idx(corner int, kind far.PointKind) int { return far.ControlPointIndex(corner, kind) }

func mustVtrLevel(t testing.TB, numVerts int, faces [][]int) *vtr.Level {
	t.Helper()
	lv, err := vtr.NewLevel(numVerts, faces)
	require.NoError(t, err)
	return lv
}

// addAll adds every face in faces with its derived tag.
func addAll(t testing.TB, f *far.EndCapFactory, lv far.Level, faces ...int) {
	t.Helper()
	for _, face := range faces {
		_, err := f.AddPatch(face, tagOf(t, lv, face))
		require.NoError(t, err, "face %d", face)
	}
}

// innerFanFaces returns the face touching the centre in every sector.
func innerFanFaces(sectors, rings int) []int {
	faces := make([]int, sectors)
	for s := range faces {
		faces[s] = builder.FanFace(rings, s, 0, 0)
	}
	return faces
}

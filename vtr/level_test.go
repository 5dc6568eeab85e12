package vtr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/endcap/vtr"
)

// grid2x2 returns the faces of a 2×2 quad grid over a 3×3 lattice,
// vertex (r,c) = 3r+c:
//
//	6 - 7 - 8
//	| 2 | 3 |
//	3 - 4 - 5
//	| 0 | 1 |
//	0 - 1 - 2
func grid2x2() [][]int {
	return [][]int{
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{3, 4, 7, 6},
		{4, 5, 8, 7},
	}
}

func mustLevel(t *testing.T, numVerts int, faces [][]int) *vtr.Level {
	t.Helper()
	lv, err := vtr.NewLevel(numVerts, faces)
	require.NoError(t, err)
	return lv
}

func TestNewLevel_Counts(t *testing.T) {
	lv, err := vtr.NewLevel(9, grid2x2(), vtr.WithDepth(2))
	require.NoError(t, err)

	require.Equal(t, 9, lv.NumVertices())
	require.Equal(t, 4, lv.NumFaces())
	require.Equal(t, 12, lv.NumEdges())
	require.Equal(t, 2, lv.Depth())
	require.Equal(t, []int{1, 2, 5, 4}, lv.FaceVertices(1))
}

func TestNewLevel_CopiesFaces(t *testing.T) {
	faces := grid2x2()
	lv := mustLevel(t, 9, faces)
	faces[0][0] = 8
	require.Equal(t, 0, lv.FaceVertices(0)[0])
}

func TestNewLevel_Errors(t *testing.T) {
	cases := []struct {
		name     string
		numVerts int
		faces    [][]int
		want     error
	}{
		{"no vertices", 0, nil, vtr.ErrBadVertexCount},
		{"two-gon", 3, [][]int{{0, 1}}, vtr.ErrBadFace},
		{"index out of range", 3, [][]int{{0, 1, 9}}, vtr.ErrBadFace},
		{"negative index", 3, [][]int{{0, -1, 2}}, vtr.ErrBadFace},
		{"repeated vertex", 3, [][]int{{0, 1, 0}}, vtr.ErrBadFace},
		{"flipped neighbour", 4, [][]int{{0, 1, 2}, {0, 1, 3}}, vtr.ErrNonManifold},
		{"bow tie", 5, [][]int{{0, 1, 2}, {0, 3, 4}}, vtr.ErrNonManifold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vtr.NewLevel(tc.numVerts, tc.faces)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWithDepth_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { vtr.WithDepth(-1) })
}

func TestLevel_InteriorVertex(t *testing.T) {
	lv := mustLevel(t, 9, grid2x2())

	require.False(t, lv.IsBoundaryVertex(4))
	require.Equal(t, 4, lv.Valence(4))
	require.Equal(t, []int{0, 1, 3, 2}, lv.VertexFaces(4))

	ring, err := lv.QuadRing(4)
	require.NoError(t, err)
	// counter-clockwise, starting after the west neighbour's face
	require.Equal(t, []int{3, 0, 1, 2, 5, 8, 7, 6}, ring)
}

func TestLevel_BoundaryVertex(t *testing.T) {
	lv := mustLevel(t, 9, grid2x2())

	require.True(t, lv.IsBoundaryVertex(1))
	require.Equal(t, 3, lv.Valence(1))
	require.Equal(t, []int{1, 0}, lv.VertexFaces(1))

	ring, err := lv.QuadRing(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 4, 3, 0}, ring)

	// first and last ring entries sit on boundary edges
	for _, e := range []int{lv.VertexEdges(1)[0], lv.VertexEdges(1)[2]} {
		require.Len(t, lv.EdgeFaces(e), 1)
	}
	require.Equal(t, [2]int{1, 2}, lv.EdgeVertices(lv.VertexEdges(1)[0]))
	require.Equal(t, [2]int{0, 1}, lv.EdgeVertices(lv.VertexEdges(1)[2]))
}

func TestLevel_CornerVertex(t *testing.T) {
	lv := mustLevel(t, 9, grid2x2())

	require.True(t, lv.IsBoundaryVertex(0))
	require.Equal(t, 2, lv.Valence(0))

	ring, err := lv.QuadRing(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 3}, ring)
}

func TestLevel_FaceEdges(t *testing.T) {
	lv := mustLevel(t, 9, grid2x2())
	for f := 0; f < lv.NumFaces(); f++ {
		fv := lv.FaceVertices(f)
		for i, e := range lv.FaceEdges(f) {
			a, b := fv[i], fv[(i+1)%len(fv)]
			require.Equal(t, [2]int{min(a, b), max(a, b)}, lv.EdgeVertices(e))
			require.Contains(t, lv.EdgeFaces(e), f)
		}
	}
}

func TestQuadRing_Errors(t *testing.T) {
	lv := mustLevel(t, 5, [][]int{{0, 1, 2, 3}})
	_, err := lv.QuadRing(4)
	require.ErrorIs(t, err, vtr.ErrIsolatedVertex)
	_, err = lv.QuadRing(5)
	require.ErrorIs(t, err, vtr.ErrOutOfRange)
	_, err = lv.QuadRing(-1)
	require.ErrorIs(t, err, vtr.ErrOutOfRange)

	tri := mustLevel(t, 4, [][]int{{0, 1, 2}, {0, 2, 3}})
	_, err = tri.QuadRing(0)
	require.ErrorIs(t, err, vtr.ErrNotQuad)
}

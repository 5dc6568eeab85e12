// Package builder_test contains functional tests for the mesh constructors,
// verifying counts, numbering, geometry and the resulting level topology.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/endcap/builder"
)

func TestGrid_Functional(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	require.Equal(t, 12, m.NumVertices())
	require.Equal(t, 6, m.NumFaces())

	// face (1,2) spans lattice (1,2) (1,3) (2,3) (2,2)
	f := m.Faces[builder.GridFace(3, 1, 2)]
	require.Equal(t, []int{
		builder.GridVertex(3, 1, 2), builder.GridVertex(3, 1, 3),
		builder.GridVertex(3, 2, 3), builder.GridVertex(3, 2, 2),
	}, f)
	require.Equal(t, r3.Vec{X: 2, Y: 1}, m.Positions[builder.GridVertex(3, 1, 2)])

	lv, err := m.Level()
	require.NoError(t, err)
	require.Equal(t, 17, lv.NumEdges())
	inner := builder.GridVertex(3, 1, 1)
	require.False(t, lv.IsBoundaryVertex(inner))
	require.Equal(t, 4, lv.Valence(inner))
	require.True(t, lv.IsBoundaryVertex(builder.GridVertex(3, 0, 0)))
	require.Len(t, lv.VertexFaces(builder.GridVertex(3, 0, 0)), 1)
}

func TestFan_Closed(t *testing.T) {
	t.Parallel()

	const sectors, rings = 5, 2
	m, err := builder.BuildMesh(nil, builder.Fan(sectors, rings))
	require.NoError(t, err)
	require.Equal(t, 1+sectors*rings+sectors*rings*rings, m.NumVertices())
	require.Equal(t, sectors*rings*rings, m.NumFaces())

	lv, err := m.Level()
	require.NoError(t, err)
	require.False(t, lv.IsBoundaryVertex(builder.FanCenter))
	require.Equal(t, sectors, lv.Valence(builder.FanCenter))

	ring, err := lv.QuadRing(builder.FanCenter)
	require.NoError(t, err)
	require.Len(t, ring, 2*sectors)

	spoke := builder.FanSpokeVertex(rings, 2, 1)
	require.False(t, lv.IsBoundaryVertex(spoke))
	require.Equal(t, 4, lv.Valence(spoke))
	require.True(t, lv.IsBoundaryVertex(builder.FanSpokeVertex(rings, 2, rings)))

	// spoke vertices lie on the unit circle scaled by their distance
	p := m.Positions[builder.FanSpokeVertex(rings, 1, 2)]
	require.InDelta(t, 2*math.Cos(2*math.Pi/sectors), p.X, 1e-12)
	require.InDelta(t, 2*math.Sin(2*math.Pi/sectors), p.Y, 1e-12)

	// first face of every sector touches the centre
	for s := 0; s < sectors; s++ {
		require.Equal(t, builder.FanCenter, m.Faces[builder.FanFace(rings, s, 0, 0)][0])
	}
}

func TestFan_Open(t *testing.T) {
	t.Parallel()

	const sectors, rings = 3, 2
	m, err := builder.BuildMesh([]builder.BuilderOption{builder.WithOpen()}, builder.Fan(sectors, rings))
	require.NoError(t, err)
	require.Equal(t, 1+(sectors+1)*rings+sectors*rings*rings, m.NumVertices())

	lv, err := m.Level()
	require.NoError(t, err)
	require.True(t, lv.IsBoundaryVertex(builder.FanCenter))
	require.Equal(t, sectors+1, lv.Valence(builder.FanCenter))

	ring, err := lv.QuadRing(builder.FanCenter)
	require.NoError(t, err)
	require.Len(t, ring, 2*sectors+1)
	// boundary ring starts on the first spoke and ends on the last
	require.Equal(t, builder.FanSpokeVertex(rings, 0, 1), ring[0])
	require.Equal(t, builder.FanSpokeVertex(rings, sectors, 1), ring[2*sectors])
}

func TestBuildMesh_Compose(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(nil, builder.Grid(1, 1), builder.Grid(1, 1))
	require.NoError(t, err)
	require.Equal(t, 8, m.NumVertices())
	require.Equal(t, [][]int{{0, 1, 3, 2}, {4, 5, 7, 6}}, m.Faces)

	lv, err := m.Level()
	require.NoError(t, err)
	require.Equal(t, 8, lv.NumEdges())
}

func TestBuildMesh_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"grid rows", nil, builder.Grid(0, 2), builder.ErrBadDimension},
		{"grid cols", nil, builder.Grid(2, 0), builder.ErrBadDimension},
		{"closed fan sectors", nil, builder.Fan(2, 1), builder.ErrBadDimension},
		{"open fan sectors", []builder.BuilderOption{builder.WithOpen()}, builder.Fan(1, 1), builder.ErrBadDimension},
		{"fan rings", nil, builder.Fan(4, 0), builder.ErrBadDimension},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"jitter without rng", []builder.BuilderOption{builder.WithJitter(0.1)}, builder.Grid(1, 1), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildMesh(tc.opts, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildMesh([]builder.BuilderOption{builder.WithOpen()}, builder.Fan(2, 1))
	require.NoError(t, err)
}

func TestBuildMesh_Geometry(t *testing.T) {
	t.Parallel()

	height := func(x, y float64) float64 { return x + 2*y }
	m, err := builder.BuildMesh([]builder.BuilderOption{
		builder.WithSpacing(0.5),
		builder.WithHeightFn(height),
	}, builder.Grid(2, 2))
	require.NoError(t, err)

	p := m.Positions[builder.GridVertex(2, 2, 1)]
	require.Equal(t, r3.Vec{X: 0.5, Y: 1, Z: 2.5}, p)
}

func TestBuildMesh_JitterDeterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.25)}
	a, err := builder.BuildMesh(opts, builder.Fan(4, 2))
	require.NoError(t, err)
	b, err := builder.BuildMesh([]builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.25)}, builder.Fan(4, 2))
	require.NoError(t, err)
	require.Equal(t, a.Positions, b.Positions)

	moved := false
	for _, p := range a.Positions {
		require.LessOrEqual(t, math.Abs(p.Z), 0.25)
		moved = moved || p.Z != 0
	}
	require.True(t, moved)
}

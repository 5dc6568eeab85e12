package far_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/endcap/builder"
	"github.com/katalvlaran/endcap/far"
	"github.com/katalvlaran/endcap/stencil"
)

func TestNewBasis_AffineInterior(t *testing.T) {
	t.Parallel()

	for n := 3; n <= far.MaxValence(); n++ {
		_, lv := fixture(t, nil, builder.Fan(n, 2))
		face := builder.FanFace(2, 0, 0, 0)

		b, err := far.NewBasis(lv, face, tagOf(t, lv, face))
		require.NoError(t, err, "valence %d", n)
		require.Equal(t, [4]int{n, 4, 4, 4}, b.Valences)
		requireAffine(t, b)
	}
}

func TestNewBasis_AffineBoundary(t *testing.T) {
	t.Parallel()

	open := []builder.BuilderOption{builder.WithOpen()}
	for k := 2; k < far.MaxValence(); k++ {
		_, lv := fixture(t, open, builder.Fan(k, 2))
		face := builder.FanFace(2, 0, 0, 0)
		tag := tagOf(t, lv, face)
		require.Equal(t, far.Boundary, tag.Class(0))

		b, err := far.NewBasis(lv, face, tag)
		require.NoError(t, err, "faces %d", k)
		require.Equal(t, -(k + 1), b.Valences[0])
		requireAffine(t, b)
	}
}

func TestNewBasis_ValenceExceeded(t *testing.T) {
	t.Parallel()

	_, lv := fixture(t, nil, builder.Fan(far.MaxValence()+1, 1))
	_, err := far.NewBasis(lv, 0, tagOf(t, lv, 0))
	require.ErrorIs(t, err, far.ErrValenceExceeded)

	_, lv = fixture(t, []builder.BuilderOption{builder.WithOpen()}, builder.Fan(far.MaxValence(), 1))
	_, err = far.NewBasis(lv, 0, tagOf(t, lv, 0))
	require.ErrorIs(t, err, far.ErrValenceExceeded)
}

// A flat grid is reproduced exactly: every patch is the bicubic Bézier patch
// of its face, whatever the corner classes.
func TestNewBasis_GridIsBezier(t *testing.T) {
	t.Parallel()

	height := func(x, y float64) float64 { return 0.5*x - 0.25*y + 1 }
	m, lv := fixture(t, []builder.BuilderOption{builder.WithHeightFn(height)}, builder.Grid(4, 4))

	for face := 0; face < lv.NumFaces(); face++ {
		b, err := far.NewBasis(lv, face, tagOf(t, lv, face))
		require.NoError(t, err, "face %d", face)
		requireAffine(t, b)

		cp, err := b.ControlPoints(m.Positions)
		require.NoError(t, err)

		fv := lv.FaceVertices(face)
		for c := 0; c < 4; c++ {
			p := m.Positions[fv[c]]
			toNext := r3.Scale(1.0/3, r3.Sub(m.Positions[fv[(c+1)%4]], p))
			toPrev := r3.Scale(1.0/3, r3.Sub(m.Positions[fv[(c+3)%4]], p))
			inner := r3.Add(p, r3.Add(toNext, toPrev))

			requireVecNear(t, p, cp[idx(c, far.PointP)], "face %d corner %d P", face, c)
			requireVecNear(t, r3.Add(p, toNext), cp[idx(c, far.PointEp)], "face %d corner %d Ep", face, c)
			requireVecNear(t, r3.Add(p, toPrev), cp[idx(c, far.PointEm)], "face %d corner %d Em", face, c)
			requireVecNear(t, inner, cp[idx(c, far.PointFp)], "face %d corner %d Fp", face, c)
			requireVecNear(t, inner, cp[idx(c, far.PointFm)], "face %d corner %d Fm", face, c)
		}
	}
}

// Translating every vertex translates every control point.
func TestNewBasis_TranslationInvariant(t *testing.T) {
	t.Parallel()

	m, lv := fixture(t, []builder.BuilderOption{builder.WithSeed(3), builder.WithJitter(0.3)}, builder.Fan(7, 2))
	face := builder.FanFace(2, 3, 0, 0)
	b, err := far.NewBasis(lv, face, tagOf(t, lv, face))
	require.NoError(t, err)

	shift := r3.Vec{X: 10, Y: -4, Z: 2.5}
	moved := make([]r3.Vec, len(m.Positions))
	for i, p := range m.Positions {
		moved[i] = r3.Add(p, shift)
	}
	before, err := b.ControlPoints(m.Positions)
	require.NoError(t, err)
	after, err := b.ControlPoints(moved)
	require.NoError(t, err)
	for i := range before {
		requireVecNear(t, r3.Add(before[i], shift), after[i], "point %d", i)
	}
}

func TestNewBasis_VaryingIsCornerVertex(t *testing.T) {
	t.Parallel()

	_, lv := fixture(t, nil, builder.Fan(5, 2))
	face := builder.FanFace(2, 1, 0, 0)
	b, err := far.NewBasis(lv, face, tagOf(t, lv, face), far.WithLevelVertexOffset(7), far.WithFVarChannel(2))
	require.NoError(t, err)
	require.Equal(t, 2, b.FVarChannel)
	require.Equal(t, face, b.Face)

	fv := lv.FaceVertices(face)
	for c := 0; c < 4; c++ {
		for k := far.PointP; k <= far.PointFm; k++ {
			require.Equal(t, stencil.Vertex(fv[c]+7), b.Varying[idx(c, k)])
		}
		require.GreaterOrEqual(t, b.Vertex[idx(c, far.PointP)].Indices[0], 7)
	}
}

func TestNewBasis_Errors(t *testing.T) {
	t.Parallel()

	_, lv := fixture(t, nil, builder.Grid(2, 2))
	interior := tagOf(t, lv, 0)

	_, err := far.NewBasis(nil, 0, interior)
	require.ErrorIs(t, err, far.ErrNilLevel)

	_, err = far.NewBasis(lv, 4, interior)
	require.ErrorIs(t, err, far.ErrInvalidFace)

	_, err = far.NewBasis(lv, -1, interior)
	require.ErrorIs(t, err, far.ErrInvalidFace)

	regular := interior
	regular.Regular = true
	_, err = far.NewBasis(lv, 0, regular)
	require.ErrorIs(t, err, far.ErrInvalidFace)

	// vertex 4 is interior; claiming a boundary there is a mismatch
	wrong := interior
	wrong.BoundaryMask |= 1 << 2
	_, err = far.NewBasis(lv, 0, wrong)
	require.ErrorIs(t, err, far.ErrTagMismatch)

	// vertex 1 is on the boundary; claiming interior is a mismatch
	wrong = interior
	wrong.BoundaryMask &^= 1 << 1
	_, err = far.NewBasis(lv, 0, wrong)
	require.ErrorIs(t, err, far.ErrTagMismatch)

	// vertex 0 has a single face and needs the corner rule
	wrong = interior
	wrong.CornerMask = 0
	wrong.BoundaryMask |= 1
	_, err = far.NewBasis(lv, 0, wrong)
	require.ErrorIs(t, err, far.ErrTagMismatch)
	require.False(t, errors.Is(err, far.ErrInvalidFace))
}

func TestNewBasis_NotQuad(t *testing.T) {
	t.Parallel()

	lv := mustVtrLevel(t, 5, [][]int{{0, 1, 2, 3}, {1, 4, 2}})
	_, err := far.NewBasis(lv, 1, far.PatchFaceTag{})
	require.ErrorIs(t, err, far.ErrInvalidFace)

	// face 0 touches the triangle through vertices 1 and 2
	tag, err := far.TagFace(lv, 0, false)
	require.NoError(t, err)
	_, err = far.NewBasis(lv, 0, tag)
	require.ErrorIs(t, err, far.ErrInvalidFace)
}

func TestControlPointIndex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, far.ControlPointIndex(0, far.PointP))
	require.Equal(t, 9, far.ControlPointIndex(1, far.PointFm))
	require.Equal(t, 17, far.ControlPointIndex(3, far.PointEm))
}

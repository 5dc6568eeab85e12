// SPDX-License-Identifier: MIT

package far

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/endcap/stencil"
)

// NumControlPoints is the number of control points of a Gregory basis patch.
const NumControlPoints = 20

// PointKind names the five control points of a patch corner.
type PointKind uint8

const (
	PointP  PointKind = iota // limit point
	PointEp                  // edge point toward the next corner
	PointEm                  // edge point toward the previous corner
	PointFp                  // face point next to Ep
	PointFm                  // face point next to Em
)

const numPointKinds = 5

// ControlPointIndex returns the canonical index of point kind of corner.
func ControlPointIndex(corner int, kind PointKind) int {
	return numPointKinds*corner + int(kind)
}

// GregoryBasis holds the 20 control points of one patch as stencils over
// level vertices, shifted by the level vertex offset.
//
// Vertex stencils carry the full Gregory weighting; Varying stencils carry
// the corner vertex for all five points of a corner.
type GregoryBasis struct {
	Face        int
	Valences    [4]int // signed, negative on boundary
	FVarChannel int

	Vertex  [NumControlPoints]stencil.Stencil
	Varying [NumControlPoints]stencil.Stencil

	corners [4]int // level vertices of the face
}

// ControlPoints evaluates the vertex stencils against values indexed like
// the stencils (level vertices after the offset).
func (b *GregoryBasis) ControlPoints(values []r3.Vec) ([NumControlPoints]r3.Vec, error) {
	var out [NumControlPoints]r3.Vec
	for i, s := range b.Vertex {
		p, err := s.Apply(values)
		if err != nil {
			return out, fmt.Errorf("GregoryBasis.ControlPoints: point %d: %w", i, err)
		}
		out[i] = p
	}

	return out, nil
}

// NewBasis computes the Gregory basis of a single face without any sharing.
// WithLevelVertexOffset and WithFVarChannel apply; other options are ignored.
//
// Errors: ErrNilLevel, ErrInvalidFace, ErrValenceExceeded, ErrTagMismatch.
func NewBasis(level Level, face int, tag PatchFaceTag, opts ...Option) (*GregoryBasis, error) {
	if level == nil {
		return nil, ErrNilLevel
	}
	o := newOptions(opts...)
	b, err := buildBasis(level, face, tag, o.levelOffset)
	if err != nil {
		return nil, fmt.Errorf("NewBasis(%d): %w", face, err)
	}
	b.FVarChannel = o.fvarChannel

	return b, nil
}

// buildBasis is pure: it reads level and allocates a new basis.
func buildBasis(level Level, face int, tag PatchFaceTag, offset int) (*GregoryBasis, error) {
	if tag.Regular {
		return nil, fmt.Errorf("face %d tagged regular: %w", face, ErrInvalidFace)
	}
	fv, err := quadVertices(level, face)
	if err != nil {
		return nil, err
	}

	var frames [4]*vertexFrame
	for c, v := range fv {
		if frames[c], err = newVertexFrame(level, v, tag.Class(c)); err != nil {
			return nil, err
		}
	}

	b := &GregoryBasis{Face: face, FVarChannel: NoFVarChannel, corners: fv}
	var ep, em [4]stencil.Stencil
	for c, fr := range frames {
		b.Valences[c] = fr.valence
		if ep[c], err = fr.edgePoint(fv[(c+1)%4]); err != nil {
			return nil, err
		}
		if em[c], err = fr.edgePoint(fv[(c+3)%4]); err != nil {
			return nil, err
		}
	}

	for c := range frames {
		fp, fm, err := facePoints(&frames, fv, &ep, &em, c)
		if err != nil {
			return nil, err
		}
		points := [numPointKinds]stencil.Stencil{frames[c].p, ep[c], em[c], fp, fm}
		for k, s := range points {
			i := ControlPointIndex(c, PointKind(k))
			b.Vertex[i] = s.Shift(offset)
			b.Varying[i] = stencil.Vertex(fv[c] + offset)
		}
	}

	return b, nil
}

// facePoints computes Fp and Fm of corner c:
//
//	Fp = (P·cos_p + Ep·(3 - 2cos_c - cos_p) + Em(ip)·2cos_c + r_start) / 3
//	Fm = (P·cos_m + Em·(3 - 2cos_c - cos_m) + Ep(im)·2cos_c - r_prev) / 3
//
// with ip/im the next/previous corner and start/prev the ring edges toward
// them. A boundary corner has no r on its boundary edges, so both points
// take the formula of the interior-side edge. A corner vertex uses the
// bilinear face point (4v + 2a + 2b + d)/9.
func facePoints(frames *[4]*vertexFrame, fv [4]int, ep, em *[4]stencil.Stencil, c int) (stencil.Stencil, stencil.Stencil, error) {
	fr := frames[c]
	ip, im := (c+1)%4, (c+3)%4

	if fr.class == Corner {
		var acc stencil.Accumulator
		acc.AddWithWeight(fv[c], 4.0/9)
		acc.AddWithWeight(fv[ip], 2.0/9)
		acc.AddWithWeight(fv[im], 2.0/9)
		acc.AddWithWeight(fv[(c+2)%4], 1.0/9)
		s := acc.Stencil()
		return s, s, nil
	}

	start, _ := fr.edgeIndex(fv[ip])
	prev, _ := fr.edgeIndex(fv[im])
	wantPrev := start + 1
	if fr.class == Interior {
		wantPrev %= fr.k
	}
	if prev != wantPrev {
		return stencil.Stencil{}, stencil.Stencil{},
			fmt.Errorf("vertex %d: face edges %d,%d are not adjacent in its ring: %w", fr.v, start, prev, ErrInvalidFace)
	}

	cosC, cosP, cosM := fr.cos, frames[ip].cos, frames[im].cos
	s2 := 2 * cosC
	fpForm := func() stencil.Stencil {
		return fr.p.Scale(cosP).
			AddScaled(ep[c], 3-s2-cosP).
			AddScaled(em[ip], s2).
			Add(fr.r[start]).
			Scale(1.0 / 3)
	}
	fmForm := func() stencil.Stencil {
		return fr.p.Scale(cosM).
			AddScaled(em[c], 3-s2-cosM).
			AddScaled(ep[im], s2).
			Sub(fr.r[prev]).
			Scale(1.0 / 3)
	}

	if fr.class == Boundary {
		switch {
		case start == 0:
			s := fmForm()
			return s, s, nil
		case prev == fr.k:
			s := fpForm()
			return s, s, nil
		}
	}

	return fpForm(), fmForm(), nil
}

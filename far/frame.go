// SPDX-License-Identifier: MIT

package far

import (
	"fmt"
	"math"

	"github.com/katalvlaran/endcap/stencil"
)

// maxValence bounds |valence| of a patch corner. Patch tables downstream
// size their per-vertex scratch by it.
const maxValence = 30

// MaxValence returns the largest |valence| a patch corner may have.
func MaxValence() int { return maxValence }

// vertexFrame holds the face-independent part of a corner: its limit point
// and the tangent stencils from which every edge point of the vertex is
// derived. Stencils index level vertices (no offset).
type vertexFrame struct {
	v       int
	class   VertexClass
	ring    []int
	k       int // incident faces
	valence int // negative on boundary, |valence| = incident edges
	cos     float64

	p      stencil.Stencil
	e0, e1 stencil.Stencil
	r      []stencil.Stencil // per ring edge; boundary edges stay empty
}

func newVertexFrame(level Level, v int, class VertexClass) (*vertexFrame, error) {
	ring, err := level.QuadRing(v)
	if err != nil {
		return nil, fmt.Errorf("vertex %d: %w: %w", v, ErrInvalidFace, err)
	}

	boundary := len(ring)%2 == 1
	fr := &vertexFrame{v: v, class: class, ring: ring, k: len(ring) / 2}
	fr.valence = fr.k
	if boundary {
		fr.valence = -(fr.k + 1)
	}

	switch {
	case abs(fr.valence) > maxValence:
		return nil, fmt.Errorf("vertex %d valence %d (max %d): %w", v, fr.valence, maxValence, ErrValenceExceeded)
	case boundary && class == Interior, !boundary && class != Interior:
		return nil, fmt.Errorf("vertex %d tagged %s, boundary=%t: %w", v, class, boundary, ErrTagMismatch)
	case class == Boundary && fr.k < 2:
		return nil, fmt.Errorf("vertex %d tagged boundary with one face: %w", v, ErrTagMismatch)
	case !boundary && fr.k < 3:
		return nil, fmt.Errorf("vertex %d interior valence %d: %w", v, fr.k, ErrInvalidFace)
	}

	switch class {
	case Interior:
		fr.interior()
	case Boundary:
		fr.boundary()
	default:
		fr.p = stencil.Vertex(v)
		fr.cos = math.Cos(math.Pi / 2)
	}

	return fr, nil
}

// ringN returns n_i, the i-th edge neighbour.
func (fr *vertexFrame) ringN(i int) int { return fr.ring[2*i] }

// ringD returns d_i, the vertex opposite v in face i.
func (fr *vertexFrame) ringD(i int) int { return fr.ring[2*i+1] }

// interior computes the frame of a vertex surrounded by n = k faces.
//
//	f_i = (n·v + 2(n_i + n_{i+1}) + d_i) / (n+5)
//	P   = Σ f_i / n
//	e0  = ef(n) Σ ½(f_i + f_{i-1}) cos(2πi/n)
//	e1  = ef(n) Σ ½(f_i + f_{i-1}) sin(2πi/n)
//	r_i = (n_{i+1} - n_{i-1})/3 + (d_i - d_{i-1})/6
func (fr *vertexFrame) interior() {
	n := fr.k
	nf := float64(n)
	wrap := func(i int) int { return (i + n) % n }

	var acc stencil.Accumulator
	f := make([]stencil.Stencil, n)
	inv := 1 / (nf + 5)
	for i := range f {
		acc.Reset()
		acc.AddWithWeight(fr.v, nf*inv)
		acc.AddWithWeight(fr.ringN(i), 2*inv)
		acc.AddWithWeight(fr.ringN(wrap(i+1)), 2*inv)
		acc.AddWithWeight(fr.ringD(i), inv)
		f[i] = acc.Stencil()
	}

	acc.Reset()
	for _, fi := range f {
		acc.AddStencil(fi, 1/nf)
	}
	fr.p = acc.Stencil()

	t := 2 * math.Pi / nf
	ef := edgeFactor(n)
	var acc0, acc1 stencil.Accumulator
	for i := range f {
		c, s := 0.5*ef*math.Cos(t*float64(i)), 0.5*ef*math.Sin(t*float64(i))
		acc0.AddStencil(f[i], c)
		acc0.AddStencil(f[wrap(i-1)], c)
		acc1.AddStencil(f[i], s)
		acc1.AddStencil(f[wrap(i-1)], s)
	}
	fr.e0, fr.e1 = acc0.Stencil(), acc1.Stencil()

	fr.r = make([]stencil.Stencil, n)
	for i := range fr.r {
		acc.Reset()
		acc.AddWithWeight(fr.ringN(wrap(i+1)), 1.0/3)
		acc.AddWithWeight(fr.ringN(wrap(i-1)), -1.0/3)
		acc.AddWithWeight(fr.ringD(i), 1.0/6)
		acc.AddWithWeight(fr.ringD(wrap(i-1)), -1.0/6)
		fr.r[i] = acc.Stencil()
	}
	fr.cos = math.Cos(t)
}

// edgeFactor scales the interior tangents so that a regular vertex yields
// edge points a third of the way along its edges.
func edgeFactor(n int) float64 {
	c := math.Cos(2 * math.Pi / float64(n))
	return 16 / (float64(n) * (c + 5 + math.Sqrt((c+9)*(c+1))))
}

// boundary computes the frame of a smooth boundary vertex with k ≥ 2 faces;
// b0 = n_0 and b1 = n_k are its boundary neighbours.
//
//	P  = (b0 + b1 + 4v) / 6
//	e0 = (b0 - b1) / 6
//	e1 = (γv + β_0 d_0 + α_0(b0 + b1) + Σ_{x=1}^{k-1} α_x n_x + β_x d_x) / 3
func (fr *vertexFrame) boundary() {
	k := fr.k
	kf := float64(k)
	b0, b1 := fr.ringN(0), fr.ringN(k)

	var acc stencil.Accumulator
	acc.AddWithWeight(fr.v, 4.0/6)
	acc.AddWithWeight(b0, 1.0/6)
	acc.AddWithWeight(b1, 1.0/6)
	fr.p = acc.Stencil()

	acc.Reset()
	acc.AddWithWeight(b0, 1.0/6)
	acc.AddWithWeight(b1, -1.0/6)
	fr.e0 = acc.Stencil()

	c, s := math.Cos(math.Pi/kf), math.Sin(math.Pi/kf)
	den := 3*kf + c
	gamma := -4 * s / den
	alpha0 := -(1 + 2*c) * math.Sqrt(1+c) / (den * math.Sqrt(1-c))
	beta0 := s / den

	acc.Reset()
	acc.AddWithWeight(fr.v, gamma/3)
	acc.AddWithWeight(fr.ringD(0), beta0/3)
	acc.AddWithWeight(b0, alpha0/3)
	acc.AddWithWeight(b1, alpha0/3)
	for x := 1; x < k; x++ {
		sx := math.Sin(math.Pi * float64(x) / kf)
		sx1 := math.Sin(math.Pi * float64(x+1) / kf)
		acc.AddWithWeight(fr.ringN(x), 4*sx/den/3)
		acc.AddWithWeight(fr.ringD(x), (sx+sx1)/den/3)
	}
	fr.e1 = acc.Stencil()

	fr.r = make([]stencil.Stencil, k+1)
	for i := 1; i < k; i++ {
		acc.Reset()
		acc.AddWithWeight(fr.ringN(i+1), 1.0/3)
		acc.AddWithWeight(fr.ringN(i-1), -1.0/3)
		acc.AddWithWeight(fr.ringD(i), 1.0/6)
		acc.AddWithWeight(fr.ringD(i-1), -1.0/6)
		fr.r[i] = acc.Stencil()
	}
	fr.cos = c
}

// numEdges returns the number of edges around the vertex.
func (fr *vertexFrame) numEdges() int {
	if fr.valence < 0 {
		return fr.k + 1
	}
	return fr.k
}

// edgeIndex returns the ring edge leading to w.
func (fr *vertexFrame) edgeIndex(w int) (int, bool) {
	for j := 0; j < fr.numEdges(); j++ {
		if fr.ringN(j) == w {
			return j, true
		}
	}
	return -1, false
}

// edgePoint returns the edge point of the vertex toward its neighbour w.
func (fr *vertexFrame) edgePoint(w int) (stencil.Stencil, error) {
	j, ok := fr.edgeIndex(w)
	if !ok {
		return stencil.Stencil{}, fmt.Errorf("vertex %d has no edge to %d: %w", fr.v, w, ErrInvalidFace)
	}

	var theta float64
	switch fr.class {
	case Corner:
		return stencil.Vertex(fr.v).Scale(2.0/3).AddScaled(stencil.Vertex(w), 1.0/3), nil
	case Boundary:
		theta = math.Pi * float64(j) / float64(fr.k)
	default:
		theta = 2 * math.Pi * float64(j) / float64(fr.k)
	}

	return fr.p.AddScaled(fr.e0, math.Cos(theta)).AddScaled(fr.e1, math.Sin(theta)), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

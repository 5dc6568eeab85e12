// SPDX-License-Identifier: MIT

package vtr

import (
	"fmt"
	"slices"
)

// Level is an immutable, manifold polygon mesh level with ordered
// vertex neighbourhoods.
//
// Accessors returning slices hand out internal storage: callers must not
// modify them. Index arguments of the plain accessors must be in range;
// QuadRing validates its argument and returns ErrOutOfRange instead.
type Level struct {
	depth    int
	numVerts int

	faceVerts [][]int
	faceEdges [][]int

	edgeVerts [][2]int
	edgeFaces [][]int

	vertFaces    [][]int // ordered, see package doc
	vertInFace   [][]int // local index of the vertex in vertFaces[v][i]
	vertEdges    [][]int // ordered: edge (v, n_i) per face, plus closing boundary edge
	vertBoundary []bool
}

// halfEdge is a directed edge from→to.
type halfEdge struct {
	from, to int
}

// faceCorner identifies vertex local of face face.
type faceCorner struct {
	face, local int
}

// Option configures a Level before construction.
type Option func(*Level)

// WithDepth records the refinement depth of the level (0 = base mesh).
// Panics on negative depth.
func WithDepth(depth int) Option {
	if depth < 0 {
		panic("vtr: WithDepth: depth must be >= 0")
	}
	return func(l *Level) { l.depth = depth }
}

// NewLevel builds a level over numVerts vertices from faces given as
// counter-clockwise vertex lists. The faces slice is copied.
//
// Stage 1 (Validate): vertex count, face sizes and indices.
// Stage 2 (Edges): assign edges in face order; reject duplicate directed edges.
// Stage 3 (Vertices): order faces and edges around every vertex.
//
// Errors: ErrBadVertexCount, ErrBadFace, ErrNonManifold.
// Complexity: O(F·k + V·d) time for face size k and vertex valence d.
func NewLevel(numVerts int, faces [][]int, opts ...Option) (*Level, error) {
	if numVerts <= 0 {
		return nil, fmt.Errorf("NewLevel(%d): %w", numVerts, ErrBadVertexCount)
	}
	lv := &Level{
		numVerts:  numVerts,
		faceVerts: make([][]int, len(faces)),
		faceEdges: make([][]int, len(faces)),
	}
	for _, opt := range opts {
		opt(lv)
	}

	half := make(map[halfEdge]faceCorner, 4*len(faces))
	edgeOf := make(map[[2]int]int, 2*len(faces))
	incident := make([][]faceCorner, numVerts)

	for f, src := range faces {
		if err := validateFace(f, src, numVerts); err != nil {
			return nil, err
		}
		fv := slices.Clone(src)
		fe := make([]int, len(fv))
		for i, v := range fv {
			w := fv[(i+1)%len(fv)]
			he := halfEdge{from: v, to: w}
			if _, dup := half[he]; dup {
				return nil, fmt.Errorf("NewLevel: directed edge %d→%d used twice (face %d): %w",
					v, w, f, ErrNonManifold)
			}
			half[he] = faceCorner{face: f, local: i}

			key := [2]int{min(v, w), max(v, w)}
			e, ok := edgeOf[key]
			if !ok {
				e = len(lv.edgeVerts)
				edgeOf[key] = e
				lv.edgeVerts = append(lv.edgeVerts, key)
				lv.edgeFaces = append(lv.edgeFaces, nil)
			}
			lv.edgeFaces[e] = append(lv.edgeFaces[e], f)
			fe[i] = e

			incident[v] = append(incident[v], faceCorner{face: f, local: i})
		}
		lv.faceVerts[f] = fv
		lv.faceEdges[f] = fe
	}

	lv.vertFaces = make([][]int, numVerts)
	lv.vertInFace = make([][]int, numVerts)
	lv.vertEdges = make([][]int, numVerts)
	lv.vertBoundary = make([]bool, numVerts)
	for v := 0; v < numVerts; v++ {
		if err := lv.orderVertex(v, incident[v], half, edgeOf); err != nil {
			return nil, err
		}
	}

	return lv, nil
}

func validateFace(f int, fv []int, numVerts int) error {
	if len(fv) < 3 {
		return fmt.Errorf("NewLevel: face %d has %d vertices: %w", f, len(fv), ErrBadFace)
	}
	for i, v := range fv {
		if v < 0 || v >= numVerts {
			return fmt.Errorf("NewLevel: face %d vertex %d: %w", f, v, ErrBadFace)
		}
		if slices.Contains(fv[:i], v) {
			return fmt.Errorf("NewLevel: face %d repeats vertex %d: %w", f, v, ErrBadFace)
		}
	}

	return nil
}

// orderVertex walks the fan of faces around v. A boundary vertex starts at
// the face whose edge (v, next) has no twin; an interior vertex starts at its
// first incident face in face order.
func (lv *Level) orderVertex(v int, cs []faceCorner, half map[halfEdge]faceCorner, edgeOf map[[2]int]int) error {
	if len(cs) == 0 {
		return nil
	}

	start := 0
	boundary := false
	for j, c := range cs {
		if _, ok := half[halfEdge{from: lv.next(c), to: v}]; !ok {
			start, boundary = j, true
			break
		}
	}

	ordered := make([]faceCorner, 0, len(cs))
	cur := cs[start]
	for {
		ordered = append(ordered, cur)
		nxt, ok := half[halfEdge{from: v, to: lv.prev(cur)}]
		if !ok || nxt == cs[start] {
			break
		}
		if len(ordered) == len(cs) {
			return fmt.Errorf("NewLevel: vertex %d fan does not close: %w", v, ErrNonManifold)
		}
		cur = nxt
	}
	if len(ordered) != len(cs) {
		return fmt.Errorf("NewLevel: vertex %d has %d faces in %d-face fan: %w",
			v, len(cs), len(ordered), ErrNonManifold)
	}

	faces := make([]int, len(ordered))
	local := make([]int, len(ordered))
	edges := make([]int, 0, len(ordered)+1)
	for i, c := range ordered {
		faces[i], local[i] = c.face, c.local
		n := lv.next(c)
		edges = append(edges, edgeOf[[2]int{min(v, n), max(v, n)}])
	}
	if boundary {
		p := lv.prev(ordered[len(ordered)-1])
		edges = append(edges, edgeOf[[2]int{min(v, p), max(v, p)}])
	}

	lv.vertFaces[v] = faces
	lv.vertInFace[v] = local
	lv.vertEdges[v] = edges
	lv.vertBoundary[v] = boundary

	return nil
}

// next returns the vertex following corner c in its face.
func (lv *Level) next(c faceCorner) int {
	fv := lv.faceVerts[c.face]
	return fv[(c.local+1)%len(fv)]
}

// prev returns the vertex preceding corner c in its face.
func (lv *Level) prev(c faceCorner) int {
	fv := lv.faceVerts[c.face]
	return fv[(c.local+len(fv)-1)%len(fv)]
}

// Depth returns the refinement depth recorded with WithDepth.
func (lv *Level) Depth() int { return lv.depth }

// NumVertices returns the number of vertices.
func (lv *Level) NumVertices() int { return lv.numVerts }

// NumFaces returns the number of faces.
func (lv *Level) NumFaces() int { return len(lv.faceVerts) }

// NumEdges returns the number of edges.
func (lv *Level) NumEdges() int { return len(lv.edgeVerts) }

// FaceVertices returns the vertices of face f in counter-clockwise order.
func (lv *Level) FaceVertices(f int) []int { return lv.faceVerts[f] }

// FaceEdges returns the edges of face f; edge i joins vertex i and i+1.
func (lv *Level) FaceEdges(f int) []int { return lv.faceEdges[f] }

// EdgeVertices returns the endpoints of edge e, smaller index first.
func (lv *Level) EdgeVertices(e int) [2]int { return lv.edgeVerts[e] }

// EdgeFaces returns the one or two faces incident to edge e.
func (lv *Level) EdgeFaces(e int) []int { return lv.edgeFaces[e] }

// VertexFaces returns the faces around v in fan order.
func (lv *Level) VertexFaces(v int) []int { return lv.vertFaces[v] }

// VertexEdges returns the edges around v in fan order.
func (lv *Level) VertexEdges(v int) []int { return lv.vertEdges[v] }

// IsBoundaryVertex reports whether v lies on a boundary edge.
func (lv *Level) IsBoundaryVertex(v int) bool { return lv.vertBoundary[v] }

// Valence returns the number of edges incident to v.
func (lv *Level) Valence(v int) int { return len(lv.vertEdges[v]) }

// QuadRing gathers the quad-regular ring around v:
//
//	interior: n_0 d_0 n_1 d_1 … n_{k-1} d_{k-1}          (2k entries)
//	boundary: n_0 d_0 … n_{k-1} d_{k-1} n_k              (2k+1 entries)
//
// where k is the number of faces around v, n_i the vertex after v in face i
// and d_i the vertex opposite v. A boundary ring starts at a boundary edge.
//
// Errors: ErrOutOfRange, ErrIsolatedVertex, ErrNotQuad.
// Complexity: O(k).
func (lv *Level) QuadRing(v int) ([]int, error) {
	if v < 0 || v >= lv.numVerts {
		return nil, fmt.Errorf("QuadRing(%d): %w", v, ErrOutOfRange)
	}
	faces := lv.vertFaces[v]
	if len(faces) == 0 {
		return nil, fmt.Errorf("QuadRing(%d): %w", v, ErrIsolatedVertex)
	}

	ring := make([]int, 0, 2*len(faces)+1)
	for i, f := range faces {
		fv := lv.faceVerts[f]
		if len(fv) != 4 {
			return nil, fmt.Errorf("QuadRing(%d): face %d has %d vertices: %w", v, f, len(fv), ErrNotQuad)
		}
		l := lv.vertInFace[v][i]
		ring = append(ring, fv[(l+1)%4], fv[(l+2)%4])
		if lv.vertBoundary[v] && i == len(faces)-1 {
			ring = append(ring, fv[(l+3)%4])
		}
	}

	return ring, nil
}

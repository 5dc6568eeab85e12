package far

// Level is the refined mesh level end caps are built on.
//
// Faces list vertices counter-clockwise. QuadRing returns the ring of a
// vertex whose incident faces are all quads:
//
//	interior: n_0 d_0 n_1 d_1 … n_{k-1} d_{k-1}
//	boundary: n_0 d_0 … n_{k-1} d_{k-1} n_k   (starts on a boundary edge)
//
// where n_i follows the vertex in its i-th face and d_i is opposite to it;
// face i+1 shares edge (v, n_{i+1}) with face i.
type Level interface {
	NumVertices() int
	NumFaces() int
	FaceVertices(f int) []int
	VertexFaces(v int) []int
	IsBoundaryVertex(v int) bool
	QuadRing(v int) ([]int, error)
}

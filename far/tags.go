// SPDX-License-Identifier: MIT

package far

import "fmt"

// VertexClass selects the weighting rule applied at a patch corner.
type VertexClass uint8

const (
	// Interior vertices are surrounded by faces.
	Interior VertexClass = iota
	// Boundary vertices lie on a smooth boundary with at least two faces.
	Boundary
	// Corner vertices are interpolated, with straight edges toward their
	// neighbours.
	Corner
)

// String implements fmt.Stringer.
func (c VertexClass) String() string {
	switch c {
	case Interior:
		return "interior"
	case Boundary:
		return "boundary"
	case Corner:
		return "corner"
	}
	return fmt.Sprintf("VertexClass(%d)", uint8(c))
}

// PatchFaceTag is the caller's classification of a face. Bit c of each mask
// refers to corner c of the face.
type PatchFaceTag struct {
	Regular        bool
	BoundaryMask   uint8
	CornerMask     uint8
	TransitionMask uint8
}

// Class returns the rule class of corner c. Corner bits win over boundary
// bits.
func (t PatchFaceTag) Class(c int) VertexClass {
	bit := uint8(1) << uint(c)
	switch {
	case t.CornerMask&bit != 0:
		return Corner
	case t.BoundaryMask&bit != 0:
		return Boundary
	}
	return Interior
}

// TagFace derives a tag for face from the topology of level: a boundary
// corner with a single incident face is tagged Corner, any other boundary
// corner Boundary. TransitionMask is left zero.
//
// Errors: ErrNilLevel, ErrInvalidFace (face out of range or not a quad).
func TagFace(level Level, face int, regular bool) (PatchFaceTag, error) {
	if level == nil {
		return PatchFaceTag{}, ErrNilLevel
	}
	fv, err := quadVertices(level, face)
	if err != nil {
		return PatchFaceTag{}, fmt.Errorf("TagFace: %w", err)
	}

	tag := PatchFaceTag{Regular: regular}
	for c, v := range fv {
		if !level.IsBoundaryVertex(v) {
			continue
		}
		if len(level.VertexFaces(v)) == 1 {
			tag.CornerMask |= 1 << uint(c)
		} else {
			tag.BoundaryMask |= 1 << uint(c)
		}
	}

	return tag, nil
}

// quadVertices returns the vertices of face as an array, checking range and
// size.
func quadVertices(level Level, face int) ([4]int, error) {
	var fv [4]int
	if face < 0 || face >= level.NumFaces() {
		return fv, fmt.Errorf("face %d of %d: %w", face, level.NumFaces(), ErrInvalidFace)
	}
	verts := level.FaceVertices(face)
	if len(verts) != 4 {
		return fv, fmt.Errorf("face %d has %d vertices: %w", face, len(verts), ErrInvalidFace)
	}
	copy(fv[:], verts)

	return fv, nil
}

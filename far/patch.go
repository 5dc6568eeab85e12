package far

import "fmt"

// PatchType enumerates the patch kinds a patch table can hold.
type PatchType uint8

const (
	PatchNone PatchType = iota
	PatchQuads
	PatchRegular
	PatchGregory
	PatchGregoryBoundary
	PatchGregoryBasis
)

var patchTypeNames = [...]string{
	PatchNone:            "NonPatch",
	PatchQuads:           "Quads",
	PatchRegular:         "Regular",
	PatchGregory:         "Gregory",
	PatchGregoryBoundary: "GregoryBoundary",
	PatchGregoryBasis:    "GregoryBasis",
}

// String implements fmt.Stringer.
func (t PatchType) String() string {
	if int(t) < len(patchTypeNames) {
		return patchTypeNames[t]
	}
	return fmt.Sprintf("PatchType(%d)", uint8(t))
}

// NumControlVertices returns the control vertex count of a patch of type t,
// or 0 for PatchNone and unknown types.
func (t PatchType) NumControlVertices() int {
	switch t {
	case PatchQuads, PatchGregory, PatchGregoryBoundary:
		return 4
	case PatchRegular:
		return 16
	case PatchGregoryBasis:
		return NumControlPoints
	}
	return 0
}

// BasisVariant records which rule dominated the corners of a Gregory basis.
type BasisVariant uint8

const (
	// VariantInterior: every corner uses the interior rule.
	VariantInterior BasisVariant = iota
	// VariantBoundary: at least one boundary corner, no corner vertex.
	VariantBoundary
	// VariantCorner: at least one corner vertex.
	VariantCorner
)

// String implements fmt.Stringer.
func (v BasisVariant) String() string {
	switch v {
	case VariantInterior:
		return "interior"
	case VariantBoundary:
		return "boundary"
	case VariantCorner:
		return "corner"
	}
	return fmt.Sprintf("BasisVariant(%d)", uint8(v))
}

// PatchDescriptor describes the patch generated for a face.
type PatchDescriptor struct {
	Type    PatchType
	Variant BasisVariant
}

// NumControlVertices returns the control vertex count of the patch.
func (d PatchDescriptor) NumControlVertices() int { return d.Type.NumControlVertices() }

// String implements fmt.Stringer.
func (d PatchDescriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.Type, d.Variant)
}

// variantOf maps a tag to the basis variant it selects.
func variantOf(tag PatchFaceTag) BasisVariant {
	switch {
	case tag.CornerMask&0xF != 0:
		return VariantCorner
	case tag.BoundaryMask&0xF != 0:
		return VariantBoundary
	}
	return VariantInterior
}

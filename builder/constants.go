// Package builder defines shared constants used by mesh constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMesh is the canonical name for the BuildMesh orchestrator.
	MethodBuildMesh = "BuildMesh"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodFan is the canonical name for the Fan constructor.
	MethodFan = "Fan"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinGridDim is the smallest number of rows or columns of a grid.
const MinGridDim = 1

// MinFanSectors is the smallest number of sectors of a closed fan.
// Fewer sectors cannot close around the centre without degenerate quads.
const MinFanSectors = 3

// MinOpenFanSectors is the smallest number of sectors of an open fan.
const MinOpenFanSectors = 2

// MinFanRings is the smallest number of face rings around a fan centre.
const MinFanRings = 1

//-----------------------------------------------------------------------------
// Geometry defaults
//-----------------------------------------------------------------------------

// DefaultSpacing is the distance between neighbouring lattice points.
const DefaultSpacing = 1.0

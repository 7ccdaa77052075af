// Package spatialmath defines poses as homogeneous transforms in both the planar (2D)
// and spatial (3D) working dimensionalities, along with the composition math used to
// chain them together.
package spatialmath

import "github.com/golang/geo/r3"

// Space identifies the working dimensionality of a pose or a chain of transforms.
type Space uint8

const (
	// Planar is the 2D variant; poses are 3x3 homogeneous matrices.
	Planar Space = iota
	// Spatial is the 3D variant; poses are 4x4 homogeneous matrices.
	Spatial
)

func (s Space) String() string {
	if s == Planar {
		return "planar"
	}
	return "spatial"
}

// MatrixSize returns the side length of the homogeneous matrix for this space.
func (s Space) MatrixSize() int {
	if s == Planar {
		return 3
	}
	return 4
}

// JacobianRows returns the number of spatial-velocity components in this space:
// [ωz; vx; vy] for planar, [ω; v] for spatial.
func (s Space) JacobianRows() int {
	if s == Planar {
		return 3
	}
	return 6
}

// Axis names one of the principal axes of the base frame.
type Axis uint8

const (
	// AxisX is the x axis.
	AxisX Axis = iota
	// AxisY is the y axis.
	AxisY
	// AxisZ is the z axis.
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Vector returns the unit vector along the axis.
func (a Axis) Vector() r3.Vector {
	switch a {
	case AxisX:
		return r3.Vector{X: 1}
	case AxisY:
		return r3.Vector{Y: 1}
	default:
		return r3.Vector{Z: 1}
	}
}

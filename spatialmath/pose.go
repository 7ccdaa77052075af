package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Pose represents an immutable rigid-body transform from one frame to another.
// Planar poses live on the z=0 plane; their Point always has a zero z component.
type Pose interface {
	// Space returns the working dimensionality of the pose.
	Space() Space

	// Point returns the translation component of the pose.
	Point() r3.Vector

	// Rotate applies only the rotation component of the pose to a direction vector.
	Rotate(v r3.Vector) r3.Vector

	// Theta returns the heading about the z axis, in radians.
	Theta() float64

	// Matrix returns a fresh copy of the homogeneous matrix, 3x3 for planar poses
	// and 4x4 for spatial ones.
	Matrix() *mat.Dense
}

// NewZeroPose returns the identity transform of the given space.
func NewZeroPose(s Space) Pose {
	if s == Planar {
		return &planarPose{mgl64.Ident3()}
	}
	return &spatialPose{mgl64.Ident4()}
}

// NewRotation returns a right-handed single-axis rotation by theta radians.
// Planar poses only rotate about the out-of-plane z axis.
func NewRotation(s Space, a Axis, theta float64) (Pose, error) {
	if s == Planar {
		if a != AxisZ {
			return nil, errors.Errorf("planar poses cannot rotate about the %s axis", a)
		}
		return &planarPose{mgl64.HomogRotate2D(theta)}, nil
	}
	switch a {
	case AxisX:
		return &spatialPose{mgl64.HomogRotate3DX(theta)}, nil
	case AxisY:
		return &spatialPose{mgl64.HomogRotate3DY(theta)}, nil
	default:
		return &spatialPose{mgl64.HomogRotate3DZ(theta)}, nil
	}
}

// NewTranslation returns a pure offset of d along the given axis.
// Planar poses only translate within the xy plane.
func NewTranslation(s Space, a Axis, d float64) (Pose, error) {
	if s == Planar {
		switch a {
		case AxisX:
			return &planarPose{mgl64.Translate2D(d, 0)}, nil
		case AxisY:
			return &planarPose{mgl64.Translate2D(0, d)}, nil
		default:
			return nil, errors.Errorf("planar poses cannot translate along the %s axis", a)
		}
	}
	v := a.Vector().Mul(d)
	return &spatialPose{mgl64.Translate3D(v.X, v.Y, v.Z)}, nil
}

// Compose returns the pose equivalent to applying a then b, i.e. a·b in homogeneous
// matrix terms. Both poses must share a space.
func Compose(a, b Pose) (Pose, error) {
	switch pa := a.(type) {
	case *planarPose:
		pb, ok := b.(*planarPose)
		if !ok {
			return nil, newMismatchedSpaceError(a, b)
		}
		return &planarPose{pa.m.Mul3(pb.m)}, nil
	case *spatialPose:
		pb, ok := b.(*spatialPose)
		if !ok {
			return nil, newMismatchedSpaceError(a, b)
		}
		return &spatialPose{pa.m.Mul4(pb.m)}, nil
	default:
		return nil, errors.Errorf("unknown pose implementation %T", a)
	}
}

// PoseAlmostEqual reports whether two poses differ by no more than eps in any
// matrix entry.
func PoseAlmostEqual(a, b Pose, eps float64) bool {
	return a.Space() == b.Space() && mat.EqualApprox(a.Matrix(), b.Matrix(), eps)
}

func newMismatchedSpaceError(a, b Pose) error {
	return errors.Errorf("cannot compose a %s pose with a %s pose", a.Space(), b.Space())
}

type planarPose struct {
	m mgl64.Mat3
}

func (p *planarPose) Space() Space {
	return Planar
}

func (p *planarPose) Point() r3.Vector {
	return r3.Vector{X: p.m.At(0, 2), Y: p.m.At(1, 2)}
}

func (p *planarPose) Rotate(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: p.m.At(0, 0)*v.X + p.m.At(0, 1)*v.Y,
		Y: p.m.At(1, 0)*v.X + p.m.At(1, 1)*v.Y,
		Z: v.Z,
	}
}

func (p *planarPose) Theta() float64 {
	return math.Atan2(p.m.At(1, 0), p.m.At(0, 0))
}

func (p *planarPose) Matrix() *mat.Dense {
	out := mat.NewDense(3, 3, nil)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Set(r, c, p.m.At(r, c))
		}
	}
	return out
}

type spatialPose struct {
	m mgl64.Mat4
}

func (p *spatialPose) Space() Space {
	return Spatial
}

func (p *spatialPose) Point() r3.Vector {
	return r3.Vector{X: p.m.At(0, 3), Y: p.m.At(1, 3), Z: p.m.At(2, 3)}
}

func (p *spatialPose) Rotate(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: p.m.At(0, 0)*v.X + p.m.At(0, 1)*v.Y + p.m.At(0, 2)*v.Z,
		Y: p.m.At(1, 0)*v.X + p.m.At(1, 1)*v.Y + p.m.At(1, 2)*v.Z,
		Z: p.m.At(2, 0)*v.X + p.m.At(2, 1)*v.Y + p.m.At(2, 2)*v.Z,
	}
}

func (p *spatialPose) Theta() float64 {
	return math.Atan2(p.m.At(1, 0), p.m.At(0, 0))
}

func (p *spatialPose) Matrix() *mat.Dense {
	out := mat.NewDense(4, 4, nil)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Set(r, c, p.m.At(r, c))
		}
	}
	return out
}

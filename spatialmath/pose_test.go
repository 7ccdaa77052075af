package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestZeroPose(t *testing.T) {
	for _, space := range []Space{Planar, Spatial} {
		pose := NewZeroPose(space)
		test.That(t, pose.Space(), test.ShouldEqual, space)
		test.That(t, pose.Point(), test.ShouldResemble, r3.Vector{})
		test.That(t, pose.Theta(), test.ShouldEqual, 0.0)
		rows, cols := pose.Matrix().Dims()
		test.That(t, rows, test.ShouldEqual, space.MatrixSize())
		test.That(t, cols, test.ShouldEqual, space.MatrixSize())
	}
}

func TestPlanarAxisRestrictions(t *testing.T) {
	_, err := NewRotation(Planar, AxisX, 1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot rotate about the x axis")

	_, err = NewTranslation(Planar, AxisZ, 1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot translate along the z axis")

	_, err = NewRotation(Planar, AxisZ, 1)
	test.That(t, err, test.ShouldBeNil)
	_, err = NewTranslation(Planar, AxisY, 1)
	test.That(t, err, test.ShouldBeNil)
}

func TestPlanarCompose(t *testing.T) {
	rot, err := NewRotation(Planar, AxisZ, math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	trans, err := NewTranslation(Planar, AxisX, 1)
	test.That(t, err, test.ShouldBeNil)

	pose, err := Compose(rot, trans)
	test.That(t, err, test.ShouldBeNil)
	point := pose.Point()
	test.That(t, point.X, test.ShouldAlmostEqual, 0)
	test.That(t, point.Y, test.ShouldAlmostEqual, 1)
	test.That(t, pose.Theta(), test.ShouldAlmostEqual, math.Pi/2)

	// Translation first leaves the heading but moves along x instead.
	pose, err = Compose(trans, rot)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.Point().X, test.ShouldAlmostEqual, 1)
	test.That(t, pose.Point().Y, test.ShouldAlmostEqual, 0)
}

func TestSpatialRotate(t *testing.T) {
	rot, err := NewRotation(Spatial, AxisX, math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	v := rot.Rotate(r3.Vector{Y: 1})
	test.That(t, v.X, test.ShouldAlmostEqual, 0)
	test.That(t, v.Y, test.ShouldAlmostEqual, 0)
	test.That(t, v.Z, test.ShouldAlmostEqual, 1)

	rot, err = NewRotation(Spatial, AxisY, math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	v = rot.Rotate(r3.Vector{X: 1})
	test.That(t, v.X, test.ShouldAlmostEqual, 0)
	test.That(t, v.Y, test.ShouldAlmostEqual, 0)
	test.That(t, v.Z, test.ShouldAlmostEqual, -1)
}

func TestSpatialCompose(t *testing.T) {
	rot, err := NewRotation(Spatial, AxisZ, math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	trans, err := NewTranslation(Spatial, AxisX, 2)
	test.That(t, err, test.ShouldBeNil)

	pose, err := Compose(rot, trans)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.Point().X, test.ShouldAlmostEqual, 0)
	test.That(t, pose.Point().Y, test.ShouldAlmostEqual, 2)
	test.That(t, pose.Point().Z, test.ShouldAlmostEqual, 0)
}

func TestComposeMismatchedSpaces(t *testing.T) {
	_, err := Compose(NewZeroPose(Planar), NewZeroPose(Spatial))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot compose")
}

func TestPoseAlmostEqual(t *testing.T) {
	a, err := NewRotation(Planar, AxisZ, 0.3)
	test.That(t, err, test.ShouldBeNil)
	b, err := NewRotation(Planar, AxisZ, 0.3+1e-12)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, PoseAlmostEqual(a, b, 1e-8), test.ShouldBeTrue)

	c, err := NewRotation(Planar, AxisZ, 0.4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, PoseAlmostEqual(a, c, 1e-8), test.ShouldBeFalse)
	test.That(t, PoseAlmostEqual(a, NewZeroPose(Spatial), 1e-8), test.ShouldBeFalse)
}

func TestAxisVectors(t *testing.T) {
	test.That(t, AxisX.Vector(), test.ShouldResemble, r3.Vector{X: 1})
	test.That(t, AxisY.Vector(), test.ShouldResemble, r3.Vector{Y: 1})
	test.That(t, AxisZ.Vector(), test.ShouldResemble, r3.Vector{Z: 1})
}

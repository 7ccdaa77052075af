package kinematics

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/ets"
	"go.viam.com/ets/scalar"
	"go.viam.com/ets/spatialmath"
)

func TestTransformOverFloatMatchesTransform(t *testing.T) {
	for _, tc := range []struct {
		name string
		seq  *ets.Sequence
		q    []float64
	}{
		{"planar", twoLink(t), []float64{0.2, -1.1}},
		{"spatial", spatialChain(t), []float64{0.3, 0.8}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pose, err := Transform(tc.seq, tc.q)
			test.That(t, err, test.ShouldBeNil)
			generic, err := TransformOver(tc.seq, scalar.Floats(tc.q))
			test.That(t, err, test.ShouldBeNil)

			matrix := pose.Matrix()
			size := tc.seq.Space().MatrixSize()
			test.That(t, generic, test.ShouldHaveLength, size)
			for r := 0; r < size; r++ {
				for c := 0; c < size; c++ {
					test.That(t, float64(generic[r][c]), test.ShouldAlmostEqual, matrix.At(r, c), 1e-12)
				}
			}
		})
	}
}

func TestTransformOverDegrees(t *testing.T) {
	seq := twoLink(t)
	fromDegrees, err := TransformOver(seq, scalar.Floats([]float64{90, -90}), WithDegrees())
	test.That(t, err, test.ShouldBeNil)
	fromRadians, err := TransformOver(seq, scalar.Floats([]float64{math.Pi / 2, -math.Pi / 2}))
	test.That(t, err, test.ShouldBeNil)
	for r := range fromDegrees {
		for c := range fromDegrees[r] {
			test.That(t, float64(fromDegrees[r][c]), test.ShouldAlmostEqual, float64(fromRadians[r][c]), 1e-9)
		}
	}
}

func TestTransformOverSymbolic(t *testing.T) {
	j1, err := ets.Rotation("z", "q1")
	test.That(t, err, test.ShouldBeNil)
	link, err := ets.Translation("x", 1.0)
	test.That(t, err, test.ShouldBeNil)
	seq, err := ets.NewSequence(spatialmath.Planar, j1, link)
	test.That(t, err, test.ShouldBeNil)

	m, err := TransformOver(seq, scalar.Vars("q", 1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m[0][2].String(), test.ShouldContainSubstring, "cos(q1)")
	test.That(t, m[1][2].String(), test.ShouldContainSubstring, "sin(q1)")
	test.That(t, m[0][1].String(), test.ShouldContainSubstring, "-sin(q1)")
}

func TestTransformOverErrors(t *testing.T) {
	seq := twoLink(t)

	_, err := TransformOver(seq, scalar.Floats([]float64{0, 0}), WithPrefix(9))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "outside valid range")

	_, err = TransformOver(seq, scalar.Floats([]float64{0}))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not addressable")
}

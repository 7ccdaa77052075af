package kinematics

import (
	"math"

	"go.viam.com/ets"
	"go.viam.com/ets/scalar"
	"go.viam.com/ets/spatialmath"
)

// TransformOver is Transform generalized over any scalar type satisfying
// scalar.Number: the same base-to-tip traversal and error contract, but the result is
// the homogeneous matrix as nested slices of S. With scalar.Float it reproduces
// Transform; with scalar.Expr it yields an unsimplified symbolic composition.
func TransformOver[S scalar.Number[S]](seq *ets.Sequence, q []S, opts ...EvalOption) ([][]S, error) {
	o := makeEvalOptions(seq.Len(), opts)
	if o.prefix < 1 || o.prefix > seq.Len() {
		return nil, NewInvalidPrefixError(o.prefix, seq.Len())
	}
	var lifter S
	size := seq.Space().MatrixSize()
	pose := identityOver(size, lifter)
	for i := 0; i < o.prefix; i++ {
		el := seq.At(i)
		value, err := elementValueOver(el, q, o.degrees, lifter)
		if err != nil {
			return nil, err
		}
		pose = mulOver(pose, elementMatrixOver(seq.Space(), el.Kind(), value, lifter), lifter)
	}
	return pose, nil
}

func elementValueOver[S scalar.Number[S]](el *ets.Element, q []S, degrees bool, lifter S) (S, error) {
	value := lifter.Lift(el.Value())
	if el.IsJoint() {
		if el.Index() > len(q) {
			return value, NewJointIndexOutOfBoundsError(el.Index(), len(q))
		}
		value = q[el.Index()-1]
	}
	if degrees && el.Kind().Rotational() {
		value = value.Mul(lifter.Lift(math.Pi / 180))
	}
	return value, nil
}

func identityOver[S scalar.Number[S]](size int, lifter S) [][]S {
	out := make([][]S, size)
	for r := range out {
		out[r] = make([]S, size)
		for c := range out[r] {
			if r == c {
				out[r][c] = lifter.Lift(1)
			} else {
				out[r][c] = lifter.Lift(0)
			}
		}
	}
	return out
}

func mulOver[S scalar.Number[S]](a, b [][]S, lifter S) [][]S {
	size := len(a)
	out := make([][]S, size)
	for r := range out {
		out[r] = make([]S, size)
		for c := range out[r] {
			sum := lifter.Lift(0)
			for k := 0; k < size; k++ {
				sum = sum.Add(a[r][k].Mul(b[k][c]))
			}
			out[r][c] = sum
		}
	}
	return out
}

// elementMatrixOver builds the elementary homogeneous matrix for one element. The
// sequence has already pinned every kind to its space, so the planar branch only sees
// Tx, Ty and Rz.
func elementMatrixOver[S scalar.Number[S]](space spatialmath.Space, kind ets.Kind, value S, lifter S) [][]S {
	size := space.MatrixSize()
	out := identityOver(size, lifter)
	if !kind.Rotational() {
		switch kind.Axis() {
		case spatialmath.AxisX:
			out[0][size-1] = value
		case spatialmath.AxisY:
			out[1][size-1] = value
		default:
			out[2][size-1] = value
		}
		return out
	}
	sin, cos := value.Sin(), value.Cos()
	if space == spatialmath.Planar {
		out[0][0], out[0][1] = cos, sin.Neg()
		out[1][0], out[1][1] = sin, cos
		return out
	}
	switch kind.Axis() {
	case spatialmath.AxisX:
		out[1][1], out[1][2] = cos, sin.Neg()
		out[2][1], out[2][2] = sin, cos
	case spatialmath.AxisY:
		out[0][0], out[0][2] = cos, sin
		out[2][0], out[2][2] = sin.Neg(), cos
	default:
		out[0][0], out[0][1] = cos, sin.Neg()
		out[1][0], out[1][1] = sin, cos
	}
	return out
}

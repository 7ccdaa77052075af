package kinematics

import (
	"go.viam.com/ets"
	"go.viam.com/ets/spatialmath"
	"go.viam.com/ets/utils"
)

// Transform composes the first prefix elements of the chain base-to-tip into a single
// pose at the given configuration. Joint elements read q[index-1]; constants contribute
// their stored offset. Evaluation is a pure function of its arguments.
func Transform(seq *ets.Sequence, q []float64, opts ...EvalOption) (spatialmath.Pose, error) {
	o := makeEvalOptions(seq.Len(), opts)
	if o.prefix < 1 || o.prefix > seq.Len() {
		return nil, NewInvalidPrefixError(o.prefix, seq.Len())
	}
	pose := spatialmath.NewZeroPose(seq.Space())
	for i := 0; i < o.prefix; i++ {
		el := seq.At(i)
		value, err := elementValue(el, q, o.degrees)
		if err != nil {
			return nil, err
		}
		step, err := elementPose(seq.Space(), el.Kind(), value)
		if err != nil {
			return nil, err
		}
		if pose, err = spatialmath.Compose(pose, step); err != nil {
			return nil, err
		}
	}
	return pose, nil
}

// elementValue resolves the scalar driving an element, converting rotations from
// degrees when requested.
func elementValue(el *ets.Element, q []float64, degrees bool) (float64, error) {
	value := el.Value()
	if el.IsJoint() {
		if el.Index() > len(q) {
			return 0, NewJointIndexOutOfBoundsError(el.Index(), len(q))
		}
		value = q[el.Index()-1]
	}
	if degrees && el.Kind().Rotational() {
		value = utils.DegToRad(value)
	}
	return value, nil
}

func elementPose(space spatialmath.Space, kind ets.Kind, value float64) (spatialmath.Pose, error) {
	if kind.Rotational() {
		return spatialmath.NewRotation(space, kind.Axis(), value)
	}
	return spatialmath.NewTranslation(space, kind.Axis(), value)
}

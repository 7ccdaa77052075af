package kinematics

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/ets"
	"go.viam.com/ets/spatialmath"
)

// jointFrame captures a joint's motion axis and origin in the base frame, sampled just
// before the joint's own motion is applied.
type jointFrame struct {
	el     *ets.Element
	axis   r3.Vector
	origin r3.Vector
}

// Jacobian assembles the geometric Jacobian at the target element's frame, expressed in
// the base frame: shape (3, NJoints) planar with rows [ωz; vx; vy], (6, NJoints)
// spatial with rows [ω; v]. Revolute columns are [axis; axis × (p_target − p_joint)],
// prismatic columns [0; axis]. Column order matches Transform's composition order;
// joint indices not reached before the target, or absent entirely, give zero columns.
// Elements sharing a joint index accumulate into the shared column. A chain with no
// joints yields an empty matrix. Configuration values are radians; WithDegrees is
// rejected.
func Jacobian(seq *ets.Sequence, q []float64, opts ...EvalOption) (*mat.Dense, error) {
	o := makeEvalOptions(seq.Len(), opts)
	if o.degrees {
		return nil, NewRadiansRequiredError()
	}
	if o.prefix < 1 || o.prefix > seq.Len() {
		return nil, NewInvalidTargetError(o.prefix, seq.Len())
	}
	njoints := seq.NJoints()
	if len(q) < njoints {
		return nil, NewJointIndexOutOfBoundsError(njoints, len(q))
	}
	if njoints == 0 {
		return &mat.Dense{}, nil
	}

	// One forward pass, recording each joint's base-frame axis and origin on the way.
	var seen []jointFrame
	pose := spatialmath.NewZeroPose(seq.Space())
	for i := 0; i < o.prefix; i++ {
		el := seq.At(i)
		if el.IsJoint() {
			seen = append(seen, jointFrame{
				el:     el,
				axis:   pose.Rotate(el.Kind().Axis().Vector()),
				origin: pose.Point(),
			})
		}
		value, err := elementValue(el, q, false)
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
	target := pose.Point()

	jac := mat.NewDense(seq.Space().JacobianRows(), njoints, nil)
	for _, jf := range seen {
		var angular, linear r3.Vector
		if jf.el.Revolute() {
			angular = jf.axis
			linear = jf.axis.Cross(target.Sub(jf.origin))
		} else {
			linear = jf.axis
		}
		addColumn(jac, seq.Space(), jf.el.Index()-1, angular, linear)
	}
	return jac, nil
}

func addColumn(jac *mat.Dense, space spatialmath.Space, col int, angular, linear r3.Vector) {
	if space == spatialmath.Planar {
		jac.Set(0, col, jac.At(0, col)+angular.Z)
		jac.Set(1, col, jac.At(1, col)+linear.X)
		jac.Set(2, col, jac.At(2, col)+linear.Y)
		return
	}
	jac.Set(0, col, jac.At(0, col)+angular.X)
	jac.Set(1, col, jac.At(1, col)+angular.Y)
	jac.Set(2, col, jac.At(2, col)+angular.Z)
	jac.Set(3, col, jac.At(3, col)+linear.X)
	jac.Set(4, col, jac.At(4, col)+linear.Y)
	jac.Set(5, col, jac.At(5, col)+linear.Z)
}

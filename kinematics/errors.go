package kinematics

import "github.com/pkg/errors"

// NewInvalidPrefixError returns an error indicating a pose-evaluation prefix outside
// [1, chain length].
func NewInvalidPrefixError(prefix, chainLen int) error {
	return errors.Errorf("prefix length %d outside valid range [1, %d]", prefix, chainLen)
}

// NewInvalidTargetError returns an error indicating a Jacobian target element outside
// [1, chain length].
func NewInvalidTargetError(target, chainLen int) error {
	return errors.Errorf("target element %d outside valid range [1, %d]", target, chainLen)
}

// NewJointIndexOutOfBoundsError returns an error indicating the configuration vector is
// too short for the joint index being addressed.
func NewJointIndexOutOfBoundsError(jointIndex, qLen int) error {
	return errors.Errorf("joint q%d is not addressable in a configuration vector of length %d", jointIndex, qLen)
}

// NewRadiansRequiredError returns an error indicating an evaluation that only accepts
// radian inputs was asked to work in degrees.
func NewRadiansRequiredError() error {
	return errors.New("jacobian evaluation requires radian inputs")
}

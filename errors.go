package ets

import (
	"github.com/pkg/errors"

	"go.viam.com/ets/spatialmath"
)

// NewInvalidTransformKindError returns an error indicating the kind token does not name
// a supported elementary transform.
func NewInvalidTransformKindError(token string) error {
	return errors.Errorf("unsupported transform kind %q", token)
}

// NewKindSpaceError returns an error indicating the kind does not exist in the space.
func NewKindSpaceError(k Kind, s spatialmath.Space) error {
	return errors.Errorf("transform kind %s is not available in %s space", k, s)
}

// NewInvalidJointTokenError returns an error indicating a malformed joint name.
func NewInvalidJointTokenError(token string) error {
	return errors.Errorf("invalid joint token %q: must be \"q\" followed by a positive integer", token)
}

// NewInvalidLimitsError returns an error indicating a limits argument of the wrong size.
func NewInvalidLimitsError(n int) error {
	return errors.Errorf("limits must be exactly a (min, max) pair, got %d values", n)
}

// NewInvertedLimitsError returns an error indicating a limit pair with min above max.
func NewInvertedLimitsError(min, max float64) error {
	return errors.Errorf("limit minimum %v exceeds maximum %v", min, max)
}

// NewZeroSpanLimitsError returns an error indicating a prismatic joint whose limit
// interval has zero width.
func NewZeroSpanLimitsError(position, jointIndex int) error {
	return errors.Errorf("prismatic joint q%d at position %d has a zero-width limit interval", jointIndex, position)
}

// NewIncompatibleSequenceError returns an error indicating an attempt to combine
// sequences of different dimensionality.
func NewIncompatibleSequenceError(a, b spatialmath.Space) error {
	return errors.Errorf("cannot combine a %s sequence with a %s sequence", a, b)
}

// NewJointNotFoundError returns an error indicating no element is driven by the joint.
func NewJointNotFoundError(jointIndex int) error {
	return errors.Errorf("no element driven by joint q%d", jointIndex)
}

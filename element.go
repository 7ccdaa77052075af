package ets

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Limit represents the bounds of motion of a joint-driven element.
type Limit struct {
	Min float64
	Max float64
}

var jointTokenRegexp = regexp.MustCompile(`^q([1-9][0-9]*)$`)

// Element is a single elementary transform: an axis/kind tag plus a role. The role is
// either a fixed constant offset or a joint addressing one slot of a configuration
// vector. Elements are immutable once constructed.
type Element struct {
	kind   Kind
	joint  bool
	index  int // 1-based joint index, 0 for constants
	value  float64
	limits *Limit
}

// NewConstElement constructs a fixed element contributing a constant offset of value
// along (or about) the kind's axis.
func NewConstElement(kind Kind, value float64) *Element {
	return &Element{kind: kind, value: value}
}

// NewJointElement constructs a joint-driven element. The token must match "q" followed
// by a positive integer, which becomes the element's 1-based slot in the configuration
// vector. Limits, when given, must be exactly a (min, max) pair.
func NewJointElement(kind Kind, token string, limits ...float64) (*Element, error) {
	m := jointTokenRegexp.FindStringSubmatch(token)
	if m == nil {
		return nil, NewInvalidJointTokenError(token)
	}
	index, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, NewInvalidJointTokenError(token)
	}
	lim, err := newLimit(limits)
	if err != nil {
		return nil, err
	}
	return &Element{kind: kind, joint: true, index: index, limits: lim}, nil
}

// New constructs an element from a kind token and a value argument. A numeric argument
// produces a constant; a joint token string such as "q2" produces a joint. Limits are
// only valid for joints.
func New(kindToken string, arg interface{}, limits ...float64) (*Element, error) {
	kind, err := ParseKind(kindToken)
	if err != nil {
		return nil, err
	}
	switch v := arg.(type) {
	case float64:
		return newConstChecked(kind, v, limits)
	case int:
		return newConstChecked(kind, float64(v), limits)
	case string:
		return NewJointElement(kind, v, limits...)
	default:
		return nil, errors.Errorf("unsupported transform value of type %T", arg)
	}
}

// Translation constructs a translation element along the named axis ("x", "y" or "z").
func Translation(axisToken string, arg interface{}, limits ...float64) (*Element, error) {
	return New("t"+axisToken, arg, limits...)
}

// Rotation constructs a rotation element about the named axis ("x", "y" or "z").
func Rotation(axisToken string, arg interface{}, limits ...float64) (*Element, error) {
	return New("r"+axisToken, arg, limits...)
}

func newConstChecked(kind Kind, value float64, limits []float64) (*Element, error) {
	if len(limits) != 0 {
		return nil, errors.New("limits are only valid for joint elements")
	}
	return NewConstElement(kind, value), nil
}

func newLimit(limits []float64) (*Limit, error) {
	switch len(limits) {
	case 0:
		return nil, nil
	case 2:
		if limits[0] > limits[1] {
			return nil, NewInvertedLimitsError(limits[0], limits[1])
		}
		return &Limit{Min: limits[0], Max: limits[1]}, nil
	default:
		return nil, NewInvalidLimitsError(len(limits))
	}
}

// Kind returns the element's axis/kind tag.
func (e *Element) Kind() Kind {
	return e.kind
}

// IsJoint reports whether the element is driven by the configuration vector.
func (e *Element) IsJoint() bool {
	return e.joint
}

// Prismatic reports whether the element is a translation joint.
func (e *Element) Prismatic() bool {
	return e.joint && !e.kind.Rotational()
}

// Revolute reports whether the element is a rotation joint.
func (e *Element) Revolute() bool {
	return e.joint && e.kind.Rotational()
}

// Index returns the 1-based configuration-vector slot of a joint element, or 0 for
// constants.
func (e *Element) Index() int {
	return e.index
}

// Value returns the stored offset of a constant element, or 0 for joints.
func (e *Element) Value() float64 {
	return e.value
}

// Limits returns a copy of the element's motion limits, or nil if none were set.
func (e *Element) Limits() *Limit {
	if e.limits == nil {
		return nil
	}
	lim := *e.limits
	return &lim
}

// Clone returns a value-wise copy sharing no mutable state with the original.
func (e *Element) Clone() *Element {
	out := *e
	out.limits = e.Limits()
	return &out
}

func (e *Element) String() string {
	if e.joint {
		return e.kind.String() + "(q" + strconv.Itoa(e.index) + ")"
	}
	return e.kind.String() + "(" + strconv.FormatFloat(e.value, 'g', -1, 64) + ")"
}

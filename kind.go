// Package ets models a serial kinematic chain as an ordered sequence of elementary
// rigid-body transforms: single-axis translations and rotations that are either fixed
// constants or driven by one entry of an external configuration vector.
package ets

import (
	"strings"

	"go.viam.com/ets/spatialmath"
)

// Kind tags an elementary transform with its motion axis and type.
type Kind uint8

const (
	// KindTx is a translation along the x axis.
	KindTx Kind = iota
	// KindTy is a translation along the y axis.
	KindTy
	// KindTz is a translation along the z axis.
	KindTz
	// KindRx is a rotation about the x axis.
	KindRx
	// KindRy is a rotation about the y axis.
	KindRy
	// KindRz is a rotation about the z axis.
	KindRz
)

var kindNames = map[Kind]string{
	KindTx: "Tx",
	KindTy: "Ty",
	KindTz: "Tz",
	KindRx: "Rx",
	KindRy: "Ry",
	KindRz: "Rz",
}

// ParseKind maps a case-insensitive token such as "Tx" or "rz" to its Kind.
func ParseKind(token string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(token, name) {
			return k, nil
		}
	}
	return 0, NewInvalidTransformKindError(token)
}

func (k Kind) String() string {
	return kindNames[k]
}

// Rotational reports whether the kind is a single-axis rotation.
func (k Kind) Rotational() bool {
	return k >= KindRx
}

// Axis returns the principal axis the kind moves along or rotates about.
func (k Kind) Axis() spatialmath.Axis {
	switch k {
	case KindTx, KindRx:
		return spatialmath.AxisX
	case KindTy, KindRy:
		return spatialmath.AxisY
	default:
		return spatialmath.AxisZ
	}
}

// InSpace reports whether the kind exists in the given space. The planar set is
// {Tx, Ty, Rz}; all six kinds exist spatially.
func (k Kind) InSpace(s spatialmath.Space) bool {
	if s == spatialmath.Spatial {
		return true
	}
	return k == KindTx || k == KindTy || k == KindRz
}

// Package scalar defines the arithmetic contract pose composition needs from its
// scalar type, so the same traversal can run over plain floats or over a symbolic
// expression type handed off to an external algebra layer.
package scalar

import "math"

// Number is the operation set required of an evaluation scalar. Lift must not depend
// on its receiver, so the zero value of S is a valid lifter for literals.
type Number[S any] interface {
	Add(S) S
	Mul(S) S
	Neg() S
	Sin() S
	Cos() S
	Lift(float64) S
}

// Float adapts float64 to the Number contract.
type Float float64

// Add returns f + o.
func (f Float) Add(o Float) Float { return f + o }

// Mul returns f * o.
func (f Float) Mul(o Float) Float { return f * o }

// Neg returns -f.
func (f Float) Neg() Float { return -f }

// Sin returns sin(f).
func (f Float) Sin() Float { return Float(math.Sin(float64(f))) }

// Cos returns cos(f).
func (f Float) Cos() Float { return Float(math.Cos(float64(f))) }

// Lift wraps a literal.
func (Float) Lift(v float64) Float { return Float(v) }

// Floats wraps a configuration vector for generic evaluation.
func Floats(q []float64) []Float {
	out := make([]Float, len(q))
	for i, v := range q {
		out[i] = Float(v)
	}
	return out
}

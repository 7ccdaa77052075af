package ets

import (
	"go.uber.org/multierr"

	"go.viam.com/ets/spatialmath"
)

// Sequence is an ordered base-to-tip chain of elements sharing one working space.
// Sequences are immutable after construction; Combine and Append always return fresh
// sequences and never mutate their operands.
type Sequence struct {
	space    spatialmath.Space
	elements []*Element
}

// NewSequence constructs a sequence in the given space. Every element's kind must
// exist in that space (planar chains only admit Tx, Ty and Rz).
func NewSequence(space spatialmath.Space, elements ...*Element) (*Sequence, error) {
	cloned := make([]*Element, 0, len(elements))
	for _, e := range elements {
		if !e.Kind().InSpace(space) {
			return nil, NewKindSpaceError(e.Kind(), space)
		}
		cloned = append(cloned, e.Clone())
	}
	return &Sequence{space: space, elements: cloned}, nil
}

// Combine returns the chain a followed by b. Both sequences must share a space.
func Combine(a, b *Sequence) (*Sequence, error) {
	if a.space != b.space {
		return nil, NewIncompatibleSequenceError(a.space, b.space)
	}
	return NewSequence(a.space, append(a.Elements(), b.elements...)...)
}

// Append returns a new sequence with the given elements added at the tip.
func (s *Sequence) Append(elements ...*Element) (*Sequence, error) {
	return NewSequence(s.space, append(s.Elements(), elements...)...)
}

// Space returns the working dimensionality of the chain.
func (s *Sequence) Space() spatialmath.Space {
	return s.space
}

// Len returns the number of elements in the chain.
func (s *Sequence) Len() int {
	return len(s.elements)
}

// At returns the element at 0-based position i.
func (s *Sequence) At(i int) *Element {
	return s.elements[i]
}

// Elements returns a copy of the ordered element list.
func (s *Sequence) Elements() []*Element {
	out := make([]*Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// NJoints returns the maximum joint index present in the chain, or 0 if the chain has
// no joints. Indices may be sparse, so this can exceed the joint-element count.
func (s *Sequence) NJoints() int {
	max := 0
	for _, e := range s.elements {
		if e.IsJoint() && e.Index() > max {
			max = e.Index()
		}
	}
	return max
}

// Structure returns one character per joint element in chain order, 'R' for revolute
// and 'P' for prismatic.
func (s *Sequence) Structure() string {
	out := make([]byte, 0, len(s.elements))
	for _, e := range s.elements {
		switch {
		case e.Revolute():
			out = append(out, 'R')
		case e.Prismatic():
			out = append(out, 'P')
		}
	}
	return string(out)
}

// JointPositions returns the 0-based chain positions of every element driven by the
// given joint index.
func (s *Sequence) JointPositions(jointIndex int) ([]int, error) {
	var positions []int
	for i, e := range s.elements {
		if e.IsJoint() && e.Index() == jointIndex {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return nil, NewJointNotFoundError(jointIndex)
	}
	return positions, nil
}

// Validate checks invariants that construction deliberately leaves unchecked. A
// prismatic joint whose limit interval has zero width is rejected, since consumers
// that scale motion by the interval would divide by zero.
func (s *Sequence) Validate() error {
	var err error
	for i, e := range s.elements {
		lim := e.Limits()
		if e.Prismatic() && lim != nil && lim.Min == lim.Max {
			multierr.AppendInto(&err, NewZeroSpanLimitsError(i, e.Index()))
		}
	}
	return err
}

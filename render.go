package ets

import (
	"strconv"
	"strings"
)

// String renders the chain deterministically in order, joints as Kind(qN) and
// constants as Kind(value), space-separated.
func (s *Sequence) String() string {
	parts := make([]string, 0, len(s.elements))
	for _, e := range s.elements {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, " ")
}

// SymbolicString renders the chain like String but labels constants L1, L2, ... in
// encounter order, for display alongside symbolic expressions.
func (s *Sequence) SymbolicString() string {
	parts := make([]string, 0, len(s.elements))
	nconst := 0
	for _, e := range s.elements {
		if e.IsJoint() {
			parts = append(parts, e.String())
			continue
		}
		nconst++
		parts = append(parts, e.Kind().String()+"(L"+strconv.Itoa(nconst)+")")
	}
	return strings.Join(parts, " ")
}

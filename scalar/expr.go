package scalar

import (
	"strconv"
	"strings"
)

// Expr is a symbolic scalar: an expression tree over variables and literals. It
// satisfies Number but performs no simplification; rewriting is left to whatever
// algebra system consumes the rendered expressions. The zero value behaves as the
// literal 0.
type Expr struct {
	node exprNode
}

// Var returns a symbolic variable.
func Var(name string) Expr {
	return Expr{varNode(name)}
}

// Lit returns a symbolic literal.
func Lit(v float64) Expr {
	return Expr{litNode(v)}
}

// Vars returns n variables named prefix1 through prefixN, matching joint-token order.
func Vars(prefix string, n int) []Expr {
	out := make([]Expr, n)
	for i := range out {
		out[i] = Var(prefix + strconv.Itoa(i+1))
	}
	return out
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr { return Expr{binNode{'+', e.n(), o.n()}} }

// Mul returns e * o.
func (e Expr) Mul(o Expr) Expr { return Expr{binNode{'*', e.n(), o.n()}} }

// Neg returns -e.
func (e Expr) Neg() Expr { return Expr{negNode{e.n()}} }

// Sin returns sin(e).
func (e Expr) Sin() Expr { return Expr{callNode{"sin", e.n()}} }

// Cos returns cos(e).
func (e Expr) Cos() Expr { return Expr{callNode{"cos", e.n()}} }

// Lift wraps a literal.
func (Expr) Lift(v float64) Expr { return Lit(v) }

// String renders the expression deterministically, fully parenthesized.
func (e Expr) String() string {
	var sb strings.Builder
	e.n().render(&sb)
	return sb.String()
}

func (e Expr) n() exprNode {
	if e.node == nil {
		return litNode(0)
	}
	return e.node
}

type exprNode interface {
	render(sb *strings.Builder)
}

type litNode float64

func (n litNode) render(sb *strings.Builder) {
	sb.WriteString(strconv.FormatFloat(float64(n), 'g', -1, 64))
}

type varNode string

func (n varNode) render(sb *strings.Builder) {
	sb.WriteString(string(n))
}

type binNode struct {
	op          byte
	left, right exprNode
}

func (n binNode) render(sb *strings.Builder) {
	sb.WriteByte('(')
	n.left.render(sb)
	sb.WriteByte(' ')
	sb.WriteByte(n.op)
	sb.WriteByte(' ')
	n.right.render(sb)
	sb.WriteByte(')')
}

type negNode struct {
	arg exprNode
}

func (n negNode) render(sb *strings.Builder) {
	sb.WriteByte('-')
	n.arg.render(sb)
}

type callNode struct {
	fn  string
	arg exprNode
}

func (n callNode) render(sb *strings.Builder) {
	sb.WriteString(n.fn)
	sb.WriteByte('(')
	n.arg.render(sb)
	sb.WriteByte(')')
}

package scalar

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestFloat(t *testing.T) {
	test.That(t, float64(Float(2).Add(3)), test.ShouldEqual, 5.0)
	test.That(t, float64(Float(2).Mul(3)), test.ShouldEqual, 6.0)
	test.That(t, float64(Float(2).Neg()), test.ShouldEqual, -2.0)
	test.That(t, float64(Float(math.Pi/2).Sin()), test.ShouldAlmostEqual, 1)
	test.That(t, float64(Float(0).Cos()), test.ShouldEqual, 1.0)
	test.That(t, float64(Float(0).Lift(7)), test.ShouldEqual, 7.0)
	test.That(t, Floats([]float64{1, 2}), test.ShouldResemble, []Float{1, 2})
}

func TestExprRendering(t *testing.T) {
	test.That(t, Var("q1").String(), test.ShouldEqual, "q1")
	test.That(t, Lit(1.5).String(), test.ShouldEqual, "1.5")
	test.That(t, Var("q1").Sin().Mul(Lit(2)).String(), test.ShouldEqual, "(sin(q1) * 2)")
	test.That(t, Var("q1").Cos().Add(Var("q2")).String(), test.ShouldEqual, "(cos(q1) + q2)")
	test.That(t, Var("q1").Neg().String(), test.ShouldEqual, "-q1")
	test.That(t, Var("q1").Sin().Neg().String(), test.ShouldEqual, "-sin(q1)")
}

func TestExprZeroValue(t *testing.T) {
	var zero Expr
	test.That(t, zero.String(), test.ShouldEqual, "0")
	test.That(t, zero.Add(Var("x")).String(), test.ShouldEqual, "(0 + x)")
	test.That(t, zero.Lift(3).String(), test.ShouldEqual, "3")
}

func TestVars(t *testing.T) {
	vars := Vars("q", 3)
	test.That(t, vars, test.ShouldHaveLength, 3)
	test.That(t, vars[0].String(), test.ShouldEqual, "q1")
	test.That(t, vars[2].String(), test.ShouldEqual, "q3")
}

func TestNoSimplification(t *testing.T) {
	// Rewriting is left to an external algebra layer; the tree stays literal.
	test.That(t, Lit(0).Add(Lit(0)).String(), test.ShouldEqual, "(0 + 0)")
	test.That(t, Lit(1).Mul(Var("x")).String(), test.ShouldEqual, "(1 * x)")
}

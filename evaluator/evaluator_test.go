package evaluator_test

import (
	"testing"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/evaluator"
	"github.com/njchilds90/gocas/number"
)

func TestSimplify_ConstantFold(t *testing.T) {
	e := ast.Add(ast.IntExpr(2), ast.IntExpr(3))
	got := evaluator.Simplify(e)
	if !got.IsNumber() {
		t.Fatalf("expected a NUMBER leaf, got %+v", got)
	}
	n, _ := got.Root.Num()
	if !number.NumericEquals(n, number.FromInt(5)) {
		t.Errorf("expected 5, got %s", n)
	}
}

func TestSimplify_IdentityRules(t *testing.T) {
	x := ast.SymbolExpr("x")
	cases := []*ast.Expression{
		ast.Add(ast.Clone(x), ast.IntExpr(0)),
		ast.Mul(ast.Clone(x), ast.IntExpr(1)),
		ast.Div(ast.Clone(x), ast.IntExpr(1)),
	}
	for _, c := range cases {
		got := evaluator.Simplify(c)
		if !got.IsSymbol() {
			t.Errorf("expected bare symbol x, got %+v", got)
		}
	}
}

func TestSimplify_MultiplyByZero(t *testing.T) {
	got := evaluator.Simplify(ast.Mul(ast.SymbolExpr("x"), ast.IntExpr(0)))
	n, ok := got.Root.Num()
	if !ok || !n.IsZero() {
		t.Errorf("expected 0, got %+v", got)
	}
}

func TestSimplify_SurdReduction_PerfectSquare(t *testing.T) {
	got := evaluator.Simplify(ast.Sqrt(ast.IntExpr(4)))
	n, ok := got.Root.Num()
	if !ok || !number.NumericEquals(n, number.FromInt(2)) {
		t.Errorf("expected 2, got %+v", got)
	}
}

func TestSimplify_SurdReduction_FactorsOutSquare(t *testing.T) {
	// sqrt(12) = 2*sqrt(3)
	got := evaluator.Simplify(ast.Sqrt(ast.IntExpr(12)))
	if !got.IsOperator('*') {
		t.Fatalf("expected a product, got %+v", got)
	}
	coeff, _ := got.Left.Root.Num()
	if !number.NumericEquals(coeff, number.FromInt(2)) {
		t.Errorf("expected outside factor 2, got %s", coeff)
	}
	if !got.Right.IsGrouping("sqrt") {
		t.Errorf("expected remaining sqrt(3), got %+v", got.Right)
	}
}

func TestSimplify_SurdReduction_NegativeYieldsI(t *testing.T) {
	got := evaluator.Simplify(ast.Sqrt(ast.IntExpr(-4)))
	if !got.IsOperator('*') {
		t.Fatalf("expected i*2, got %+v", got)
	}
	name, ok := got.Left.SymbolName()
	if !ok || name != "i" {
		t.Errorf("expected leading i factor, got %+v", got.Left)
	}
}

func TestSimplify_RationalizeDenominator(t *testing.T) {
	// 1/sqrt(2) -> sqrt(2)/2
	got := evaluator.Simplify(ast.Div(ast.IntExpr(1), ast.Sqrt(ast.IntExpr(2))))
	if !got.IsOperator('/') {
		t.Fatalf("expected a fraction, got %+v", got)
	}
	if !got.Left.IsGrouping("sqrt") {
		t.Errorf("expected sqrt in numerator, got %+v", got.Left)
	}
	denom, _ := got.Right.Root.Num()
	if !number.NumericEquals(denom, number.FromInt(2)) {
		t.Errorf("expected denominator 2, got %s", denom)
	}
}

func TestSimplify_TrigExactness_SinPiOverSix(t *testing.T) {
	arg := ast.Div(ast.NumberExpr(number.Pi), ast.IntExpr(6))
	got := evaluator.Simplify(ast.Sin(arg))
	n, ok := got.Root.Num()
	if !ok || !number.NumericEquals(n, number.MustRat(1, 2)) {
		t.Errorf("expected sin(pi/6) = 1/2, got %+v", got)
	}
}

func TestSimplify_TrigExactness_CosPi(t *testing.T) {
	got := evaluator.Simplify(ast.Cos(ast.NumberExpr(number.Pi)))
	n, ok := got.Root.Num()
	if !ok || !number.NumericEquals(n, number.FromInt(-1)) {
		t.Errorf("expected cos(pi) = -1, got %+v", got)
	}
}

func TestSimplify_TrigExactness_TanAtRightAngleIsInfinity(t *testing.T) {
	arg := ast.Div(ast.NumberExpr(number.Pi), ast.IntExpr(2))
	got := evaluator.Simplify(ast.Tan(arg))
	n, ok := got.Root.Num()
	if !ok || n.Kind() != number.Real {
		t.Fatalf("expected REAL infinity, got %+v", got)
	}
}

func TestDifferentiate_PowerRule(t *testing.T) {
	// d/dx x^2 = 2*x
	x := ast.SymbolExpr("x")
	got := evaluator.Differentiate(ast.PowExpr(x, ast.IntExpr(2)), "x")
	if !got.IsOperator('*') {
		t.Fatalf("expected a product, got %+v", got)
	}
}

func TestDifferentiate_ConstantIsZero(t *testing.T) {
	got := evaluator.Differentiate(ast.IntExpr(5), "x")
	n, ok := got.Root.Num()
	if !ok || !n.IsZero() {
		t.Errorf("expected 0, got %+v", got)
	}
}

func TestDifferentiate_SinChainRule(t *testing.T) {
	// d/dx sin(x) = cos(x)
	got := evaluator.Differentiate(ast.Sin(ast.SymbolExpr("x")), "x")
	if !got.IsGrouping("cos") {
		t.Errorf("expected cos(x), got %+v", got)
	}
}

func TestDifferentiate_ProductRule(t *testing.T) {
	// d/dx (x*x) should simplify toward 2*x
	x := ast.SymbolExpr("x")
	got := evaluator.Differentiate(ast.Mul(x, ast.Clone(x)), "x")
	if got.IsNumber() {
		t.Fatalf("unexpectedly folded to a constant: %+v", got)
	}
}

func TestPatternRules_CustomRuleSet(t *testing.T) {
	a := ast.Placeholder("a")
	rule := evaluator.RewriteRule{
		Pattern:     ast.Mul(ast.Clone(a), ast.Clone(a)),
		Replacement: ast.PowExpr(ast.Clone(a), ast.IntExpr(2)),
	}
	ev := evaluator.New([]evaluator.RewriteRule{rule})
	x := ast.SymbolExpr("x")
	got := ev.Simplify(ast.Mul(x, ast.Clone(x)))
	if !got.IsOperator('^') {
		t.Errorf("expected x^2, got %+v", got)
	}
}

package parser_test

import (
	"testing"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/parser"
)

func TestParse_OperatorPrecedence(t *testing.T) {
	e, err := parser.ParseString("2+3*4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsOperator('+') {
		t.Fatalf("expected top-level +, got %+v", e)
	}
	if !e.Right.IsOperator('*') {
		t.Errorf("expected 3*4 grouped on the right, got %+v", e.Right)
	}
}

func TestParse_RightAssociativePower(t *testing.T) {
	// 2^3^2 = 2^(3^2)
	e, err := parser.ParseString("2^3^2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsOperator('^') || !e.Right.IsOperator('^') {
		t.Fatalf("expected right-associative grouping, got %+v", e)
	}
}

func TestParse_ImplicitMultiplication_NumberSymbol(t *testing.T) {
	e, err := parser.ParseString("2x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ast.Mul(ast.IntExpr(2), ast.SymbolExpr("x"))
	if !ast.StructurallyEqual(e, want) {
		t.Errorf("expected 2*x, got %+v", e)
	}
}

func TestParse_ImplicitMultiplication_ParenParen(t *testing.T) {
	e, err := parser.ParseString("(x+1)(x-1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsOperator('*') {
		t.Fatalf("expected an implicit product, got %+v", e)
	}
}

func TestParse_UnaryMinusBindsBelowPower(t *testing.T) {
	// -2^2 = -(2^2), not (-2)^2
	e, err := parser.ParseString("-2^2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsUnaryMinus() {
		t.Fatalf("expected a top-level unary minus, got %+v", e)
	}
	if !e.Right.IsOperator('^') {
		t.Errorf("expected the power to bind first, got %+v", e.Right)
	}
}

func TestParse_UnaryMinusBindsAboveMultiply(t *testing.T) {
	// -2*3 = (-2)*3
	e, err := parser.ParseString("-2*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsOperator('*') {
		t.Fatalf("expected a top-level product, got %+v", e)
	}
	if !e.Left.IsUnaryMinus() {
		t.Errorf("expected the left factor to be -2, got %+v", e.Left)
	}
}

func TestParse_SqrtGrouping(t *testing.T) {
	e, err := parser.ParseString("sqrt(2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsGrouping("sqrt") {
		t.Fatalf("expected sqrt grouping, got %+v", e)
	}
}

func TestParse_SqrtWrongArgCountErrors(t *testing.T) {
	if _, err := parser.ParseString("sqrt(1,2)"); err == nil {
		t.Errorf("expected an error for sqrt with 2 arguments")
	}
}

func TestParse_DdSpine(t *testing.T) {
	e, err := parser.ParseString("dd(x^2,x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spine := ast.Spine(e)
	if len(spine) != 2 {
		t.Fatalf("expected 2 spine entries, got %d", len(spine))
	}
	if !spine[0].IsOperator('^') {
		t.Errorf("expected x^2 as first spine entry, got %+v", spine[0])
	}
	name, ok := spine[1].SymbolName()
	if !ok || name != "x" {
		t.Errorf("expected x as second spine entry, got %+v", spine[1])
	}
}

func TestParse_IntegrateRequiresFourArgs(t *testing.T) {
	if _, err := parser.ParseString("integrate(x,x)"); err == nil {
		t.Errorf("expected an error for integrate with only 2 arguments")
	}
}

func TestParse_UnterminatedParenErrors(t *testing.T) {
	if _, err := parser.ParseString("(1+2"); err == nil {
		t.Errorf("expected an error for an unterminated parenthesis")
	}
}

func TestParse_TrailingTokensError(t *testing.T) {
	if _, err := parser.ParseString("1 2 3"); err != nil {
		// "1 2 3" fully implicit-multiplies to 1*2*3, which is valid;
		// assert instead on genuinely dangling input.
		t.Fatalf("unexpected error for implicit chain: %v", err)
	}
	if _, err := parser.ParseString("1)"); err == nil {
		t.Errorf("expected an error for a stray closing paren")
	}
}

func TestParse_EagerDiffComputesDerivative(t *testing.T) {
	e, err := parser.ParseStringWithOptions("dd(x^2,x)", parser.Options{EagerDiff: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsOperator('*') {
		t.Fatalf("expected 2*x, got %+v", e)
	}
}

func TestParse_LazyDdStaysSymbolic(t *testing.T) {
	e, err := parser.ParseString("dd(x^2,x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsGrouping("dd") {
		t.Fatalf("expected a symbolic dd node, got %+v", e)
	}
}

func TestParse_EagerIntegrateComputesNumber(t *testing.T) {
	e, err := parser.ParseStringWithOptions("integrate(x^2,x,0,1)", parser.Options{EagerIntegrate: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := e.Root.Num()
	if !ok {
		t.Fatalf("expected a numeric result, got %+v", e)
	}
	if got := n.ToDouble(); got < 0.333 || got > 0.334 {
		t.Errorf("expected approximately 1/3, got %v", got)
	}
}

func TestParse_RootsBuildsResultSet(t *testing.T) {
	e, err := parser.ParseString("roots(x^2-5x+6,x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spine := ast.Spine(e)
	if len(spine) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(spine))
	}
	r1, _ := spine[0].Root.Num()
	r2, _ := spine[1].Root.Num()
	if !number.NumericEquals(number.Add(r1, r2), number.FromInt(5)) {
		t.Errorf("expected the roots to sum to 5, got %v and %v", r1, r2)
	}
}

func TestParse_FactorSplitsLinearFactors(t *testing.T) {
	e, err := parser.ParseString("factor(x^2-5x+6,x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spine := ast.Spine(e)
	if len(spine) != 2 {
		t.Fatalf("expected 2 linear factors, got %d", len(spine))
	}
}

func TestParse_DdNonSymbolVariableErrors(t *testing.T) {
	if _, err := parser.ParseString("dd(x^2,2)"); err == nil {
		t.Errorf("expected an error for a non-symbol differentiation variable")
	}
}

func TestParse_NumberLeafCarriesValue(t *testing.T) {
	e, err := parser.ParseString("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := e.Root.Num()
	if !ok || !number.NumericEquals(n, number.FromInt(42)) {
		t.Errorf("expected 42, got %+v", e)
	}
}

package render_test

import (
	"testing"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/render"
)

func TestRender_PlainInteger(t *testing.T) {
	if got := render.Render(ast.IntExpr(5)); got != "5" {
		t.Errorf("expected 5, got %s", got)
	}
}

func TestRender_Rational(t *testing.T) {
	got := render.Render(ast.NumberExpr(number.MustRat(1, 2)))
	if got != "\\frac{1}{2}" {
		t.Errorf("expected \\frac{1}{2}, got %s", got)
	}
}

func TestRender_NegativeRational(t *testing.T) {
	got := render.Render(ast.NumberExpr(number.MustRat(-1, 2)))
	if got != "-\\frac{1}{2}" {
		t.Errorf("expected -\\frac{1}{2}, got %s", got)
	}
}

func TestRender_Pi(t *testing.T) {
	if got := render.Render(ast.NumberExpr(number.Pi)); got != "\\pi" {
		t.Errorf("expected \\pi, got %s", got)
	}
}

func TestRender_Tau(t *testing.T) {
	// Resolved open question: tau renders as \tau, not 2\pi.
	if got := render.Render(ast.NumberExpr(number.Tau)); got != "\\tau" {
		t.Errorf("expected \\tau, got %s", got)
	}
}

func TestRender_CoefficientAdjacency(t *testing.T) {
	e := ast.Mul(ast.IntExpr(3), ast.SymbolExpr("x"))
	if got := render.Render(e); got != "3x" {
		t.Errorf("expected 3x, got %s", got)
	}
}

func TestRender_ProductOfSymbolsUsesCdot(t *testing.T) {
	e := ast.Mul(ast.SymbolExpr("x"), ast.SymbolExpr("y"))
	if got := render.Render(e); got != "x \\cdot y" {
		t.Errorf("expected x \\cdot y, got %s", got)
	}
}

func TestRender_Fraction(t *testing.T) {
	e := ast.Div(ast.SymbolExpr("x"), ast.IntExpr(2))
	if got := render.Render(e); got != "\\frac{x}{2}" {
		t.Errorf("expected \\frac{x}{2}, got %s", got)
	}
}

func TestRender_PowerNeedsBaseParens(t *testing.T) {
	base := ast.Add(ast.SymbolExpr("x"), ast.IntExpr(1))
	e := ast.PowExpr(base, ast.IntExpr(2))
	got := render.Render(e)
	want := "\\left(x + 1\\right)^{2}"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRender_Sqrt(t *testing.T) {
	e := ast.Sqrt(ast.IntExpr(2))
	if got := render.Render(e); got != "\\sqrt{2}" {
		t.Errorf("expected \\sqrt{2}, got %s", got)
	}
}

func TestRender_TrigFunction(t *testing.T) {
	e := ast.Sin(ast.SymbolExpr("x"))
	if got := render.Render(e); got != "\\sin\\left(x\\right)" {
		t.Errorf("expected \\sin\\left(x\\right), got %s", got)
	}
}

func TestRender_SumInsideProductGetsParens(t *testing.T) {
	e := ast.Mul(ast.IntExpr(2), ast.Add(ast.SymbolExpr("x"), ast.IntExpr(1)))
	got := render.Render(e)
	want := "2\\left(x + 1\\right)"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

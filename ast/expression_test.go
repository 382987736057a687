package ast_test

import (
	"testing"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/token"
)

func numLeaf(n int64) *ast.Expression {
	return ast.New(token.New(token.NUMBER, number.FromInt(n)))
}

func symLeaf(name string) *ast.Expression {
	return ast.New(token.New(token.SYMBOL, name))
}

func TestClone_DeepCopiesTree(t *testing.T) {
	original := ast.NewBinary(token.New(token.OPERATOR, byte('+')), numLeaf(1), symLeaf("x"))
	clone := ast.Clone(original)
	if clone == original {
		t.Fatalf("clone returned the same pointer")
	}
	if clone.Left == original.Left || clone.Right == original.Right {
		t.Errorf("clone shares child pointers with original")
	}
	if !ast.StructurallyEqual(original, clone) {
		t.Errorf("clone is not structurally equal to original")
	}
}

func TestClone_Nil(t *testing.T) {
	if ast.Clone(nil) != nil {
		t.Errorf("cloning nil should return nil")
	}
}

func TestStructurallyEqual_DifferentShapesNotEqual(t *testing.T) {
	a := ast.NewBinary(token.New(token.OPERATOR, byte('+')), numLeaf(1), numLeaf(2))
	b := ast.New(token.New(token.OPERATOR, byte('+')))
	if ast.StructurallyEqual(a, b) {
		t.Errorf("trees of different shape should not be equal")
	}
}

func TestIsUnaryMinus(t *testing.T) {
	unary := ast.NewUnary(token.New(token.OPERATOR, byte('-')), numLeaf(5))
	if !unary.IsUnaryMinus() {
		t.Errorf("expected unary minus")
	}
	binary := ast.NewBinary(token.New(token.OPERATOR, byte('-')), numLeaf(1), numLeaf(2))
	if binary.IsUnaryMinus() {
		t.Errorf("binary minus misclassified as unary")
	}
}

func TestSpineAndBuildSpine_RoundTrip(t *testing.T) {
	payloads := []*ast.Expression{numLeaf(1), numLeaf(2), numLeaf(3)}
	head := ast.BuildSpine("param", payloads)
	got := ast.Spine(head)
	if len(got) != 3 {
		t.Fatalf("expected 3 spine entries, got %d", len(got))
	}
	for i, p := range got {
		if !ast.StructurallyEqual(p, payloads[i]) {
			t.Errorf("spine entry %d mismatch", i)
		}
	}
}

func TestIsGroupingAndIsOperator(t *testing.T) {
	sqrtNode := ast.NewUnary(token.New(token.GROUPING, "sqrt"), numLeaf(2))
	if !sqrtNode.IsGrouping("sqrt") {
		t.Errorf("expected sqrt grouping")
	}
	if sqrtNode.IsGrouping("sin") {
		t.Errorf("should not match a different grouping name")
	}
	plus := ast.NewBinary(token.New(token.OPERATOR, byte('+')), numLeaf(1), numLeaf(2))
	if !plus.IsOperator('+') {
		t.Errorf("expected + operator")
	}
}

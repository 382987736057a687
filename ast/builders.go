package ast

import (
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/token"
)

// NumberExpr builds a NUMBER leaf.
func NumberExpr(n number.Number) *Expression {
	return New(token.New(token.NUMBER, n))
}

// IntExpr builds a NUMBER leaf from a machine integer.
func IntExpr(v int64) *Expression {
	return NumberExpr(number.FromInt(v))
}

// SymbolExpr builds a SYMBOL leaf.
func SymbolExpr(name string) *Expression {
	return New(token.New(token.SYMBOL, name))
}

// BinaryOp builds an OPERATOR node with both children populated.
func BinaryOp(op byte, left, right *Expression) *Expression {
	return NewBinary(token.New(token.OPERATOR, op), left, right)
}

// Neg builds a unary `-` node.
func Neg(operand *Expression) *Expression {
	return NewUnary(token.New(token.OPERATOR, byte('-')), operand)
}

// Add, Sub, Mul, Div, PowExpr build the five arithmetic operator nodes.
func Add(l, r *Expression) *Expression { return BinaryOp('+', l, r) }
func Sub(l, r *Expression) *Expression { return BinaryOp('-', l, r) }
func Mul(l, r *Expression) *Expression { return BinaryOp('*', l, r) }
func Div(l, r *Expression) *Expression { return BinaryOp('/', l, r) }
func PowExpr(base, exp *Expression) *Expression { return BinaryOp('^', base, exp) }

// Grouping builds a single-argument GROUPING node (sqrt, sin, cos, ...).
func Grouping(name string, arg *Expression) *Expression {
	return NewUnary(token.New(token.GROUPING, name), arg)
}

func Sqrt(arg *Expression) *Expression { return Grouping("sqrt", arg) }
func Sin(arg *Expression) *Expression  { return Grouping("sin", arg) }
func Cos(arg *Expression) *Expression  { return Grouping("cos", arg) }
func Tan(arg *Expression) *Expression  { return Grouping("tan", arg) }
func Ln(arg *Expression) *Expression   { return Grouping("ln", arg) }

// Placeholder builds a pattern-engine placeholder leaf: a SYMBOL whose
// name is prefixed with '$', matching any subexpression during rewrite
// pattern matching (see package evaluator).
func Placeholder(name string) *Expression {
	return SymbolExpr("$" + name)
}

// PlaceholderName returns the bare name and true if e is a placeholder
// leaf built by Placeholder.
func PlaceholderName(e *Expression) (string, bool) {
	if e == nil || e.Root.Type != token.SYMBOL {
		return "", false
	}
	s, ok := e.Root.Str()
	if !ok || len(s) == 0 || s[0] != '$' {
		return "", false
	}
	return s[1:], true
}

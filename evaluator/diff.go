package evaluator

import (
	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/token"
)

// Differentiate computes d/d(varName) of e via structural recursion
// (sum, product, quotient, power and chain rules, plus sin/cos/tan/
// sqrt/ln), then cleans up the `*1`/`^1` noise the raw derivative
// accumulates and hands the result through the default rewrite loop.
func Differentiate(e *ast.Expression, varName string) *ast.Expression {
	raw := differentiate(e, varName)
	return NewDefault().Simplify(cleanup(raw))
}

func differentiate(e *ast.Expression, v string) *ast.Expression {
	if e == nil {
		return ast.IntExpr(0)
	}
	switch e.Root.Type {
	case token.NUMBER:
		return ast.IntExpr(0)
	case token.SYMBOL:
		if name, _ := e.SymbolName(); name == v {
			return ast.IntExpr(1)
		}
		return ast.IntExpr(0)
	case token.PARENTHESES:
		return differentiate(e.Right, v)
	case token.OPERATOR:
		return differentiateOperator(e, v)
	case token.GROUPING:
		return differentiateGrouping(e, v)
	}
	return ast.IntExpr(0)
}

func differentiateOperator(e *ast.Expression, v string) *ast.Expression {
	switch e.Root.Char() {
	case '+':
		if e.Left == nil {
			return differentiate(e.Right, v)
		}
		return ast.Add(differentiate(e.Left, v), differentiate(e.Right, v))
	case '-':
		if e.Left == nil {
			return ast.Neg(differentiate(e.Right, v))
		}
		return ast.Sub(differentiate(e.Left, v), differentiate(e.Right, v))
	case '*':
		u, w := e.Left, e.Right
		return ast.Add(
			ast.Mul(differentiate(u, v), ast.Clone(w)),
			ast.Mul(ast.Clone(u), differentiate(w, v)),
		)
	case '/':
		u, w := e.Left, e.Right
		numerator := ast.Sub(
			ast.Mul(differentiate(u, v), ast.Clone(w)),
			ast.Mul(ast.Clone(u), differentiate(w, v)),
		)
		denominator := ast.Mul(ast.Clone(w), ast.Clone(w))
		return ast.Div(numerator, denominator)
	case '^':
		base, exp := e.Left, e.Right
		if exp.IsNumber() {
			n, _ := exp.Root.Num()
			newExp := number.Subtract(n, number.One)
			return ast.Mul(
				ast.Mul(ast.NumberExpr(n), ast.PowExpr(ast.Clone(base), ast.NumberExpr(newExp))),
				differentiate(base, v),
			)
		}
		if base.IsNumber() {
			return ast.Mul(ast.Mul(ast.Clone(e), ast.Ln(ast.Clone(base))), differentiate(exp, v))
		}
		term1 := ast.Mul(differentiate(exp, v), ast.Ln(ast.Clone(base)))
		term2 := ast.Mul(ast.Clone(exp), ast.Div(differentiate(base, v), ast.Clone(base)))
		return ast.Mul(ast.Clone(e), ast.Add(term1, term2))
	}
	return ast.IntExpr(0)
}

func differentiateGrouping(e *ast.Expression, v string) *ast.Expression {
	name, _ := e.Root.Str()
	inner := e.Right
	innerPrime := differentiate(inner, v)
	switch name {
	case "sin":
		return ast.Mul(ast.Cos(ast.Clone(inner)), innerPrime)
	case "cos":
		return ast.Mul(ast.Neg(ast.Sin(ast.Clone(inner))), innerPrime)
	case "tan":
		sec2 := ast.Div(ast.IntExpr(1), ast.PowExpr(ast.Cos(ast.Clone(inner)), ast.IntExpr(2)))
		return ast.Mul(sec2, innerPrime)
	case "sqrt":
		denom := ast.Mul(ast.IntExpr(2), ast.Sqrt(ast.Clone(inner)))
		return ast.Div(innerPrime, denom)
	case "ln":
		return ast.Div(innerPrime, ast.Clone(inner))
	}
	return ast.IntExpr(0)
}

// cleanup strips the `*1`, `1*`, and `^1` noise raw differentiation
// produces, bottom-up.
func cleanup(e *ast.Expression) *ast.Expression {
	if e == nil {
		return nil
	}
	left := cleanup(e.Left)
	right := cleanup(e.Right)
	node := &ast.Expression{Root: e.Root, Left: left, Right: right}
	if node.IsOperator('*') {
		if right != nil && right.IsNumber() {
			if n, _ := right.Root.Num(); n.IsOne() {
				return left
			}
		}
		if left != nil && left.IsNumber() {
			if n, _ := left.Root.Num(); n.IsOne() {
				return right
			}
		}
	}
	if node.IsOperator('^') && right != nil && right.IsNumber() {
		if n, _ := right.Root.Num(); n.IsOne() {
			return left
		}
	}
	return node
}

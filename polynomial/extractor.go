package polynomial

import (
	"github.com/pkg/errors"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/token"
)

// ErrNotPolynomial is wrapped by Extract when the expression tree is
// not expressible as a single-variable polynomial (e.g. the variable
// appears inside a transcendental grouping, a denominator, or a
// non-integer exponent).
var ErrNotPolynomial = errors.New("polynomial: expression is not a polynomial in the given variable")

// Extract walks e and builds its dense coefficient vector with respect
// to varName. Supported shapes: +, -, * (at least one side free of
// varName, or both sides polynomial), / by a nonzero constant divisor,
// unary + and -, parentheses, ^ with a non-negative INT NUMBER exponent,
// exact NUMBER leaves, and the varName SYMBOL leaf itself. Anything else
// fails with ErrNotPolynomial.
func Extract(e *ast.Expression, varName string) (*Polynomial, error) {
	return extract(e, varName)
}

func extract(e *ast.Expression, varName string) (*Polynomial, error) {
	if e == nil {
		return Zero(), nil
	}
	switch e.Root.Type {
	case token.NUMBER:
		n, _ := e.Root.Num()
		if !n.IsExact() {
			return nil, errors.Wrap(ErrNotPolynomial, "inexact coefficient")
		}
		return New([]number.Number{n}), nil
	case token.SYMBOL:
		name, _ := e.SymbolName()
		if name == varName {
			return New([]number.Number{number.Zero, number.One}), nil
		}
		return nil, errors.Wrapf(ErrNotPolynomial, "free variable %q", name)
	case token.PARENTHESES:
		return extract(e.Right, varName)
	case token.OPERATOR:
		return extractOperator(e, varName)
	}
	return nil, ErrNotPolynomial
}

func extractOperator(e *ast.Expression, varName string) (*Polynomial, error) {
	switch e.Root.Char() {
	case '+':
		if e.Left == nil {
			return extract(e.Right, varName)
		}
		l, err := extract(e.Left, varName)
		if err != nil {
			return nil, err
		}
		r, err := extract(e.Right, varName)
		if err != nil {
			return nil, err
		}
		return Add(l, r), nil
	case '-':
		if e.Left == nil {
			r, err := extract(e.Right, varName)
			if err != nil {
				return nil, err
			}
			return Scale(r, number.FromInt(-1)), nil
		}
		l, err := extract(e.Left, varName)
		if err != nil {
			return nil, err
		}
		r, err := extract(e.Right, varName)
		if err != nil {
			return nil, err
		}
		return Subtract(l, r), nil
	case '*':
		l, err := extract(e.Left, varName)
		if err != nil {
			return nil, err
		}
		r, err := extract(e.Right, varName)
		if err != nil {
			return nil, err
		}
		return Multiply(l, r), nil
	case '/':
		// Division is only polynomial-preserving when the divisor is
		// free of varName (a constant-coefficient scale).
		r, err := extract(e.Right, varName)
		if err != nil {
			return nil, err
		}
		if !r.IsConstant() {
			return nil, errors.Wrap(ErrNotPolynomial, "division by a non-constant")
		}
		if r.Coeffs[0].IsZero() {
			return nil, errors.Wrap(ErrNotPolynomial, "division by zero")
		}
		l, err := extract(e.Left, varName)
		if err != nil {
			return nil, err
		}
		return Scale(l, number.Divide(number.One, r.Coeffs[0])), nil
	case '^':
		if !e.Right.IsNumber() {
			return nil, errors.Wrap(ErrNotPolynomial, "non-numeric exponent")
		}
		n, _ := e.Right.Root.Num()
		if n.Kind() != number.Int || n.IsNegative() {
			return nil, errors.Wrap(ErrNotPolynomial, "exponent must be a non-negative integer")
		}
		base, err := extract(e.Left, varName)
		if err != nil {
			return nil, err
		}
		return Pow(base, int(n.Int64())), nil
	}
	return nil, ErrNotPolynomial
}

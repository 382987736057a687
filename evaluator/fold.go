package evaluator

import (
	"math"
	"math/big"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/token"
)

// tryConstantFold folds an OPERATOR node whose two children are both
// NUMBER leaves. `^` only folds when the exponent is an exact integer
// (or either side is REAL, in which case it folds in float64).
func tryConstantFold(e *ast.Expression) (*ast.Expression, bool) {
	if e.Root.Type != token.OPERATOR || e.Left == nil || e.Right == nil {
		return nil, false
	}
	if !e.Left.IsNumber() || !e.Right.IsNumber() {
		return nil, false
	}
	a, _ := e.Left.Root.Num()
	b, _ := e.Right.Root.Num()
	switch e.Root.Char() {
	case '+':
		return ast.NumberExpr(number.Add(a, b)), true
	case '-':
		return ast.NumberExpr(number.Subtract(a, b)), true
	case '*':
		return ast.NumberExpr(number.Multiply(a, b)), true
	case '/':
		if b.IsZero() {
			return nil, false
		}
		return ast.NumberExpr(number.Divide(a, b)), true
	case '^':
		if a.Kind() == number.Real || b.Kind() == number.Real {
			return ast.NumberExpr(number.FromFloat(math.Pow(a.ToDouble(), b.ToDouble()))), true
		}
		if !b.IsInteger() {
			return nil, false
		}
		expBig, ok := b.AsBigInt()
		if !ok || !expBig.IsInt64() {
			return nil, false
		}
		return ast.NumberExpr(number.Pow(a, expBig.Int64())), true
	case '%':
		if a.IsInteger() && b.IsInteger() && !b.IsZero() {
			ai, _ := a.AsBigInt()
			bi, _ := b.AsBigInt()
			r := new(big.Int).Mod(ai, bi)
			return ast.NumberExpr(number.FromBigInt(r)), true
		}
	}
	return nil, false
}

// unwrapParens strips a single layer of PARENTHESES wrapping, used by
// the rationalization and fraction-reduction rules so they see through
// user-written grouping.
func unwrapParens(e *ast.Expression) *ast.Expression {
	if e != nil && e.Root.Type == token.PARENTHESES {
		return unwrapParens(e.Right)
	}
	return e
}

// tryRationalize clears an irrational (sqrt) factor from a denominator
// by multiplying numerator and denominator by that factor.
func (ev *Evaluator) tryRationalize(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsOperator('/') {
		return nil, false
	}
	denom := unwrapParens(e.Right)
	sqrtFactor, rest, found := findSqrtFactor(denom)
	if !found {
		return nil, false
	}
	radicand := sqrtFactor.Right
	newNumerator := ast.Mul(ast.Clone(e.Left), ast.Clone(sqrtFactor))
	var newDenominator *ast.Expression
	if rest == nil {
		newDenominator = ast.Clone(radicand)
	} else {
		newDenominator = ast.Mul(ast.Clone(rest), ast.Clone(radicand))
	}
	return ast.Div(newNumerator, newDenominator), true
}

// findSqrtFactor looks for a sqrt(...) grouping directly in denom, or as
// one multiplicand of a top-level `*`, returning the sqrt node and the
// other factor (nil if denom was itself the sqrt node).
func findSqrtFactor(denom *ast.Expression) (sqrtNode, other *ast.Expression, found bool) {
	if denom.IsGrouping("sqrt") {
		return denom, nil, true
	}
	if denom.IsOperator('*') {
		if denom.Left.IsGrouping("sqrt") {
			return denom.Left, denom.Right, true
		}
		if denom.Right.IsGrouping("sqrt") {
			return denom.Right, denom.Left, true
		}
	}
	return nil, nil, false
}

// tryReduceFraction reduces (c*x)/d to (c/d)*x when the numeric
// coefficient c divides evenly by the numeric denominator d.
func tryReduceFraction(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsOperator('/') || e.Right == nil || !e.Right.IsNumber() {
		return nil, false
	}
	denom, _ := e.Right.Root.Num()
	if denom.IsZero() || !denom.IsExact() {
		return nil, false
	}
	num := e.Left
	if num == nil || !num.IsOperator('*') {
		return nil, false
	}
	var coeff, other *ast.Expression
	switch {
	case num.Left.IsNumber():
		coeff, other = num.Left, num.Right
	case num.Right.IsNumber():
		coeff, other = num.Right, num.Left
	default:
		return nil, false
	}
	cn, _ := coeff.Root.Num()
	if !cn.IsExact() || !cn.IsInteger() || !denom.IsInteger() {
		return nil, false
	}
	cnBig, ok1 := cn.AsBigInt()
	dnBig, ok2 := denom.AsBigInt()
	if !ok1 || !ok2 || dnBig.Sign() == 0 {
		return nil, false
	}
	if new(big.Int).Mod(cnBig, dnBig).Sign() != 0 {
		return nil, false
	}
	q := new(big.Int).Div(cnBig, dnBig)
	if q.Cmp(bigOne) == 0 {
		return ast.Clone(other), true
	}
	return ast.Mul(ast.NumberExpr(number.FromBigInt(q)), ast.Clone(other)), true
}

// tryMergeNumericFactors folds c*(d*x) into (c*d)*x.
func tryMergeNumericFactors(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsOperator('*') {
		return nil, false
	}
	var coeff, productNode *ast.Expression
	switch {
	case e.Left.IsNumber() && e.Right.IsOperator('*'):
		coeff, productNode = e.Left, e.Right
	case e.Right.IsNumber() && e.Left.IsOperator('*'):
		coeff, productNode = e.Right, e.Left
	default:
		return nil, false
	}
	var innerCoeff, rest *ast.Expression
	switch {
	case productNode.Left.IsNumber():
		innerCoeff, rest = productNode.Left, productNode.Right
	case productNode.Right.IsNumber():
		innerCoeff, rest = productNode.Right, productNode.Left
	default:
		return nil, false
	}
	a, _ := coeff.Root.Num()
	b, _ := innerCoeff.Root.Num()
	merged := number.Multiply(a, b)
	return ast.Mul(ast.NumberExpr(merged), ast.Clone(rest)), true
}

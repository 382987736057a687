package evaluator

import (
	"math/big"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
)

var bigOne = big.NewInt(1)

// trySurdReduction rewrites sqrt(n) for an exact NUMBER n into its
// reduced radical form: an outside integer/rational factor times
// sqrt(remaining squarefree part), or a plain number when n is a
// perfect square. Negative radicands introduce a literal `i` factor.
func (ev *Evaluator) trySurdReduction(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsGrouping("sqrt") || e.Right == nil || !e.Right.IsNumber() {
		return nil, false
	}
	n, _ := e.Right.Root.Num()
	if !n.IsExact() {
		return nil, false
	}
	var result *ast.Expression
	switch n.Kind() {
	case number.Int, number.BigInt:
		v, _ := n.AsBigInt()
		result = buildSqrtFromBigInt(v)
	case number.Rational, number.BigRational:
		result = buildSqrtFromRational(n)
	default:
		return nil, false
	}
	if ast.StructurallyEqual(result, e) {
		return nil, false
	}
	return result, true
}

func buildSqrtFromBigInt(v *big.Int) *ast.Expression {
	if v.Sign() == 0 {
		return ast.IntExpr(0)
	}
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	outside, inside := factorSquareBig(abs)
	var result *ast.Expression
	if inside.Cmp(bigOne) == 0 {
		result = ast.NumberExpr(number.FromBigInt(outside))
	} else {
		sqrtPart := ast.Sqrt(ast.NumberExpr(number.FromBigInt(inside)))
		if outside.Cmp(bigOne) == 0 {
			result = sqrtPart
		} else {
			result = ast.Mul(ast.NumberExpr(number.FromBigInt(outside)), sqrtPart)
		}
	}
	if neg {
		result = ast.Mul(ast.SymbolExpr("i"), result)
	}
	return result
}

func buildSqrtFromRational(n number.Number) *ast.Expression {
	num, den := number.Parts(n)
	neg := num.Sign() < 0
	absNum := new(big.Int).Abs(num)
	radicand := new(big.Int).Mul(absNum, den)
	outside, inside := factorSquareBig(radicand)
	coeff := number.FromBigRat(outside, den)

	var result *ast.Expression
	if inside.Cmp(bigOne) == 0 {
		result = ast.NumberExpr(coeff)
	} else {
		sqrtPart := ast.Sqrt(ast.NumberExpr(number.FromBigInt(inside)))
		if coeff.IsOne() {
			result = sqrtPart
		} else {
			cn, cd := number.Parts(coeff)
			if cd.Cmp(bigOne) == 0 {
				result = ast.Mul(ast.NumberExpr(number.FromBigInt(cn)), sqrtPart)
			} else {
				numerator := ast.Mul(ast.NumberExpr(number.FromBigInt(cn)), sqrtPart)
				result = ast.Div(numerator, ast.NumberExpr(number.FromBigInt(cd)))
			}
		}
	}
	if neg {
		result = ast.Mul(ast.SymbolExpr("i"), result)
	}
	return result
}

// factorSquareBig splits v (v >= 0) into outside*outside*inside == v with
// inside squarefree, by trial division.
func factorSquareBig(v *big.Int) (outside, inside *big.Int) {
	outside = big.NewInt(1)
	inside = new(big.Int).Set(v)
	p := big.NewInt(2)
	psq := new(big.Int)
	for {
		psq.Mul(p, p)
		if psq.Cmp(inside) > 0 {
			break
		}
		for {
			q := new(big.Int)
			r := new(big.Int)
			q.QuoRem(inside, psq, r)
			if r.Sign() != 0 {
				break
			}
			inside = q
			outside.Mul(outside, p)
		}
		p.Add(p, bigOne)
	}
	return outside, inside
}

// tryNegateNumber folds unary `-` applied directly to a NUMBER leaf.
func tryNegateNumber(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsUnaryMinus() || !e.Right.IsNumber() {
		return nil, false
	}
	n, _ := e.Right.Root.Num()
	return ast.NumberExpr(number.Negate(n)), true
}

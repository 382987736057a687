package polynomial

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/evaluator"
	"github.com/njchilds90/gocas/number"
)

// ErrNoRoots is returned when solving a nonzero constant polynomial,
// which has no roots.
var ErrNoRoots = errors.New("polynomial: nonzero constant has no roots")

// Solve finds every root of p it can, preferring exact rational roots
// (found via the rational root theorem and synthetic-division
// deflation) and building the quadratic/biquadratic formula
// symbolically so evaluator.Simplify's surd reduction resolves perfect
// squares, irrational radicands, and negative radicands (as an `i`
// factor) rather than degrading them to a float. Whatever degree-3+
// remainder isn't biquadratic falls back to numeric bisection.
func Solve(p *Polynomial) ([]*ast.Expression, error) {
	var roots []*ast.Expression
	cur := p
	for cur.Degree() > 2 {
		if root, ok := findRationalRoot(cur); ok {
			roots = append(roots, simplifyRoot(ast.NumberExpr(root)))
			q, _ := cur.DivideByLinearFactor(root)
			cur = q
			continue
		}
		if cur.Degree() == 4 && isBiquadratic(cur) {
			return append(roots, solveBiquadratic(cur)...), nil
		}
		root, err := bisectionRoot(cur)
		if err != nil {
			return roots, err
		}
		roots = append(roots, simplifyRoot(ast.NumberExpr(root)))
		q, _ := cur.DivideByLinearFactor(root)
		cur = q
	}
	switch cur.Degree() {
	case 0:
		if !cur.Coeffs[0].IsZero() {
			return roots, ErrNoRoots
		}
		return roots, nil
	case 1:
		roots = append(roots, simplifyRoot(solveLinear(cur)))
	case 2:
		roots = append(roots, solveQuadratic(cur)...)
	}
	return roots, nil
}

func simplifyRoot(e *ast.Expression) *ast.Expression {
	return evaluator.Simplify(e)
}

func solveLinear(p *Polynomial) *ast.Expression {
	a := p.Coefficient(1)
	b := p.Coefficient(0)
	return ast.Div(ast.Neg(ast.NumberExpr(b)), ast.NumberExpr(a))
}

// solveQuadratic builds the quadratic formula as an expression tree —
// (-b ± sqrt(b^2 - 4ac)) / 2a — and lets evaluator.Simplify's constant
// folding and surd reduction resolve it: a perfect-square discriminant
// collapses to a rational root, a positive non-square discriminant to
// a reduced surd, and a negative discriminant to an `i`-carrying term.
func solveQuadratic(p *Polynomial) []*ast.Expression {
	a := p.Coefficient(2)
	b := p.Coefficient(1)
	c := p.Coefficient(0)

	negB := ast.Neg(ast.NumberExpr(b))
	bSquared := ast.Mul(ast.NumberExpr(b), ast.NumberExpr(b))
	fourAC := ast.Mul(ast.NumberExpr(number.FromInt(4)), ast.Mul(ast.NumberExpr(a), ast.NumberExpr(c)))
	discriminant := ast.Sub(bSquared, fourAC)
	sqrtDiscriminant := ast.Sqrt(discriminant)
	denominator := ast.Mul(ast.NumberExpr(number.FromInt(2)), ast.NumberExpr(a))

	positive := ast.Div(ast.Add(ast.Clone(negB), ast.Clone(sqrtDiscriminant)), ast.Clone(denominator))
	negative := ast.Div(ast.Sub(negB, sqrtDiscriminant), denominator)

	return []*ast.Expression{simplifyRoot(positive), simplifyRoot(negative)}
}

func isBiquadratic(p *Polynomial) bool {
	return p.Degree() == 4 && p.Coefficient(1).IsZero() && p.Coefficient(3).IsZero()
}

// solveBiquadratic solves a*x^4 + b*x^2 + c = 0 by substituting u = x^2
// and taking ±sqrt of every root of the resulting quadratic in u,
// including negative ones — those surd-reduce to an `i` term rather
// than being dropped.
func solveBiquadratic(p *Polynomial) []*ast.Expression {
	u := New([]number.Number{p.Coefficient(0), p.Coefficient(2), p.Coefficient(4)})
	uRoots := solveQuadratic(u)
	var roots []*ast.Expression
	for _, uRoot := range uRoots {
		sqrtExpr := ast.Sqrt(ast.Clone(uRoot))
		roots = append(roots, simplifyRoot(ast.Clone(sqrtExpr)), simplifyRoot(ast.Neg(sqrtExpr)))
	}
	return roots
}

// findRationalRoot searches candidates p/q, p dividing the constant
// term and q dividing the leading coefficient, per the rational root
// theorem. Requires integer (or integer-after-scaling) coefficients.
func findRationalRoot(p *Polynomial) (number.Number, bool) {
	ip, ok := toIntegerPolynomial(p)
	if !ok {
		return number.Number{}, false
	}
	constTerm, _ := ip.Coeffs[0].AsBigInt()
	leadTerm, _ := ip.Coeffs[len(ip.Coeffs)-1].AsBigInt()
	if constTerm.Sign() == 0 {
		return number.Zero, true
	}
	if !constTerm.IsInt64() || !leadTerm.IsInt64() {
		return number.Number{}, false
	}
	pDivisors := divisors(new(big.Int).Abs(constTerm))
	qDivisors := divisors(new(big.Int).Abs(leadTerm))
	for _, q := range qDivisors {
		for _, pp := range pDivisors {
			for _, sign := range []int64{1, -1} {
				candNum := new(big.Int).Mul(big.NewInt(sign), pp)
				cand, err := numberRat(candNum, q)
				if err != nil {
					continue
				}
				if ip.Evaluate(cand).IsZero() {
					return cand, true
				}
			}
		}
	}
	return number.Number{}, false
}

func numberRat(num, den *big.Int) (number.Number, error) {
	if num.IsInt64() && den.IsInt64() {
		return number.Rat(num.Int64(), den.Int64())
	}
	return number.FromBigRat(num, den), nil
}

// toIntegerPolynomial scales p by the LCM of its coefficient
// denominators so every coefficient is an exact integer, preserving
// its roots. Fails if any coefficient is inexact.
func toIntegerPolynomial(p *Polynomial) (*Polynomial, bool) {
	lcm := big.NewInt(1)
	for _, c := range p.Coeffs {
		if !c.IsExact() {
			return nil, false
		}
		_, den := number.Parts(c)
		g := new(big.Int).GCD(nil, nil, lcm, den)
		lcm.Mul(lcm, new(big.Int).Div(den, g))
	}
	out := make([]number.Number, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = number.Multiply(c, number.FromBigInt(lcm))
	}
	for _, c := range out {
		if !c.IsInteger() {
			return nil, false
		}
	}
	return New(out), true
}

func divisors(n *big.Int) []*big.Int {
	if n.Sign() == 0 {
		return []*big.Int{big.NewInt(1)}
	}
	var out []*big.Int
	i := big.NewInt(1)
	for i.Cmp(n) <= 0 && new(big.Int).Mul(i, i).Cmp(n) <= 0 {
		if new(big.Int).Mod(n, i).Sign() == 0 {
			out = append(out, new(big.Int).Set(i))
			other := new(big.Int).Div(n, i)
			if other.Cmp(i) != 0 {
				out = append(out, other)
			}
		}
		i.Add(i, big.NewInt(1))
	}
	return out
}

// bisectionRoot scans [-10, 10] in 400 fixed-width samples for a sign
// change and refines it with 60 rounds of bisection, converging once
// the bracket is narrower than 1e-6 — the interval, sample count,
// iteration budget, and tolerance PolynomialSolver.java's
// approximateRoots/bisect use. Used once the rational-root search and
// closed forms are exhausted.
func bisectionRoot(p *Polynomial) (number.Number, error) {
	const scanBound = 10.0
	const samples = 400
	const iterations = 60
	const tolerance = 1e-6
	step := (2 * scanBound) / samples

	prevX := -scanBound
	prevY := p.EvaluateFloat(prevX)
	for x := -scanBound + step; x <= scanBound; x += step {
		y := p.EvaluateFloat(x)
		if y == 0 {
			return number.FromFloat(x), nil
		}
		if (prevY < 0) != (y < 0) {
			lo, hi := prevX, x
			for i := 0; i < iterations; i++ {
				mid := (lo + hi) / 2
				my := p.EvaluateFloat(mid)
				if my == 0 || (hi-lo) < tolerance {
					return number.FromFloat(mid), nil
				}
				if (my < 0) == (prevY < 0) {
					lo, prevY = mid, my
				} else {
					hi = mid
				}
			}
			return number.FromFloat((lo + hi) / 2), nil
		}
		prevX, prevY = x, y
	}
	return number.Number{}, errors.New("polynomial: bisection found no real root in range")
}

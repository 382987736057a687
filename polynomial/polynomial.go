// Package polynomial implements the dense single-variable polynomial
// representation used by the root solver and factorizer: extraction
// from an expression tree, synthetic division, rational-root search,
// closed-form degree 1/2/4 solving, a numeric bisection fallback, and
// iterative linear-factor extraction. Grounded on the original
// Polynomial.java and PolynomialSolver.java.
package polynomial

import (
	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
)

// Polynomial holds coefficients in ascending-degree order: Coeffs[i] is
// the coefficient of x^i. The zero polynomial is represented by a
// single Coeffs[0] == 0 entry; Trim removes trailing (high-degree)
// zero coefficients down to that minimum.
type Polynomial struct {
	Coeffs []number.Number
}

// New builds a Polynomial from ascending-degree coefficients, trimming
// trailing zeros.
func New(coeffs []number.Number) *Polynomial {
	p := &Polynomial{Coeffs: append([]number.Number(nil), coeffs...)}
	p.Trim()
	return p
}

// Zero is the additive identity polynomial.
func Zero() *Polynomial {
	return &Polynomial{Coeffs: []number.Number{number.Zero}}
}

// Trim drops trailing zero coefficients, always leaving at least one
// entry.
func (p *Polynomial) Trim() {
	for len(p.Coeffs) > 1 && p.Coeffs[len(p.Coeffs)-1].IsZero() {
		p.Coeffs = p.Coeffs[:len(p.Coeffs)-1]
	}
	if len(p.Coeffs) == 0 {
		p.Coeffs = []number.Number{number.Zero}
	}
}

// Degree returns the polynomial's degree; the zero polynomial has
// degree -1.
func (p *Polynomial) Degree() int {
	if len(p.Coeffs) == 1 && p.Coeffs[0].IsZero() {
		return -1
	}
	return len(p.Coeffs) - 1
}

// Leading returns the leading (highest-degree) coefficient.
func (p *Polynomial) Leading() number.Number {
	return p.Coeffs[len(p.Coeffs)-1]
}

// Coefficient returns the coefficient of x^i, or 0 if i is out of range.
func (p *Polynomial) Coefficient(i int) number.Number {
	if i < 0 || i >= len(p.Coeffs) {
		return number.Zero
	}
	return p.Coeffs[i]
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.Coeffs) == 1 && p.Coeffs[0].IsZero()
}

// IsConstant reports whether p has degree 0 or is the zero polynomial.
func (p *Polynomial) IsConstant() bool {
	return p.Degree() <= 0
}

func pad(coeffs []number.Number, n int) []number.Number {
	out := make([]number.Number, n)
	copy(out, coeffs)
	for i := len(coeffs); i < n; i++ {
		out[i] = number.Zero
	}
	return out
}

// Add returns p+q.
func Add(p, q *Polynomial) *Polynomial {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	a := pad(p.Coeffs, n)
	b := pad(q.Coeffs, n)
	out := make([]number.Number, n)
	for i := range out {
		out[i] = number.Add(a[i], b[i])
	}
	return New(out)
}

// Subtract returns p-q.
func Subtract(p, q *Polynomial) *Polynomial {
	return Add(p, Scale(q, number.FromInt(-1)))
}

// Scale returns c*p.
func Scale(p *Polynomial, c number.Number) *Polynomial {
	out := make([]number.Number, len(p.Coeffs))
	for i, v := range p.Coeffs {
		out[i] = number.Multiply(v, c)
	}
	return New(out)
}

// Multiply returns p*q via the discrete convolution of coefficients.
func Multiply(p, q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	out := make([]number.Number, p.Degree()+q.Degree()+1)
	for i := range out {
		out[i] = number.Zero
	}
	for i, a := range p.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			out[i+j] = number.Add(out[i+j], number.Multiply(a, b))
		}
	}
	return New(out)
}

// Pow returns p^n for n >= 0, by repeated squaring.
func Pow(p *Polynomial, n int) *Polynomial {
	result := New([]number.Number{number.One})
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = Multiply(result, base)
		}
		n >>= 1
		if n > 0 {
			base = Multiply(base, base)
		}
	}
	return result
}

// Evaluate computes p(x) exactly via Horner's method.
func (p *Polynomial) Evaluate(x number.Number) number.Number {
	acc := number.Zero
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = number.Add(number.Multiply(acc, x), p.Coeffs[i])
	}
	return acc
}

// EvaluateFloat computes p(x) in float64, used by the bisection fallback.
func (p *Polynomial) EvaluateFloat(x float64) float64 {
	acc := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.Coeffs[i].ToDouble()
	}
	return acc
}

// DivideByLinearFactor performs synthetic division of p by (x - root),
// returning the quotient (degree one less than p) and the remainder
// p(root).
func (p *Polynomial) DivideByLinearFactor(root number.Number) (quotient *Polynomial, remainder number.Number) {
	n := len(p.Coeffs)
	out := make([]number.Number, n-1)
	acc := p.Coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		if i < n-1 {
			out[i] = acc
		}
		acc = number.Add(number.Multiply(acc, root), p.Coeffs[i])
	}
	return New(out), acc
}

// ToExpression rebuilds p as an expression tree in varName, term by
// term in descending degree, skipping zero coefficients.
func (p *Polynomial) ToExpression(varName string) *ast.Expression {
	var sum *ast.Expression
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coeffs[i]
		if c.IsZero() && p.Degree() > 0 {
			continue
		}
		neg := c.IsNegative()
		mag := c
		if neg {
			mag = number.Negate(c)
		}
		var term *ast.Expression
		switch {
		case i == 0:
			term = ast.NumberExpr(mag)
		case i == 1:
			term = ast.SymbolExpr(varName)
		default:
			term = ast.PowExpr(ast.SymbolExpr(varName), ast.IntExpr(int64(i)))
		}
		if i > 0 && !number.NumericEquals(mag, number.One) {
			term = ast.Mul(ast.NumberExpr(mag), term)
		}
		switch {
		case sum == nil:
			if neg {
				term = ast.Neg(term)
			}
			sum = term
		case neg:
			sum = ast.Sub(sum, term)
		default:
			sum = ast.Add(sum, term)
		}
	}
	if sum == nil {
		sum = ast.NumberExpr(number.Zero)
	}
	return sum
}

// String renders p in "a0 + a1*x + a2*x^2 + ..." debug form.
func (p *Polynomial) String() string {
	s := ""
	for i, c := range p.Coeffs {
		if i > 0 {
			s += " + "
		}
		s += c.String()
		if i == 1 {
			s += "*x"
		} else if i > 1 {
			s += "*x^" + number.FromInt(int64(i)).String()
		}
	}
	return s
}

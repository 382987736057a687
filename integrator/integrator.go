// Package integrator implements numeric definite integration via
// Simpson's rule, grounded on the original NumericIntegrator.java. The
// original's single-precision (float32) accumulation is a resolved
// defect (SPEC_FULL.md §9): this implementation accumulates in
// float64 throughout.
package integrator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/token"
)

// ErrUnboundSymbol is returned by Evaluate when the expression
// references a symbol absent from the environment.
var ErrUnboundSymbol = errors.New("integrator: unbound symbol")

// minSubintervals is forced even, matching the original's fixed
// resolution; a caller-visible Simpson n=1000.
const minSubintervals = 1000

// Integrate approximates ∫ f(varName) over [lo, hi] via Simpson's rule
// with 1000 (forced even) subintervals.
func Integrate(f *ast.Expression, varName string, lo, hi float64) (float64, error) {
	n := minSubintervals
	h := (hi - lo) / float64(n)
	env := map[string]float64{}

	eval := func(x float64) (float64, error) {
		env[varName] = x
		return Evaluate(f, env)
	}

	sum, err := eval(lo)
	if err != nil {
		return 0, err
	}
	end, err := eval(hi)
	if err != nil {
		return 0, err
	}
	sum += end

	for i := 1; i < n; i++ {
		x := lo + float64(i)*h
		y, err := eval(x)
		if err != nil {
			return 0, err
		}
		if i%2 == 0 {
			sum += 2 * y
		} else {
			sum += 4 * y
		}
	}
	return sum * h / 3, nil
}

// Evaluate computes e's numeric value under env, the floating-point
// environment mapping SYMBOL names to values.
func Evaluate(e *ast.Expression, env map[string]float64) (float64, error) {
	if e == nil {
		return 0, nil
	}
	switch e.Root.Type {
	case token.NUMBER:
		n, _ := e.Root.Num()
		return n.ToDouble(), nil
	case token.SYMBOL:
		name, _ := e.SymbolName()
		v, ok := env[name]
		if !ok {
			return 0, errors.Wrapf(ErrUnboundSymbol, "%q", name)
		}
		return v, nil
	case token.PARENTHESES:
		return Evaluate(e.Right, env)
	case token.OPERATOR:
		return evaluateOperator(e, env)
	case token.GROUPING:
		return evaluateGrouping(e, env)
	}
	return 0, errors.Errorf("integrator: cannot evaluate token type %v numerically", e.Root.Type)
}

func evaluateOperator(e *ast.Expression, env map[string]float64) (float64, error) {
	if e.Left == nil {
		r, err := Evaluate(e.Right, env)
		if err != nil {
			return 0, err
		}
		if e.Root.Char() == '-' {
			return -r, nil
		}
		return r, nil
	}
	l, err := Evaluate(e.Left, env)
	if err != nil {
		return 0, err
	}
	r, err := Evaluate(e.Right, env)
	if err != nil {
		return 0, err
	}
	switch e.Root.Char() {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		return l / r, nil
	case '^':
		return math.Pow(l, r), nil
	case '%':
		return math.Mod(l, r), nil
	}
	return 0, errors.Errorf("integrator: unsupported operator %q", e.Root.Char())
}

func evaluateGrouping(e *ast.Expression, env map[string]float64) (float64, error) {
	name, _ := e.Root.Str()
	arg, err := Evaluate(e.Right, env)
	if err != nil {
		return 0, err
	}
	switch name {
	case "sqrt":
		return math.Sqrt(arg), nil
	case "sin":
		return math.Sin(arg), nil
	case "cos":
		return math.Cos(arg), nil
	case "tan":
		return math.Tan(arg), nil
	case "ln":
		return math.Log(arg), nil
	case "log":
		return math.Log10(arg), nil
	}
	return 0, errors.Errorf("integrator: unsupported grouping %q", name)
}

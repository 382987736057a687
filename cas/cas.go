// Package cas is the top-level façade wrapping the lexer/parser/evaluator/
// polynomial/integrator/render pipeline behind a small set of
// string-in-string-out entry points, grounded on gosymbol.go's top-level
// convenience wrappers (Simplify/String/LaTeX/Diff) but generalized to this
// module's Parser/Evaluator/Polynomial pipeline instead of gosymbol's
// sum-type Expr.
package cas

import (
	"go.uber.org/multierr"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/evaluator"
	"github.com/njchilds90/gocas/integrator"
	"github.com/njchilds90/gocas/parser"
	"github.com/njchilds90/gocas/polynomial"
	"github.com/njchilds90/gocas/render"
)

// Result bundles a computed expression with its rendered TeX form, the
// shape returned by Simplify, Evaluate, Render and Differentiate.
type Result struct {
	Expr *ast.Expression
	TeX  string
}

func toResult(e *ast.Expression) Result {
	return Result{Expr: e, TeX: render.Render(e)}
}

// Parse parses src with dd and integrate left symbolic; roots and factor
// are always computed.
func Parse(src string) (*ast.Expression, error) {
	return parser.ParseString(src)
}

// Simplify parses src and reduces it to a fixed point of the default
// rewrite rules, without evaluating dd/integrate eagerly.
func Simplify(src string) (Result, error) {
	e, err := parser.ParseString(src)
	if err != nil {
		return Result{}, err
	}
	return toResult(evaluator.Simplify(e)), nil
}

// Evaluate parses src with eager differentiation and integration enabled,
// then simplifies the result. This is the "do everything" entry point:
// dd(...)/integrate(...) collapse to their computed value, and the rest of
// the tree is reduced to a fixed point.
func Evaluate(src string) (Result, error) {
	e, err := parser.ParseStringWithOptions(src, parser.Options{EagerDiff: true, EagerIntegrate: true})
	if err != nil {
		return Result{}, err
	}
	return toResult(evaluator.Simplify(e)), nil
}

// Render parses src and renders it to TeX without simplifying.
func Render(src string) (Result, error) {
	e, err := parser.ParseString(src)
	if err != nil {
		return Result{}, err
	}
	return toResult(e), nil
}

// Differentiate parses src, differentiates it with respect to varName, and
// returns the simplified derivative.
func Differentiate(src, varName string) (Result, error) {
	e, err := parser.ParseString(src)
	if err != nil {
		return Result{}, err
	}
	return toResult(evaluator.Differentiate(e, varName)), nil
}

// Roots parses src, extracts a polynomial in varName, and solves it,
// returning each root as a simplified expression (a rational number, a
// reduced surd, or an `i`-carrying term for a negative radicand).
func Roots(src, varName string) ([]*ast.Expression, error) {
	e, err := parser.ParseString(src)
	if err != nil {
		return nil, err
	}
	p, err := polynomial.Extract(e, varName)
	if err != nil {
		return nil, err
	}
	return polynomial.Solve(p)
}

// Factor parses src, extracts a polynomial in varName, and factors it into
// linear factors plus whatever irreducible remainder is left.
func Factor(src, varName string) (factors []*polynomial.Polynomial, remainder *polynomial.Polynomial, err error) {
	e, err := parser.ParseString(src)
	if err != nil {
		return nil, nil, err
	}
	p, err := polynomial.Extract(e, varName)
	if err != nil {
		return nil, nil, err
	}
	return polynomial.Factor(p)
}

// Integrate parses src and numerically integrates it over [lo, hi] via
// Simpson's rule.
func Integrate(src, varName string, lo, hi float64) (float64, error) {
	e, err := parser.ParseString(src)
	if err != nil {
		return 0, err
	}
	return integrator.Integrate(e, varName, lo, hi)
}

// BatchEvaluate runs Evaluate over every source in srcs, aggregating any
// individual failures with multierr instead of aborting the whole batch on
// the first error: results[i] is the zero Result wherever srcs[i] failed,
// and the returned error, if non-nil, wraps every per-item failure.
func BatchEvaluate(srcs []string) (results []Result, err error) {
	results = make([]Result, len(srcs))
	for i, src := range srcs {
		r, evalErr := Evaluate(src)
		if evalErr != nil {
			err = multierr.Append(err, evalErr)
			continue
		}
		results[i] = r
	}
	return results, err
}

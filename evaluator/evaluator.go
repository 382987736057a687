// Package evaluator implements the term-rewriting simplifier: a
// fixed-point rewrite loop over an ast.Expression tree that folds
// constants, reduces surds, rationalizes denominators, recognizes trig
// exactness at rational multiples of π, and applies a small
// data-driven pattern engine. Grounded on the original Evaluator.java
// rewrite driver.
package evaluator

import (
	"github.com/njchilds90/gocas/ast"
)

// RewriteRule is a data-driven simplification rule: whenever Pattern
// structurally matches a subexpression (placeholders built with
// ast.Placeholder bind to arbitrary subtrees), the subexpression is
// replaced by Replacement with those bindings substituted in.
type RewriteRule struct {
	Pattern     *ast.Expression
	Replacement *ast.Expression
}

// DefaultRules returns the eight identity-element rules the evaluator
// applies out of the box.
func DefaultRules() []RewriteRule {
	a := ast.Placeholder("a")
	zero := ast.IntExpr(0)
	one := ast.IntExpr(1)
	return []RewriteRule{
		{Pattern: ast.Add(ast.Clone(a), ast.Clone(zero)), Replacement: ast.Clone(a)},
		{Pattern: ast.Add(ast.Clone(zero), ast.Clone(a)), Replacement: ast.Clone(a)},
		{Pattern: ast.Sub(ast.Clone(a), ast.Clone(zero)), Replacement: ast.Clone(a)},
		{Pattern: ast.Mul(ast.Clone(a), ast.Clone(one)), Replacement: ast.Clone(a)},
		{Pattern: ast.Mul(ast.Clone(one), ast.Clone(a)), Replacement: ast.Clone(a)},
		{Pattern: ast.Mul(ast.Clone(a), ast.Clone(zero)), Replacement: ast.Clone(zero)},
		{Pattern: ast.Mul(ast.Clone(zero), ast.Clone(a)), Replacement: ast.Clone(zero)},
		{Pattern: ast.Div(ast.Clone(a), ast.Clone(one)), Replacement: ast.Clone(a)},
	}
}

// Evaluator holds the pattern rules used by Simplify. The zero value is
// not usable; build one with New or NewDefault.
type Evaluator struct {
	rules []RewriteRule
}

// New builds an Evaluator with a caller-supplied rule set, replacing
// (not extending) DefaultRules.
func New(rules []RewriteRule) *Evaluator {
	return &Evaluator{rules: rules}
}

// NewDefault builds an Evaluator with DefaultRules.
func NewDefault() *Evaluator {
	return New(DefaultRules())
}

// Simplify runs the fixed-point rewrite loop on e, returning a new tree.
// e itself is never mutated.
func (ev *Evaluator) Simplify(e *ast.Expression) *ast.Expression {
	cur := ast.Clone(e)
	for {
		next, changed := ev.rewriteNode(cur)
		if !changed {
			return next
		}
		cur = next
	}
}

// Simplify is a package-level convenience wrapping NewDefault().Simplify.
func Simplify(e *ast.Expression) *ast.Expression {
	return NewDefault().Simplify(e)
}

// rewriteNode applies at most one rule to e itself; if none fires, it
// recurses into e's children. Returns the (possibly unchanged) node and
// whether anything changed anywhere in the subtree.
func (ev *Evaluator) rewriteNode(e *ast.Expression) (*ast.Expression, bool) {
	if e == nil {
		return nil, false
	}
	if result, ok := ev.trySurdReduction(e); ok {
		return result, true
	}
	if result, ok := tryNegateNumber(e); ok {
		return result, true
	}
	if result, ok := tryConstantFold(e); ok {
		return result, true
	}
	if result, ok := ev.tryRationalize(e); ok {
		return result, true
	}
	if result, ok := tryReduceFraction(e); ok {
		return result, true
	}
	if result, ok := tryMergeNumericFactors(e); ok {
		return result, true
	}
	if result, ok := ev.tryTrigExactness(e); ok {
		return result, true
	}
	if result, ok := ev.tryPatternRules(e); ok {
		return result, true
	}
	left, lchanged := ev.rewriteNode(e.Left)
	right, rchanged := ev.rewriteNode(e.Right)
	if lchanged || rchanged {
		return &ast.Expression{Root: e.Root, Left: left, Right: right}, true
	}
	return e, false
}

func (ev *Evaluator) tryPatternRules(e *ast.Expression) (*ast.Expression, bool) {
	for _, rule := range ev.rules {
		bindings := map[string]*ast.Expression{}
		if matchPattern(rule.Pattern, e, bindings) {
			return substitutePattern(rule.Replacement, bindings), true
		}
	}
	return nil, false
}

func matchPattern(pattern, expr *ast.Expression, bindings map[string]*ast.Expression) bool {
	if name, ok := ast.PlaceholderName(pattern); ok {
		if existing, bound := bindings[name]; bound {
			return ast.StructurallyEqual(existing, expr)
		}
		if expr == nil {
			return false
		}
		bindings[name] = expr
		return true
	}
	if pattern == nil || expr == nil {
		return pattern == nil && expr == nil
	}
	if pattern.Root.Type != expr.Root.Type || pattern.Root.Value != expr.Root.Value {
		return false
	}
	return matchPattern(pattern.Left, expr.Left, bindings) && matchPattern(pattern.Right, expr.Right, bindings)
}

func substitutePattern(tmpl *ast.Expression, bindings map[string]*ast.Expression) *ast.Expression {
	if tmpl == nil {
		return nil
	}
	if name, ok := ast.PlaceholderName(tmpl); ok {
		return ast.Clone(bindings[name])
	}
	return &ast.Expression{
		Root:  tmpl.Root,
		Left:  substitutePattern(tmpl.Left, bindings),
		Right: substitutePattern(tmpl.Right, bindings),
	}
}

// Package render turns an ast.Expression back into TeX source,
// grounded on the original Renderer.java: operator-format lookup,
// constant recognition, rational-coefficient special-casing, and
// parenthesization-relaxation rules that only insert grouping when the
// child's precedence genuinely requires it.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/token"
)

// functionGroupings lists the GROUPING names rendered as `\name(...)`.
var functionGroupings = []string{"sin", "cos", "tan", "ln", "log"}

// operatorFormat gives the TeX infix spelling for each binary operator
// that isn't special-cased (`/` and implicit-adjacency `*`).
var operatorFormat = map[byte]string{
	'+': " + ",
	'-': " - ",
	'%': " \\bmod ",
}

const (
	precSum    = 1
	precProd   = 2
	precUnary  = 3
	precPow    = 4
	precAtom   = 5
)

// Render renders e as a TeX fragment.
func Render(e *ast.Expression) string {
	return render(e, 0)
}

func render(e *ast.Expression, parentPrec int) string {
	if e == nil {
		return ""
	}
	switch e.Root.Type {
	case token.NUMBER:
		return renderNumber(e)
	case token.SYMBOL:
		name, _ := e.SymbolName()
		return name
	case token.PARENTHESES:
		return render(e.Right, parentPrec)
	case token.OPERATOR:
		return renderOperator(e, parentPrec)
	case token.GROUPING:
		return renderGrouping(e)
	case token.PREFIX:
		return renderPrefix(e)
	}
	return ""
}

func renderNumber(e *ast.Expression) string {
	n, _ := e.Root.Num()
	switch {
	case number.NumericEquals(n, number.Pi):
		return "\\pi"
	case number.NumericEquals(n, number.Tau):
		return "\\tau"
	case number.NumericEquals(n, number.E):
		return "e"
	case number.NumericEquals(n, number.Infinity):
		return "\\infty"
	}
	switch n.Kind() {
	case number.Rational, number.BigRational:
		num, den := number.Parts(n)
		if num.Sign() < 0 {
			return fmt.Sprintf("-\\frac{%s}{%s}", num.Neg(num).String(), den.String())
		}
		return fmt.Sprintf("\\frac{%s}{%s}", num.String(), den.String())
	default:
		return n.String()
	}
}

func renderOperator(e *ast.Expression, parentPrec int) string {
	op := e.Root.Char()
	if op == '-' && e.Left == nil {
		return "-" + render(e.Right, precUnary)
	}
	switch op {
	case '+', '-':
		s := render(e.Left, precSum) + operatorFormat[op] + render(e.Right, precSum+1)
		return wrapPrec(s, precSum, parentPrec)
	case '%':
		s := render(e.Left, precProd) + operatorFormat[op] + render(e.Right, precProd+1)
		return wrapPrec(s, precProd, parentPrec)
	case '*':
		s := renderProduct(e)
		return wrapPrec(s, precProd, parentPrec)
	case '/':
		s := fmt.Sprintf("\\frac{%s}{%s}", render(e.Left, 0), render(e.Right, 0))
		return s // a fraction never needs outer parens; it's visually self-delimiting
	case '^':
		base := render(e.Left, precPow+1)
		exp := render(e.Right, 0)
		s := fmt.Sprintf("%s^{%s}", base, exp)
		return wrapPrec(s, precPow, parentPrec)
	}
	return ""
}

func wrapPrec(s string, myPrec, parentPrec int) string {
	if myPrec >= parentPrec {
		return s
	}
	return "\\left(" + s + "\\right)"
}

// renderProduct writes a leading NUMBER factor directly before the
// other factor (`3x`, `\frac{1}{2}x`); any other pair of factors is
// joined by `\cdot`.
func renderProduct(e *ast.Expression) string {
	left, right := e.Left, e.Right
	if left.IsNumber() {
		return render(left, precProd+1) + render(right, precProd+1)
	}
	return render(left, precProd+1) + " \\cdot " + render(right, precProd+1)
}

// spineGroupings render their wrapper chain's payload list (dd/int/
// roots/factor; see ast.BuildSpine) rather than a single Right-held
// argument.
var spineGroupings = []string{"dd", "int", "integrate", "roots", "factor", "rootsResult", "factorResult"}

func renderGrouping(e *ast.Expression) string {
	name, _ := e.Root.Str()
	if slices.Contains(spineGroupings, name) {
		return renderSpineGrouping(name, ast.Spine(e))
	}
	arg := render(e.Right, 0)
	if name == "sqrt" {
		return "\\sqrt{" + arg + "}"
	}
	if slices.Contains(functionGroupings, name) {
		return "\\" + name + "\\left(" + arg + "\\right)"
	}
	return "\\operatorname{" + name + "}\\left(" + arg + "\\right)"
}

func renderSpineGrouping(name string, args []*ast.Expression) string {
	switch name {
	case "dd":
		expr, v := render(args[0], 0), render(args[1], 0)
		return fmt.Sprintf("\\frac{d}{d%s}\\left(%s\\right)", v, expr)
	case "int", "integrate":
		expr, v := render(args[0], 0), render(args[1], 0)
		if len(args) == 2 {
			return fmt.Sprintf("\\int %s\\, d%s", expr, v)
		}
		lo, hi := render(args[2], 0), render(args[3], 0)
		return fmt.Sprintf("\\int_{%s}^{%s} %s\\, d%s", lo, hi, expr, v)
	case "roots":
		return "\\operatorname{roots}\\left(" + render(args[0], 0) + "\\right)"
	case "factor":
		return "\\operatorname{factor}\\left(" + render(args[0], 0) + "\\right)"
	case "rootsResult", "factorResult":
		return renderResultSet(args)
	}
	return ""
}

// renderResultSet renders a finite solver result as `\left\{r_1, r_2, ...\right\}`.
func renderResultSet(args []*ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a, 0)
	}
	return "\\left\\{" + strings.Join(parts, ", ") + "\\right\\}"
}

func renderPrefix(e *ast.Expression) string {
	info, ok := e.Root.Limit()
	if !ok {
		s, _ := e.Root.Str()
		return s
	}
	return fmt.Sprintf("\\lim_{%s \\to %s}", info.Approaching, info.Target)
}

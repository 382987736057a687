package evaluator

import (
	"math"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/number"
)

// tryTrigExactness recognizes sin/cos/tan of an exact rational multiple
// of π whose denominator (in units of π/12) lands on one of the sixteen
// "nice" angles the closed-form table covers, and rewrites it to a
// surd/rational expression. Otherwise, if the argument is any plain
// NUMBER, it folds to a REAL via the machine trig function.
func (ev *Evaluator) tryTrigExactness(e *ast.Expression) (*ast.Expression, bool) {
	name, ok := trigName(e)
	if !ok {
		return nil, false
	}
	if c, ok := piMultiple(e.Right); ok {
		steps := number.Multiply(c, number.FromInt(12))
		if steps.IsExact() && steps.IsInteger() {
			big, ok := steps.AsBigInt()
			if ok && big.IsInt64() {
				k := big.Int64() % 24
				if k < 0 {
					k += 24
				}
				if result, ok := trigExact(name, k); ok {
					return result, true
				}
			}
		}
	}
	if e.Right != nil && e.Right.IsNumber() {
		n, _ := e.Right.Root.Num()
		v := n.ToDouble()
		var r float64
		switch name {
		case "sin":
			r = math.Sin(v)
		case "cos":
			r = math.Cos(v)
		case "tan":
			r = math.Tan(v)
		}
		return ast.NumberExpr(number.FromFloat(r)), true
	}
	return nil, false
}

func trigName(e *ast.Expression) (string, bool) {
	if e == nil || e.Right == nil {
		return "", false
	}
	for _, name := range []string{"sin", "cos", "tan"} {
		if e.IsGrouping(name) {
			return name, true
		}
	}
	return "", false
}

// piMultiple reports whether e is structurally c*pi (or pi*c, pi/c,
// -pi, ...) for an exact rational c, returning c.
func piMultiple(e *ast.Expression) (number.Number, bool) {
	e = unwrapParens(e)
	if e == nil {
		return number.Number{}, false
	}
	if e.IsNumber() {
		n, _ := e.Root.Num()
		if n.Kind() == number.Real && number.NumericEquals(n, number.Pi) {
			return number.One, true
		}
		return number.Number{}, false
	}
	if e.IsUnaryMinus() {
		if c, ok := piMultiple(e.Right); ok {
			return number.Negate(c), true
		}
		return number.Number{}, false
	}
	if e.IsOperator('*') {
		if c, ok := piMultiple(e.Left); ok && e.Right.IsNumber() {
			n, _ := e.Right.Root.Num()
			if n.IsExact() {
				return number.Multiply(c, n), true
			}
		}
		if c, ok := piMultiple(e.Right); ok && e.Left.IsNumber() {
			n, _ := e.Left.Root.Num()
			if n.IsExact() {
				return number.Multiply(c, n), true
			}
		}
		return number.Number{}, false
	}
	if e.IsOperator('/') {
		if c, ok := piMultiple(e.Left); ok && e.Right.IsNumber() {
			n, _ := e.Right.Root.Num()
			if n.IsExact() && !n.IsZero() {
				return number.Divide(c, n), true
			}
		}
		return number.Number{}, false
	}
	return number.Number{}, false
}

// baseTrig returns sin/cos builders for a first-quadrant "nice" angle
// j steps of π/12 (j in {0,2,3,4,6}, i.e. 0°, 30°, 45°, 60°, 90°).
func baseTrig(j int64) (sinB, cosB func() *ast.Expression, ok bool) {
	half := func() *ast.Expression { return ast.NumberExpr(number.MustRat(1, 2)) }
	sqrt2over2 := func() *ast.Expression {
		return ast.Div(ast.Sqrt(ast.IntExpr(2)), ast.IntExpr(2))
	}
	sqrt3over2 := func() *ast.Expression {
		return ast.Div(ast.Sqrt(ast.IntExpr(3)), ast.IntExpr(2))
	}
	switch j {
	case 0:
		return func() *ast.Expression { return ast.IntExpr(0) },
			func() *ast.Expression { return ast.IntExpr(1) }, true
	case 2:
		return half, sqrt3over2, true
	case 3:
		return sqrt2over2, sqrt2over2, true
	case 4:
		return sqrt3over2, half, true
	case 6:
		return func() *ast.Expression { return ast.IntExpr(1) },
			func() *ast.Expression { return ast.IntExpr(0) }, true
	}
	return nil, nil, false
}

// reduceAngle folds k steps of π/12 (k in [0,24)) into a first-quadrant
// reference index j plus sign flips for sin and cos, using the standard
// quadrant reflection identities.
func reduceAngle(kin int64) (j int64, sSin, sCos int) {
	k := kin % 24
	if k < 0 {
		k += 24
	}
	switch {
	case k < 6:
		return k, 1, 1
	case k < 12:
		return 12 - k, 1, -1
	case k < 18:
		return k - 12, -1, -1
	default:
		return 24 - k, -1, 1
	}
}

func negateExpr(e *ast.Expression) *ast.Expression {
	if e.IsNumber() {
		n, _ := e.Root.Num()
		return ast.NumberExpr(number.Negate(n))
	}
	return ast.Neg(e)
}

func trigExact(name string, k int64) (*ast.Expression, bool) {
	j, sSin, sCos := reduceAngle(k)
	sinB, cosB, ok := baseTrig(j)
	if !ok {
		return nil, false
	}
	sinExpr := sinB()
	if sSin < 0 {
		sinExpr = negateExpr(sinExpr)
	}
	cosExpr := cosB()
	if sCos < 0 {
		cosExpr = negateExpr(cosExpr)
	}
	switch name {
	case "sin":
		return sinExpr, true
	case "cos":
		return cosExpr, true
	case "tan":
		if cosExpr.IsNumber() {
			if cn, _ := cosExpr.Root.Num(); cn.IsZero() {
				return ast.NumberExpr(number.Infinity), true
			}
		}
		return ast.Div(sinExpr, cosExpr), true
	}
	return nil, false
}

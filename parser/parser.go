// Package parser implements a two-phase Pratt (precedence-climbing)
// parser: an implicit-multiplication insertion pass over the flat
// token stream, followed by a recursive-descent binding-power parse
// into an ast.Expression. Grounded on the original Parser.java.
package parser

import (
	"github.com/pkg/errors"

	"github.com/njchilds90/gocas/ast"
	"github.com/njchilds90/gocas/evaluator"
	"github.com/njchilds90/gocas/integrator"
	"github.com/njchilds90/gocas/lexer"
	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/polynomial"
	"github.com/njchilds90/gocas/token"
)

// ParseError reports a syntax error at a token position.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return errors.Errorf("parse error at token %d: %s", e.Pos, e.Message).Error()
}

// bindingPower gives each infix operator's left binding power. `^` is
// the only right-associative operator.
var bindingPower = map[byte]int{
	'+': 10, '-': 10,
	'*': 20, '/': 20, '%': 20,
	'^': 30,
}

const unaryMinusBP = 25

// unaryMinusBP sits above +/-/*//% so `-2*3` parses as `(-2)*3` and
// below `^` so `-2^2` parses as `-(2^2)`.

// Options selects between building a lazy, symbolic node for `dd` and
// `integrate` groupings or computing the result eagerly at parse time.
// `int`, `roots` and `factor` are unaffected: `int` is always symbolic,
// `roots`/`factor` are always computed.
type Options struct {
	EagerDiff      bool
	EagerIntegrate bool
}

// ParseString lexes and parses src in one call, with dd and integrate
// left symbolic; roots and factor are always computed.
func ParseString(src string) (*ast.Expression, error) {
	return ParseStringWithOptions(src, Options{})
}

// ParseStringWithOptions lexes and parses src under opts.
func ParseStringWithOptions(src string, opts Options) (*ast.Expression, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, errors.Wrap(err, "parser")
	}
	return ParseWithOptions(toks, opts)
}

// Parse runs the implicit-multiplication pass and parses the result
// into a single expression tree; trailing tokens are a syntax error.
func Parse(toks []token.Token) (*ast.Expression, error) {
	return ParseWithOptions(toks, Options{})
}

// ParseWithOptions is Parse with explicit eager-evaluation options.
func ParseWithOptions(toks []token.Token, opts Options) (*ast.Expression, error) {
	p := &parser{toks: insertImplicitMultiplication(toks), opts: opts}
	e, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, &ParseError{Pos: p.pos, Message: "unexpected trailing input"}
	}
	return e, nil
}

type parser struct {
	toks []token.Token
	pos  int
	opts Options
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token.Token {
	if p.atEnd() {
		return token.EOFToken
	}
	return p.toks[p.pos]
}

func (p *parser) advance() token.Token {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Pos: p.pos, Message: errors.Errorf(format, args...).Error()}
}

func (p *parser) expectParen(c byte) error {
	if p.atEnd() || p.peek().Type != token.PARENTHESES || p.peek().Char() != c {
		return p.errorf("expected %q", c)
	}
	p.advance()
	return nil
}

// parseExpression is the precedence-climbing loop: parse one nud, then
// keep folding infix operators whose binding power is at least minBP.
func (p *parser) parseExpression(minBP int) (*ast.Expression, error) {
	left, err := p.parseNud()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() {
		tok := p.peek()
		if tok.Type != token.OPERATOR || tok.Char() == ',' {
			break
		}
		op := tok.Char()
		bp, ok := bindingPower[op]
		if !ok || bp < minBP {
			break
		}
		p.advance()
		nextMinBP := bp + 1
		if op == '^' {
			nextMinBP = bp // right-associative
		}
		right, err := p.parseExpression(nextMinBP)
		if err != nil {
			return nil, err
		}
		if op == '/' && left.IsNumber() && right.IsNumber() {
			ln, _ := left.Root.Num()
			rn, _ := right.Root.Num()
			if (ln.Kind() == number.Int || ln.Kind() == number.BigInt) &&
				(rn.Kind() == number.Int || rn.Kind() == number.BigInt) && !rn.IsZero() {
				left = ast.NumberExpr(number.Divide(ln, rn))
				continue
			}
		}
		left = ast.BinaryOp(op, left, right)
	}
	return left, nil
}

func (p *parser) parseNud() (*ast.Expression, error) {
	if p.atEnd() {
		return nil, p.errorf("unexpected end of input")
	}
	tok := p.peek()
	switch tok.Type {
	case token.NUMBER, token.SYMBOL:
		p.advance()
		return ast.New(tok), nil
	case token.OPERATOR:
		if tok.Char() == '-' || tok.Char() == '+' {
			p.advance()
			operand, err := p.parseExpression(unaryMinusBP)
			if err != nil {
				return nil, err
			}
			if tok.Char() == '+' {
				return operand, nil
			}
			return ast.Neg(operand), nil
		}
		return nil, p.errorf("unexpected operator %q", tok.Char())
	case token.PARENTHESES:
		if tok.Char() != '(' {
			return nil, p.errorf("unexpected ')'")
		}
		p.advance()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectParen(')'); err != nil {
			return nil, err
		}
		return ast.NewUnary(token.New(token.PARENTHESES, byte('p')), inner), nil
	case token.GROUPING:
		return p.parseGrouping()
	case token.PREFIX:
		return p.parsePrefix()
	}
	return nil, p.errorf("unexpected token %v", tok.Type)
}

func (p *parser) parsePrefix() (*ast.Expression, error) {
	tok := p.advance()
	operand, err := p.parseExpression(unaryMinusBP)
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(tok, operand), nil
}

// parseGrouping parses `name(arg, arg, ...)` and validates the
// argument count each grouping expects.
func (p *parser) parseGrouping() (*ast.Expression, error) {
	tok := p.advance()
	name, _ := tok.Str()
	if err := p.expectParen('('); err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if err := p.expectParen(')'); err != nil {
		return nil, err
	}

	switch name {
	case "sqrt", "sin", "cos", "tan", "ln", "log":
		if len(args) != 1 {
			return nil, p.errorf("%q takes exactly 1 argument", name)
		}
		return ast.Grouping(name, args[0]), nil
	case "dd":
		if len(args) != 2 {
			return nil, p.errorf("dd takes exactly 2 arguments: dd(expr, var)")
		}
		v, ok := args[1].SymbolName()
		if !ok {
			return nil, p.errorf("dd's second argument must be a variable")
		}
		if p.opts.EagerDiff {
			return evaluator.Differentiate(args[0], v), nil
		}
	case "int":
		if len(args) != 2 && len(args) != 4 {
			return nil, p.errorf("int takes 2 arguments (indefinite) or 4 (definite): int(expr, var[, lo, hi])")
		}
		if _, ok := args[1].SymbolName(); !ok {
			return nil, p.errorf("int's second argument must be a variable")
		}
	case "integrate":
		if len(args) != 4 {
			return nil, p.errorf("integrate takes exactly 4 arguments: integrate(expr, var, lo, hi)")
		}
		v, ok := args[1].SymbolName()
		if !ok {
			return nil, p.errorf("integrate's second argument must be a variable")
		}
		if p.opts.EagerIntegrate {
			lo, err := integrator.Evaluate(args[2], nil)
			if err != nil {
				return nil, p.errorf("integrate: lower bound: %s", err)
			}
			hi, err := integrator.Evaluate(args[3], nil)
			if err != nil {
				return nil, p.errorf("integrate: upper bound: %s", err)
			}
			result, err := integrator.Integrate(args[0], v, lo, hi)
			if err != nil {
				return nil, p.errorf("integrate: %s", err)
			}
			return ast.NumberExpr(number.FromFloat(result)), nil
		}
	case "roots", "factor":
		if len(args) < 1 || len(args) > 2 {
			return nil, p.errorf("%q takes 1 or 2 arguments", name)
		}
		v := "x"
		if len(args) == 2 {
			sym, ok := args[1].SymbolName()
			if !ok {
				return nil, p.errorf("%q's second argument must be a variable", name)
			}
			v = sym
		}
		poly, err := polynomial.Extract(args[0], v)
		if err != nil {
			return nil, p.errorf("%s: %s", name, err)
		}
		if name == "roots" {
			roots, err := polynomial.Solve(poly)
			if err != nil {
				return nil, p.errorf("roots: %s", err)
			}
			return ast.BuildSpine("rootsResult", roots), nil
		}
		factors, remainder, err := polynomial.Factor(poly)
		if err != nil {
			return nil, p.errorf("factor: %s", err)
		}
		exprs := make([]*ast.Expression, 0, len(factors)+1)
		if remainder.IsConstant() && !remainder.Leading().IsOne() {
			exprs = append(exprs, remainder.ToExpression(v))
		}
		for _, f := range factors {
			exprs = append(exprs, f.ToExpression(v))
		}
		if !remainder.IsConstant() {
			exprs = append(exprs, remainder.ToExpression(v))
		}
		return ast.BuildSpine("factorResult", exprs), nil
	}
	return ast.BuildSpine(name, args), nil
}

func (p *parser) parseArgList() ([]*ast.Expression, error) {
	var args []*ast.Expression
	if !p.atEnd() && p.peek().Type == token.PARENTHESES && p.peek().Char() == ')' {
		return args, nil
	}
	for {
		arg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.atEnd() {
			return nil, p.errorf("unterminated argument list")
		}
		if p.peek().Type == token.OPERATOR && p.peek().Char() == ',' {
			p.advance()
			continue
		}
		break
	}
	return args, nil
}

// endsValue/startsValue/insertImplicitMultiplication implement the
// first parse phase: `2x`, `2(x+1)`, `x(x+1)`, `2 sqrt(2)` and
// `(x+1)(x-1)` all get a `*` spliced in between the two tokens.
func endsValue(t token.Token) bool {
	switch t.Type {
	case token.NUMBER, token.SYMBOL:
		return true
	case token.PARENTHESES:
		return t.Char() == ')'
	}
	return false
}

func startsValue(t token.Token) bool {
	switch t.Type {
	case token.NUMBER, token.SYMBOL, token.GROUPING, token.PREFIX:
		return true
	case token.PARENTHESES:
		return t.Char() == '('
	}
	return false
}

func insertImplicitMultiplication(toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return toks
	}
	out := make([]token.Token, 0, len(toks))
	out = append(out, toks[0])
	for i := 1; i < len(toks); i++ {
		if endsValue(toks[i-1]) && startsValue(toks[i]) {
			out = append(out, token.New(token.OPERATOR, byte('*')))
		}
		out = append(out, toks[i])
	}
	return out
}

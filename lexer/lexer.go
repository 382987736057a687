// Package lexer turns a CAS source string into a flat token stream.
//
// Grounded on the original Lexer.java character-by-character scanner. One
// deliberate deviation, recorded in SPEC_FULL.md §9: the Java lexer's
// separate "literal dd(" prefix-token path (which manufactured a bare TeX
// fragment like `\frac{d}{dx}`) is dropped. `dd` is lexed as an ordinary
// reserved grouping name, exactly like `sqrt` or `int`, and the parser's
// `dd` GROUPING handler (see package parser) is the sole derivative entry
// point.
package lexer

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/njchilds90/gocas/number"
	"github.com/njchilds90/gocas/token"
)

// LexError reports a failure recognizing the input at a given byte offset.
type LexError struct {
	Pos     int
	Message string
}

func (e *LexError) Error() string {
	return errors.Errorf("lex error at %d: %s", e.Pos, e.Message).Error()
}

// reservedGroupings are identifiers that become a GROUPING token instead
// of a SYMBOL; one not immediately followed by `(` is a LexError. This
// set generalizes
// the original Lexer.java's `int`-only special case (and its separate,
// now-dropped `dd` prefix path) to every named grouping the parser
// dispatches on — see SPEC_FULL.md §9.
var reservedGroupings = map[string]bool{
	"sqrt":      true,
	"sin":       true,
	"cos":       true,
	"tan":       true,
	"ln":        true,
	"log":       true,
	"int":       true,
	"integrate": true,
	"dd":        true,
	"roots":     true,
	"factor":    true,
}

var constants = map[string]number.Number{
	"pi":       number.Pi,
	"tau":      number.Tau,
	"e":        number.E,
	"infinity": number.Infinity,
}

// Lex scans src into a flat token stream with an implicit trailing EOF
// (not itself appended to the returned slice — callers treat running off
// the end as EOF, matching the parser's peek/advance convention).
func Lex(src string) ([]token.Token, error) {
	l := &lexer{src: []rune(src)}
	var out []token.Token
	for !l.atEnd() {
		c := l.peek()
		switch {
		case unicode.IsSpace(c):
			l.pos++
		case unicode.IsDigit(c) || (c == '.' && unicode.IsDigit(l.peekAt(1))):
			tok, err := l.scanNumber()
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
		case unicode.IsLetter(c):
			tok, err := l.scanIdentifier()
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
		case strings.ContainsRune("+-*/%^", c):
			out = append(out, token.New(token.OPERATOR, byte(c)))
			l.pos++
		case c == ',':
			out = append(out, token.New(token.OPERATOR, byte(',')))
			l.pos++
		case c == '(':
			out = append(out, token.New(token.PARENTHESES, byte('(')))
			l.pos++
		case c == ')':
			out = append(out, token.New(token.PARENTHESES, byte(')')))
			l.pos++
		default:
			return nil, &LexError{Pos: l.pos, Message: "unrecognized character '" + string(c) + "'"}
		}
	}
	return out, nil
}

type lexer struct {
	src []rune
	pos int
}

func (l *lexer) atEnd() bool       { return l.pos >= len(l.src) }
func (l *lexer) peek() rune        { return l.peekAt(0) }
func (l *lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *lexer) scanNumber() (token.Token, error) {
	start := l.pos
	dotSeen := false
	expSeen := false
	for !l.atEnd() {
		c := l.peek()
		switch {
		case unicode.IsDigit(c):
			l.pos++
		case c == '.' && !dotSeen && !expSeen:
			dotSeen = true
			l.pos++
		case (c == 'e' || c == 'E') && !expSeen && l.pos > start:
			expSeen = true
			l.pos++
			if !l.atEnd() && (l.peek() == '+' || l.peek() == '-') {
				l.pos++
			}
		default:
			goto done
		}
	}
done:
	text := string(l.src[start:l.pos])
	isDecimal := dotSeen || expSeen
	n, err := parseNumberLiteral(text, isDecimal)
	if err != nil {
		return token.Token{}, &LexError{Pos: start, Message: err.Error()}
	}
	return token.New(token.NUMBER, n), nil
}

func parseNumberLiteral(text string, isDecimal bool) (number.Number, error) {
	if isDecimal {
		f, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return number.FromFloat(f), nil
		}
		d, ok := new(big.Float).SetString(text)
		if !ok {
			return number.Number{}, errors.Errorf("invalid decimal literal %q", text)
		}
		return number.FromBigFloat(d), nil
	}
	iv, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return number.FromInt(iv), nil
	}
	bv, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return number.Number{}, errors.Errorf("invalid integer literal %q", text)
	}
	return number.FromBigInt(bv), nil
}

func (l *lexer) scanIdentifier() (token.Token, error) {
	start := l.pos
	for !l.atEnd() && (unicode.IsLetter(l.peek()) || unicode.IsDigit(l.peek()) || l.peek() == '_') {
		l.pos++
	}
	name := string(l.src[start:l.pos])
	lower := strings.ToLower(name)

	if lower == "lim" {
		if l.atEnd() || l.peek() != '(' {
			return token.Token{}, &LexError{Pos: start, Message: "'lim' must be followed by '('"}
		}
		return l.scanLimit(start)
	}

	if c, ok := constants[lower]; ok {
		return token.New(token.NUMBER, c), nil
	}

	if reservedGroupings[lower] {
		if l.atEnd() || l.peek() != '(' {
			return token.Token{}, &LexError{Pos: start, Message: "'" + name + "' must be followed by '('"}
		}
		return token.New(token.GROUPING, lower), nil
	}

	return token.New(token.SYMBOL, name), nil
}

// scanLimit reads `lim(approaching, target)` balanced by parentheses and
// builds a PREFIX token carrying a LimitInfo, mirroring
// Lexer.java#parseLimitToken.
func (l *lexer) scanLimit(start int) (token.Token, error) {
	l.pos++ // consume '('
	depth := 1
	argStart := l.pos
	var args []string
	for !l.atEnd() && depth > 0 {
		switch l.peek() {
		case '(':
			depth++
			l.pos++
		case ')':
			depth--
			if depth == 0 {
				args = append(args, strings.TrimSpace(string(l.src[argStart:l.pos])))
				l.pos++
			} else {
				l.pos++
			}
		case ',':
			if depth == 1 {
				args = append(args, strings.TrimSpace(string(l.src[argStart:l.pos])))
				l.pos++
				argStart = l.pos
			} else {
				l.pos++
			}
		default:
			l.pos++
		}
	}
	if depth != 0 {
		return token.Token{}, &LexError{Pos: start, Message: "unterminated 'lim('"}
	}
	if len(args) != 2 {
		return token.Token{}, &LexError{Pos: start, Message: "'lim' requires exactly 2 arguments"}
	}
	return token.New(token.PREFIX, token.LimitInfo{Approaching: args[0], Target: args[1]}), nil
}

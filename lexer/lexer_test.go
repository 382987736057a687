package lexer_test

import (
	"testing"

	"github.com/njchilds90/gocas/lexer"
	"github.com/njchilds90/gocas/token"
)

// ===================================================================
// Numbers
// ===================================================================

func TestLex_Integer(t *testing.T) {
	toks, err := lexer.Lex("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Type != token.NUMBER {
		t.Fatalf("expected single NUMBER token, got %v", toks)
	}
}

func TestLex_Decimal(t *testing.T) {
	toks, err := lexer.Lex("3.14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := toks[0].Num()
	if !ok {
		t.Fatalf("expected NUMBER token")
	}
	if n.ToDouble() != 3.14 {
		t.Errorf("expected 3.14, got %v", n.ToDouble())
	}
}

func TestLex_BigIntegerOverflow(t *testing.T) {
	toks, err := lexer.Lex("99999999999999999999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := toks[0].Num()
	if n.Kind() != 1 { // number.BigInt
		t.Errorf("expected BigInt promotion, got kind %v", n.Kind())
	}
}

// ===================================================================
// Identifiers, constants, groupings
// ===================================================================

func TestLex_ReservedGroupingRequiresParen(t *testing.T) {
	if _, err := lexer.Lex("sqrt"); err == nil {
		t.Errorf("expected error when 'sqrt' is not followed by '('")
	}
}

func TestLex_GroupingName(t *testing.T) {
	toks, err := lexer.Lex("sqrt(4)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.GROUPING {
		t.Fatalf("expected GROUPING, got %v", toks[0].Type)
	}
	name, _ := toks[0].Str()
	if name != "sqrt" {
		t.Errorf("expected sqrt, got %s", name)
	}
}

func TestLex_Constants(t *testing.T) {
	toks, err := lexer.Lex("pi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.NUMBER {
		t.Fatalf("expected NUMBER for pi, got %v", toks[0].Type)
	}
}

func TestLex_PlainSymbol(t *testing.T) {
	toks, err := lexer.Lex("xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.SYMBOL {
		t.Fatalf("expected SYMBOL, got %v", toks[0].Type)
	}
}

func TestLex_DdIsAGroupingNotALiteralPrefix(t *testing.T) {
	toks, err := lexer.Lex("dd(x,x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.GROUPING {
		t.Fatalf("expected dd to lex as GROUPING, got %v", toks[0].Type)
	}
}

// ===================================================================
// lim
// ===================================================================

func TestLex_Limit(t *testing.T) {
	toks, err := lexer.Lex("lim(x, 0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.PREFIX {
		t.Fatalf("expected PREFIX, got %v", toks[0].Type)
	}
	info, ok := toks[0].Limit()
	if !ok {
		t.Fatalf("expected LimitInfo payload")
	}
	if info.Approaching != "x" || info.Target != "0" {
		t.Errorf("unexpected limit info: %+v", info)
	}
}

func TestLex_LimitWrongArgCount(t *testing.T) {
	if _, err := lexer.Lex("lim(x)"); err == nil {
		t.Errorf("expected error for lim with 1 argument")
	}
}

// ===================================================================
// Operators and structure
// ===================================================================

func TestLex_OperatorsAndParens(t *testing.T) {
	toks, err := lexer.Lex("(1+2)*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTypes := []token.Type{
		token.PARENTHESES, token.NUMBER, token.OPERATOR, token.NUMBER,
		token.PARENTHESES, token.OPERATOR, token.NUMBER,
	}
	if len(toks) != len(wantTypes) {
		t.Fatalf("expected %d tokens, got %d", len(wantTypes), len(toks))
	}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token %d: expected %v, got %v", i, want, toks[i].Type)
		}
	}
}

func TestLex_UnrecognizedCharacter(t *testing.T) {
	if _, err := lexer.Lex("1 @ 2"); err == nil {
		t.Errorf("expected error for unrecognized character")
	}
}

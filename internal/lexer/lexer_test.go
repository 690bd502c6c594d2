package lexer

import (
	"strings"
	"testing"

	"robotspeak/internal/diag"
	"robotspeak/internal/token"
)

func TestTokenize(t *testing.T) {
	input := `  IF FRONT_IS_CLEAR AND notBlocked OR AT_EXIT   @ look around`
	tests := []struct {
		expectedKind    token.Kind
		expectedLiteral string
	}{
		{token.If, "IF"},
		{token.FrontIsClear, "FRONT_IS_CLEAR"},
		{token.And, "AND"},
		{token.Ident, "notBlocked"},
		{token.Or, "OR"},
		{token.AtExit, "AT_EXIT"},
	}

	toks, err := Tokenize(input, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("expected %d tokens, got %d: %v", len(tests), len(toks), token.Literals(toks))
	}
	for i, tt := range tests {
		tok := toks[i]
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s", i, tt.expectedKind, tok.Kind)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenizeEveryKeyword(t *testing.T) {
	line := strings.Join(token.Keywords(), " ")
	toks, err := Tokenize(line, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tok := range toks {
		want, _ := token.Lookup(tok.Literal)
		if tok.Kind != want {
			t.Fatalf("tests[%d] - %q lexed as %s, want %s", i, tok.Literal, tok.Kind, want)
		}
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Kind
	}{
		{"LOADx", token.Ident},
		{"Load", token.Ident},
		{"seenDoor", token.Ident},
		{"ANDROID", token.Ident},
		{"END", token.End},
		{"3", token.Three},
	}
	for i, tt := range tests {
		toks, err := Tokenize(tt.input, 1)
		if err != nil {
			t.Fatalf("tests[%d] - %q: unexpected error %v", i, tt.input, err)
		}
		if len(toks) != 1 || toks[0].Kind != tt.expected {
			t.Fatalf("tests[%d] - %q: got %v", i, tt.input, toks)
		}
	}
}

func TestTokenizeOtherWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"x := TRUE\vAND TRUE", []string{"x", ":=", "TRUE", "AND", "TRUE"}},
		{"\fTURN_LEFT\f", []string{"TURN_LEFT"}},
		{"IF\t\vON_KEY \f OR\rAT_DOOR", []string{"IF", "ON_KEY", "OR", "AT_DOOR"}},
		{"\v\f \t", nil},
	}
	for i, tt := range tests {
		toks, err := Tokenize(tt.input, 1)
		if err != nil {
			t.Fatalf("tests[%d] - %q: %v", i, tt.input, err)
		}
		if got := token.Literals(toks); strings.Join(got, " ") != strings.Join(tt.expected, " ") {
			t.Fatalf("tests[%d] - got %q, want %q", i, got, tt.expected)
		}
	}
	toks, _ := Tokenize("\v\vMOVE_FORWARD", 1)
	if len(toks) != 1 || toks[0].Column != 3 {
		t.Fatalf("column = %+v", toks)
	}
}

func TestTokenizeBlankLines(t *testing.T) {
	for i, input := range []string{"", "   ", "\t", "@ only a comment", "   @ MOVE_FORWARD"} {
		toks, err := Tokenize(input, 4)
		if err != nil || len(toks) != 0 {
			t.Fatalf("tests[%d] - %q: expected no tokens, got %v (err %v)", i, input, toks, err)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"x:=TRUE", "`:=` must be surrounded by spaces"},
		{"x := TRUE:=", "`:=` must be surrounded by spaces"},
		{"x :=TRUE", "`:=` must be surrounded by spaces"},
		{"LOAD 4", "invalid token"},
		{"MOVE_FORWARDS", "invalid token"},
		{"my_var := TRUE", "invalid token"},
		{"x2 := TRUE", "invalid token"},
		{"MOVE-FORWARD", "invalid token"},
	}
	for i, tt := range tests {
		_, err := Tokenize(tt.input, 7)
		if err == nil {
			t.Fatalf("tests[%d] - %q: expected error", i, tt.input)
		}
		if !diag.Is(err, diag.SyntaxError) {
			t.Fatalf("tests[%d] - %q: expected syntax error, got %T", i, tt.input, err)
		}
		de := err.(*diag.Error)
		if de.Line != 7 {
			t.Fatalf("tests[%d] - line = %d, want 7", i, de.Line)
		}
		if !strings.Contains(de.Description, tt.message) {
			t.Fatalf("tests[%d] - %q: description %q lacks %q", i, tt.input, de.Description, tt.message)
		}
	}
}

func TestTokenizeSuggestsKeyword(t *testing.T) {
	_, err := Tokenize("MOVE_FORWRD", 1)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "did you mean MOVE_FORWARD?") {
		t.Fatalf("missing suggestion: %v", err)
	}
}

func TestStripComment(t *testing.T) {
	if got := StripComment("TURN_LEFT @ spin @ twice"); got != "TURN_LEFT " {
		t.Fatalf("got %q", got)
	}
	if got := StripComment("END"); got != "END" {
		t.Fatalf("got %q", got)
	}
}

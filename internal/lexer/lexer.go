// Package lexer splits RobotSpeak source lines into validated tokens.
package lexer

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"robotspeak/internal/diag"
	"robotspeak/internal/token"
)

// CommentMarker starts a comment running to the end of the line.
const CommentMarker = "@"

// whitespace separates tokens. The lexer patterns embed these bytes raw
// since the pattern syntax has no \v or \f escape.
const whitespace = " \t\r\n\v\f"

var (
	compileOnce sync.Once
	compiled    *lexmachine.Lexer
	compileErr  error
)

// machine builds the DFA once. Keywords are added before the identifier
// rule so that equal-length matches resolve to the keyword; the catch-all
// rule wins only when it consumes more than any valid token would.
func machine() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte("["+whitespace+"]+"), skip)
		for _, lit := range token.Keywords() {
			kind, _ := token.Lookup(lit)
			lx.Add([]byte(lit), tokAction(kind))
		}
		lx.Add([]byte(`[a-zA-Z]+`), tokAction(token.Ident))
		lx.Add([]byte("[^"+whitespace+"]+"), tokAction(token.Illegal))
		if err := lx.Compile(); err != nil {
			compileErr = err
			return
		}
		compiled = lx
	})
	return compiled, compileErr
}

// StripComment drops everything from the first comment marker on.
func StripComment(line string) string {
	before, _, _ := strings.Cut(line, CommentMarker)
	return before
}

// Tokenize lexes one raw source line. Comments and surrounding whitespace are
// removed first; a line with nothing left yields no tokens and no error.
func Tokenize(line string, lineNo int) ([]token.Token, error) {
	line = StripComment(line)
	offset := len(line) - len(strings.TrimLeft(line, whitespace))
	line = strings.Trim(line, whitespace)
	if line == "" {
		return nil, nil
	}

	lx, err := machine()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}

	var out []token.Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, diag.Syntax(lineNo, "invalid token")
		}
		t := tok.(token.Token)
		t.Column += offset
		if t.Kind == token.Illegal {
			return nil, illegal(t, lineNo)
		}
		out = append(out, t)
	}
	return out, nil
}

func illegal(t token.Token, lineNo int) *diag.Error {
	if strings.Contains(t.Literal, ":=") {
		return diag.Syntax(lineNo, "`:=` must be surrounded by spaces").At(t.Column)
	}
	if s := suggest(t.Literal); s != "" {
		return diag.Syntax(lineNo, "invalid token %q (did you mean %s?)", t.Literal, s).At(t.Column)
	}
	return diag.Syntax(lineNo, "invalid token %q", t.Literal).At(t.Column)
}

// suggest returns the closest keyword for a misspelled token, if any.
func suggest(lit string) string {
	ranks := fuzzy.RankFindFold(lit, token.Keywords())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(kind token.Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token.Token{
			Kind:    kind,
			Literal: string(m.Bytes),
			Column:  m.StartColumn,
		}, nil
	}
}

package interpreter

import (
	"strings"

	"robotspeak/internal/diag"
	"robotspeak/internal/lexer"
	"robotspeak/internal/token"
)

// Program is the raw source split into 1-indexed lines. Lines are lexed on
// first use and the result is kept.
type Program struct {
	lines []string
	toks  [][]token.Token
	lexed []bool
	last  int
}

func NewProgram(src string) *Program {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &Program{
		lines: lines,
		toks:  make([][]token.Token, len(lines)),
		lexed: make([]bool, len(lines)),
	}
}

// Len is the number of raw lines.
func (p *Program) Len() int {
	return len(p.lines)
}

// Tokens lexes line n. A blank or comment-only line yields no tokens.
func (p *Program) Tokens(n int) ([]token.Token, error) {
	i := n - 1
	if p.lexed[i] {
		return p.toks[i], nil
	}
	toks, err := lexer.Tokenize(p.lines[i], n)
	if err != nil {
		return nil, err
	}
	p.toks[i], p.lexed[i] = toks, true
	return toks, nil
}

// Last returns the number of the final line that holds tokens. Blank and
// comment-only lines after it are ignored. It is 0 for an empty program.
func (p *Program) Last() (int, error) {
	if p.last > 0 {
		return p.last, nil
	}
	for n := p.Len(); n >= 1; n-- {
		toks, err := p.Tokens(n)
		if err != nil {
			return 0, err
		}
		if len(toks) > 0 {
			p.last = n
			return n, nil
		}
	}
	return 0, nil
}

// checkEnding requires the final line to be a bare END.
func (p *Program) checkEnding() (int, error) {
	last, err := p.Last()
	if err != nil {
		return 0, err
	}
	if last == 0 {
		return 0, diag.Syntax(1, "empty program")
	}
	toks, _ := p.Tokens(last)
	if len(toks) != 1 || toks[0].Kind != token.End {
		return 0, diag.Syntax(last, "the last line must be a bare END")
	}
	return last, nil
}

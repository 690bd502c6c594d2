package interpreter

import (
	"robotspeak/internal/diag"
	"robotspeak/internal/token"
)

// Block is an IF or WHILE with the line numbers of its optional OTHERWISE
// (0 when absent) and its matching END.
type Block struct {
	Header    int
	Otherwise int
	End       int
}

// scanBlock finds the END matching the IF/WHILE on line header by walking
// forward and counting nested openers. The program's final END never closes
// a block. Results are cached per header.
func (c *Context) scanBlock(header int) (Block, error) {
	if b, ok := c.blocks[header]; ok {
		return b, nil
	}
	last, err := c.prog.Last()
	if err != nil {
		return Block{}, err
	}
	opener, err := c.prog.Tokens(header)
	if err != nil {
		return Block{}, err
	}

	b := Block{Header: header}
	depth := 0
	for n := header + 1; n < last; n++ {
		toks, err := c.prog.Tokens(n)
		if err != nil {
			return Block{}, err
		}
		if len(toks) == 0 {
			continue
		}
		switch head := toks[0].Kind; {
		case head.IsBlockOpener():
			depth++
		case head == token.End:
			if depth == 0 {
				b.End = n
				c.blocks[header] = b
				return b, nil
			}
			depth--
		case head == token.Otherwise && depth == 0:
			if len(toks) != 1 {
				return Block{}, diag.Syntax(n, "OTHERWISE takes no arguments")
			}
			if opener[0].Kind != token.If {
				return Block{}, diag.Syntax(n, "OTHERWISE outside of an IF block")
			}
			if b.Otherwise != 0 {
				return Block{}, diag.Syntax(n, "duplicate OTHERWISE in IF block opened at line %d", header)
			}
			b.Otherwise = n
		}
	}
	return Block{}, diag.Syntax(header, "missing END for %s", opener[0].Kind)
}

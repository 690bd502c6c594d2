package interpreter

import (
	"strings"

	"robotspeak/internal/diag"
	"robotspeak/internal/token"
)

type FlowKind int

const (
	// Continue moves on to the next line.
	Continue FlowKind = iota
	// JumpTo resumes at Flow.Line.
	JumpTo
	// Halt ends the whole run successfully.
	Halt
)

// Flow is what executing one statement tells its caller to do next.
type Flow struct {
	Kind FlowKind
	Line int
}

// Run executes a RobotSpeak program. Syntax and runtime errors stop the run
// and are returned as *diag.Error; rejected robot actions are only warnings.
func Run(src string, cfg Config) (*Result, error) {
	prog := NewProgram(src)
	last, err := prog.checkEnding()
	if err != nil {
		return nil, err
	}
	ctx := newContext(prog, cfg)
	flow, err := ctx.execRange(1, last+1)
	if err != nil {
		return nil, err
	}
	return ctx.result(flow.Kind == Halt), nil
}

// execRange runs lines [start, stop), following jumps and stopping on Halt.
func (c *Context) execRange(start, stop int) (Flow, error) {
	for n := start; n < stop; {
		flow, err := c.exec(n)
		if err != nil {
			return Flow{}, err
		}
		switch flow.Kind {
		case Halt:
			return flow, nil
		case JumpTo:
			n = flow.Line
		default:
			n++
		}
	}
	return Flow{Kind: Continue}, nil
}

func (c *Context) exec(n int) (Flow, error) {
	toks, err := c.prog.Tokens(n)
	if err != nil {
		return Flow{}, err
	}
	if len(toks) == 0 {
		return Flow{Kind: Continue}, nil
	}
	c.line = n
	c.executed++
	c.cfg.Logger.Debug("line %d: %s", n, strings.Join(token.Literals(toks), " "))

	if c.executed == 1 {
		return c.load(toks)
	}
	if last, _ := c.prog.Last(); n == last {
		// checkEnding already made sure this is a bare END
		return Flow{Kind: Halt}, nil
	}

	head := toks[0]
	switch {
	case head.Kind == token.Load:
		return Flow{}, diag.Syntax(n, "LOAD can only be present once").At(head.Column)
	case head.Kind.IsAction():
		if len(toks) != 1 {
			return Flow{}, diag.Syntax(n, "%s takes no arguments", head.Kind).At(toks[1].Column)
		}
		solved, err := c.act(head.Kind)
		if err != nil {
			return Flow{}, err
		}
		if solved {
			c.cfg.Logger.Debug("line %d: maze solved", n)
			return Flow{Kind: Halt}, nil
		}
		return Flow{Kind: Continue}, nil
	case head.Kind == token.If:
		return c.execIf(n, toks)
	case head.Kind == token.While:
		return c.execWhile(n, toks)
	case head.Kind == token.Ident:
		return c.assign(n, toks)
	case head.Kind == token.End:
		return Flow{}, diag.Syntax(n, "END without a matching IF or WHILE").At(head.Column)
	case head.Kind == token.Otherwise:
		return Flow{}, diag.Syntax(n, "OTHERWISE without a matching IF").At(head.Column)
	}
	return Flow{}, diag.Syntax(n, "a statement cannot start with %s", head.Literal).At(head.Column)
}

func (c *Context) load(toks []token.Token) (Flow, error) {
	head := toks[0]
	if head.Kind != token.Load {
		return Flow{}, diag.Syntax(c.line, "LOAD must be the first statement").At(head.Column)
	}
	switch {
	case len(toks) == 1:
		return Flow{}, diag.Syntax(c.line, "LOAD needs a preset id: 1, 2 or 3")
	case len(toks) > 2:
		return Flow{}, diag.Syntax(c.line, "LOAD takes exactly one preset id").At(toks[2].Column)
	}
	id := toks[1]
	switch id.Kind {
	case token.One, token.Two, token.Three:
	default:
		return Flow{}, diag.Runtime(c.line, "invalid preset %q, LOAD accepts 1, 2 or 3", id.Literal).At(id.Column)
	}

	m, err := c.cfg.Loader.Load(id.Literal)
	if err != nil {
		return Flow{}, diag.Runtime(c.line, "loading preset %s: %v", id.Literal, err)
	}
	c.Maze = m
	c.cfg.Logger.Debug("line %d: loaded preset %s (%s), robot %s", c.line, id.Literal, m.Name, m.Robot)
	return Flow{Kind: Continue}, nil
}

// condition parses the expression on line n once and evaluates it.
func (c *Context) condition(n int, toks []token.Token) (bool, error) {
	expr, ok := c.exprs[n]
	if !ok {
		var err error
		if expr, err = ParseExpr(toks, n); err != nil {
			return false, err
		}
		c.exprs[n] = expr
	}
	c.line = n
	return expr.Eval(c)
}

func (c *Context) execIf(n int, toks []token.Token) (Flow, error) {
	b, err := c.scanBlock(n)
	if err != nil {
		return Flow{}, err
	}
	ok, err := c.condition(n, toks[1:])
	if err != nil {
		return Flow{}, err
	}

	start, stop := b.End, b.End
	switch {
	case ok && b.Otherwise != 0:
		start, stop = n+1, b.Otherwise
	case ok:
		start = n + 1
	case b.Otherwise != 0:
		start = b.Otherwise + 1
	}
	flow, err := c.execRange(start, stop)
	if err != nil || flow.Kind == Halt {
		return flow, err
	}
	return Flow{Kind: JumpTo, Line: b.End + 1}, nil
}

func (c *Context) execWhile(n int, toks []token.Token) (Flow, error) {
	b, err := c.scanBlock(n)
	if err != nil {
		return Flow{}, err
	}
	for i := 0; ; i++ {
		ok, err := c.condition(n, toks[1:])
		if err != nil {
			return Flow{}, err
		}
		if !ok {
			break
		}
		if c.cfg.MaxIterations > 0 && i >= c.cfg.MaxIterations {
			return Flow{}, diag.Runtime(n, "WHILE loop exceeded %d iterations", c.cfg.MaxIterations)
		}
		flow, err := c.execRange(n+1, b.End)
		if err != nil || flow.Kind == Halt {
			return flow, err
		}
	}
	return Flow{Kind: JumpTo, Line: b.End + 1}, nil
}

func (c *Context) assign(n int, toks []token.Token) (Flow, error) {
	if len(toks) < 3 || toks[1].Kind != token.Assign {
		return Flow{}, diag.Syntax(n, "malformed assignment, expected: name := expression").At(toks[0].Column)
	}
	val, err := c.condition(n, toks[2:])
	if err != nil {
		return Flow{}, err
	}
	c.Env.Set(toks[0].Literal, val)
	c.cfg.Logger.Debug("line %d: %s = %v", n, toks[0].Literal, val)
	return Flow{Kind: Continue}, nil
}

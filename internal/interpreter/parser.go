package interpreter

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"robotspeak/internal/diag"
	"robotspeak/internal/token"
)

// Boolean expressions: AND binds tighter than OR, both left-associative,
// no parentheses and no negation. An AND directly before OR is allowed and
// reads as a plain OR.
//
// The grammar is a flat chain of operands; precedence is applied in Eval.

type Expr struct {
	Head *Term     `parser:"@@"`
	Tail []*OpTerm `parser:"@@*"`
}

// OpTerm is one operator and the operand that follows it.
type OpTerm struct {
	Or   bool  `parser:"( @'OR' | 'AND' @'OR'? )"`
	Term *Term `parser:"@@"`
}

type Term struct {
	Pos     lexer.Position
	Literal *string `parser:"  @( 'TRUE' | 'FALSE' )"`
	Sensor  *string `parser:"| @( 'FRONT_IS_CLEAR' | 'ON_KEY' | 'AT_DOOR' | 'AT_EXIT' )"`
	Name    *string `parser:"| @Ident"`
}

// Every keyword lexes as Keyword so that only real identifiers can name a
// variable.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: keywordPattern()},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[Expr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

func keywordPattern() string {
	kws := token.Keywords()
	sort.SliceStable(kws, func(i, j int) bool { return len(kws[i]) > len(kws[j]) })
	alts := make([]string, len(kws))
	for i, kw := range kws {
		alts[i] = regexp.QuoteMeta(kw)
		if isWord(kw) {
			alts[i] += `\b`
		}
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// ParseExpr parses the tokens of a condition or assignment right-hand side.
// Every token must be consumed.
func ParseExpr(toks []token.Token, line int) (*Expr, error) {
	if len(toks) == 0 {
		return nil, diag.Syntax(line, "missing boolean expression")
	}
	src := strings.Join(token.Literals(toks), " ")
	expr, err := parser.ParseString("", src)
	if err != nil {
		msg := err.Error()
		var perr participle.Error
		if errors.As(err, &perr) {
			msg = perr.Message()
		}
		return nil, diag.Syntax(line, "invalid boolean expression %q: %s", src, msg).At(toks[0].Column)
	}
	return expr, nil
}

// Eval folds the chain into OR-separated AND groups. Every operand is
// evaluated.
func (e *Expr) Eval(ctx *Context) (bool, error) {
	group, err := e.Head.Eval(ctx)
	if err != nil {
		return false, err
	}
	val := false
	for _, ot := range e.Tail {
		v, err := ot.Term.Eval(ctx)
		if err != nil {
			return false, err
		}
		if ot.Or {
			val = val || group
			group = v
		} else {
			group = group && v
		}
	}
	return val || group, nil
}

func (t *Term) Eval(ctx *Context) (bool, error) {
	switch {
	case t.Literal != nil:
		return *t.Literal == "TRUE", nil
	case t.Sensor != nil:
		kind, _ := token.Lookup(*t.Sensor)
		return ctx.sense(kind)
	case t.Name != nil:
		v, ok := ctx.Env.Get(*t.Name)
		if !ok {
			return false, diag.Runtime(ctx.line, "undeclared variable %s", *t.Name)
		}
		return v, nil
	}
	return false, diag.Syntax(ctx.line, "invalid term")
}

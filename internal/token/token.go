package token

import "sort"

// Kind identifies a token of the closed RobotSpeak vocabulary.
type Kind int

const (
	Illegal Kind = iota
	Ident

	Load
	If
	Otherwise
	While
	End
	And
	Or
	True
	False

	MoveForward
	TurnLeft
	TurnRight
	PickKey
	OpenDoor
	ThrowAwayKey

	FrontIsClear
	OnKey
	AtDoor
	AtExit

	One
	Two
	Three
	Assign
)

var keywords = map[string]Kind{
	"LOAD":           Load,
	"IF":             If,
	"OTHERWISE":      Otherwise,
	"WHILE":          While,
	"END":            End,
	"AND":            And,
	"OR":             Or,
	"TRUE":           True,
	"FALSE":          False,
	"MOVE_FORWARD":   MoveForward,
	"TURN_LEFT":      TurnLeft,
	"TURN_RIGHT":     TurnRight,
	"PICK_KEY":       PickKey,
	"OPEN_DOOR":      OpenDoor,
	"THROW_AWAY_KEY": ThrowAwayKey,
	"FRONT_IS_CLEAR": FrontIsClear,
	"ON_KEY":         OnKey,
	"AT_DOOR":        AtDoor,
	"AT_EXIT":        AtExit,
	"1":              One,
	"2":              Two,
	"3":              Three,
	":=":             Assign,
}

var names = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords)+2)
	for lit, k := range keywords {
		m[k] = lit
	}
	m[Illegal] = "ILLEGAL"
	m[Ident] = "IDENT"
	return m
}()

// Token is one lexeme of a source line.
type Token struct {
	Kind    Kind
	Literal string
	Column  int
}

// Lookup reports the keyword kind for lit.
func Lookup(lit string) (Kind, bool) {
	k, ok := keywords[lit]
	return k, ok
}

// Keywords returns every keyword literal in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for lit := range keywords {
		out = append(out, lit)
	}
	sort.Strings(out)
	return out
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsSensor reports whether k names a world sensor usable as a boolean term.
func (k Kind) IsSensor() bool {
	switch k {
	case FrontIsClear, OnKey, AtDoor, AtExit:
		return true
	}
	return false
}

// IsAction reports whether k is a robot action statement.
func (k Kind) IsAction() bool {
	switch k {
	case MoveForward, TurnLeft, TurnRight, PickKey, OpenDoor, ThrowAwayKey:
		return true
	}
	return false
}

// IsBlockOpener reports whether k starts a block closed by END.
func (k Kind) IsBlockOpener() bool {
	return k == If || k == While
}

// Literals returns the literal text of each token.
func Literals(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Literal
	}
	return out
}

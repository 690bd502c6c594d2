package interpreter

import (
	"strings"
	"testing"

	"robotspeak/internal/diag"
)

func scanContext(src string) *Context {
	return newContext(NewProgram(src), Config{})
}

func TestScanBlock(t *testing.T) {
	src := `LOAD 1
IF ON_KEY
  PICK_KEY

  WHILE FRONT_IS_CLEAR   @ nested loop
    IF AT_DOOR
      OPEN_DOOR
    OTHERWISE
      MOVE_FORWARD
    END
  END
OTHERWISE
  TURN_LEFT
END
END`
	tests := []struct {
		header   int
		expected Block
	}{
		{2, Block{Header: 2, Otherwise: 12, End: 14}},
		{5, Block{Header: 5, Otherwise: 0, End: 11}},
		{6, Block{Header: 6, Otherwise: 8, End: 10}},
	}
	ctx := scanContext(src)
	for i, tt := range tests {
		b, err := ctx.scanBlock(tt.header)
		if err != nil {
			t.Fatalf("tests[%d] - %v", i, err)
		}
		if b != tt.expected {
			t.Fatalf("tests[%d] - got %+v, want %+v", i, b, tt.expected)
		}
	}
}

func TestScanBlockIgnoresNestingDepth(t *testing.T) {
	for depth := 0; depth < 6; depth++ {
		var b strings.Builder
		b.WriteString("LOAD 1\nWHILE TRUE\n")
		for i := 0; i < depth; i++ {
			b.WriteString("IF TRUE\n")
		}
		b.WriteString("TURN_LEFT\n")
		for i := 0; i < depth; i++ {
			b.WriteString("END\n")
		}
		b.WriteString("END\nEND\n")

		blk, err := scanContext(b.String()).scanBlock(2)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if want := 4 + 2*depth; blk.End != want {
			t.Fatalf("depth %d: END at %d, want %d", depth, blk.End, want)
		}
	}
}

func TestScanBlockErrors(t *testing.T) {
	tests := []struct {
		src     string
		header  int
		line    int
		message string
	}{
		{"LOAD 1\nIF TRUE\nTURN_LEFT\n", 2, 2, "missing END for IF"},
		{"LOAD 1\nWHILE TRUE\nIF TRUE\nEND\n", 2, 2, "missing END for WHILE"},
		{"LOAD 1\nIF TRUE\nOTHERWISE\nOTHERWISE\nEND\nEND", 2, 4, "duplicate OTHERWISE"},
		{"LOAD 1\nIF TRUE\nOTHERWISE TURN_LEFT\nEND\nEND", 2, 3, "OTHERWISE takes no arguments"},
		{"LOAD 1\nWHILE TRUE\nOTHERWISE\nEND\nEND", 2, 3, "OTHERWISE outside of an IF block"},
		{"LOAD 1\nIF TRUE\nx:=TRUE\nEND\nEND", 2, 3, "must be surrounded by spaces"},
	}
	for i, tt := range tests {
		_, err := scanContext(tt.src).scanBlock(tt.header)
		if !diag.Is(err, diag.SyntaxError) {
			t.Fatalf("tests[%d] - expected syntax error, got %v", i, err)
		}
		de := err.(*diag.Error)
		if de.Line != tt.line || !strings.Contains(de.Description, tt.message) {
			t.Fatalf("tests[%d] - got %v, want %q at line %d", i, err, tt.message, tt.line)
		}
	}
}

func TestScanBlockNestedOtherwiseBelongsToInnerIf(t *testing.T) {
	src := "LOAD 1\nIF TRUE\nIF FALSE\nTURN_LEFT\nOTHERWISE\nTURN_RIGHT\nEND\nEND\nEND"
	b, err := scanContext(src).scanBlock(2)
	if err != nil {
		t.Fatal(err)
	}
	if b.Otherwise != 0 || b.End != 8 {
		t.Fatalf("got %+v", b)
	}
}

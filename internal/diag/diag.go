// Package diag holds the fatal error kinds reported by the RobotSpeak engine
// and renders them against the program source.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	SyntaxError Kind = iota
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case RuntimeError:
		return "RuntimeError"
	}
	return "Error"
}

// Error aborts a run. Line is 1-based; Column is 1-based or 0 when unknown.
type Error struct {
	Kind        Kind
	Description string
	Line        int
	Column      int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at line %d", e.Kind, e.Description, e.Line)
}

func Syntax(line int, format string, args ...interface{}) *Error {
	return &Error{Kind: SyntaxError, Description: fmt.Sprintf(format, args...), Line: line}
}

func Runtime(line int, format string, args ...interface{}) *Error {
	return &Error{Kind: RuntimeError, Description: fmt.Sprintf(format, args...), Line: line}
}

// At returns a copy of e pointing at column col.
func (e *Error) At(col int) *Error {
	c := *e
	c.Column = col
	return &c
}

// Is reports whether err is a diag error of kind k.
func Is(err error, k Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == k
}

// Snippet renders err with the offending line of src, one line of context on
// each side and a caret under the column. Errors that are not *Error come
// back as their plain message.
func Snippet(err error, src string) string {
	var de *Error
	if !errors.As(err, &de) {
		return err.Error()
	}
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	line := de.Line
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	col := de.Column
	if col < 1 {
		col = firstNonSpace(lines[line-1]) + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", de.Error())
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

func firstNonSpace(s string) int {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return 0
}

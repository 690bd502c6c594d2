package interpreter

import (
	"io"
	"log"
)

// Logger reports what a run does. Warnings are always written; debug lines
// only when enabled.
type Logger struct {
	out   *log.Logger
	debug bool
}

func NewLogger(w io.Writer, debug bool) *Logger {
	return &Logger{out: log.New(w, "", 0), debug: debug}
}

// Discard drops everything.
func Discard() *Logger {
	return NewLogger(io.Discard, false)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l == nil || !l.debug {
		return
	}
	l.out.Printf("debug: "+format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.out.Printf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.out.Printf("warning: "+format, args...)
}

package main

import (
	"fmt"
	"io"
)

// Logger writes the -v trace to stderr. A Logger without a writer is silent.
type Logger struct {
	out io.Writer
}

// NewLogger returns a Logger writing to w; a nil w disables it.
func NewLogger(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Enabled reports whether the trace is written anywhere. Callers check it
// before doing work that only feeds the trace.
func (l *Logger) Enabled() bool {
	return l != nil && l.out != nil
}

func (l *Logger) Logf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	fmt.Fprintf(l.out, "[luapat] %s\n", fmt.Sprintf(format, args...))
}

// Hits traces one matching input line.
func (l *Logger) Hits(name string, lineNo, n int) {
	if n == 1 {
		l.Logf("%s:%d: 1 match", name, lineNo)
		return
	}
	l.Logf("%s:%d: %d matches", name, lineNo, n)
}

// Done traces the end of one input.
func (l *Logger) Done(name string, matched, lines int) {
	l.Logf("%s: %d of %d lines matched", name, matched, lines)
}

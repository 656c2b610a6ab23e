package diag

// sink.go — Trace sink injected into every rule.
//
// Observational only: nothing a rule writes to its sink may affect control
// flow or the model. Findings meant for the caller go through the Context.

import "log"

// Sink receives trace-level messages from rules and the runner.
type Sink interface {
	Tracef(format string, args ...any)
}

// NewLogSink returns a Sink backed by a stdlib logger. A nil logger uses
// log.Default.
func NewLogSink(l *log.Logger) Sink {
	if l == nil {
		l = log.Default()
	}
	return logSink{l: l}
}

type logSink struct {
	l *log.Logger
}

func (s logSink) Tracef(format string, args ...any) {
	s.l.Printf(format, args...)
}

// NopSink returns a Sink that discards everything. Useful in tests and for
// callers that only want Context findings.
func NopSink() Sink {
	return nopSink{}
}

type nopSink struct{}

func (nopSink) Tracef(string, ...any) {}

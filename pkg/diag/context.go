// Package diag holds the shared diagnostics context for one conversion run
// and the trace sink rules log through.
package diag

// context.go — DiagnosticsContext: append-only errors/warnings plus
// run-scoped properties.
//
// One Context is created per pipeline run, passed by reference to every
// rule, and handed back to the caller for reporting. It is never reset
// mid-run. Entry order reflects rule execution order and, within a rule,
// insertion order; that ordering is externally observable and must be
// preserved. Safe to mutate without locking because rule execution is
// strictly sequential.

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry is one recorded error or warning, attributed to the rule that
// raised it.
type Entry struct {
	Rule    string `yaml:"rule"`
	Message string `yaml:"message"`
}

// Context is the shared, mutable diagnostics state for one run.
// Errors and Warnings are append-only during a run; use AddError and
// AddWarning rather than writing the slices directly.
type Context struct {
	RunID    string
	Errors   []Entry
	Warnings []Entry

	props map[string]string
}

// NewContext returns a fresh context with a unique run identifier.
func NewContext() *Context {
	return &Context{RunID: uuid.NewString()}
}

// AddError appends an error entry attributed to the given rule code.
func (c *Context) AddError(rule, format string, args ...any) {
	c.Errors = append(c.Errors, Entry{Rule: rule, Message: fmt.Sprintf(format, args...)})
}

// AddWarning appends a warning entry attributed to the given rule code.
func (c *Context) AddWarning(rule, format string, args ...any) {
	c.Warnings = append(c.Warnings, Entry{Rule: rule, Message: fmt.Sprintf(format, args...)})
}

// Snapshot returns copies of the error and warning sequences, preserving
// insertion order. Later context mutations never show through a snapshot,
// so two snapshots of identical runs compare equal entry for entry.
func (c *Context) Snapshot() (errors, warnings []Entry) {
	return append([]Entry(nil), c.Errors...), append([]Entry(nil), c.Warnings...)
}

// SetProperty stores a run-scoped key/value shared between rules. Rules use
// this, not the source model, for derived intermediate state.
func (c *Context) SetProperty(key, value string) {
	if c.props == nil {
		c.props = make(map[string]string)
	}
	c.props[key] = value
}

// Property returns a run-scoped value and whether it was set.
func (c *Context) Property(key string) (string, bool) {
	v, ok := c.props[key]
	return v, ok
}

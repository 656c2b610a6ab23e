// Package pipeline orchestrates an ordered sequence of conversion rules
// over one shared diagnostics context.
package pipeline

// runner.go — Rule runner.
//
// Rules execute one at a time, strictly in registered order; later rules may
// rely on target-model state written by earlier rules, so the runner never
// reorders or parallelizes them. Cancellation is cooperative: it is honored
// between rules here and between resources inside each rule, never
// preemptively. A halted or canceled run leaves the model and context in
// whatever partial state existed at the stop point — a valid inspection
// point, not rolled back.

import (
	"context"
	"errors"
	"fmt"

	"buslift/pkg/diag"
	"buslift/pkg/rules"
)

// Outcome is the overall result of one run.
type Outcome string

const (
	// OutcomeCompleted — every registered rule ran to completion.
	OutcomeCompleted Outcome = "completed"
	// OutcomeCanceled — cancellation was observed at a safe boundary.
	// Not an error: partial results are preserved.
	OutcomeCanceled Outcome = "canceled"
	// OutcomeHalted — a rule failed fatally under the halt policy.
	OutcomeHalted Outcome = "halted"
)

// FailurePolicy decides what a rule-level fatal failure does to the rest of
// the run.
type FailurePolicy string

const (
	// HaltOnFailure stops the run at the failing rule. Default: a
	// misbehaving rule must not silently corrupt the model for rules that
	// run afterward.
	HaltOnFailure FailurePolicy = "halt"
	// ContinueOnFailure records the failure and proceeds to the next rule.
	ContinueOnFailure FailurePolicy = "continue"
)

// Option configures a Runner.
type Option func(*Runner)

// WithFailurePolicy overrides the default halt-on-failure policy.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(r *Runner) { r.policy = p }
}

// WithSink sets the trace sink for runner progress messages.
func WithSink(s diag.Sink) Option {
	return func(r *Runner) { r.sink = s }
}

// Runner executes a fixed, ordered list of rules.
type Runner struct {
	dc     *diag.Context
	sink   diag.Sink
	policy FailurePolicy
	rules  []rules.Rule
}

// NewRunner builds a runner over an explicitly ordered rule list. The list
// is immutable for the run. Construction fails on a nil context or any nil
// rule, before any rule executes.
func NewRunner(dc *diag.Context, ordered []rules.Rule, opts ...Option) (*Runner, error) {
	if dc == nil {
		return nil, fmt.Errorf("pipeline: diagnostics context is required")
	}
	for i, rule := range ordered {
		if rule == nil {
			return nil, fmt.Errorf("pipeline: rule at position %d is nil", i)
		}
	}
	r := &Runner{
		dc:     dc,
		sink:   diag.NopSink(),
		policy: HaltOnFailure,
		rules:  append([]rules.Rule(nil), ordered...),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes every rule in order. The returned error is non-nil only for
// a fatal halt; cancellation is reported through the Outcome alone, since it
// is not a processing failure.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, rule := range r.rules {
		if ctx.Err() != nil {
			r.sink.Tracef("pipeline: canceled before rule %s", rule.Code())
			return OutcomeCanceled, nil
		}
		r.sink.Tracef("pipeline: running rule %s", rule.Code())

		err := r.invoke(ctx, rule)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			r.sink.Tracef("pipeline: canceled during rule %s", rule.Code())
			return OutcomeCanceled, nil
		default:
			// Anything escaping Analyze is unexpected: the rule contract
			// converts per-resource problems into context entries.
			r.dc.AddError(rule.Code(), "rule failed: %v", err)
			if r.policy == HaltOnFailure {
				return OutcomeHalted, fmt.Errorf("rule %s: %w", rule.Code(), err)
			}
			r.sink.Tracef("pipeline: rule %s failed, continuing per policy", rule.Code())
		}
	}
	return OutcomeCompleted, nil
}

// invoke runs one rule, converting a panic into an error so one misbehaving
// rule cannot take down the run unrecorded.
func (r *Runner) invoke(ctx context.Context, rule rules.Rule) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return rule.Analyze(ctx)
}

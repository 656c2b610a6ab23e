// Package rules implements the conversion rules that turn the discovered
// legacy topology into the target message-bus architecture.
//
// Every rule is constructed with exactly three collaborators — the
// integration model, the diagnostics context, and a trace sink — and
// exposes one cancellable Analyze operation. Rules read the source side,
// mutate only the target subtree they own, and append findings to the
// context. A per-resource problem never escapes Analyze; it becomes a
// context error and processing continues with the next resource.
package rules

import (
	"context"

	"buslift/pkg/diag"
	"buslift/pkg/model"
)

// Rule is the single capability every conversion rule implements.
type Rule interface {
	// Code returns the rule's stable short identifier (e.g. "SC001"), used
	// for attribution in diagnostics. It is never used for dispatch: rules
	// are registered explicitly, in order, at pipeline assembly time.
	Code() string

	// Analyze converts this rule's relevant source resources into target
	// nodes. It must be idempotent, must tolerate an empty or partially
	// populated source model, and must check ctx between resources so a
	// requested cancellation never leaves a resource half-converted.
	Analyze(ctx context.Context) error
}

// collaborators is the shared construction state of every rule.
type collaborators struct {
	model *model.IntegrationModel
	dc    *diag.Context
	sink  diag.Sink
}

// newCollaborators validates each required collaborator independently, so a
// construction failure names exactly the one that was missing.
func newCollaborators(code string, m *model.IntegrationModel, dc *diag.Context, sink diag.Sink) (collaborators, error) {
	if m == nil {
		return collaborators{}, &ArgumentError{Rule: code, Name: "model"}
	}
	if dc == nil {
		return collaborators{}, &ArgumentError{Rule: code, Name: "context"}
	}
	if sink == nil {
		return collaborators{}, &ArgumentError{Rule: code, Name: "sink"}
	}
	return collaborators{model: m, dc: dc, sink: sink}, nil
}

package rules

// application.go — AP001: application conversion.
//
// Creates one target application per source application, preserving source
// order. Resource rules (SC001, MP001, EP001) find these pre-created
// applications, or create them lazily when AP001 is not part of the run —
// both paths converge on the same deterministic keys.

import (
	"context"

	"buslift/pkg/diag"
	"buslift/pkg/model"
)

const codeApplication = "AP001"

// ApplicationRule converts source applications into target applications.
type ApplicationRule struct {
	collaborators
}

// NewApplicationRule constructs the rule, failing with an ArgumentError when
// any collaborator is absent.
func NewApplicationRule(m *model.IntegrationModel, dc *diag.Context, sink diag.Sink) (*ApplicationRule, error) {
	c, err := newCollaborators(codeApplication, m, dc, sink)
	if err != nil {
		return nil, err
	}
	return &ApplicationRule{collaborators: c}, nil
}

// Code returns "AP001".
func (r *ApplicationRule) Code() string { return codeApplication }

// Analyze mirrors every named source application onto the target bus.
func (r *ApplicationRule) Analyze(ctx context.Context) error {
	for i := range r.model.Source.Applications {
		if err := ctx.Err(); err != nil {
			return err
		}
		app := &r.model.Source.Applications[i]
		if app.Name == "" {
			r.dc.AddError(codeApplication, "source application at position %d has no name; cannot derive a target application", i)
			continue
		}
		bus := r.model.Target.EnsureMessageBus()
		if bus.FindApplication(app.Name) != nil {
			r.sink.Tracef("%s: application %q already present, skipping", codeApplication, app.Name)
			continue
		}
		target := bus.EnsureApplication(app.Name)
		r.sink.Tracef("%s: created application %s", codeApplication, target.Key)
	}
	return nil
}

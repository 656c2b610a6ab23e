package rules

// transform.go — MP001: map → transform conversion.
//
// A map referencing a schema that cannot be resolved in its owning
// application is a migration finding, not a bug: the map is reported as a
// context error and conversion continues with the next map.

import (
	"context"

	"buslift/pkg/diag"
	"buslift/pkg/model"
)

const codeTransform = "MP001"

// TransformRule converts source maps into target transforms.
type TransformRule struct {
	collaborators
}

// NewTransformRule constructs the rule, failing with an ArgumentError when
// any collaborator is absent.
func NewTransformRule(m *model.IntegrationModel, dc *diag.Context, sink diag.Sink) (*TransformRule, error) {
	c, err := newCollaborators(codeTransform, m, dc, sink)
	if err != nil {
		return nil, err
	}
	return &TransformRule{collaborators: c}, nil
}

// Code returns "MP001".
func (r *TransformRule) Code() string { return codeTransform }

// Analyze converts every resolvable map in the source model.
func (r *TransformRule) Analyze(ctx context.Context) error {
	for i := range r.model.Source.Applications {
		if err := ctx.Err(); err != nil {
			return err
		}
		app := &r.model.Source.Applications[i]
		if len(app.Maps) == 0 {
			continue
		}
		for _, mp := range app.Maps {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.convert(app, mp)
		}
	}
	return nil
}

// convert appends one transform for a map whose schema references resolve.
func (r *TransformRule) convert(app *model.Application, mp model.Map) {
	if mp.Name == "" {
		r.dc.AddError(codeTransform, "application %q contains a map with no name; cannot derive a transform", app.Name)
		return
	}
	src := app.FindSchema(mp.SourceSchema)
	if src == nil {
		r.dc.AddError(codeTransform, "map %q in application %q references unknown source schema %q", mp.Name, app.Name, mp.SourceSchema)
		return
	}
	dst := app.FindSchema(mp.TargetSchema)
	if dst == nil {
		r.dc.AddError(codeTransform, "map %q in application %q references unknown target schema %q", mp.Name, app.Name, mp.TargetSchema)
		return
	}

	target := r.model.Target.EnsureMessageBus().EnsureApplication(app.Name)
	key := model.TransformKey(app.Name, mp.Name)
	if target.FindTransform(key) != nil {
		r.sink.Tracef("%s: transform %s already present, skipping", codeTransform, key)
		return
	}
	target.Transforms = append(target.Transforms, &model.Transform{
		Name:          mp.Name,
		Key:           key,
		SourceMessage: model.MessageKey(app.Name, src.Name),
		TargetMessage: model.MessageKey(app.Name, dst.Name),
	})
	r.sink.Tracef("%s: created transform %s", codeTransform, key)
}

package rules

// schema_message.go — SC001: schema → message conversion.
//
// For every source application that contains schema resources, each
// document schema becomes one Message on the corresponding target
// application, followed by one Message per envelope schema. Ordering
// invariant: within one application's message sequence, document messages
// precede envelope messages; within each group, source order is preserved.
// Property schemas are not messages and are ignored.

import (
	"context"

	"buslift/pkg/diag"
	"buslift/pkg/model"
)

const codeSchemaMessage = "SC001"

// messageContentType is the content type assigned to converted messages.
const messageContentType = "application/xml"

// SchemaMessageRule converts document and envelope schemas into target
// messages.
type SchemaMessageRule struct {
	collaborators
}

// NewSchemaMessageRule constructs the rule, failing with an ArgumentError
// when any collaborator is absent.
func NewSchemaMessageRule(m *model.IntegrationModel, dc *diag.Context, sink diag.Sink) (*SchemaMessageRule, error) {
	c, err := newCollaborators(codeSchemaMessage, m, dc, sink)
	if err != nil {
		return nil, err
	}
	return &SchemaMessageRule{collaborators: c}, nil
}

// Code returns "SC001".
func (r *SchemaMessageRule) Code() string { return codeSchemaMessage }

// Analyze converts every relevant schema in the source model. An
// application with zero schema resources contributes zero messages and zero
// diagnostics.
func (r *SchemaMessageRule) Analyze(ctx context.Context) error {
	for i := range r.model.Source.Applications {
		if err := ctx.Err(); err != nil {
			return err
		}
		app := &r.model.Source.Applications[i]

		docs := app.DocumentSchemas()
		envs := app.EnvelopeSchemas()
		if len(docs) == 0 && len(envs) == 0 {
			continue
		}

		target := r.model.Target.EnsureMessageBus().EnsureApplication(app.Name)
		if err := r.convert(ctx, app.Name, target, docs); err != nil {
			return err
		}
		if err := r.convert(ctx, app.Name, target, envs); err != nil {
			return err
		}
	}
	return nil
}

// convert appends one message per schema, skipping schemas already
// converted. Each conversion is atomic: either a complete message with both
// name and key is appended, or nothing is.
func (r *SchemaMessageRule) convert(ctx context.Context, appName string, target *model.TargetApplication, schemas []model.Schema) error {
	for _, s := range schemas {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Name == "" {
			r.dc.AddError(codeSchemaMessage, "application %q contains a %s schema with no name; cannot derive a message", appName, s.Type)
			continue
		}
		key := model.MessageKey(appName, s.Name)
		if target.FindMessage(key) != nil {
			r.sink.Tracef("%s: message %s already present, skipping", codeSchemaMessage, key)
			continue
		}
		target.Messages = append(target.Messages, &model.Message{
			Name:        s.Name,
			Key:         key,
			ContentType: messageContentType,
		})
		r.sink.Tracef("%s: created message %s", codeSchemaMessage, key)
	}
	return nil
}

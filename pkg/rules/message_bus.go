package rules

// message_bus.go — MB001: message-bus scaffolding.
//
// Ensures the target tree has its single message bus once there is anything
// to migrate. Later rules also create the bus lazily, so MB001 is a
// convenience for runs that want the bus up front; with an empty source
// model it is a strict no-op.

import (
	"context"

	"buslift/pkg/diag"
	"buslift/pkg/model"
)

const codeMessageBus = "MB001"

// MessageBusRule scaffolds the target message bus.
type MessageBusRule struct {
	collaborators
}

// NewMessageBusRule constructs the rule, failing with an ArgumentError when
// any collaborator is absent.
func NewMessageBusRule(m *model.IntegrationModel, dc *diag.Context, sink diag.Sink) (*MessageBusRule, error) {
	c, err := newCollaborators(codeMessageBus, m, dc, sink)
	if err != nil {
		return nil, err
	}
	return &MessageBusRule{collaborators: c}, nil
}

// Code returns "MB001".
func (r *MessageBusRule) Code() string { return codeMessageBus }

// Analyze creates the message bus when the source model has at least one
// application and no earlier phase created it already.
func (r *MessageBusRule) Analyze(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(r.model.Source.Applications) == 0 {
		return nil
	}
	if r.model.Target.MessageBus != nil {
		r.sink.Tracef("%s: message bus already present, skipping", codeMessageBus)
		return nil
	}
	bus := r.model.Target.EnsureMessageBus()
	r.sink.Tracef("%s: created message bus %s", codeMessageBus, bus.Key)
	return nil
}

package rules

// endpoint.go — EP001: port → endpoint conversion.
//
// Receive ports are converted before send ports within each application.
// A port with an adapter outside the supported set still converts, but the
// run gains a warning so the caller knows manual endpoint configuration is
// required.

import (
	"context"

	"buslift/pkg/diag"
	"buslift/pkg/model"
)

const codeEndpoint = "EP001"

// supportedAdapters are the transport adapters with a known target mapping.
var supportedAdapters = map[string]bool{
	"FILE": true,
	"FTP":  true,
	"SFTP": true,
	"HTTP": true,
	"SOAP": true,
}

// EndpointRule converts source receive and send ports into target endpoints.
type EndpointRule struct {
	collaborators
}

// NewEndpointRule constructs the rule, failing with an ArgumentError when
// any collaborator is absent.
func NewEndpointRule(m *model.IntegrationModel, dc *diag.Context, sink diag.Sink) (*EndpointRule, error) {
	c, err := newCollaborators(codeEndpoint, m, dc, sink)
	if err != nil {
		return nil, err
	}
	return &EndpointRule{collaborators: c}, nil
}

// Code returns "EP001".
func (r *EndpointRule) Code() string { return codeEndpoint }

// Analyze converts every port in the source model.
func (r *EndpointRule) Analyze(ctx context.Context) error {
	for i := range r.model.Source.Applications {
		if err := ctx.Err(); err != nil {
			return err
		}
		app := &r.model.Source.Applications[i]
		if len(app.ReceivePorts) == 0 && len(app.SendPorts) == 0 {
			continue
		}
		for _, p := range app.ReceivePorts {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.convert(app.Name, p, model.PortReceive)
		}
		for _, p := range app.SendPorts {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.convert(app.Name, p, model.PortSend)
		}
	}
	return nil
}

// convert appends one endpoint for a port. The owning list decides the
// endpoint's direction; a contradictory Direction field on the port itself
// is reported and overridden.
func (r *EndpointRule) convert(appName string, p model.Port, direction model.PortDirection) {
	if p.Name == "" {
		r.dc.AddError(codeEndpoint, "application %q contains a %s port with no name; cannot derive an endpoint", appName, direction)
		return
	}
	target := r.model.Target.EnsureMessageBus().EnsureApplication(appName)
	key := model.EndpointKey(appName, p.Name)
	if target.FindEndpoint(key) != nil {
		r.sink.Tracef("%s: endpoint %s already present, skipping", codeEndpoint, key)
		return
	}
	if p.Direction != "" && p.Direction != direction {
		r.dc.AddWarning(codeEndpoint, "port %q in application %q is declared %s but listed among %s ports; converting as %s", p.Name, appName, p.Direction, direction, direction)
	}
	if p.Adapter != "" && !supportedAdapters[p.Adapter] {
		r.dc.AddWarning(codeEndpoint, "port %q in application %q uses unrecognised adapter %q; manual endpoint configuration required", p.Name, appName, p.Adapter)
	}
	target.Endpoints = append(target.Endpoints, &model.Endpoint{
		Name:      p.Name,
		Key:       key,
		Direction: direction,
		Adapter:   p.Adapter,
		Address:   p.Address,
		TwoWay:    p.TwoWay,
	})
	r.sink.Tracef("%s: created endpoint %s", codeEndpoint, key)
}

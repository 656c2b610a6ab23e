// Package model defines the shared data model the conversion rules operate
// on: the source-side ApplicationModel discovered on the legacy integration
// platform, the target-side MigrationTargetModel built up by the rules, and
// the deterministic identity keys that link the two.
package model

// source.go — Source model: the discovered legacy-platform topology.
//
// Built once per run by the external parsing stage and read-only from the
// rules' perspective. A rule that needs to stash derived intermediate state
// uses the diagnostics context, never this tree. Sequence order everywhere
// is discovery order and is preserved into the target model.

// SchemaType classifies a source schema artifact.
type SchemaType string

const (
	SchemaDocument SchemaType = "document"
	SchemaEnvelope SchemaType = "envelope"
	SchemaProperty SchemaType = "property"
)

// PortDirection tells whether a port receives into or sends out of the
// legacy platform.
type PortDirection string

const (
	PortReceive PortDirection = "receive"
	PortSend    PortDirection = "send"
)

// IntegrationModel is the combined view handed to every conversion rule:
// the read-only source side and the mutable target side of one migration.
type IntegrationModel struct {
	Source ApplicationModel     `yaml:"source"`
	Target MigrationTargetModel `yaml:"target"`
}

// ApplicationModel is the root of the source tree.
type ApplicationModel struct {
	Applications []Application `yaml:"applications,omitempty"`
}

// Application is one deployed application on the legacy platform, owning its
// discovered resource descriptors.
type Application struct {
	Name           string          `yaml:"name"`
	Schemas        []Schema        `yaml:"schemas,omitempty"`
	Maps           []Map           `yaml:"maps,omitempty"`
	Orchestrations []Orchestration `yaml:"orchestrations,omitempty"`
	Pipelines      []Pipeline      `yaml:"pipelines,omitempty"`
	ReceivePorts   []Port          `yaml:"receive_ports,omitempty"`
	SendPorts      []Port          `yaml:"send_ports,omitempty"`
}

// Schema describes a message schema artifact.
type Schema struct {
	Name      string     `yaml:"name"`
	Namespace string     `yaml:"namespace,omitempty"`
	Type      SchemaType `yaml:"type"`
	RootNode  string     `yaml:"root_node,omitempty"`
}

// Map describes a transformation artifact between two schemas. The schema
// references are names local to the owning application.
type Map struct {
	Name         string `yaml:"name"`
	SourceSchema string `yaml:"source_schema"`
	TargetSchema string `yaml:"target_schema"`
}

// Orchestration describes a long-running process artifact.
type Orchestration struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module,omitempty"`
}

// Pipeline describes a receive or send processing pipeline.
type Pipeline struct {
	Name      string        `yaml:"name"`
	Direction PortDirection `yaml:"direction"`
	Stages    []string      `yaml:"stages,omitempty"`
}

// Port describes a receive or send port and its transport adapter.
type Port struct {
	Name      string        `yaml:"name"`
	Direction PortDirection `yaml:"direction"`
	Adapter   string        `yaml:"adapter,omitempty"`
	Address   string        `yaml:"address,omitempty"`
	TwoWay    bool          `yaml:"two_way,omitempty"`
}

// FindApplication returns the source application with the given name, or nil.
func (m *ApplicationModel) FindApplication(name string) *Application {
	for i := range m.Applications {
		if m.Applications[i].Name == name {
			return &m.Applications[i]
		}
	}
	return nil
}

// FindSchema returns the schema with the given name, or nil.
func (a *Application) FindSchema(name string) *Schema {
	for i := range a.Schemas {
		if a.Schemas[i].Name == name {
			return &a.Schemas[i]
		}
	}
	return nil
}

// DocumentSchemas returns the application's document schemas in source order.
func (a *Application) DocumentSchemas() []Schema {
	return a.schemasOfType(SchemaDocument)
}

// EnvelopeSchemas returns the application's envelope schemas in source order.
func (a *Application) EnvelopeSchemas() []Schema {
	return a.schemasOfType(SchemaEnvelope)
}

func (a *Application) schemasOfType(t SchemaType) []Schema {
	var out []Schema
	for _, s := range a.Schemas {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

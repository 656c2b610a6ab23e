package model

// target.go — Target model: the cloud-native architecture being built.
//
// Mutated exclusively by conversion rules, in rule order. Nodes are created
// lazily by whichever rule first needs them, or pre-seeded by an external
// scaffolding step; the Ensure* helpers make both paths converge on the same
// node. Sequence order is insertion order and is semantically visible.

// MigrationTargetModel is the root of the target tree.
type MigrationTargetModel struct {
	MessageBus *MessageBus `yaml:"message_bus,omitempty"`
}

// MessageBus is the single bus every target application hangs off.
type MessageBus struct {
	Name         string               `yaml:"name"`
	Key          string               `yaml:"key"`
	Applications []*TargetApplication `yaml:"applications,omitempty"`
}

// TargetApplication mirrors one source application on the target side.
type TargetApplication struct {
	Name       string       `yaml:"name"`
	Key        string       `yaml:"key"`
	Messages   []*Message   `yaml:"messages,omitempty"`
	Endpoints  []*Endpoint  `yaml:"endpoints,omitempty"`
	Transforms []*Transform `yaml:"transforms,omitempty"`
}

// Message is a target message definition derived from a source schema.
// Name and Key are immutable once set by the creating rule.
type Message struct {
	Name        string `yaml:"name"`
	Key         string `yaml:"key"`
	ContentType string `yaml:"content_type,omitempty"`
}

// Endpoint is a target endpoint derived from a source port.
type Endpoint struct {
	Name      string        `yaml:"name"`
	Key       string        `yaml:"key"`
	Direction PortDirection `yaml:"direction"`
	Adapter   string        `yaml:"adapter,omitempty"`
	Address   string        `yaml:"address,omitempty"`
	TwoWay    bool          `yaml:"two_way,omitempty"`
}

// Transform is a target transformation derived from a source map. The
// message references are target message keys.
type Transform struct {
	Name          string `yaml:"name"`
	Key           string `yaml:"key"`
	SourceMessage string `yaml:"source_message"`
	TargetMessage string `yaml:"target_message"`
}

// EnsureMessageBus returns the model's message bus, creating it if no
// earlier rule or scaffolding step has.
func (t *MigrationTargetModel) EnsureMessageBus() *MessageBus {
	if t.MessageBus == nil {
		t.MessageBus = &MessageBus{Name: "Message Bus", Key: BusKey}
	}
	return t.MessageBus
}

// FindApplication returns the target application with the given name, or nil.
func (b *MessageBus) FindApplication(name string) *TargetApplication {
	for _, a := range b.Applications {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// EnsureApplication returns the target application for a source application
// name, appending a new one with its deterministic key when absent.
func (b *MessageBus) EnsureApplication(name string) *TargetApplication {
	if a := b.FindApplication(name); a != nil {
		return a
	}
	a := &TargetApplication{Name: name, Key: ApplicationKey(name)}
	b.Applications = append(b.Applications, a)
	return a
}

// FindMessage returns the message with the given key, or nil.
func (a *TargetApplication) FindMessage(key string) *Message {
	for _, m := range a.Messages {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// FindEndpoint returns the endpoint with the given key, or nil.
func (a *TargetApplication) FindEndpoint(key string) *Endpoint {
	for _, e := range a.Endpoints {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// FindTransform returns the transform with the given key, or nil.
func (a *TargetApplication) FindTransform(key string) *Transform {
	for _, tr := range a.Transforms {
		if tr.Key == key {
			return tr
		}
	}
	return nil
}

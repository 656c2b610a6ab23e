package model

// keys.go — Deterministic identity keys.
//
// A key encodes a target artifact's source lineage. Re-running a rule over an
// already-converted model regenerates the same key and finds the existing
// node instead of duplicating it, which is what makes every rule idempotent.
// Keys are unique within a run because (application, resource) identity is
// unique in the source model.
//
// Format: "keyMessageBus: <application>[:<resource>]".

// BusKey identifies the message bus itself.
const BusKey = "keyMessageBus"

// ApplicationKey returns the identity key for a target application.
func ApplicationKey(app string) string {
	return BusKey + ": " + app
}

// MessageKey returns the identity key for a message derived from a schema.
func MessageKey(app, schema string) string {
	return BusKey + ": " + app + ":" + schema
}

// EndpointKey returns the identity key for an endpoint derived from a port.
func EndpointKey(app, port string) string {
	return BusKey + ": " + app + ":" + port
}

// TransformKey returns the identity key for a transform derived from a map.
func TransformKey(app, mapName string) string {
	return BusKey + ": " + app + ":" + mapName
}

package model

import (
	"fmt"
	"sort"
)

// The catalog keeps track of the component kinds compiled into the binary,
// so model trees can be composed from configuration by kind name. Kinds are
// registered from init functions of the concrete packages.

// Factory builds a sub-model of one kind with the given instance name.
type Factory func(name string) (Component, error)

type catalogEntry struct {
	description string
	factory     Factory
}

var (
	modelCatalog      = make(map[string]catalogEntry)
	connectionCatalog = make(map[string]string)
)

// RegisterModel adds a sub-model kind to the catalog. Registering a kind
// twice panics; kinds are compile-time identity.
func RegisterModel(kind, description string, f Factory) {
	if _, dup := modelCatalog[kind]; dup {
		panic(fmt.Sprintf("model: kind %q registered twice", kind))
	}
	modelCatalog[kind] = catalogEntry{description: description, factory: f}
}

// RegisterConnection records a connection kind and its description.
// Connections are constructed from attachments, not from configuration, so
// only the descriptive entry is kept.
func RegisterConnection(kind, description string) {
	if _, dup := connectionCatalog[kind]; dup {
		panic(fmt.Sprintf("model: connection kind %q registered twice", kind))
	}
	connectionCatalog[kind] = description
}

// NewOfKind builds a sub-model of a registered kind.
func NewOfKind(kind, name string) (Component, error) {
	e, ok := modelCatalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown model kind %q", ErrStructural, kind)
	}
	return e.factory(name)
}

// ModelKinds returns the registered sub-model kinds, sorted.
func ModelKinds() []string {
	out := make([]string, 0, len(modelCatalog))
	for k := range modelCatalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ConnectionKinds returns the registered connection kinds, sorted.
func ConnectionKinds() []string {
	out := make([]string, 0, len(connectionCatalog))
	for k := range connectionCatalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// KindDescription returns the description of a registered kind, model or
// connection.
func KindDescription(kind string) string {
	if e, ok := modelCatalog[kind]; ok {
		return e.description
	}
	return connectionCatalog[kind]
}

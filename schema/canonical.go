package schema

import (
	"github.com/erraggy/apitypes/jsondoc"
)

// Default metadata substituted by NormalizeRemote.
const (
	DefaultRemoteTitle   = "Remote API"
	DefaultRemoteVersion = "1.0.0"
)

// RootDefinitionName names the single definition produced when a JSON Schema
// document has no definitions container.
const RootDefinitionName = "Root"

// CanonicalSchema is the dialect-independent form of a schema document.
type CanonicalSchema struct {
	// Title is info.title (OpenAPI) or title (JSON Schema); nil when absent
	Title *string
	// Version is info.version (OpenAPI) or version (JSON Schema); nil when absent
	Version *string
	// Definitions lists named schemas in source order
	Definitions []Definition
	// Paths is the top-level paths value, passed through untouched
	Paths any
	// Dialect is the detected source dialect
	Dialect Dialect
}

// Definition is one named schema.
type Definition struct {
	Name   string
	Schema *Node
}

// Names returns the definition names in order.
func (s *CanonicalSchema) Names() []string {
	names := make([]string, 0, len(s.Definitions))
	for _, def := range s.Definitions {
		names = append(names, def.Name)
	}
	return names
}

// Lookup returns the definition named name.
func (s *CanonicalSchema) Lookup(name string) (*Node, bool) {
	for _, def := range s.Definitions {
		if def.Name == name {
			return def.Schema, true
		}
	}
	return nil, false
}

// TitleOr returns the title, or fallback when the title is absent or empty.
func (s *CanonicalSchema) TitleOr(fallback string) string {
	if s.Title == nil || *s.Title == "" {
		return fallback
	}
	return *s.Title
}

// ToValue converts the schema back into the ordered JSON value model:
// title, version, definitions, paths, with absent members omitted.
// Definitions are emitted as their source values.
func (s *CanonicalSchema) ToValue() *jsondoc.Object {
	out := jsondoc.NewObject(4)
	if s.Title != nil {
		out.Set("title", *s.Title)
	}
	if s.Version != nil {
		out.Set("version", *s.Version)
	}
	defs := jsondoc.NewObject(len(s.Definitions))
	for _, def := range s.Definitions {
		var raw any
		if def.Schema != nil {
			raw = def.Schema.Raw
		}
		defs.Set(def.Name, raw)
	}
	out.Set("definitions", defs)
	if s.Paths != nil {
		out.Set("paths", s.Paths)
	}
	return out
}

// MarshalJSON implements json.Marshaler with source key order.
func (s *CanonicalSchema) MarshalJSON() ([]byte, error) {
	return jsondoc.Marshal(s.ToValue())
}

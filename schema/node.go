package schema

import (
	"slices"

	"github.com/erraggy/apitypes/jsondoc"
)

// Node is one schema object reduced to the keywords that matter for type
// mapping. Any subset of fields may be set; classification is left to the
// typemap package.
//
// Slice fields are nil when the keyword is absent and non-nil (possibly
// empty) when it is present.
type Node struct {
	// Type is the "type" keyword when it is a string
	Type string
	// Format is the "format" keyword when it is a string
	Format string
	// Description is the "description" keyword when it is a string
	Description string
	// Properties holds "properties" in declaration order
	Properties []Property
	// Required holds the string members of "required"
	Required []string
	// Items is the "items" schema when it is an object
	Items *Node
	// Enum holds the "enum" values verbatim
	Enum []any
	// OneOf holds the "oneOf" variants
	OneOf []*Node
	// AnyOf holds the "anyOf" variants
	AnyOf []*Node
	// Raw is the source value this node was built from
	Raw any
}

// Property is a named member of an object schema.
type Property struct {
	Name   string
	Schema *Node
}

// NodeFromValue builds a Node from a decoded JSON value. Values that are not
// objects produce an empty node that still carries Raw.
func NodeFromValue(v any) *Node {
	n := &Node{Raw: v}
	obj, ok := jsondoc.AsObject(v)
	if !ok {
		return n
	}

	n.Type = stringField(obj, "type")
	n.Format = stringField(obj, "format")
	n.Description = stringField(obj, "description")

	if raw, _ := obj.Get("properties"); raw != nil {
		if props, ok := jsondoc.AsObject(raw); ok {
			n.Properties = make([]Property, 0, props.Len())
			for name, propValue := range props.All() {
				n.Properties = append(n.Properties, Property{Name: name, Schema: NodeFromValue(propValue)})
			}
		}
	}

	if raw, _ := obj.Get("required"); raw != nil {
		if list, ok := jsondoc.AsArray(raw); ok {
			n.Required = make([]string, 0, len(list))
			for _, item := range list {
				if name, ok := item.(string); ok {
					n.Required = append(n.Required, name)
				}
			}
		}
	}

	if raw, _ := obj.Get("items"); raw != nil {
		if _, ok := jsondoc.AsObject(raw); ok {
			n.Items = NodeFromValue(raw)
		}
	}

	if raw, _ := obj.Get("enum"); raw != nil {
		if list, ok := jsondoc.AsArray(raw); ok {
			n.Enum = make([]any, len(list))
			copy(n.Enum, list)
		}
	}

	n.OneOf = nodeList(obj, "oneOf")
	n.AnyOf = nodeList(obj, "anyOf")

	return n
}

// HasProperties reports whether the properties keyword was present.
func (n *Node) HasProperties() bool { return n != nil && n.Properties != nil }

// HasEnum reports whether the enum keyword was present.
func (n *Node) HasEnum() bool { return n != nil && n.Enum != nil }

// HasOneOf reports whether the oneOf keyword was present.
func (n *Node) HasOneOf() bool { return n != nil && n.OneOf != nil }

// HasAnyOf reports whether the anyOf keyword was present.
func (n *Node) HasAnyOf() bool { return n != nil && n.AnyOf != nil }

// IsRequired reports whether name is listed in the node's required set.
func (n *Node) IsRequired(name string) bool {
	return n != nil && slices.Contains(n.Required, name)
}

func stringField(obj *jsondoc.Object, key string) string {
	v, _ := obj.Get(key)
	s, _ := jsondoc.AsString(v)
	return s
}

func nodeList(obj *jsondoc.Object, key string) []*Node {
	raw, _ := obj.Get(key)
	if raw == nil {
		return nil
	}
	list, ok := jsondoc.AsArray(raw)
	if !ok {
		return nil
	}
	nodes := make([]*Node, 0, len(list))
	for _, item := range list {
		nodes = append(nodes, NodeFromValue(item))
	}
	return nodes
}

package typemap

import (
	"github.com/erraggy/apitypes/schema"
)

// DefaultMaxDepth bounds recursion when mapping nested nodes.
const DefaultMaxDepth = 100

// Mapper converts schema nodes into TypeNode trees.
// The zero value is ready to use.
type Mapper struct {
	// MaxDepth is the number of nesting levels mapped before degrading to
	// Unknown.
	// Zero or negative means DefaultMaxDepth.
	MaxDepth int
	// Logger receives a debug record whenever the depth limit is hit
	Logger schema.Logger
}

// Map converts node with a default Mapper.
func Map(node *schema.Node) TypeNode {
	var m Mapper
	return m.Map(node)
}

// Map converts node. It never fails; a nil node maps to Unknown.
func (m *Mapper) Map(node *schema.Node) TypeNode {
	maxDepth := m.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	w := &mapWalk{maxDepth: maxDepth, logger: schema.LoggerOrNop(m.Logger)}
	return w.node(node, 0)
}

type mapWalk struct {
	maxDepth int
	logger   schema.Logger
	warned   bool
}

func (w *mapWalk) node(n *schema.Node, depth int) TypeNode {
	if n == nil {
		return &Unknown{}
	}
	if depth >= w.maxDepth {
		if !w.warned {
			w.logger.Debug("schema nesting exceeds depth limit, mapping as unknown", "maxDepth", w.maxDepth)
			w.warned = true
		}
		return &Unknown{}
	}

	switch {
	case n.Type == "object" || n.HasProperties():
		obj := &Object{Properties: make([]Property, 0, len(n.Properties))}
		for _, prop := range n.Properties {
			var desc string
			if prop.Schema != nil {
				desc = prop.Schema.Description
			}
			obj.Properties = append(obj.Properties, Property{
				Name:        prop.Name,
				Type:        w.node(prop.Schema, depth+1),
				Required:    n.IsRequired(prop.Name),
				Description: desc,
			})
		}
		return obj

	case n.Type == "array":
		return &Array{Item: w.node(n.Items, depth+1)}

	case n.HasEnum():
		values := make([]any, len(n.Enum))
		copy(values, n.Enum)
		return &Enum{Values: values}

	case n.HasOneOf():
		return w.union(n.OneOf, depth)

	case n.HasAnyOf():
		return w.union(n.AnyOf, depth)

	default:
		return MapPrimitive(n.Type, n.Format)
	}
}

func (w *mapWalk) union(variants []*schema.Node, depth int) *Union {
	u := &Union{Variants: make([]TypeNode, 0, len(variants))}
	for _, v := range variants {
		u.Variants = append(u.Variants, w.node(v, depth+1))
	}
	return u
}

package renderer

import (
	"strings"

	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/typemap"
)

func (r *Renderer) renderJSDoc(s *schema.CanonicalSchema) string {
	var b strings.Builder
	if r.IncludeComments {
		b.WriteString(r.blockBanner(s))
	}
	names := declarationNames(s)
	for i, def := range s.Definitions {
		r.writeJSDocDefinition(&b, def, names[i])
		b.WriteString("\n\n")
	}
	return b.String()
}

func (r *Renderer) writeJSDocDefinition(b *strings.Builder, def schema.Definition, name string) {
	node := r.mapDefinition(def)
	obj, isObject := node.(*typemap.Object)

	b.WriteString("/**\n")
	if isObject {
		b.WriteString(" * @typedef {Object} " + name + "\n")
	} else {
		b.WriteString(" * @typedef {" + typemap.Visit[string](node, jsdocType{}) + "} " + name + "\n")
	}
	if desc := definitionDescription(def); desc != "" {
		b.WriteString(" * @description " + singleLine(desc) + "\n")
	}
	if isObject {
		for _, p := range obj.Properties {
			typ := typemap.Visit[string](p.Type, jsdocType{})
			if !p.Required {
				typ += "="
			}
			b.WriteString(" * @property {" + typ + "} " + p.Name)
			if p.Description != "" {
				b.WriteString(" - " + singleLine(p.Description))
			}
			b.WriteByte('\n')
		}
	}
	b.WriteString(" */")
}

// jsdocType renders a best-effort JSDoc type expression. Nested objects are
// not expanded.
type jsdocType struct{}

var _ typemap.Visitor[string] = jsdocType{}

func (jsdocType) VisitObject(*typemap.Object) string { return "Object" }

func (j jsdocType) VisitArray(a *typemap.Array) string {
	return typemap.Visit[string](a.Item, j) + "[]"
}

func (jsdocType) VisitEnum(e *typemap.Enum) string {
	if len(e.Values) == 0 {
		return "*"
	}
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = literal(v)
	}
	return group(parts)
}

func (j jsdocType) VisitUnion(u *typemap.Union) string {
	if len(u.Variants) == 0 {
		return "*"
	}
	parts := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		parts[i] = typemap.Visit[string](v, j)
	}
	return group(parts)
}

func (jsdocType) VisitPrimitive(p *typemap.Primitive) string {
	if p.AcceptsDate() {
		return "(Date|string)"
	}
	switch p.Kind {
	case typemap.KindString:
		return "string"
	case typemap.KindNumber:
		return "number"
	case typemap.KindBoolean:
		return "boolean"
	case typemap.KindNull:
		return "null"
	default:
		return "*"
	}
}

func (jsdocType) VisitUnknown(*typemap.Unknown) string { return "*" }

// group joins alternatives with "|", parenthesized when there is more than one.
func group(parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, "|") + ")"
}

package renderer

import (
	"strings"

	"github.com/erraggy/apitypes/internal/naming"
	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/typemap"
)

const tsIndent = "  "

func (r *Renderer) renderTypeScript(s *schema.CanonicalSchema) string {
	var b strings.Builder
	if r.IncludeComments {
		b.WriteString(r.blockBanner(s))
	}

	names := declarationNames(s)
	for i, def := range s.Definitions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		r.writeTypeScriptDefinition(&b, def, names[i])
	}

	if len(names) > 0 {
		list := strings.Join(names, ", ")
		b.WriteString("\n\n// Exports\n")
		b.WriteString("export type { " + list + " };\n")
		if r.ExportMode.includesDefault() {
			b.WriteString("\nexport default { " + list + " };\n")
		}
	}
	return b.String()
}

func (r *Renderer) writeTypeScriptDefinition(b *strings.Builder, def schema.Definition, name string) {
	if desc := definitionDescription(def); r.IncludeComments && desc != "" {
		b.WriteString("/**\n")
		for _, line := range strings.Split(desc, "\n") {
			b.WriteString(strings.TrimRight(" * "+escapeCommentEnd(line), " "))
			b.WriteByte('\n')
		}
		b.WriteString(" */\n")
	}

	node := r.mapDefinition(def)
	expr := typemap.Visit[string](node, &tsType{comments: r.IncludeComments})
	if _, isObject := node.(*typemap.Object); isObject {
		b.WriteString("export interface " + name + " " + expr)
		return
	}
	b.WriteString("export type " + name + " = " + expr + ";")
}

// tsType renders a TypeNode as a TypeScript type expression. depth is the
// nesting level of the enclosing declaration, used to indent object members.
type tsType struct {
	depth    int
	comments bool
}

var _ typemap.Visitor[string] = (*tsType)(nil)

func (t *tsType) VisitObject(o *typemap.Object) string {
	if len(o.Properties) == 0 {
		return "{}"
	}
	indent := strings.Repeat(tsIndent, t.depth+1)
	child := &tsType{depth: t.depth + 1, comments: t.comments}

	var b strings.Builder
	b.WriteString("{\n")
	for i, p := range o.Properties {
		if i > 0 {
			b.WriteByte('\n')
		}
		if t.comments && p.Description != "" {
			b.WriteString(indent + "/** " + singleLine(p.Description) + " */\n")
		}
		b.WriteString(indent)
		b.WriteString(tsPropertyKey(p.Name))
		if !p.Required {
			b.WriteByte('?')
		}
		b.WriteString(": ")
		b.WriteString(typemap.Visit[string](p.Type, child))
		b.WriteByte(';')
	}
	b.WriteString("\n" + strings.Repeat(tsIndent, t.depth) + "}")
	return b.String()
}

func (t *tsType) VisitArray(a *typemap.Array) string {
	item := typemap.Visit[string](a.Item, t)
	if needsParens(a.Item) {
		item = "(" + item + ")"
	}
	return item + "[]"
}

func (t *tsType) VisitEnum(e *typemap.Enum) string {
	if len(e.Values) == 0 {
		return "never"
	}
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = literal(v)
	}
	return strings.Join(parts, " | ")
}

func (t *tsType) VisitUnion(u *typemap.Union) string {
	if len(u.Variants) == 0 {
		return "never"
	}
	parts := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		parts[i] = typemap.Visit[string](v, t)
	}
	return strings.Join(parts, " | ")
}

func (t *tsType) VisitPrimitive(p *typemap.Primitive) string {
	if p.AcceptsDate() {
		return "Date | string"
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
		return "any"
	}
}

func (t *tsType) VisitUnknown(*typemap.Unknown) string {
	return "any"
}

// needsParens reports whether n renders as a top-level "|" list and must be
// wrapped before a "[]" suffix.
func needsParens(n typemap.TypeNode) bool {
	switch node := n.(type) {
	case *typemap.Enum:
		return len(node.Values) > 1
	case *typemap.Union:
		if len(node.Variants) == 1 {
			return needsParens(node.Variants[0])
		}
		return len(node.Variants) > 1
	case *typemap.Primitive:
		return node.AcceptsDate()
	default:
		return false
	}
}

func tsPropertyKey(name string) string {
	if naming.IsJSIdentifier(name) {
		return name
	}
	return literal(name)
}

// declarationNames returns the TypeScript name of each definition, in
// order. Names that are not identifiers are converted and kept distinct.
func declarationNames(s *schema.CanonicalSchema) []string {
	names := make([]string, len(s.Definitions))
	taken := make(map[string]bool, len(s.Definitions))
	for i, def := range s.Definitions {
		names[i] = naming.Unique(naming.TSIdentifier(def.Name, "Type"), taken)
	}
	return names
}

// singleLine folds a description onto one line for inline comments.
func singleLine(s string) string {
	return foldLines(escapeCommentEnd(s))
}

// foldLines joins the lines of s with single spaces.
func foldLines(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' }), " ")
}

// escapeCommentEnd keeps s from closing a /* */ comment.
func escapeCommentEnd(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}

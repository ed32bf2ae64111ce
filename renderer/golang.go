package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/erraggy/apitypes/internal/naming"
	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/typemap"
)

// goFilename is only used by imports.Process to pick the package context.
const goFilename = "types.go"

func (r *Renderer) renderGo(s *schema.CanonicalSchema) (string, error) {
	pkg := r.PackageName
	if pkg == "" {
		pkg = DefaultPackageName
	}

	var b strings.Builder
	b.WriteString("// Code generated by " + generatorName + ". DO NOT EDIT.\n")
	if r.IncludeComments {
		b.WriteString("//\n")
		for _, line := range r.bannerLines(s) {
			b.WriteString(strings.TrimRight("// "+line, " ") + "\n")
		}
	}
	b.WriteString("\npackage " + pkg + "\n")

	taken := make(map[string]bool, len(s.Definitions))
	for _, def := range s.Definitions {
		name := naming.Unique(naming.GoIdentifier(def.Name, "Type"), taken)
		b.WriteByte('\n')
		if desc := definitionDescription(def); r.IncludeComments && desc != "" {
			b.WriteString(formatGoComment(desc, name, ""))
		}
		expr := typemap.Visit[string](r.mapDefinition(def), &goType{comments: r.IncludeComments})
		b.WriteString("type " + name + " " + expr + "\n")
	}

	formatted, err := imports.Process(goFilename, []byte(b.String()), nil)
	if err != nil {
		return "", fmt.Errorf("formatting Go output: %w", err)
	}
	return string(formatted), nil
}

// goType renders a TypeNode as a Go type expression. Nested objects become
// anonymous structs; layout is left to imports.Process.
type goType struct {
	comments bool
}

var _ typemap.Visitor[string] = (*goType)(nil)

func (g *goType) VisitObject(o *typemap.Object) string {
	if len(o.Properties) == 0 {
		return "map[string]any"
	}

	var b strings.Builder
	b.WriteString("struct {\n")
	taken := make(map[string]bool, len(o.Properties))
	for _, p := range o.Properties {
		if g.comments && p.Description != "" {
			b.WriteString("// " + singleLine(p.Description) + "\n")
		}
		typ := typemap.Visit[string](p.Type, g)
		if !p.Required && pointerable(typ) {
			typ = "*" + typ
		}
		field := naming.Unique(naming.GoIdentifier(p.Name, "Field"), taken)
		b.WriteString(field + " " + typ + " " + jsonTag(p.Name, !p.Required) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (g *goType) VisitArray(a *typemap.Array) string {
	return "[]" + typemap.Visit[string](a.Item, g)
}

// VisitEnum uses the shared scalar type of the values, or any when they mix.
func (g *goType) VisitEnum(e *typemap.Enum) string {
	typ := ""
	for _, v := range e.Values {
		var t string
		switch v.(type) {
		case string:
			t = "string"
		case jsondoc.Number:
			t = "float64"
		case bool:
			t = "bool"
		default:
			return "any"
		}
		if typ != "" && typ != t {
			return "any"
		}
		typ = t
	}
	if typ == "" {
		return "any"
	}
	return typ
}

// VisitUnion collapses variants that share one Go type, else uses any.
func (g *goType) VisitUnion(u *typemap.Union) string {
	typ := ""
	for _, v := range u.Variants {
		t := typemap.Visit[string](v, g)
		if typ != "" && typ != t {
			return "any"
		}
		typ = t
	}
	if typ == "" {
		return "any"
	}
	return typ
}

func (g *goType) VisitPrimitive(p *typemap.Primitive) string {
	switch p.Kind {
	case typemap.KindString:
		return stringFormatToGoType(p.Format)
	case typemap.KindNumber:
		return numberFormatToGoType(p.Format)
	case typemap.KindBoolean:
		return "bool"
	default:
		return "any"
	}
}

func (g *goType) VisitUnknown(*typemap.Unknown) string {
	return "any"
}

// stringFormatToGoType maps string formats to Go types.
func stringFormatToGoType(format string) string {
	switch format {
	case "date-time":
		return "time.Time"
	case "byte", "binary":
		return "[]byte"
	default:
		return "string"
	}
}

// numberFormatToGoType maps number and integer formats to Go types. Without
// a format the kind alone cannot tell integers apart, so float64 is used.
func numberFormatToGoType(format string) string {
	switch format {
	case "int32":
		return "int32"
	case "int64":
		return "int64"
	case "float":
		return "float32"
	default:
		return "float64"
	}
}

// pointerable reports whether an optional field of this type needs a
// pointer to distinguish absent from zero.
func pointerable(typ string) bool {
	switch {
	case typ == "any",
		strings.HasPrefix(typ, "[]"),
		strings.HasPrefix(typ, "map["),
		strings.HasPrefix(typ, "struct"):
		return false
	default:
		return true
	}
}

// jsonTag builds the struct tag for a property, escaping names that cannot
// appear in a raw string literal.
func jsonTag(name string, omitEmpty bool) string {
	value := name
	if omitEmpty {
		value += ",omitempty"
	}
	tag := "json:" + strconv.Quote(value)
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}

// formatGoComment formats a description as Go comment lines, prefixed with
// the declared name on the first line.
func formatGoComment(text, name, indent string) string {
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if i == 0 {
			line = strings.TrimSpace(name + " " + line)
		} else if line == "" {
			continue
		}
		b.WriteString(indent + "// " + line + "\n")
	}
	return b.String()
}

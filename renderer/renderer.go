package renderer

import (
	"fmt"
	"time"

	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/schemaerrors"
	"github.com/erraggy/apitypes/typemap"
)

// DefaultPackageName is the package clause of Go output when none is set.
const DefaultPackageName = "types"

// Renderer serializes a canonical schema in one output format
type Renderer struct {
	// Format selects the output representation
	Format Format
	// IncludeComments enables the banner and description comments
	IncludeComments bool
	// ExportMode controls the TypeScript export section
	ExportMode ExportMode
	// PackageName is the package clause of Go output
	PackageName string
	// Now supplies the banner timestamp (nil means time.Now)
	Now func() time.Time
	// MaxDepth bounds nesting when mapping definitions (0 means the
	// typemap default)
	MaxDepth int
	// Logger receives debug output (nil means no logging)
	Logger schema.Logger
}

// New creates a new Renderer instance with default settings
func New() *Renderer {
	return &Renderer{
		Format:          FormatStructural,
		IncludeComments: true,
		ExportMode:      ExportNamed,
		PackageName:     DefaultPackageName,
	}
}

// RenderWithOptions renders s using functional options applied over New's
// defaults.
//
// Example:
//
//	out, err := renderer.RenderWithOptions(canonical,
//	    renderer.WithFormat(renderer.FormatDocComment),
//	    renderer.WithIncludeComments(false),
//	)
func RenderWithOptions(s *schema.CanonicalSchema, opts ...Option) (string, error) {
	r := New()
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return "", fmt.Errorf("renderer: invalid options: %w", err)
		}
	}
	return r.Render(s)
}

// Render produces the source text for s. It fails only for a nil schema, a
// format outside the supported set, or Go output that cannot be formatted.
func (r *Renderer) Render(s *schema.CanonicalSchema) (string, error) {
	if s == nil {
		return "", &schemaerrors.ConfigError{Option: "schema", Message: "no schema to render"}
	}

	var (
		out string
		err error
	)
	switch r.Format {
	case FormatStructural:
		out = r.renderTypeScript(s)
	case FormatDocComment:
		out = r.renderJSDoc(s)
	case FormatPassthrough:
		out, err = renderPassthrough(s)
	case FormatGo:
		out, err = r.renderGo(s)
	default:
		return "", &schemaerrors.FormatError{Format: r.Format.String(), Valid: FormatNames()}
	}
	if err != nil {
		return "", fmt.Errorf("renderer: %w", err)
	}

	schema.LoggerOrNop(r.Logger).Debug("rendered schema",
		"format", r.Format.String(),
		"definitions", len(s.Definitions),
		"bytes", len(out),
	)
	return out, nil
}

// mapDefinition maps one definition with the renderer's depth limit.
func (r *Renderer) mapDefinition(def schema.Definition) typemap.TypeNode {
	m := typemap.Mapper{MaxDepth: r.MaxDepth, Logger: r.Logger}
	return m.Map(def.Schema)
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// definitionDescription returns the description of a definition, if any.
func definitionDescription(def schema.Definition) string {
	if def.Schema == nil {
		return ""
	}
	return def.Schema.Description
}

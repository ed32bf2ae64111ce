package renderer

import (
	"strings"

	"github.com/erraggy/apitypes/schemaerrors"
)

// Format selects the output representation.
type Format int

const (
	// FormatStructural renders TypeScript declarations.
	FormatStructural Format = iota
	// FormatDocComment renders JSDoc type definitions.
	FormatDocComment
	// FormatPassthrough renders the normalized schema as JSON.
	FormatPassthrough
	// FormatGo renders Go type declarations.
	FormatGo
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatStructural, FormatDocComment, FormatPassthrough, FormatGo}

// String returns the short name used on the command line ("ts", "js",
// "json", "go").
func (f Format) String() string {
	switch f {
	case FormatStructural:
		return "ts"
	case FormatDocComment:
		return "js"
	case FormatPassthrough:
		return "json"
	case FormatGo:
		return "go"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for generated files, without the dot.
func (f Format) Extension() string {
	return f.String()
}

// FormatNames returns the short names of all supported formats.
func FormatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = f.String()
	}
	return names
}

// ParseFormat parses a short format name. Matching is case-insensitive.
// Unknown names fail with a *schemaerrors.FormatError.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, &schemaerrors.FormatError{Format: s, Valid: FormatNames()}
}

// ExportMode controls the trailing export section of TypeScript output.
type ExportMode int

const (
	// ExportNamed emits only the named type export list.
	ExportNamed ExportMode = iota
	// ExportDefault also emits a default export aggregate.
	ExportDefault
	// ExportBoth emits both; it renders the same as ExportDefault.
	ExportBoth
)

// String returns the string representation of the export mode.
func (m ExportMode) String() string {
	switch m {
	case ExportNamed:
		return "named"
	case ExportDefault:
		return "default"
	case ExportBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseExportMode parses "named", "default" or "both". The empty string
// means ExportNamed.
func ParseExportMode(s string) (ExportMode, error) {
	switch strings.ToLower(s) {
	case "", "named":
		return ExportNamed, nil
	case "default":
		return ExportDefault, nil
	case "both":
		return ExportBoth, nil
	default:
		return ExportNamed, &schemaerrors.ConfigError{
			Option:  "exportMode",
			Value:   s,
			Message: "must be one of named, default, both",
		}
	}
}

func (m ExportMode) includesDefault() bool {
	return m == ExportDefault || m == ExportBoth
}

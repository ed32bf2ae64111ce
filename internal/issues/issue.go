// Package issues provides the issue type reported by schema validation.
package issues

import (
	"fmt"
	"strings"

	"github.com/erraggy/apitypes/internal/severity"
)

// RootPath is the path reported for problems with the document as a whole.
const RootPath = "$"

// Issue represents a single problem found while checking a schema document.
type Issue struct {
	// Path is the dotted location of the problem (e.g., "info.title"),
	// or RootPath for the whole document
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// File is the source file or URL (empty when the input was inline)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Location(), i.Message)
}

// Location returns "file:path" when the file is known, else the path.
func (i Issue) Location() string {
	if i.File == "" {
		return i.Path
	}
	return i.File + ":" + i.Path
}

// FormatPath joins path segments with dots. No segments yields RootPath.
func FormatPath(segments ...string) string {
	switch len(segments) {
	case 0:
		return RootPath
	case 1:
		return segments[0]
	default:
		return strings.Join(segments, ".")
	}
}

// Messages returns the plain messages of list, in order.
func Messages(list []Issue) []string {
	out := make([]string, len(list))
	for i, issue := range list {
		out[i] = issue.Message
	}
	return out
}

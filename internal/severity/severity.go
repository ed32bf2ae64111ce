// Package severity defines how serious a reported schema issue is.
//
// Errors block generation, warnings are advisory and info is never shown
// unless a caller asks for it. The zero value is SeverityError so an issue
// built without an explicit level is never silently downgraded.
package severity

import "fmt"

// Severity indicates the severity level of a schema issue.
type Severity int

const (
	// SeverityError marks a problem that makes the document unusable.
	SeverityError Severity = iota
	// SeverityWarning marks a problem that does not prevent processing.
	SeverityWarning
	// SeverityInfo marks a purely informational notice.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Blocking reports whether issues of this level make a document invalid.
func (s Severity) Blocking() bool {
	return s == SeverityError
}

// MarshalText implements encoding.TextMarshaler so structured output shows
// the level name instead of its ordinal.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("severity: unknown level %q", text)
	}
	return nil
}

package schemaerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSyntax indicates the input was not valid JSON.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupportedDialect indicates no schema dialect fingerprint matched.
	ErrUnsupportedDialect = errors.New("unsupported schema format")

	// ErrUnsupportedFormat indicates an unknown output format was requested.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrFetch indicates a remote schema could not be retrieved.
	ErrFetch = errors.New("fetch error")
)

// SyntaxError represents input text that could not be decoded as JSON.
type SyntaxError struct {
	// Source identifies where the text came from (file path, URL), if known
	Source string
	// Offset is the byte offset reported by the decoder (0 if unknown)
	Offset int64
	// Message describes the failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	msg := "invalid JSON syntax"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Detail returns the decoder's own description of the problem, without the
// "invalid JSON syntax" prefix.
func (e *SyntaxError) Detail() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	case e.Cause != nil:
		return e.Cause.Error()
	case e.Message != "":
		return e.Message
	default:
		return "unexpected end of JSON input"
	}
}

// Unwrap returns the underlying cause for error chaining.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// DialectError represents a document that is neither OpenAPI/Swagger nor
// JSON Schema.
type DialectError struct {
	// Keys lists the top-level keys that were present, for diagnostics
	Keys []string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *DialectError) Error() string {
	msg := "unsupported schema format"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Keys) > 0 {
		msg += " (top-level keys: " + strings.Join(e.Keys, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DialectError) Is(target error) bool {
	return target == ErrUnsupportedDialect
}

// FormatError represents a request for an output format that does not exist.
type FormatError struct {
	// Format is the rejected value
	Format string
	// Valid lists the accepted values
	Valid []string
}

// Error returns a human-readable error message.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("unsupported format: %q", e.Format)
	if len(e.Valid) > 0 {
		msg += " (valid formats: " + strings.Join(e.Valid, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unreadable
// configuration files.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// FetchError represents a failed remote schema retrieval.
type FetchError struct {
	// URL is the requested location
	URL string
	// StatusCode is the HTTP status code (0 if the request never completed)
	StatusCode int
	// Status is the HTTP status text, e.g. "404 Not Found"
	Status string
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "fetch error"
	if e.URL != "" {
		msg += " for " + e.URL
	}
	if e.StatusCode != 0 {
		msg += ": API request failed: " + e.Status
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

package validator

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/apitypes/internal/issues"
	"github.com/erraggy/apitypes/internal/severity"
	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/schemaerrors"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a problem that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a recommendation
	SeverityWarning = severity.SeverityWarning
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 4
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 4
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a schema document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid" yaml:"valid"`
	// Dialect is the detected document dialect
	Dialect schema.Dialect `json:"-" yaml:"-"`
	// DialectName is Dialect in string form, for structured output
	DialectName string `json:"dialect" yaml:"dialect"`
	// Errors contains all validation errors
	Errors []ValidationError `json:"errors" yaml:"errors"`
	// Warnings contains all validation warnings
	Warnings []ValidationError `json:"warnings" yaml:"warnings"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"errorCount" yaml:"errorCount"`
	// WarningCount is the total number of warnings
	WarningCount int `json:"warningCount" yaml:"warningCount"`
	// SourcePath is the file or URL the document came from, if known
	SourcePath string `json:"sourcePath,omitempty" yaml:"sourcePath,omitempty"`
}

// ErrorMessages returns the error messages in reporting order.
func (r *ValidationResult) ErrorMessages() []string {
	return issues.Messages(r.Errors)
}

// WarningMessages returns the warning messages in reporting order.
func (r *ValidationResult) WarningMessages() []string {
	return issues.Messages(r.Warnings)
}

// Validator handles schema document validation
type Validator struct {
	// IncludeWarnings determines whether warnings are reported
	IncludeWarnings bool
	// StrictMode escalates selected warnings and enables extra checks
	StrictMode bool
	// SourceName is recorded on every issue as its File
	SourceName string
	// Logger receives debug output (nil means no logging)
	Logger schema.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
		StrictMode:      false,
	}
}

// ValidateWithOptions validates a schema document using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithContent(data),
//	    validator.WithStrictMode(true),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
		SourceName:      cfg.sourceName,
		Logger:          cfg.logger,
	}

	if cfg.filePath != nil {
		return v.ValidateFile(*cfg.filePath)
	}
	return v.Validate(cfg.content), nil
}

// ValidateFile reads path and validates its contents. Only a read failure
// produces an error.
func (v *Validator) ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("validator: reading %s: %w", path, err)
	}
	if v.SourceName == "" {
		clone := *v
		clone.SourceName = path
		v = &clone
	}
	return v.Validate(data), nil
}

// Validate checks raw JSON text. It never fails: undecodable or non-object
// input yields an invalid result with a single error.
func (v *Validator) Validate(raw []byte) *ValidationResult {
	result := &ValidationResult{
		Errors:     make([]ValidationError, 0, defaultErrorCapacity),
		Warnings:   make([]ValidationError, 0, defaultWarningCapacity),
		SourcePath: v.SourceName,
	}

	doc, err := jsondoc.Decode(raw)
	switch {
	case err != nil:
		v.addError(result, issues.RootPath, "Invalid JSON: "+decodeMessage(err))
	default:
		obj, ok := jsondoc.AsObject(doc)
		if !ok {
			v.addError(result, issues.RootPath, "Schema must be a valid JSON object")
			break
		}
		result.Dialect = schema.DetectDialect(obj)
		if result.Dialect == schema.DialectOpenAPI {
			v.validateOpenAPI(obj, result)
		} else {
			v.validateJSONSchema(obj, result)
		}
	}

	result.DialectName = result.Dialect.String()
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0

	if !v.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	schema.LoggerOrNop(v.Logger).Debug("validated schema",
		"source", v.SourceName,
		"dialect", result.DialectName,
		"valid", result.Valid,
		"errors", result.ErrorCount,
		"warnings", result.WarningCount,
	)
	return result
}

func decodeMessage(err error) string {
	var synErr *schemaerrors.SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Detail()
	}
	return err.Error()
}

func (v *Validator) addError(result *ValidationResult, path, message string) {
	result.Errors = append(result.Errors, ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
		File:     v.SourceName,
	})
}

func (v *Validator) addWarning(result *ValidationResult, path, message string) {
	result.Warnings = append(result.Warnings, ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
		File:     v.SourceName,
	})
}

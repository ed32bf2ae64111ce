package renderer

import (
	"go/token"
	"time"

	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/schemaerrors"
)

// Option is a function that configures a rendering operation
type Option func(*Renderer) error

// WithFormat selects the output format
// Default: FormatStructural
func WithFormat(f Format) Option {
	return func(r *Renderer) error {
		if f.String() == "unknown" {
			return &schemaerrors.FormatError{Format: f.String(), Valid: FormatNames()}
		}
		r.Format = f
		return nil
	}
}

// WithFormatName selects the output format by its short name
func WithFormatName(name string) Option {
	return func(r *Renderer) error {
		f, err := ParseFormat(name)
		if err != nil {
			return err
		}
		r.Format = f
		return nil
	}
}

// WithIncludeComments enables or disables the banner and description comments
// Default: true
func WithIncludeComments(enabled bool) Option {
	return func(r *Renderer) error {
		r.IncludeComments = enabled
		return nil
	}
}

// WithExportMode sets the TypeScript export section style
// Default: ExportNamed
func WithExportMode(m ExportMode) Option {
	return func(r *Renderer) error {
		r.ExportMode = m
		return nil
	}
}

// WithPackageName sets the package clause of Go output
// Default: "types"
func WithPackageName(name string) Option {
	return func(r *Renderer) error {
		if !token.IsIdentifier(name) {
			return &schemaerrors.ConfigError{
				Option:  "packageName",
				Value:   name,
				Message: "must be a valid Go identifier",
			}
		}
		r.PackageName = name
		return nil
	}
}

// WithNow sets the clock used for the banner timestamp
// Default: time.Now
func WithNow(now func() time.Time) Option {
	return func(r *Renderer) error {
		r.Now = now
		return nil
	}
}

// WithMaxDepth bounds nesting when mapping definitions
// Default: typemap.DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) error {
		r.MaxDepth = depth
		return nil
	}
}

// WithLogger sets the logger for debug output
// Default: nil (no logging)
func WithLogger(l schema.Logger) Option {
	return func(r *Renderer) error {
		r.Logger = l
		return nil
	}
}

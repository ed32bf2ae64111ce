package validator

import (
	"github.com/erraggy/apitypes/internal/options"
	"github.com/erraggy/apitypes/schema"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	content  []byte

	// Configuration options
	includeWarnings bool
	strictMode      bool
	sourceName      string
	logger          schema.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		includeWarnings: true,
		strictMode:      false,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input",
		"must specify an input source (use WithFilePath or WithContent)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.content != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a local file as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithContent specifies raw JSON text as the input source.
// A nil slice is treated as empty content.
func WithContent(data []byte) Option {
	return func(cfg *validateConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.content = data
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings in the result
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode enables or disables strict validation
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithSourceName sets the name recorded on issues (file path or URL)
func WithSourceName(name string) Option {
	return func(cfg *validateConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithLogger sets the logger for debug output
// Default: nil (no logging)
func WithLogger(l schema.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}

// Package schemaerrors provides structured error types for apitypes.
//
// Import path: github.com/erraggy/apitypes/schemaerrors
//
// Every failure that aborts normalization, rendering or fetching is one of
// the types below, so callers can branch with [errors.Is] against a sentinel
// or extract details with [errors.As].
//
// # Error Types
//
//   - [SyntaxError]: input text is not valid JSON
//   - [DialectError]: the document matches neither the OpenAPI/Swagger nor the JSON Schema fingerprint
//   - [FormatError]: the requested output format is not supported
//   - [ConfigError]: invalid options or configuration files
//   - [FetchError]: a remote schema could not be retrieved
//
// # Sentinel Errors
//
//   - [ErrSyntax]: matches any [SyntaxError]
//   - [ErrUnsupportedDialect]: matches any [DialectError]
//   - [ErrUnsupportedFormat]: matches any [FormatError]
//   - [ErrConfig]: matches any [ConfigError]
//   - [ErrFetch]: matches any [FetchError]
//
// Validation problems are not errors; the validator reports them as data.
package schemaerrors

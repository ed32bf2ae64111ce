// Package validator checks the structural well-formedness of schema
// documents before they are handed to the generator.
//
// Two dialects are recognized: OpenAPI/Swagger (a top-level "openapi" or
// "swagger" key) and JSON Schema (everything else that is a JSON object).
// Each dialect has its own small rule set. Rules run in a fixed order so the
// reported issues are deterministic.
//
// # Validation Levels
//
//   - SeverityError: the document cannot be used to generate types
//   - SeverityWarning: advisory findings that never block generation
//
// Strict mode escalates the missing "paths" finding for OpenAPI documents
// from a warning to an error, and enables the "$schema" recommendation for
// JSON Schema documents.
//
// # Usage
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("openapi.json"),
//	    validator.WithStrictMode(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range result.Errors {
//	    fmt.Println(e)
//	}
//
// Validation never returns an error for bad documents: invalid JSON and
// non-object input are reported as a single error issue in the result.
package validator

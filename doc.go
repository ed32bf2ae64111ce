// Package apitypes turns machine-readable API schema documents into
// statically-typed source representations.
//
// Two schema dialects are accepted: OpenAPI/Swagger documents (definitions
// under components.schemas or definitions) and plain JSON Schema draft-07
// documents (definitions, or the whole document as a single Root type).
//
// # Packages
//
//   - jsondoc: order-preserving JSON decoding and encoding
//   - schema: dialect detection and normalization into a CanonicalSchema
//   - validator: dialect-aware structural checks producing errors and warnings
//   - typemap: maps schema nodes onto a closed TypeNode tree
//   - renderer: serializes a CanonicalSchema as TypeScript, JSDoc, JSON or Go
//   - schemaerrors: typed errors usable with errors.Is and errors.As
//
// # Quick Start
//
//	canonical, err := schema.Normalize(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := renderer.RenderWithOptions(canonical,
//		renderer.WithFormat(renderer.FormatStructural),
//		renderer.WithIncludeComments(true),
//	)
//
// Validate without generating:
//
//	result := validator.New().Validate(data)
//	for _, e := range result.Errors {
//		fmt.Println(e.String())
//	}
//
// The apitypes command (cmd/apitypes) wraps these packages with generate,
// validate, sync, init, inspect and mcp subcommands.
package apitypes

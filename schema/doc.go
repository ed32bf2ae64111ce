// Package schema detects the dialect of an API schema document and flattens
// its definitions container into a CanonicalSchema.
//
// # Dialects
//
// A document is OpenAPI/Swagger when it has a top-level openapi or swagger
// key, and JSON Schema when it has a top-level $schema or definitions key.
// Anything else is rejected with a *schemaerrors.DialectError.
//
// # Definitions
//
// OpenAPI documents contribute components.schemas, falling back to
// definitions (Swagger 2.0), falling back to nothing. JSON Schema documents
// contribute definitions, or the whole document as a single definition
// named Root. Definition order always follows the source document.
//
//	canonical, err := schema.Normalize(data)
//	if err != nil {
//		return err
//	}
//	for _, def := range canonical.Definitions {
//		fmt.Println(def.Name)
//	}
//
// NormalizeRemote is the lenient variant for documents fetched over the
// network: it also looks under a top-level schemas key, substitutes a default
// title and version, and never fails.
package schema

package schema

import "github.com/erraggy/apitypes/jsondoc"

// Dialect identifies the schema document family.
type Dialect int

const (
	// DialectUnknown means no fingerprint matched.
	DialectUnknown Dialect = iota
	// DialectOpenAPI covers OpenAPI 3.x and Swagger 2.0 documents.
	DialectOpenAPI
	// DialectJSONSchema covers plain JSON Schema documents.
	DialectJSONSchema
)

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectOpenAPI:
		return "openapi"
	case DialectJSONSchema:
		return "json-schema"
	default:
		return "unknown"
	}
}

// DetectDialect classifies a decoded document by its top-level keys.
// The OpenAPI fingerprint wins when both match.
func DetectDialect(doc any) Dialect {
	obj, ok := jsondoc.AsObject(doc)
	if !ok {
		return DialectUnknown
	}
	if obj.Present("openapi") || obj.Present("swagger") {
		return DialectOpenAPI
	}
	if obj.Present("$schema") || obj.Present("definitions") {
		return DialectJSONSchema
	}
	return DialectUnknown
}

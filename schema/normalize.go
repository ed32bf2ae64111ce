package schema

import (
	"errors"
	"fmt"

	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schemaerrors"
)

// Normalize decodes raw JSON text and normalizes it.
//
// It fails with a *schemaerrors.SyntaxError when raw is not valid JSON and
// with a *schemaerrors.DialectError when the document matches neither
// dialect fingerprint.
func Normalize(raw []byte, opts ...Option) (*CanonicalSchema, error) {
	cfg := applyOptions(opts...)

	doc, err := jsondoc.Decode(raw)
	if err != nil {
		var synErr *schemaerrors.SyntaxError
		if errors.As(err, &synErr) && synErr.Source == "" {
			synErr.Source = cfg.source
		}
		return nil, fmt.Errorf("schema: %w", err)
	}
	return normalize(doc, cfg)
}

// NormalizeValue normalizes an already-decoded document.
// Objects must use the jsondoc value model so definition order is known.
func NormalizeValue(doc any, opts ...Option) (*CanonicalSchema, error) {
	return normalize(doc, applyOptions(opts...))
}

func normalize(doc any, cfg *normalizeConfig) (*CanonicalSchema, error) {
	dialect := DetectDialect(doc)
	obj, _ := jsondoc.AsObject(doc)

	var result *CanonicalSchema
	switch dialect {
	case DialectOpenAPI:
		result = normalizeOpenAPI(obj)
	case DialectJSONSchema:
		result = normalizeJSONSchema(obj)
	default:
		return nil, fmt.Errorf("schema: %w", &schemaerrors.DialectError{
			Keys:    obj.Keys(),
			Message: "expected openapi/swagger or $schema/definitions at the top level",
		})
	}

	cfg.logger.Debug("normalized schema",
		"source", cfg.source,
		"dialect", dialect.String(),
		"definitions", len(result.Definitions),
	)
	return result, nil
}

func normalizeOpenAPI(obj *jsondoc.Object) *CanonicalSchema {
	result := &CanonicalSchema{Dialect: DialectOpenAPI}

	info, _ := obj.Get("info")
	if infoObj, ok := jsondoc.AsObject(info); ok {
		result.Title = optionalString(infoObj, "title")
		result.Version = optionalString(infoObj, "version")
	}

	result.Definitions = definitionsFrom(firstObject(obj, "components.schemas", "definitions"))
	result.Paths, _ = obj.Get("paths")
	return result
}

func normalizeJSONSchema(obj *jsondoc.Object) *CanonicalSchema {
	result := &CanonicalSchema{
		Dialect: DialectJSONSchema,
		Title:   optionalString(obj, "title"),
		Version: optionalString(obj, "version"),
	}

	if defs := firstObject(obj, "definitions"); defs != nil {
		result.Definitions = definitionsFrom(defs)
	} else {
		result.Definitions = []Definition{{Name: RootDefinitionName, Schema: NodeFromValue(obj)}}
	}
	result.Paths, _ = obj.Get("paths")
	return result
}

// NormalizeRemote normalizes a document obtained from a remote endpoint.
// Definitions come from components.schemas, definitions or schemas, in that
// order. Missing title and version fall back to DefaultRemoteTitle and
// DefaultRemoteVersion. It never fails; unusable input yields a schema with
// no definitions.
func NormalizeRemote(doc any, opts ...Option) *CanonicalSchema {
	cfg := applyOptions(opts...)
	obj, _ := jsondoc.AsObject(doc)

	title := DefaultRemoteTitle
	version := DefaultRemoteVersion
	info, _ := obj.Get("info")
	if infoObj, ok := jsondoc.AsObject(info); ok {
		if t := optionalString(infoObj, "title"); t != nil && *t != "" {
			title = *t
		}
		if v := optionalString(infoObj, "version"); v != nil && *v != "" {
			version = *v
		}
	}

	result := &CanonicalSchema{
		Title:       &title,
		Version:     &version,
		Definitions: definitionsFrom(firstObject(obj, "components.schemas", "definitions", "schemas")),
		Dialect:     DetectDialect(doc),
	}
	cfg.logger.Debug("normalized remote schema",
		"source", cfg.source,
		"dialect", result.Dialect.String(),
		"definitions", len(result.Definitions),
	)
	return result
}

// firstObject returns the first of the dotted paths that resolves to an
// object. Present values of any other type are skipped.
func firstObject(obj *jsondoc.Object, paths ...string) *jsondoc.Object {
	for _, path := range paths {
		if found, ok := jsondoc.AsObject(lookupPath(obj, path)); ok {
			return found
		}
	}
	return nil
}

func lookupPath(obj *jsondoc.Object, path string) any {
	var current any = obj
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '.' {
			continue
		}
		o, ok := jsondoc.AsObject(current)
		if !ok {
			return nil
		}
		current, _ = o.Get(path[start:i])
		start = i + 1
	}
	return current
}

func definitionsFrom(container *jsondoc.Object) []Definition {
	defs := make([]Definition, 0, container.Len())
	for name, value := range container.All() {
		defs = append(defs, Definition{Name: name, Schema: NodeFromValue(value)})
	}
	return defs
}

// optionalString reads a string member. Numbers are accepted in their source
// form since version fields are often written unquoted.
func optionalString(obj *jsondoc.Object, key string) *string {
	v, _ := obj.Get(key)
	switch x := v.(type) {
	case string:
		return &x
	case jsondoc.Number:
		s := x.String()
		return &s
	default:
		return nil
	}
}

// Package renderer turns a normalized schema into source text.
//
// Four output formats are supported:
//
//   - FormatStructural ("ts"): TypeScript interfaces and type aliases
//   - FormatDocComment ("js"): JSDoc @typedef blocks for plain JavaScript
//   - FormatPassthrough ("json"): the normalized schema as indented JSON
//   - FormatGo ("go"): Go struct and type declarations, gofmt-formatted
//
// Every format except passthrough maps each definition through the typemap
// package first. Definitions are emitted in source order and the output is
// byte-identical for identical input, apart from the generation timestamp in
// the banner. Pin the clock with WithNow when comparing outputs.
//
// # Usage
//
//	canonical, err := schema.Normalize(data)
//	if err != nil {
//	    return err
//	}
//	out, err := renderer.RenderWithOptions(canonical,
//	    renderer.WithFormat(renderer.FormatStructural),
//	    renderer.WithExportMode(renderer.ExportBoth),
//	)
package renderer

// Package jsondoc decodes and encodes JSON documents without losing object key
// order.
//
// Schema documents carry meaning in the order of their keys: the order of
// definitions decides the order of generated declarations, and the order of
// properties decides field order. encoding/json decodes objects into Go maps
// and forgets that order, so this package decodes into its own value model:
//
//   - *Object for JSON objects (insertion-ordered)
//   - []any for arrays
//   - string, bool and nil for the matching JSON literals
//   - Number for numbers, holding the exact source text
//
// Decoding is token-streamed with github.com/goccy/go-json.
package jsondoc

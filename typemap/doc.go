// Package typemap converts schema nodes into a closed tree of type nodes.
//
// Every renderer consumes the same tree. The classification rules are
// applied in a fixed order, first match wins:
//
//  1. type "object" or a properties keyword: [Object]
//  2. type "array": [Array] (missing items map to [Unknown])
//  3. an enum keyword: [Enum], values verbatim and in order
//  4. a oneOf or anyOf keyword: [Union], oneOf taking priority
//  5. anything else: [Primitive] from the type and format keywords
//
// Mapping never fails. Shapes the rules do not recognize ($ref, allOf,
// type arrays) degrade to an unknown primitive, and nesting beyond the
// mapper's depth limit degrades to [Unknown].
//
// TypeNode is sealed: only the six node types in this package implement it.
// Code that needs to handle every case implements [Visitor] and calls
// [Visit], so a missing case is a compile error rather than a silent
// fallthrough.
package typemap

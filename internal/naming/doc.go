// Package naming converts schema names into identifiers of the generated
// languages.
//
// Go identifiers are built by [GoIdentifier] (PascalCase, common
// initialisms upper-cased, reserved words escaped). TypeScript declaration
// names come from [TSIdentifier], and property keys are checked with
// [IsJSIdentifier] so the renderer knows when a key needs quoting.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming

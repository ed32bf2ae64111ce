package naming

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser upper-cases the first letter of a word and leaves the rest
// alone, so "createdAt" becomes "CreatedAt" rather than "Createdat".
var titleCaser = cases.Title(language.English, cases.NoLower)

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Predeclared identifiers like "error" are left alone since they may be shadowed.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// commonInitialisms are words written fully upper-case in Go identifiers.
var commonInitialisms = map[string]bool{
	"api": true, "http": true, "id": true, "ip": true, "json": true,
	"uri": true, "url": true, "uuid": true,
}

// GoIdentifier converts a schema name to an exported Go identifier.
// Non-alphanumeric runes separate words, every word is title-cased, and
// whole words that are common initialisms are upper-cased.
// Example: "user_profile" -> "UserProfile"
// Example: "createdAt" -> "CreatedAt"
// Example: "id" -> "ID"
// The result always starts with a letter; an empty or symbol-only name
// yields fallback.
func GoIdentifier(s, fallback string) string {
	name := pascalCase(s)
	if name == "" {
		return fallback
	}
	if first := []rune(name)[0]; !unicode.IsLetter(first) {
		name = fallback + name
	}
	return escapeReservedWord(name)
}

// pascalCase joins the alphanumeric words of s, title-casing each word and
// upper-casing common initialisms. It returns "" when s has no words.
func pascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, w := range words {
		if commonInitialisms[strings.ToLower(w)] {
			b.WriteString(strings.ToUpper(w))
			continue
		}
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// escapeReservedWord appends an underscore to Go keywords. The check is
// case-insensitive because PascalCase names like "Range" or "Type" should
// still be escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// tsReservedTypeNames cannot name an interface or type alias: JavaScript
// reserved words plus the built-in TypeScript type names.
var tsReservedTypeNames = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "any": true, "bigint": true, "boolean": true, "never": true,
	"number": true, "object": true, "string": true, "symbol": true,
	"undefined": true, "unknown": true,
}

// TSIdentifier returns a name usable for a TypeScript interface or type
// alias. Valid identifiers are kept as written; anything else is converted
// like GoIdentifier. Reserved names get a trailing underscore.
// Example: "User" -> "User"
// Example: "user-profile" -> "UserProfile"
// Example: "string" -> "string_"
func TSIdentifier(s, fallback string) string {
	name := s
	if !IsJSIdentifier(name) {
		name = pascalCase(s)
		if name == "" {
			return fallback
		}
		if first := []rune(name)[0]; !unicode.IsLetter(first) {
			name = fallback + name
		}
	}
	if tsReservedTypeNames[name] {
		name += "_"
	}
	return name
}

// IsJSIdentifier reports whether s can be used unquoted as a TypeScript
// property name.
func IsJSIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// Unique returns name, or name with the smallest numeric suffix that is not
// yet in taken. The returned name is added to taken.
func Unique(name string, taken map[string]bool) string {
	candidate := name
	for i := 2; taken[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	taken[candidate] = true
	return candidate
}

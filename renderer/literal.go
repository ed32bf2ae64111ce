package renderer

import (
	"github.com/erraggy/apitypes/jsondoc"
)

// literal returns the JSON source form of an enum value. Strings are
// double-quoted and numbers keep their exact source text.
func literal(v any) string {
	data, err := jsondoc.Marshal(v)
	if err != nil {
		// Decoded documents only hold JSON values, which always encode.
		return "null"
	}
	return string(data)
}

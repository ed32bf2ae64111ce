package renderer

import (
	"fmt"

	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schema"
)

// renderPassthrough writes the canonical schema itself as two-space indented
// JSON. The type mapper is not involved.
func renderPassthrough(s *schema.CanonicalSchema) (string, error) {
	data, err := jsondoc.MarshalIndent(s.ToValue(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding canonical schema: %w", err)
	}
	return string(data), nil
}

package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/apitypes/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "error",
			issue: Issue{Path: "info", Message: `OpenAPI schema missing required "info" object`, Severity: severity.SeverityError},
			want:  `✗ info: OpenAPI schema missing required "info" object`,
		},
		{
			name:  "warning with file",
			issue: Issue{Path: "paths", Message: `OpenAPI schema missing "paths" object`, Severity: severity.SeverityWarning, File: "api.json"},
			want:  `⚠ api.json:paths: OpenAPI schema missing "paths" object`,
		},
		{
			name:  "info",
			issue: Issue{Path: RootPath, Message: "note", Severity: severity.SeverityInfo},
			want:  "ℹ $: note",
		},
		{
			name:  "unknown severity",
			issue: Issue{Path: "x", Message: "odd", Severity: severity.Severity(42)},
			want:  "? x: odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, RootPath, FormatPath())
	assert.Equal(t, "info", FormatPath("info"))
	assert.Equal(t, "info.title", FormatPath("info", "title"))
	assert.Equal(t, "components.schemas.Pet", FormatPath("components", "schemas", "Pet"))
}

func TestMessages(t *testing.T) {
	list := []Issue{{Message: "a"}, {Message: "b"}}
	assert.Equal(t, []string{"a", "b"}, Messages(list))
	assert.Empty(t, Messages(nil))
}

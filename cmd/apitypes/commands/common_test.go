package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := struct {
		Valid bool   `json:"valid" yaml:"valid"`
		Name  string `json:"name" yaml:"name"`
	}{Valid: true, Name: "demo"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		assert.Equal(t, "{\n  \"valid\": true,\n  \"name\": \"demo\"\n}\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.Contains(t, buf.String(), "valid: true\n")
		assert.Contains(t, buf.String(), "name: demo\n")
	})

	t.Run("text is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, OutputStructured(&buf, data, FormatText))
		assert.Empty(t, buf.String())
	})
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.ts")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.ts")
	require.NoError(t, os.Symlink(target, link))

	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.ts")))
	assert.NoError(t, RejectSymlinkOutput(target))
	assert.Error(t, RejectSymlinkOutput(link))
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s=%d", "n", 3)
	assert.Equal(t, "n=3", buf.String())
}

// writeSchema writes content to name inside dir and returns the path.
func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

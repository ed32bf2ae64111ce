package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.Strict, "expected Strict to be false by default")
		assert.False(t, flags.NoWarnings, "expected NoWarnings to be false by default")
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--strict", "--no-warnings", "-q", "--format", "json", "test.json"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.Strict, "expected Strict to be true")
		assert.True(t, flags.NoWarnings, "expected NoWarnings to be true")
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "test.json", fs.Arg(0))
	})
}

func TestHandleValidate_NoArgs(t *testing.T) {
	err := HandleValidate([]string{})
	assert.Error(t, err)
}

func TestHandleValidate_Help(t *testing.T) {
	err := HandleValidate([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	err := HandleValidate([]string{"--format", "invalid", "test.json"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidationFailed)
}

func TestHandleValidate_MissingFile(t *testing.T) {
	err := HandleValidate([]string{"-q", "does-not-exist.json"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidationFailed)
}

func TestHandleValidate_Documents(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		valid   bool
	}{
		{"json schema with warnings", `{"title":"Bare"}`, nil, true},
		{"valid openapi", `{"openapi":"3.0.0","info":{"title":"T","version":"1"},"paths":{}}`, nil, true},
		{"openapi missing info", `{"openapi":"3.0.0","paths":{}}`, nil, false},
		{"missing paths lenient", `{"openapi":"3.0.0","info":{"title":"T","version":"1"}}`, nil, true},
		{"missing paths strict", `{"openapi":"3.0.0","info":{"title":"T","version":"1"}}`, []string{"--strict"}, false},
		{"invalid json", `{"title":`, nil, false},
		{"not an object", `"schema"`, nil, false},
	}
	formats := []string{FormatText, FormatJSON, FormatYAML}

	for _, tt := range tests {
		for _, format := range formats {
			t.Run(tt.name+"/"+format, func(t *testing.T) {
				path := writeSchema(t, t.TempDir(), "schema.json", tt.content)
				args := append([]string{"-q", "--format", format}, tt.args...)
				err := HandleValidate(append(args, path))
				if tt.valid {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, ErrValidationFailed)
				}
			})
		}
	}
}

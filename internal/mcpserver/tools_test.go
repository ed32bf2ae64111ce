package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestValidateTool_ValidSpec(t *testing.T) {
	input := validateInput{Spec: specInput{Content: petstoreOAS}}
	result, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.True(t, output.Valid)
	assert.Equal(t, "openapi", output.Dialect)
	assert.Empty(t, output.Errors)
}

func TestValidateTool_MissingInfo(t *testing.T) {
	input := validateInput{Spec: specInput{Content: `{"openapi":"3.0.0","paths":{}}`}}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.Len(t, output.Errors, 1)
	assert.Equal(t, `OpenAPI schema missing required "info" object`, output.Errors[0].Message)
}

func TestValidateTool_StrictMode(t *testing.T) {
	content := `{"openapi":"3.0.0","info":{"title":"T","version":"1"}}`

	_, lenient, err := handleValidate(context.Background(), &mcp.CallToolRequest{},
		validateInput{Spec: specInput{Content: content}, Strict: boolPtr(false)})
	require.NoError(t, err)
	assert.True(t, lenient.Valid)
	assert.Equal(t, 1, lenient.WarningCount)

	_, strict, err := handleValidate(context.Background(), &mcp.CallToolRequest{},
		validateInput{Spec: specInput{Content: content}, Strict: boolPtr(true)})
	require.NoError(t, err)
	assert.False(t, strict.Valid)
	assert.Equal(t, 1, strict.ErrorCount)
}

func TestValidateTool_NoWarnings(t *testing.T) {
	input := validateInput{
		Spec:       specInput{Content: `{"title":"Bare"}`},
		NoWarnings: boolPtr(true),
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Zero(t, output.WarningCount)
	assert.Nil(t, output.Warnings)
}

func TestValidateTool_InvalidJSONIsAResult(t *testing.T) {
	input := validateInput{Spec: specInput{Content: `{"broken":`}}
	result, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, output.Valid)
	require.Len(t, output.Errors, 1)
	assert.Contains(t, output.Errors[0].Message, "Invalid JSON: ")
}

func TestValidateTool_NoInputProvided(t *testing.T) {
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestGenerateTool_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"ts", "export interface Pet {"},
		{"js", "@typedef {Object} Pet"},
		{"json", `"definitions": {`},
		{"go", "type Pet struct {"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			input := generateInput{
				Spec:            specInput{Content: petstoreOAS},
				Format:          tt.format,
				IncludeComments: boolPtr(false),
			}
			result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			require.Nil(t, result)
			assert.Equal(t, tt.format, output.Format)
			assert.Equal(t, 2, output.DefinitionCount)
			assert.Equal(t, []string{"Pet", "Pets"}, output.Definitions)
			assert.Contains(t, output.Code, tt.want)
			assert.Equal(t, len(output.Code), output.Bytes)
		})
	}
}

func TestGenerateTool_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "index.ts")
	input := generateInput{
		Spec:   specInput{Content: petstoreOAS},
		Output: path,
	}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, path, output.WrittenTo)
	assert.Empty(t, output.Code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, output.Bytes)
	assert.Contains(t, string(data), "Pet Store")
}

func TestGenerateTool_DefaultExport(t *testing.T) {
	input := generateInput{
		Spec:            specInput{Content: petstoreOAS},
		Format:          "ts",
		Export:          "default",
		IncludeComments: boolPtr(false),
	}
	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Contains(t, output.Code, "export default { Pet, Pets };")
}

func TestGenerateTool_InvalidOptions(t *testing.T) {
	tests := []struct {
		name  string
		input generateInput
	}{
		{"unknown format", generateInput{Spec: specInput{Content: petstoreOAS}, Format: "rust"}},
		{"unknown export", generateInput{Spec: specInput{Content: petstoreOAS}, Export: "star"}},
		{"bad package", generateInput{Spec: specInput{Content: petstoreOAS}, Format: "go", PackageName: "1types"}},
		{"invalid json", generateInput{Spec: specInput{Content: `not json`}}},
		{"no input", generateInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestNormalizeTool_OpenAPI(t *testing.T) {
	input := normalizeInput{Spec: specInput{Content: petstoreOAS}, IncludeDocument: true}
	result, output, err := handleNormalize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "openapi", output.Dialect)
	assert.Equal(t, "Pet Store", output.Title)
	assert.Equal(t, "2.1.0", output.Version)
	assert.True(t, output.HasPaths)
	assert.Equal(t, []normalizedDefinition{
		{Name: "Pet", Type: "object(3)"},
		{Name: "Pets", Type: "array"},
	}, output.Definitions)
	assert.Contains(t, output.Document, `"title": "Pet Store"`)
}

func TestNormalizeTool_Remote(t *testing.T) {
	content := `{"schemas":{"Item":{"type":"string"}}}`
	_, output, err := handleNormalize(context.Background(), &mcp.CallToolRequest{},
		normalizeInput{Spec: specInput{Content: content}, Remote: true})
	require.NoError(t, err)
	assert.Equal(t, "Remote API", output.Title)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Equal(t, []normalizedDefinition{{Name: "Item", Type: "string"}}, output.Definitions)
	assert.Empty(t, output.Document)
}

func TestNormalizeTool_NotAnObject(t *testing.T) {
	result, _, err := handleNormalize(context.Background(), &mcp.CallToolRequest{},
		normalizeInput{Spec: specInput{Content: `[1, 2]`}})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

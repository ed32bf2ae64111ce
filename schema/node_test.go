package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/apitypes/jsondoc"
)

func nodeFromJSON(t *testing.T, s string) *Node {
	t.Helper()
	v, err := jsondoc.Decode([]byte(s))
	require.NoError(t, err)
	return NodeFromValue(v)
}

func TestNodeFromValuePresence(t *testing.T) {
	n := nodeFromJSON(t, `{"properties": {}, "enum": [], "oneOf": [], "required": []}`)
	assert.True(t, n.HasProperties())
	assert.Empty(t, n.Properties)
	assert.True(t, n.HasEnum())
	assert.True(t, n.HasOneOf())
	assert.False(t, n.HasAnyOf())
	assert.NotNil(t, n.Required)

	empty := nodeFromJSON(t, `{}`)
	assert.False(t, empty.HasProperties())
	assert.False(t, empty.HasEnum())
	assert.False(t, empty.HasOneOf())
	assert.Nil(t, empty.Items)
}

func TestNodeFromValueIgnoresWrongTypes(t *testing.T) {
	n := nodeFromJSON(t, `{"type": ["string", "null"], "properties": [1], "items": "x", "enum": {"a": 1}, "required": ["a", 2, "b"], "description": 5}`)
	assert.Empty(t, n.Type)
	assert.False(t, n.HasProperties())
	assert.Nil(t, n.Items)
	assert.False(t, n.HasEnum())
	assert.Equal(t, []string{"a", "b"}, n.Required)
	assert.Empty(t, n.Description)
}

func TestNodeFromValueNonObject(t *testing.T) {
	n := NodeFromValue("just a string")
	assert.Equal(t, "just a string", n.Raw)
	assert.Empty(t, n.Type)

	var nilNode *Node
	assert.False(t, nilNode.IsRequired("x"))
	assert.False(t, nilNode.HasEnum())
}

func TestNodeFromValueNested(t *testing.T) {
	n := nodeFromJSON(t, `{"type": "array", "items": {"anyOf": [{"type": "string"}, {"type": "integer"}]}}`)
	require.NotNil(t, n.Items)
	require.Len(t, n.Items.AnyOf, 2)
	assert.Equal(t, "integer", n.Items.AnyOf[1].Type)
}

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		input string
		want  Dialect
	}{
		{`{"openapi": "3.0.0"}`, DialectOpenAPI},
		{`{"swagger": "2.0"}`, DialectOpenAPI},
		{`{"swagger": "2.0", "$schema": "x"}`, DialectOpenAPI},
		{`{"$schema": "x"}`, DialectJSONSchema},
		{`{"definitions": {}}`, DialectJSONSchema},
		{`{"title": "x"}`, DialectUnknown},
		{`"openapi"`, DialectUnknown},
	}
	for _, tt := range tests {
		v, err := jsondoc.Decode([]byte(tt.input))
		require.NoError(t, err)
		assert.Equal(t, tt.want, DetectDialect(v), tt.input)
	}
	assert.Equal(t, "openapi", DialectOpenAPI.String())
	assert.Equal(t, "json-schema", DialectJSONSchema.String())
	assert.Equal(t, "unknown", DialectUnknown.String())
}

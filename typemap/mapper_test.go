package typemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schema"
)

func mapJSON(t *testing.T, s string) TypeNode {
	t.Helper()
	v, err := jsondoc.Decode([]byte(s))
	require.NoError(t, err)
	return Map(schema.NodeFromValue(v))
}

func TestMapObject(t *testing.T) {
	node := mapJSON(t, `{
		"type": "object",
		"properties": {
			"id": {"type": "string"},
			"name": {"type": "string", "description": "Display name"},
			"email": {"type": "string", "format": "email"},
			"createdAt": {"type": "string", "format": "date-time"}
		},
		"required": ["id", "name", "email"]
	}`)

	obj, ok := node.(*Object)
	require.True(t, ok)
	require.Len(t, obj.Properties, 4)

	names := make([]string, 0, 4)
	for _, p := range obj.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"id", "name", "email", "createdAt"}, names)
	assert.Equal(t, []string{"id", "name", "email"}, obj.RequiredNames())
	assert.Equal(t, "Display name", obj.Properties[1].Description)
	assert.Empty(t, obj.Properties[0].Description)

	created, ok := obj.Properties[3].Type.(*Primitive)
	require.True(t, ok)
	assert.True(t, created.AcceptsDate())
	assert.False(t, obj.Properties[2].Type.(*Primitive).AcceptsDate())
}

func TestMapClassificationPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"properties without type is object", `{"properties": {"a": {}}}`, "object(1)"},
		{"object type without properties", `{"type": "object"}`, "object(0)"},
		{"object beats enum", `{"type": "object", "enum": [1]}`, "object(0)"},
		{"array beats enum", `{"type": "array", "enum": [[1]]}`, "array"},
		{"enum beats oneOf", `{"enum": ["a"], "oneOf": [{}]}`, "enum(1)"},
		{"enum beats primitive", `{"type": "string", "enum": ["a", "b"]}`, "enum(2)"},
		{"oneOf beats anyOf", `{"oneOf": [{}], "anyOf": [{}, {}]}`, "union(1)"},
		{"anyOf alone", `{"anyOf": [{}, {}]}`, "union(2)"},
		{"empty oneOf still a union", `{"oneOf": []}`, "union(0)"},
		{"string", `{"type": "string"}`, "string"},
		{"integer is number", `{"type": "integer", "format": "int64"}`, "number(int64)"},
		{"boolean", `{"type": "boolean"}`, "boolean"},
		{"null", `{"type": "null"}`, "null"},
		{"missing type", `{}`, "unknown"},
		{"ref is not resolved", `{"$ref": "#/definitions/User"}`, "unknown"},
		{"allOf is not interpreted", `{"allOf": [{"type": "string"}]}`, "unknown"},
		{"type arrays are not interpreted", `{"type": ["string", "null"]}`, "unknown"},
		{"non-object node", `"string"`, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapJSON(t, tt.input).String())
		})
	}
}

func TestMapArray(t *testing.T) {
	t.Run("items mapped", func(t *testing.T) {
		arr, ok := mapJSON(t, `{"type": "array", "items": {"type": "number"}}`).(*Array)
		require.True(t, ok)
		assert.Equal(t, &Primitive{Kind: KindNumber}, arr.Item)
	})

	t.Run("missing items map to unknown", func(t *testing.T) {
		arr, ok := mapJSON(t, `{"type": "array"}`).(*Array)
		require.True(t, ok)
		assert.IsType(t, &Unknown{}, arr.Item)
	})
}

func TestMapEnumKeepsOrderAndDuplicates(t *testing.T) {
	enum, ok := mapJSON(t, `{"enum": ["b", "a", "b", 1, 1.50, true, null]}`).(*Enum)
	require.True(t, ok)
	assert.Equal(t, []any{"b", "a", "b", jsondoc.Number("1"), jsondoc.Number("1.50"), true, nil}, enum.Values)
}

func TestMapUnionVariants(t *testing.T) {
	u, ok := mapJSON(t, `{"oneOf": [{"type": "string"}, {"type": "array", "items": {"type": "boolean"}}]}`).(*Union)
	require.True(t, ok)
	require.Len(t, u.Variants, 2)
	assert.Equal(t, "string", u.Variants[0].String())
	assert.Equal(t, "array", u.Variants[1].String())
}

func TestMapNil(t *testing.T) {
	assert.IsType(t, &Unknown{}, Map(nil))
}

func TestMapDepthLimit(t *testing.T) {
	const levels = 20
	doc := strings.Repeat(`{"type": "array", "items": `, levels) + `{"type": "string"}` + strings.Repeat(`}`, levels)

	m := &Mapper{MaxDepth: 5}
	v, err := jsondoc.Decode([]byte(doc))
	require.NoError(t, err)
	node := m.Map(schema.NodeFromValue(v))

	depth := 0
	for {
		arr, ok := node.(*Array)
		if !ok {
			break
		}
		depth++
		node = arr.Item
	}
	assert.Equal(t, 5, depth)
	assert.IsType(t, &Unknown{}, node)

	// The default limit is deep enough for the whole chain.
	node = Map(schema.NodeFromValue(v))
	for {
		arr, ok := node.(*Array)
		if !ok {
			break
		}
		node = arr.Item
	}
	assert.Equal(t, "string", node.String())
}

package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	input := `{"z":{"y":[1,2.50,"x",null,true]},"a":"<b>&amp;</b>","n":-0.0}`
	v, err := Decode([]byte(input))
	require.NoError(t, err)

	out, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestMarshalIndent(t *testing.T) {
	obj := NewObject(2)
	obj.Set("title", "API")
	inner := NewObject(1)
	inner.Set("type", "string")
	obj.Set("definitions", inner)
	obj.Set("empty", []any{})

	out, err := MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	want := `{
  "title": "API",
  "definitions": {
    "type": "string"
  },
  "empty": []
}`
	assert.Equal(t, want, string(out))
}

func TestObjectSetKeepsPosition(t *testing.T) {
	var obj Object
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	var keys []string
	var values []any
	for k, v := range obj.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []any{3, 2}, values)
}

func TestObjectMarshalJSONViaStdlibShape(t *testing.T) {
	obj := NewObject(1)
	obj.Set("b", Number("1"))
	obj.Set("a", "x")
	data, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":"x"}`, string(data))
}

func TestNilObjectAccessors(t *testing.T) {
	var obj *Object
	assert.Equal(t, 0, obj.Len())
	assert.Nil(t, obj.Keys())
	assert.False(t, obj.Has("x"))
	_, ok := AsObject(obj)
	assert.False(t, ok)

	out, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "null"},
		{NewObject(0), "object"},
		{[]any{}, "array"},
		{"s", "string"},
		{Number("1"), "number"},
		{true, "boolean"},
		{3.5, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeName(tt.value))
	}
}

func TestMarshalLeavesHTMLCharacters(t *testing.T) {
	obj := NewObject(2)
	obj.Set("<key>", "a & b")
	obj.Set("enum", []any{"<T>", Number("1")})

	out, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"<key>":"a & b","enum":["<T>",1]}`, string(out))

	out, err = Marshal([]any{map[string]string{"x": "<>&"}})
	require.NoError(t, err)
	assert.Equal(t, `[{"x":"<>&"}]`, string(out))
}

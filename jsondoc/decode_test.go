package jsondoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/apitypes/schemaerrors"
)

func TestDecodePreservesKeyOrder(t *testing.T) {
	v, err := Decode([]byte(`{"zeta": 1, "alpha": 2, "mid": {"b": true, "a": null}}`))
	require.NoError(t, err)

	obj, ok := AsObject(v)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	mid, _ := obj.Get("mid")
	midObj, ok := AsObject(mid)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, midObj.Keys())
	assert.True(t, midObj.Has("a"))
	assert.False(t, midObj.Present("a"))
	assert.True(t, midObj.Present("b"))
}

func TestDecodeScalars(t *testing.T) {
	v, err := Decode([]byte(`["s", 1.50, -2e3, true, false, null, {}, []]`))
	require.NoError(t, err)

	items, ok := AsArray(v)
	require.True(t, ok)
	require.Len(t, items, 8)
	assert.Equal(t, "s", items[0])
	assert.Equal(t, Number("1.50"), items[1])
	assert.Equal(t, Number("-2e3"), items[2])
	assert.Equal(t, true, items[3])
	assert.Equal(t, false, items[4])
	assert.Nil(t, items[5])
	assert.Equal(t, 0, items[6].(*Object).Len())
	assert.Empty(t, items[7])

	f, err := items[2].(Number).Float64()
	require.NoError(t, err)
	assert.InDelta(t, -2000.0, f, 0)
}

func TestDecodeDuplicateKeysKeepFirstPositionLastValue(t *testing.T) {
	v, err := Decode([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	obj := v.(*Object)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	a, _ := obj.Get("a")
	assert.Equal(t, Number("3"), a)
}

func TestDecodeSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t"},
		{"truncated object", `{"a": 1`},
		{"trailing data", `{} {}`},
		{"single quotes", `{'a': 1}`},
		{"trailing comma", `{"a": 1,}`},
		{"bare word", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, schemaerrors.ErrSyntax)

			var synErr *schemaerrors.SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.NotEmpty(t, synErr.Detail())
		})
	}
}

func TestDecodeTabIndentedDocument(t *testing.T) {
	input := "{\n\t\"definitions\": {\n\t\t\"User\": {\"type\": \"object\"}\n\t}\n}"
	v, err := Decode([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"definitions"}, v.(*Object).Keys())
}

func TestDecodeNestingLimit(t *testing.T) {
	deep := strings.Repeat("[", maxNestingDepth+1) + strings.Repeat("]", maxNestingDepth+1)
	_, err := Decode([]byte(deep))
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrSyntax)
}

func TestDecodeUnicodeEscapes(t *testing.T) {
	v, err := Decode([]byte(`{"name": "café \/ \"quoted\""}`))
	require.NoError(t, err)
	name, _ := v.(*Object).Get("name")
	assert.Equal(t, `café / "quoted"`, name)
}

func TestDecodeOutOfRangeNumbersKeepSourceText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Number
	}{
		{"bare literal", `1e400`, "1e400"},
		{"enum member", `{"enum":[1e309]}`, "1e309"},
		{"keyword value", `{"maximum":1.7976931348623157e309}`, "1.7976931348623157e309"},
		{"negative", `[-2e5000]`, "-2e5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode([]byte(tt.input))
			require.NoError(t, err)

			out, err := Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(out))
			assert.Contains(t, string(out), string(tt.want))
		})
	}
}

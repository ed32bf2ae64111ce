package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: "Type"},
		{name: "symbols only", input: "--", want: "Type"},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "camelCase keeps inner capitals", input: "createdAt", want: "CreatedAt"},
		{name: "snake_case", input: "user_profile", want: "UserProfile"},
		{name: "kebab-case", input: "api-client", want: "APIClient"},
		{name: "dotted", input: "com.example.pet", want: "ComExamplePet"},
		{name: "initialism", input: "id", want: "ID"},
		{name: "initialism inside", input: "owner_url", want: "OwnerURL"},
		{name: "leading digit", input: "2fa", want: "Type2fa"},
		{name: "reserved word", input: "type", want: "Type_"},
		{name: "reserved word mixed case", input: "Range", want: "Range_"},
		{name: "already pascal", input: "UserProfile", want: "UserProfile"},
		{name: "unicode letters", input: "été", want: "Été"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoIdentifier(tt.input, "Type"))
		})
	}
}

func TestIsJSIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"id", true},
		{"_private", true},
		{"$ref", true},
		{"createdAt2", true},
		{"", false},
		{"2fa", false},
		{"content-type", false},
		{"with space", false},
		{"a.b", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJSIdentifier(tt.input))
		})
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{}
	assert.Equal(t, "Name", Unique("Name", taken))
	assert.Equal(t, "Name2", Unique("Name", taken))
	assert.Equal(t, "Name3", Unique("Name", taken))
	assert.Equal(t, "Other", Unique("Other", taken))
	assert.True(t, taken["Name2"])
}

func TestTSIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid kept as written", input: "User", want: "User"},
		{name: "lower camel kept", input: "petOwner", want: "petOwner"},
		{name: "dollar kept", input: "$Meta", want: "$Meta"},
		{name: "kebab-case", input: "user-profile", want: "UserProfile"},
		{name: "dotted", input: "com.example.Pet", want: "ComExamplePet"},
		{name: "initialism after conversion", input: "api-key", want: "APIKey"},
		{name: "symbols only", input: "--", want: "Type"},
		{name: "reserved word", input: "default", want: "default_"},
		{name: "builtin type name", input: "string", want: "string_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TSIdentifier(tt.input, "Type"))
		})
	}
}

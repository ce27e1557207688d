package typescript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello_world", "HelloWorld"},
		{"hello-world", "HelloWorld"},
		{"hello world", "HelloWorld"},
		{"helloWorld", "HelloWorld"},
		{"HelloWorld", "HelloWorld"},
		{"getUser", "GetUser"},
		{"pet_store", "PetStore"},
		{"", ""},
		{"a", "A"},
		{"ABC", "Abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := PascalCase(tt.input)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello_world", "helloWorld"},
		{"hello-world", "helloWorld"},
		{"HelloWorld", "helloWorld"},
		{"X-Rate-Limit", "xRateLimit"},
		{"", ""},
		{"a", "a"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CamelCase(tt.input)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"petId", "petId"},
		{"x-api-key", "xApiKey"},
		{"123abc", "_123abc"},
		{"", "value"},
		{"new", "new_"},
		{"class", "class_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ToIdentifier(tt.input)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"id", true},
		{"petId", true},
		{"$ref", true},
		{"_private", true},
		{"a1", true},
		{"1a", false},
		{"x-rate-limit", false},
		{"content type", false},
		{"class", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := IsValidIdentifier(tt.input)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestQuoteKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"id", "id"},
		{"x-rate-limit", "'x-rate-limit'"},
		{"class", "'class'"},
		{"it's", "'it\\'s'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := QuoteKey(tt.input)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestEscapeComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "fetch a user", "fetch a user"},
		{"terminator", "bad */ comment", "bad * comment"},
		{"opener", "bad /* comment", "bad * comment"},
		{"newlines", "first line\nsecond line", "first line second line"},
		{"crlf", "first\r\nsecond", "first second"},
		{"surrounding space", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeComment(tt.input)
			require.Equal(t, tt.expected, got)
		})
	}
}

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "camel case boundary",
			input:    "userName",
			expected: []string{"user", "Name"},
		},
		{
			name:     "acronym run",
			input:    "XMLParser",
			expected: []string{"XML", "Parser"},
		},
		{
			name:     "acronym at end",
			input:    "parseXML",
			expected: []string{"parse", "XML"},
		},
		{
			name:     "explicit separators",
			input:    "a-b_c.d/e\\f",
			expected: []string{"a", "b", "c", "d", "e", "f"},
		},
		{
			name:     "collapsed whitespace",
			input:    "hello   world",
			expected: []string{"hello", "world"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "only separators",
			input:    "_-_",
			expected: nil,
		},
		{
			name:     "digits stay in word",
			input:    "user2id",
			expected: []string{"user2id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitWords(tt.input))
		})
	}
}

func TestToPascal(t *testing.T) {
	assert.Equal(t, "UserId", ToPascal("user-id"))
	assert.Equal(t, "UserName", ToPascal("user_name"))
	assert.Equal(t, "XmlParser", ToPascal("XMLParser"))
	assert.Equal(t, "HelloWorld", ToPascal("hello world"))
	assert.Equal(t, "Items", ToPascal("items"))
	assert.Equal(t, "", ToPascal(""))
}

func TestToCamel(t *testing.T) {
	assert.Equal(t, "userId", ToCamel("user-id"))
	assert.Equal(t, "userName", ToCamel("user_name"))
	assert.Equal(t, "xmlParser", ToCamel("XMLParser"))
	assert.Equal(t, "name", ToCamel("name"))
	assert.Equal(t, "", ToCamel(""))
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "user_id", ToSnake("userId"))
	assert.Equal(t, "user_id", ToSnake("user-id"))
	assert.Equal(t, "https_connection", ToSnake("HTTPSConnection"))
	assert.Equal(t, "name", ToSnake("name"))
	assert.Equal(t, "", ToSnake(""))
}

func TestToKebab(t *testing.T) {
	assert.Equal(t, "user-id", ToKebab("userId"))
	assert.Equal(t, "user-name", ToKebab("user_name"))
	assert.Equal(t, "", ToKebab(""))
}

func TestConvertersAreDeterministic(t *testing.T) {
	for _, input := range []string{"user_name", "XMLParser", "a-b.c", "  spaced  "} {
		assert.Equal(t, ToPascal(input), ToPascal(input))
		assert.Equal(t, ToSnake(input), ToSnake(input))
	}
}

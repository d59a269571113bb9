package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_DefaultStruct(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "age": 37, "tags": ["math", "cs"]}`)
	opts := DefaultGoOptions()
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := "package main\n\n" +
		"type Person struct {\n" +
		"\tName string   `json:\"name\"`\n" +
		"\tAge  float64  `json:\"age\"`\n" +
		"\tTags []string `json:\"tags\"`\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestGo_NestedStructsChildrenFirst(t *testing.T) {
	value := parseValue(t, `{"user": {"id": 1}}`)
	out, err := GenerateDefault(value, LangGo)
	require.NoError(t, err)

	expected := "package main\n\n" +
		"type User struct {\n" +
		"\tId float64 `json:\"id\"`\n" +
		"}\n\n" +
		"type Root struct {\n" +
		"\tUser User `json:\"user\"`\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestGo_OmitEmpty(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultGoOptions()
	opts.OmitEmpty = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "`json:\"name,omitempty\"`")
}

func TestGo_NoTagsNoPackage(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultGoOptions()
	opts.Package = ""
	opts.JSONTags = false

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := "type Root struct {\n" +
		"\tName string\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestGo_PointerObjects(t *testing.T) {
	value := parseValue(t, `{"address": {"city": "London"}}`)
	opts := DefaultGoOptions()
	opts.PointerObjects = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "Address *Address `json:\"address\"`")
}

func TestGo_UntypedFields(t *testing.T) {
	value := parseValue(t, `{"anything": null, "items": []}`)
	out, err := GenerateDefault(value, LangGo)
	require.NoError(t, err)
	assert.Contains(t, out, "interface{}")
	assert.Contains(t, out, "[]interface{}")
}

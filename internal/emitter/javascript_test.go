package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaScript_DefaultJSDoc(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "age": 37}`)
	opts := DefaultJavaScriptOptions()
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `/**
 * @typedef {Object} Person
 * @property {string} name
 * @property {number} age
 */
`
	assert.Equal(t, expected, out)
}

func TestJavaScript_JSDocRenameNote(t *testing.T) {
	value := parseValue(t, `{"user_id": 1}`)
	out, err := GenerateDefault(value, LangJavaScript)
	require.NoError(t, err)
	assert.Contains(t, out, `@property {number} userId - maps to "user_id"`)
}

func TestJavaScript_ClassStyle(t *testing.T) {
	value := parseValue(t, `{"user_id": 1, "name": "Ada"}`)
	opts := DefaultJavaScriptOptions()
	opts.Style = JavaScriptClass
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `export class Person {
  constructor(data = {}) {
    this.userId = data["user_id"];
    this.name = data["name"];
  }
}
`
	assert.Equal(t, expected, out)
}

func TestJavaScript_FactoryAndValidator(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "tags": ["x"], "meta": {"id": 1}}`)
	opts := DefaultJavaScriptOptions()
	opts.Factory = true
	opts.Validator = true

	out, err := Generate(value, opts)
	require.NoError(t, err)

	assert.Contains(t, out, "export function createMeta(data = {}) {")
	assert.Contains(t, out, "export function createRoot(data = {}) {")
	assert.Contains(t, out, `name: data["name"],`)
	assert.Contains(t, out, "export function isRoot(value) {")
	assert.Contains(t, out, `typeof value["name"] === "string"`)
	assert.Contains(t, out, `Array.isArray(value["tags"])`)
	assert.Contains(t, out, `typeof value["meta"] === "object"`)
}

func TestJavaScript_ClassFactoryDelegates(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultJavaScriptOptions()
	opts.Style = JavaScriptClass
	opts.Factory = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "return new Root(data);")
}

func TestJavaScript_ArrayTypeRef(t *testing.T) {
	value := parseValue(t, `{"scores": [1.5]}`)
	out, err := GenerateDefault(value, LangJavaScript)
	require.NoError(t, err)
	assert.Contains(t, out, "@property {Array<number>} scores")
}

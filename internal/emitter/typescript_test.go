package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeScript_DefaultInterface(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "age": 37, "tags": ["math", "cs"]}`)
	opts := DefaultTypeScriptOptions()
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `export interface Person {
  name: string;
  age: number;
  tags: string[];
}
`
	assert.Equal(t, expected, out)
}

func TestTypeScript_NestedObjectsChildrenFirst(t *testing.T) {
	value := parseValue(t, `{"user": {"id": 1}}`)
	out, err := GenerateDefault(value, LangTypeScript)
	require.NoError(t, err)

	expected := `export interface User {
  id: number;
}

export interface Root {
  user: User;
}
`
	assert.Equal(t, expected, out)
}

func TestTypeScript_TypeAlias(t *testing.T) {
	value := parseValue(t, `{"ok": true}`)
	opts := DefaultTypeScriptOptions()
	opts.Style = TypeScriptTypeAlias
	opts.Export = false

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `type Root = {
  ok: boolean;
};
`
	assert.Equal(t, expected, out)
}

func TestTypeScript_QuotedKeys(t *testing.T) {
	value := parseValue(t, `{"user-id": 1, "valid_name": "x", "$ref": "y"}`)
	out, err := GenerateDefault(value, LangTypeScript)
	require.NoError(t, err)

	expected := `export interface Root {
  "user-id": number;
  valid_name: string;
  $ref: string;
}
`
	assert.Equal(t, expected, out)
}

func TestTypeScript_OptionalStrict(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultTypeScriptOptions()
	opts.OptionalFields = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "name?: string | undefined;")

	opts.Strict = false
	out, err = Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "name?: string;")
	assert.NotContains(t, out, "undefined")
}

func TestTypeScript_ReadonlyAndNull(t *testing.T) {
	value := parseValue(t, `{"deleted_at": null}`)
	opts := DefaultTypeScriptOptions()
	opts.Readonly = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "readonly deleted_at: null;")

	opts.Strict = false
	out, err = Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "readonly deleted_at: any;")
}

func TestTypeScript_EmptyArrayField(t *testing.T) {
	value := parseValue(t, `{"items": []}`)
	out, err := GenerateDefault(value, LangTypeScript)
	require.NoError(t, err)
	assert.Contains(t, out, "items: unknown[];")
}

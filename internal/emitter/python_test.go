package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPython_DefaultDataclass(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "tags": []}`)
	opts := DefaultPythonOptions()
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `from dataclasses import dataclass
from typing import Any

@dataclass
class Person:
    name: str
    tags: list[Any]
`
	assert.Equal(t, expected, out)
}

func TestPython_DataclassRenameMetadata(t *testing.T) {
	value := parseValue(t, `{"user_name": "Ada", "userId": 1}`)
	opts := DefaultPythonOptions()
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `from dataclasses import dataclass, field

@dataclass
class Person:
    user_name: str
    user_id: float = field(metadata={"json": "userId"})
`
	assert.Equal(t, expected, out)
}

func TestPython_DataclassOptional(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "userId": 1}`)
	opts := DefaultPythonOptions()
	opts.OptionalFields = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "name: str | None = None")
	assert.Contains(t, out, `user_id: float | None = field(default=None, metadata={"json": "userId"})`)
}

func TestPython_DecoratorArgs(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultPythonOptions()
	opts.Frozen = true
	opts.Slots = true
	opts.KwOnly = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "@dataclass(frozen=True, slots=True, kw_only=True)")
}

func TestPython_TypedDict(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "age": 37}`)
	opts := DefaultPythonOptions()
	opts.Style = PythonTypedDict
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `from typing import TypedDict

class Person(TypedDict):
    name: str
    age: float
`
	assert.Equal(t, expected, out)
}

func TestPython_TypedDictOptional(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultPythonOptions()
	opts.Style = PythonTypedDict
	opts.OptionalFields = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "from typing import NotRequired, TypedDict")
	assert.Contains(t, out, "name: NotRequired[str]")
}

func TestPython_TypedDictFunctionalForInvalidKeys(t *testing.T) {
	value := parseValue(t, `{"user-id": 1, "name": "Ada"}`)
	opts := DefaultPythonOptions()
	opts.Style = PythonTypedDict
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `from typing import TypedDict

Person = TypedDict("Person", {
    "user-id": float,
    "name": str,
})
`
	assert.Equal(t, expected, out)
}

func TestPython_NestedClassOrder(t *testing.T) {
	value := parseValue(t, `{"address": {"city": "London"}}`)
	out, err := GenerateDefault(value, LangPython)
	require.NoError(t, err)

	expected := `from dataclasses import dataclass

@dataclass
class Address:
    city: str

@dataclass
class Root:
    address: Address
`
	assert.Equal(t, expected, out)
}

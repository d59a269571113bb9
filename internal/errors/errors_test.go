package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "with wrapped error",
			err:      NewParsingError("bad syntax", ErrInvalidJSON),
			expected: "parsing: bad syntax: invalid JSON format",
		},
		{
			name:     "without wrapped error",
			err:      NewInputError("nothing to read", nil),
			expected: "input: nothing to read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewInputError("cannot read file", ErrFileNotFound)
	assert.ErrorIs(t, err, ErrFileNotFound)

	wrapped := fmt.Errorf("while loading: %w", err)
	var appErr *AppError
	assert.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, ErrorTypeInput, appErr.Type)
}

func TestAppError_IsMatchesOnType(t *testing.T) {
	a := NewConfigError("first", nil)
	b := NewConfigError("second", nil)
	c := NewOutputError("third", nil)

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
	assert.False(t, a.Is(errors.New("plain")))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		build    func(string, error) *AppError
		expected ErrorType
	}{
		{"input", NewInputError, ErrorTypeInput},
		{"parsing", NewParsingError, ErrorTypeParsing},
		{"config", NewConfigError, ErrorTypeConfig},
		{"generate", NewGenerateError, ErrorTypeGenerate},
		{"output", NewOutputError, ErrorTypeOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build("message", nil)
			assert.Equal(t, tt.expected, err.Type)
			assert.Equal(t, "message", err.Message)
		})
	}
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input app error",
			err:      NewInputError("stdin closed", nil),
			expected: "Input error: stdin closed",
		},
		{
			name:     "parsing app error",
			err:      NewParsingError("unexpected comma", nil),
			expected: "JSON parsing error: unexpected comma",
		},
		{
			name:     "config app error",
			err:      NewConfigError("bad style", nil),
			expected: "Configuration error: bad style",
		},
		{
			name:     "generate app error",
			err:      NewGenerateError("no emitter", nil),
			expected: "Code generation error: no emitter",
		},
		{
			name:     "output app error",
			err:      NewOutputError("disk full", nil),
			expected: "Output error: disk full",
		},
		{
			name:     "empty input sentinel",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name:     "multiple json sentinel",
			err:      ErrMultipleJSON,
			expected: "Error: Multiple JSON values found. Please provide a single JSON object or array.",
		},
		{
			name:     "unknown language sentinel",
			err:      ErrUnknownLanguage,
			expected: "Error: Unknown target language. Run with --list-languages to see supported targets.",
		},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("reading: %w", ErrFileNotFound),
			expected: "Error: The specified file could not be found. Please check the file path.",
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}

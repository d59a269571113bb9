package parser

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/polytyper/polytyper/internal/errors"
	"github.com/polytyper/polytyper/internal/models"
)

// Parse decodes a single JSON value from reader into the ordered value
// model. Numbers are kept as json.Number and object member order follows
// the input text, which is why this walks the token stream instead of
// unmarshalling into map[string]interface{}.
func Parse(reader io.Reader) (models.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return nil, wrapDecodeError(err)
	}

	value, err := parseValue(decoder, token)
	if err != nil {
		return nil, err
	}

	// Anything after the first value other than trailing whitespace means
	// multiple root values, which is rejected.
	if decoder.More() {
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}
	if _, err := decoder.Token(); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}

	return value, nil
}

// parseValue builds one value from the token just read, consuming any
// nested tokens it owns.
func parseValue(decoder *json.Decoder, token json.Token) (models.Value, error) {
	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(decoder)
		case '[':
			return parseArray(decoder)
		default:
			return nil, errors.NewParsingError(fmt.Sprintf("unexpected delimiter %q", t.String()), errors.ErrInvalidJSON)
		}
	case string, bool, json.Number, nil:
		return t, nil
	default:
		return nil, errors.NewParsingError(fmt.Sprintf("unexpected token type %T", token), errors.ErrInvalidJSON)
	}
}

func parseObject(decoder *json.Decoder) (*models.Object, error) {
	obj := &models.Object{}
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, wrapDecodeError(err)
		}
		if delim, ok := token.(json.Delim); ok && delim == '}' {
			return obj, nil
		}

		key, ok := token.(string)
		if !ok {
			return nil, errors.NewParsingError(fmt.Sprintf("object key is not a string: %v", token), errors.ErrInvalidJSON)
		}

		valueToken, err := decoder.Token()
		if err != nil {
			return nil, wrapDecodeError(err)
		}
		value, err := parseValue(decoder, valueToken)
		if err != nil {
			return nil, err
		}

		obj.Members = append(obj.Members, models.Member{Key: key, Value: value})
	}
}

func parseArray(decoder *json.Decoder) (models.Array, error) {
	arr := models.Array{}
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, wrapDecodeError(err)
		}
		if delim, ok := token.(json.Delim); ok && delim == ']' {
			return arr, nil
		}

		value, err := parseValue(decoder, token)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
}

// wrapDecodeError maps decoder failures onto the application error
// taxonomy, keeping the offset detail for syntax errors.
func wrapDecodeError(err error) error {
	if stderrors.Is(err, io.EOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	// An empty or whitespace-only string gets a specific error rather than
	// the decoder's io.EOF.
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}

package parser

import (
	stdjson "encoding/json"
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mcncl/formatx/internal/errors" // Custom errors package
	"github.com/mcncl/formatx/internal/models"
)

// ParseJSON parses text into a JSONValue, keeping object members in the
// order they appear. Any syntax violation yields a ConversionError with the
// message "Invalid JSON: <detail>".
func ParseJSON(text string) (models.JSONValue, error) {
	if err := checkSyntax(text); err != nil {
		return nil, errors.NewInvalidJSONError(err)
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	root, err := decodeValue(decoder)
	if err != nil {
		return nil, errors.NewInvalidJSONError(err)
	}
	if tok, err := decoder.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected %v after top-level value", tok)
		}
		return nil, errors.NewInvalidJSONError(err)
	}
	return root, nil
}

// Valid reports whether text is a single syntactically valid JSON value.
// It accepts exactly what ParseJSON accepts.
func Valid(text string) bool {
	return checkSyntax(text) == nil
}

// checkSyntax validates text against the RFC 8259 grammar: no leading
// zeros, digits on both sides of a decimal point, no raw control
// characters in strings and exactly one value. Number range is not
// checked; out of range literals are rounded by parseNumber.
func checkSyntax(text string) error {
	var raw stdjson.RawMessage
	return stdjson.Unmarshal([]byte(text), &raw)
}

func decodeValue(decoder *json.Decoder) (models.JSONValue, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(decoder, tok)
}

func decodeToken(decoder *json.Decoder, tok json.Token) (models.JSONValue, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
	case string:
		return models.JSONString(v), nil
	case bool:
		return models.JSONBool(v), nil
	case json.Number:
		return parseNumber(string(v))
	case float64:
		return models.JSONNumber(v), nil
	case nil:
		return models.JSONNull{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(decoder *json.Decoder) (*models.JSONObject, error) {
	obj := models.NewJSONObject()
	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
}

func decodeArray(decoder *json.Decoder) (models.JSONArray, error) {
	arr := models.JSONArray{}
	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return arr, nil
		}
		value, err := decodeToken(decoder, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
}

// parseNumber converts a JSON number literal to a double. Literals outside
// the double range become ±Inf or ±0, the way a double-based parser rounds them.
func parseNumber(literal string) (models.JSONNumber, error) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) && stderrors.Is(numErr.Err, strconv.ErrRange) {
			return models.JSONNumber(f), nil
		}
		return 0, fmt.Errorf("invalid number %q: %w", literal, err)
	}
	return models.JSONNumber(f), nil
}

// ReadFile reads the text to convert from a file path
func ReadFile(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	return string(data), nil
}

package converter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
)

// JSONToCSV renders a JSON array as CSV.
func JSONToCSV(text string) (string, error) {
	v, err := parser.ParseJSON(text)
	if err != nil {
		return "", errors.WrapConversion("JSON", "CSV", err)
	}
	out, err := RenderCSV(v)
	if err != nil {
		return "", errors.WrapConversion("JSON", "CSV", err)
	}
	return out, nil
}

// RenderCSV renders an array as CSV. The header row is taken from the
// first element only and every row is laid out against it: missing and
// null cells are empty, keys absent from the first element are dropped.
// Strings containing a comma are wrapped in double quotes; nothing else is
// quoted or escaped.
func RenderCSV(v models.JSONValue) (string, error) {
	rows, ok := v.(models.JSONArray)
	if !ok {
		return "", errors.NewNotArrayError()
	}
	if len(rows) == 0 {
		return "", nil
	}

	headers, err := csvHeaders(rows[0])
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i, header := range headers {
			cell, err := csvCell(row, header)
			if err != nil {
				return "", err
			}
			cells[i] = cell
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n"), nil
}

// csvHeaders returns the property names of the first row: object keys,
// array indexes or string character indexes.
func csvHeaders(first models.JSONValue) ([]string, error) {
	switch val := first.(type) {
	case nil, models.JSONNull:
		return nil, fmt.Errorf("Cannot convert undefined or null to object")
	case *models.JSONObject:
		return val.Keys(), nil
	case models.JSONArray:
		return indexNames(len(val)), nil
	case models.JSONString:
		return indexNames(len([]rune(string(val)))), nil
	default:
		return nil, nil
	}
}

func indexNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

func csvCell(row models.JSONValue, header string) (string, error) {
	value, err := lookup(row, header)
	if err != nil {
		return "", err
	}
	switch val := value.(type) {
	case nil, models.JSONNull:
		return "", nil
	case models.JSONString:
		if strings.Contains(string(val), ",") {
			return `"` + string(val) + `"`, nil
		}
		return string(val), nil
	default:
		return models.Stringify(val), nil
	}
}

// lookup reads property name from row. A nil result means the row has no
// such property. Arrays and strings also have a "length" property, which
// counts UTF-16 code units for strings.
func lookup(row models.JSONValue, name string) (models.JSONValue, error) {
	switch val := row.(type) {
	case nil, models.JSONNull:
		return nil, fmt.Errorf("Cannot read properties of null (reading '%s')", name)
	case *models.JSONObject:
		v, _ := val.Get(name)
		return v, nil
	case models.JSONArray:
		if name == "length" {
			return models.JSONNumber(len(val)), nil
		}
		if i, ok := index(name); ok && i < len(val) {
			return val[i], nil
		}
	case models.JSONString:
		if name == "length" {
			return models.JSONNumber(len(utf16.Encode([]rune(string(val))))), nil
		}
		runes := []rune(string(val))
		if i, ok := index(name); ok && i < len(runes) {
			return models.JSONString(runes[i]), nil
		}
	}
	return nil, nil
}

// index parses a canonical non-negative integer property name.
func index(name string) (int, bool) {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || strconv.Itoa(i) != name {
		return 0, false
	}
	return i, true
}

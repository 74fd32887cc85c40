package models

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/formatx/internal/errors"
)

// Format identifies one of the supported text formats.
type Format string

const (
	FormatPlainText Format = "plaintext"
	FormatJSON      Format = "json"
	FormatXML       Format = "xml"
	FormatYAML      Format = "yaml"
	FormatCSV       Format = "csv"
)

// Defaults used when nothing else selects a format.
const (
	DefaultInputFormat  = FormatPlainText
	DefaultOutputFormat = FormatJSON
)

var formatLabels = map[Format]string{
	FormatPlainText: "Plain Text",
	FormatJSON:      "JSON",
	FormatXML:       "XML",
	FormatYAML:      "YAML",
	FormatCSV:       "CSV",
}

// aliases are keyed by the normalized spelling produced by normalizeFormatName.
var formatAliases = map[string]Format{
	"plaintext": FormatPlainText,
	"plain":     FormatPlainText,
	"text":      FormatPlainText,
	"txt":       FormatPlainText,
	"json":      FormatJSON,
	"xml":       FormatXML,
	"yaml":      FormatYAML,
	"yml":       FormatYAML,
	"csv":       FormatCSV,
}

// Formats returns every format in display order.
func Formats() []Format {
	return []Format{FormatPlainText, FormatJSON, FormatXML, FormatYAML, FormatCSV}
}

// Label returns the human readable name of the format.
func (f Format) Label() string {
	if label, ok := formatLabels[f]; ok {
		return label
	}
	return string(f)
}

// String implements fmt.Stringer
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	_, ok := formatLabels[f]
	return ok
}

// ParseFormat resolves a user supplied format name. Besides the canonical
// tags it accepts labels and common spellings such as "Plain Text",
// "plain-text", "PlainText", "txt" and "yml".
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[normalizeFormatName(name)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", errors.ErrUnknownFormat, name)
}

func normalizeFormatName(name string) string {
	return strings.ReplaceAll(strcase.ToSnake(strings.TrimSpace(name)), "_", "")
}

// Package converter converts text between plain text, JSON, XML, YAML and
// CSV. Every function is pure and safe for concurrent use.
package converter

import (
	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/formatter"
	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
	"github.com/mcncl/formatx/internal/stringutil"
)

// Pair is an ordered (source, target) format combination.
type Pair struct {
	From models.Format
	To   models.Format
}

type options struct {
	strict bool
	minify bool
}

// Option configures ConvertWithOptions.
type Option func(*options)

// WithStrict makes unsupported format pairs fail with an error matching
// errors.ErrUnsupportedConversion instead of returning the input unchanged.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithMinify makes every conversion that produces JSON emit minified JSON.
func WithMinify(minify bool) Option {
	return func(o *options) { o.minify = minify }
}

type route func(text string, f *formatter.Formatter) (string, error)

// pairs lists the supported conversions in their canonical order.
var pairs = []Pair{
	{models.FormatJSON, models.FormatXML},
	{models.FormatJSON, models.FormatYAML},
	{models.FormatJSON, models.FormatCSV},
	{models.FormatJSON, models.FormatPlainText},
	{models.FormatXML, models.FormatJSON},
	{models.FormatPlainText, models.FormatJSON},
}

var routes = map[Pair]route{
	{models.FormatJSON, models.FormatXML}: func(text string, _ *formatter.Formatter) (string, error) {
		return JSONToXML(text)
	},
	{models.FormatJSON, models.FormatYAML}: func(text string, _ *formatter.Formatter) (string, error) {
		return JSONToYAML(text)
	},
	{models.FormatJSON, models.FormatCSV}: func(text string, _ *formatter.Formatter) (string, error) {
		return JSONToCSV(text)
	},
	{models.FormatJSON, models.FormatPlainText}: formatJSON,
	{models.FormatXML, models.FormatJSON}:       xmlToJSON,
	{models.FormatPlainText, models.FormatJSON}: textToJSON,
}

// Convert converts text from one format to another.
//
// Blank text converts to "" for any pair. When from equals to, JSON is
// pretty printed and every other format is returned unchanged. Pairs
// without a codec (see Pairs) also return text unchanged, without error.
func Convert(text string, from, to models.Format) (string, error) {
	return ConvertWithOptions(text, from, to)
}

// ConvertWithOptions is Convert with options applied.
func ConvertWithOptions(text string, from, to models.Format, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if stringutil.IsBlank(text) {
		return "", nil
	}

	f := formatter.New(o.minify)

	if from == to {
		if from == models.FormatJSON {
			return formatJSON(text, f)
		}
		return text, nil
	}

	r, ok := routes[Pair{From: from, To: to}]
	if !ok {
		if o.strict {
			return "", errors.NewUnsupportedConversionError(from.Label(), to.Label())
		}
		return text, nil
	}
	return r(text, f)
}

// Supported reports whether converting from one format to the other does
// more than pass the text through.
func Supported(from, to models.Format) bool {
	if from == to {
		return from == models.FormatJSON
	}
	_, ok := routes[Pair{From: from, To: to}]
	return ok
}

// Pairs returns the supported conversions between distinct formats.
func Pairs() []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}

func formatJSON(text string, f *formatter.Formatter) (string, error) {
	v, err := parser.ParseJSON(text)
	if err != nil {
		return "", err
	}
	return f.Format(v), nil
}

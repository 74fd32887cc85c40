package formatter

import (
	"math"
	"strings"

	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
)

// Formatter serializes JSONValues back into JSON text
type Formatter struct {
	indent string
}

// NewFormatter creates a Formatter producing pretty output with two space
// indentation.
func NewFormatter() *Formatter {
	return &Formatter{indent: "  "}
}

// NewMinifier creates a Formatter producing output without insignificant
// whitespace.
func NewMinifier() *Formatter {
	return &Formatter{}
}

// New returns a minifier when minify is set and a pretty formatter otherwise.
func New(minify bool) *Formatter {
	if minify {
		return NewMinifier()
	}
	return NewFormatter()
}

// FormatJSON parses text and serializes it again, pretty printed or
// minified. Invalid input fails with "Invalid JSON: <detail>".
func FormatJSON(text string, minify bool) (string, error) {
	v, err := parser.ParseJSON(text)
	if err != nil {
		return "", err
	}
	return New(minify).Format(v), nil
}

// Format serializes v
func (f *Formatter) Format(v models.JSONValue) string {
	var sb strings.Builder
	f.write(&sb, v, 0)
	return sb.String()
}

func (f *Formatter) write(sb *strings.Builder, v models.JSONValue, depth int) {
	switch val := v.(type) {
	case nil, models.JSONNull:
		sb.WriteString("null")
	case models.JSONBool:
		if val {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case models.JSONNumber:
		n := float64(val)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			sb.WriteString("null")
			return
		}
		sb.WriteString(models.FormatNumber(n))
	case models.JSONString:
		writeQuoted(sb, string(val))
	case models.JSONArray:
		if len(val) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			f.newline(sb, depth+1)
			f.write(sb, item, depth+1)
		}
		f.newline(sb, depth)
		sb.WriteByte(']')
	case *models.JSONObject:
		if val.Len() == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteByte('{')
		for i, m := range val.Members() {
			if i > 0 {
				sb.WriteByte(',')
			}
			f.newline(sb, depth+1)
			writeQuoted(sb, m.Key)
			sb.WriteByte(':')
			if f.indent != "" {
				sb.WriteByte(' ')
			}
			f.write(sb, m.Value, depth+1)
		}
		f.newline(sb, depth)
		sb.WriteByte('}')
	}
}

func (f *Formatter) newline(sb *strings.Builder, depth int) {
	if f.indent == "" {
		return
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(f.indent, depth))
}

const hexDigits = "0123456789abcdef"

// writeQuoted writes s as a JSON string literal. Only quotes, backslashes
// and control characters are escaped; HTML characters and non-ASCII text
// are written as is.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[r>>4])
				sb.WriteByte(hexDigits[r&0xf])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}

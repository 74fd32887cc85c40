package converter

import (
	"regexp"

	"github.com/mcncl/formatx/internal/formatter"
	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
	"github.com/mcncl/formatx/internal/stringutil"
)

// keyValueLine splits a line at its first colon. Carriage returns and
// Unicode line separators are not part of a key or value but may sit in
// the white space after the colon.
var keyValueLine = regexp.MustCompile(`^([^\n\r\x{2028}\x{2029}]+?):[` + stringutil.SpaceClass + `]*([^\n\r\x{2028}\x{2029}]+)$`)

// TextToJSON promotes unstructured text to a pretty printed JSON object.
//
// Valid JSON is only reformatted. Otherwise a single line becomes
// {"content": line}, several lines with at least one "key: value" line
// become an object of those pairs (other lines are skipped), and anything
// else becomes {"lines": [...]}.
func TextToJSON(text string) (string, error) {
	return textToJSON(text, formatter.NewFormatter())
}

func textToJSON(text string, f *formatter.Formatter) (string, error) {
	if v, err := parser.ParseJSON(text); err == nil {
		return f.Format(v), nil
	}
	return f.Format(TextToValue(text)), nil
}

// TextToValue applies the plain text heuristics of TextToJSON to text that
// is not JSON and returns the resulting object.
func TextToValue(text string) *models.JSONObject {
	result := models.NewJSONObject()
	lines := stringutil.NonBlankLines(text)

	switch len(lines) {
	case 0:
		result.Set("content", models.JSONString(""))
		return result
	case 1:
		result.Set("content", models.JSONString(stringutil.TrimSpace(text)))
		return result
	}

	for _, line := range lines {
		match := keyValueLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		result.Set(stringutil.TrimSpace(match[1]), models.JSONString(stringutil.TrimSpace(match[2])))
	}
	if result.Len() > 0 {
		return result
	}

	items := make(models.JSONArray, len(lines))
	for i, line := range lines {
		items[i] = models.JSONString(line)
	}
	result.Set("lines", items)
	return result
}

package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/formatter"
	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
	"github.com/mcncl/formatx/internal/stringutil"
)

const xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>`

// xmlDeclaration matches an XML declaration on a single line.
var xmlDeclaration = regexp.MustCompile(`<\?xml[^\n\r\x{2028}\x{2029}]*?\?>`)

// JSONToXML renders JSON text as an XML document rooted at <root>.
func JSONToXML(text string) (string, error) {
	v, err := parser.ParseJSON(text)
	if err != nil {
		return "", errors.WrapConversion("JSON", "XML", err)
	}
	return RenderXML(v), nil
}

// RenderXML renders v as an XML document. Arrays become item_<i>
// siblings, scalars are written with Stringify and nothing is escaped.
func RenderXML(v models.JSONValue) string {
	return xmlProlog + "\n" + xmlElement(v, "root")
}

func xmlElement(v models.JSONValue, name string) string {
	switch val := v.(type) {
	case models.JSONArray:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = xmlElement(item, fmt.Sprintf("item_%d", i))
		}
		return strings.Join(items, "\n")
	case *models.JSONObject:
		if val.Len() == 0 {
			return fmt.Sprintf("<%s></%s>", name, name)
		}
		children := make([]string, 0, val.Len())
		for _, m := range val.Members() {
			if models.IsContainer(m.Value) {
				block := prefixLines(xmlElement(m.Value, m.Key), "    ")
				children = append(children, fmt.Sprintf("  <%s>\n%s\n  </%s>", m.Key, block, m.Key))
				continue
			}
			children = append(children, fmt.Sprintf("  <%s>%s</%s>", m.Key, models.Stringify(m.Value), m.Key))
		}
		return fmt.Sprintf("<%s>\n%s\n</%s>", name, strings.Join(children, "\n"), name)
	default:
		return fmt.Sprintf("<%s>%s</%s>", name, models.Stringify(v), name)
	}
}

func prefixLines(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// XMLToJSON maps flat XML elements to a pretty printed JSON object.
func XMLToJSON(text string) (string, error) {
	return xmlToJSON(text, formatter.NewFormatter())
}

func xmlToJSON(text string, f *formatter.Formatter) (string, error) {
	cleaned := stringutil.TrimSpace(xmlDeclaration.ReplaceAllString(text, ""))
	return f.Format(ParseFlatXML(cleaned)), nil
}

// ParseFlatXML collects every <name ...>text</name> element whose text has
// no nested markup into an object of name to trimmed text. Later elements
// overwrite earlier ones with the same name. When nothing matches, the
// whole input is returned as {"content": s}.
//
// Nested elements, CDATA and self-closing tags are not understood.
func ParseFlatXML(s string) *models.JSONObject {
	result := models.NewJSONObject()
	for i := 0; i < len(s); {
		name, content, end, ok := matchFlatElement(s, i)
		if !ok {
			i++
			continue
		}
		result.Set(name, models.JSONString(stringutil.TrimSpace(content)))
		i = end
	}
	if result.Len() == 0 {
		result.Set("content", models.JSONString(s))
	}
	return result
}

// matchFlatElement tries to match an element starting at s[start]. The
// opening name is a run of word characters, attributes run to the first
// '>', the text runs to the first '<', and the closing name may be any
// non-empty prefix of the opening run; "<ab x>t</a>" is element "a".
func matchFlatElement(s string, start int) (name, content string, end int, ok bool) {
	if s[start] != '<' {
		return "", "", 0, false
	}

	nameEnd := start + 1
	for nameEnd < len(s) && isWordByte(s[nameEnd]) {
		nameEnd++
	}
	if nameEnd == start+1 {
		return "", "", 0, false
	}
	opening := s[start+1 : nameEnd]

	gt := strings.IndexByte(s[nameEnd:], '>')
	if gt < 0 {
		return "", "", 0, false
	}
	contentStart := nameEnd + gt + 1

	lt := strings.IndexByte(s[contentStart:], '<')
	if lt < 0 {
		return "", "", 0, false
	}
	closeStart := contentStart + lt
	if !strings.HasPrefix(s[closeStart:], "</") {
		return "", "", 0, false
	}

	closeNameStart := closeStart + 2
	closeGt := strings.IndexByte(s[closeNameStart:], '>')
	if closeGt <= 0 {
		return "", "", 0, false
	}
	closing := s[closeNameStart : closeNameStart+closeGt]
	if !strings.HasPrefix(opening, closing) {
		return "", "", 0, false
	}

	return closing, s[contentStart:closeStart], closeNameStart + closeGt + 1, true
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

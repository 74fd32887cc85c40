package converter

import (
	"strings"

	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
)

// JSONToYAML renders JSON text as block style YAML.
func JSONToYAML(text string) (string, error) {
	v, err := parser.ParseJSON(text)
	if err != nil {
		return "", errors.WrapConversion("JSON", "YAML", err)
	}
	return RenderYAML(v), nil
}

// RenderYAML renders v as block style YAML with two spaces per level.
// Scalars are written with Stringify; nothing is quoted or escaped.
func RenderYAML(v models.JSONValue) string {
	return yamlNode(v, 0)
}

func yamlNode(v models.JSONValue, indent int) string {
	spaces := strings.Repeat("  ", indent)

	switch val := v.(type) {
	case models.JSONArray:
		items := make([]string, len(val))
		for i, item := range val {
			if models.IsContainer(item) {
				// The nested block keeps its own indentation after the dash
				// and its continuation lines are shifted under the item.
				block := yamlNode(item, indent+1)
				items[i] = strings.ReplaceAll(spaces+"- "+block, "\n", "\n"+spaces+"  ")
				continue
			}
			items[i] = spaces + "- " + models.Stringify(item)
		}
		return strings.Join(items, "\n")
	case *models.JSONObject:
		entries := make([]string, 0, val.Len())
		for _, m := range val.Members() {
			if models.IsContainer(m.Value) {
				entries = append(entries, spaces+m.Key+":\n"+yamlNode(m.Value, indent+1))
				continue
			}
			entries = append(entries, spaces+m.Key+": "+models.Stringify(m.Value))
		}
		return strings.Join(entries, "\n")
	default:
		return models.Stringify(v)
	}
}

package converter

import (
	"strings"
	"sync"
	"testing"

	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BlankInput(t *testing.T) {
	for _, from := range models.Formats() {
		for _, to := range models.Formats() {
			for _, input := range []string{"", "   ", "\n\t \n"} {
				out, err := Convert(input, from, to)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, "", out, "%s -> %s", from, to)
			}
		}
	}
}

func TestConvert_Identity(t *testing.T) {
	out, err := Convert(`{"a":[1,2]}`, models.FormatJSON, models.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", out)

	// Other formats are returned verbatim, even when they are not valid.
	for _, f := range []models.Format{models.FormatXML, models.FormatYAML, models.FormatCSV, models.FormatPlainText} {
		input := "<not { valid: at all\n"
		out, err := Convert(input, f, f)
		require.NoError(t, err)
		assert.Equal(t, input, out)
	}
}

func TestConvert_IdentityInvalidJSON(t *testing.T) {
	_, err := Convert(`{bad`, models.FormatJSON, models.FormatJSON)
	require.Error(t, err)
	assert.Regexp(t, `^Invalid JSON: `, err.Error())
}

func TestConvert_Routes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		from     models.Format
		to       models.Format
		expected string
	}{
		{
			name:     "json to csv",
			input:    `[{"a":1,"b":2},{"a":3}]`,
			from:     models.FormatJSON,
			to:       models.FormatCSV,
			expected: "a,b\n1,2\n3,",
		},
		{
			name:     "json to yaml",
			input:    `{"a":{"b":1}}`,
			from:     models.FormatJSON,
			to:       models.FormatYAML,
			expected: "a:\n  b: 1",
		},
		{
			name:     "json to plaintext pretty prints",
			input:    `{"a":1}`,
			from:     models.FormatJSON,
			to:       models.FormatPlainText,
			expected: "{\n  \"a\": 1\n}",
		},
		{
			name:     "xml to json",
			input:    `<a>1</a>`,
			from:     models.FormatXML,
			to:       models.FormatJSON,
			expected: "{\n  \"a\": \"1\"\n}",
		},
		{
			name:     "plaintext to json",
			input:    "name: Ann\nage: 30",
			from:     models.FormatPlainText,
			to:       models.FormatJSON,
			expected: "{\n  \"name\": \"Ann\",\n  \"age\": \"30\"\n}",
		},
		{
			name:     "plaintext without structure",
			input:    "hello\nworld",
			from:     models.FormatPlainText,
			to:       models.FormatJSON,
			expected: "{\n  \"lines\": [\n    \"hello\",\n    \"world\"\n  ]\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.input, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestConvert_StrictJSONSyntax(t *testing.T) {
	_, err := Convert("01", models.FormatJSON, models.FormatXML)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Error converting JSON to XML: Invalid JSON: "), "got %q", err.Error())

	_, err = Convert("\"a\tb\"", models.FormatJSON, models.FormatJSON)
	assert.ErrorIs(t, err, errors.ErrInvalidJSON)

	out, err := Convert("01", models.FormatPlainText, models.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"content\": \"01\"\n}", out)
}

func TestConvert_OutOfRangeNumbers(t *testing.T) {
	out, err := Convert("1e400", models.FormatJSON, models.FormatXML)
	require.NoError(t, err)
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<root>Infinity</root>", out)

	out, err = Convert("1e400", models.FormatJSON, models.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "null", out)
}

func TestConvert_JSONToXMLShape(t *testing.T) {
	out, err := Convert(`{"a":1,"b":{"c":2}}`, models.FormatJSON, models.FormatXML)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "<a>1</a>")
	assert.Contains(t, out, "<c>2</c>")
	assert.Regexp(t, `(?s)<b>.*<c>2</c>.*</b>`, out)
}

func TestConvert_UnsupportedPairsPassThrough(t *testing.T) {
	unsupported := []Pair{
		{models.FormatCSV, models.FormatYAML},
		{models.FormatXML, models.FormatYAML},
		{models.FormatCSV, models.FormatJSON},
		{models.FormatYAML, models.FormatXML},
		{models.FormatPlainText, models.FormatCSV},
	}

	for _, p := range unsupported {
		t.Run(string(p.From)+"->"+string(p.To), func(t *testing.T) {
			out, err := Convert("a,b", p.From, p.To)
			require.NoError(t, err)
			assert.Equal(t, "a,b", out)
			assert.False(t, Supported(p.From, p.To))
		})
	}
}

func TestConvertWithOptions_Strict(t *testing.T) {
	_, err := ConvertWithOptions("a,b", models.FormatCSV, models.FormatYAML, WithStrict(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedConversion)
	assert.Equal(t, "Unsupported conversion: CSV to YAML", err.Error())

	// Strict mode leaves identity, blank input and supported pairs alone.
	out, err := ConvertWithOptions("a,b", models.FormatCSV, models.FormatCSV, WithStrict(true))
	require.NoError(t, err)
	assert.Equal(t, "a,b", out)

	out, err = ConvertWithOptions("  ", models.FormatCSV, models.FormatYAML, WithStrict(true))
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = ConvertWithOptions(`[{"a":1}]`, models.FormatJSON, models.FormatCSV, WithStrict(true))
	require.NoError(t, err)
	assert.Equal(t, "a\n1", out)
}

func TestConvertWithOptions_Minify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		from     models.Format
		to       models.Format
		expected string
	}{
		{"json identity", `{ "a" : [1, 2] }`, models.FormatJSON, models.FormatJSON, `{"a":[1,2]}`},
		{"json to plaintext", `{ "a" : 1 }`, models.FormatJSON, models.FormatPlainText, `{"a":1}`},
		{"xml to json", `<a>1</a><b>2</b>`, models.FormatXML, models.FormatJSON, `{"a":"1","b":"2"}`},
		{"plaintext to json", "x: 1\ny: 2", models.FormatPlainText, models.FormatJSON, `{"x":"1","y":"2"}`},
		{"non json target unaffected", `{"a":1}`, models.FormatJSON, models.FormatYAML, "a: 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ConvertWithOptions(tt.input, tt.from, tt.to, WithMinify(true))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestConvert_ErrorsPropagateUnchanged(t *testing.T) {
	tests := []struct {
		to     models.Format
		prefix string
	}{
		{models.FormatXML, "Error converting JSON to XML: Invalid JSON: "},
		{models.FormatYAML, "Error converting JSON to YAML: Invalid JSON: "},
		{models.FormatCSV, "Error converting JSON to CSV: Invalid JSON: "},
		{models.FormatPlainText, "Invalid JSON: "},
	}

	for _, tt := range tests {
		t.Run(string(tt.to), func(t *testing.T) {
			_, err := Convert("{bad", models.FormatJSON, tt.to)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), tt.prefix), "got %q", err.Error())

			var convErr *errors.ConversionError
			assert.ErrorAs(t, err, &convErr)
		})
	}
}

func TestSupportedAndPairs(t *testing.T) {
	assert.Len(t, Pairs(), 6)
	for _, p := range Pairs() {
		assert.True(t, Supported(p.From, p.To), "%s -> %s", p.From, p.To)
	}
	assert.True(t, Supported(models.FormatJSON, models.FormatJSON))
	assert.False(t, Supported(models.FormatYAML, models.FormatYAML))

	pairs := Pairs()
	pairs[0] = Pair{models.FormatCSV, models.FormatCSV}
	assert.Equal(t, Pair{models.FormatJSON, models.FormatXML}, Pairs()[0])
}

func TestConvert_IdempotentFormatting(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":{"c":[1,2,3]}}`,
		`[{"x":null},{"y":"z"}]`,
		`"s"`,
	}

	for _, input := range inputs {
		once, err := Convert(input, models.FormatJSON, models.FormatJSON)
		require.NoError(t, err)
		twice, err := Convert(once, models.FormatJSON, models.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestConvert_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 32)
	errs := make([]error, 32)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Convert(`[{"a":1,"b":"x, y"}]`, models.FormatJSON, models.FormatCSV)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "a,b\n1,\"x, y\"", results[i])
	}
}

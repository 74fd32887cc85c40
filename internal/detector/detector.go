// Package detector guesses the format of raw text.
package detector

import (
	"strings"
	"unicode/utf8"

	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
	"github.com/mcncl/formatx/internal/stringutil"
)

// Auto is the format name that asks for detection instead of naming a format.
const Auto = "auto"

// Detector detects the format of input text
type Detector struct{}

// NewDetector creates a new format detector
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the first format whose check matches, in this order:
// blank text is plain text, then JSON, XML, YAML and CSV. Anything left
// over is plain text.
func (d *Detector) Detect(text string) models.Format {
	trimmed := stringutil.TrimSpace(text)
	if trimmed == "" {
		return models.FormatPlainText
	}

	if parser.Valid(text) {
		return models.FormatJSON
	}

	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return models.FormatXML
	}

	if strings.Contains(text, "---") || hasYAMLKeyLine(text) {
		return models.FormatYAML
	}

	if strings.Contains(text, ",") && strings.Contains(text, "\n") {
		return models.FormatCSV
	}

	return models.FormatPlainText
}

// Resolve returns the detected format of text, or fallback when detection
// only finds plain text.
func (d *Detector) Resolve(text string, fallback models.Format) models.Format {
	if f := d.Detect(text); f != models.FormatPlainText {
		return f
	}
	return fallback
}

// ParseOrDetect resolves a user supplied format name. An empty name or
// Auto detects the format of text, keeping fallback for plain text.
func (d *Detector) ParseOrDetect(name, text string, fallback models.Format) (models.Format, error) {
	if name == "" || strings.EqualFold(strings.TrimSpace(name), Auto) {
		return d.Resolve(text, fallback), nil
	}
	return models.ParseFormat(name)
}

var defaultDetector = NewDetector()

// DetectFormat detects the format of text with the default detector.
func DetectFormat(text string) models.Format {
	return defaultDetector.Detect(text)
}

// hasYAMLKeyLine reports whether some line starts with a run of word
// characters followed by a colon and a white space character.
func hasYAMLKeyLine(text string) bool {
	lineStart := true
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if lineStart && isWordByte(text[i]) && keyAt(text[i:]) {
			return true
		}
		lineStart = isLineTerminator(r)
		i += size
	}
	return false
}

func keyAt(s string) bool {
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != ':' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i+1:])
	return r != utf8.RuneError && stringutil.IsSpace(r)
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

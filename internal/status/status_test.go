package status

import (
	"bytes"
	"os"
	"testing"

	"github.com/mcncl/formatx/internal/config"
	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{
			name:     "ready",
			status:   Ready(models.FormatPlainText, models.FormatJSON),
			expected: "Ready to convert  PLAINTEXT → JSON",
		},
		{
			name:     "success",
			status:   Success(models.FormatJSON, models.FormatXML),
			expected: "Successful conversion  JSON → XML",
		},
		{
			name:     "conversion error is shown verbatim",
			status:   Failure(models.FormatJSON, models.FormatCSV, errors.NewNotArrayError()),
			expected: "JSON must be an array to convert to CSV  JSON → CSV",
		},
		{
			name:     "failure without error",
			status:   Failure(models.FormatXML, models.FormatJSON, nil),
			expected: "Conversion failed  XML → JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestPrinter_NoColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.ColorNever)

	p.Print(Success(models.FormatJSON, models.FormatYAML))
	p.Print(Failure(models.FormatJSON, models.FormatYAML, errors.WrapConversion("JSON", "YAML", errors.ErrInvalidJSON)))

	assert.Equal(t,
		"Successful conversion  JSON → YAML\n"+
			"Error converting JSON to YAML: invalid JSON  JSON → YAML\n",
		buf.String())
}

func TestPrinter_ForcedColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.ColorAlways)

	p.Print(Success(models.FormatJSON, models.FormatXML))
	assert.Contains(t, buf.String(), "\x1b[32m")
	assert.Contains(t, buf.String(), "Successful conversion  JSON → XML")

	buf.Reset()
	p.Print(Failure(models.FormatJSON, models.FormatXML, errors.NewNotArrayError()))
	assert.Contains(t, buf.String(), "\x1b[31m")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(&buf, config.ColorAlways))
	assert.False(t, ColorEnabled(&buf, config.ColorNever))
	assert.False(t, ColorEnabled(&buf, config.ColorAuto), "buffers are never terminals")

	f, err := os.CreateTemp("", "status_test_*")
	if err == nil {
		defer func() { _ = os.Remove(f.Name()) }()
		defer func() { _ = f.Close() }()
		assert.False(t, ColorEnabled(f, config.ColorAuto), "regular files are never terminals")
	}
}

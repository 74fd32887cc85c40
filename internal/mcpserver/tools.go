package mcpserver

import (
	"context"

	"github.com/mcncl/formatx/internal/converter"
	"github.com/mcncl/formatx/internal/detector"
	"github.com/mcncl/formatx/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text   string `json:"text"             jsonschema:"The text to convert"`
	From   string `json:"from,omitempty"   jsonschema:"Source format or auto to detect it (default auto)"`
	To     string `json:"to,omitempty"     jsonschema:"Target format (default json)"`
	Strict bool   `json:"strict,omitempty" jsonschema:"Fail on unsupported pairs instead of returning the text unchanged"`
	Minify bool   `json:"minify,omitempty" jsonschema:"Emit minified JSON instead of pretty JSON"`
}

type convertOutput struct {
	Output    string `json:"output"`
	From      string `json:"from"`
	To        string `json:"to"`
	Supported bool   `json:"supported"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	from, err := detector.NewDetector().ParseOrDetect(input.From, input.Text, models.DefaultInputFormat)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	to := models.DefaultOutputFormat
	if input.To != "" {
		to, err = models.ParseFormat(input.To)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
	}

	out, err := converter.ConvertWithOptions(input.Text, from, to,
		converter.WithStrict(input.Strict),
		converter.WithMinify(input.Minify),
	)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Output:    out,
		From:      string(from),
		To:        string(to),
		Supported: converter.Supported(from, to),
	}, nil
}

type detectInput struct {
	Text string `json:"text" jsonschema:"The text whose format should be detected"`
}

type detectOutput struct {
	Format string `json:"format"`
	Label  string `json:"label"`
}

func handleDetectFormat(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	f := detector.DetectFormat(input.Text)
	return nil, detectOutput{Format: string(f), Label: f.Label()}, nil
}

type listFormatsInput struct{}

type formatInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type pairInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type listFormatsOutput struct {
	Formats []formatInfo `json:"formats"`
	Pairs   []pairInfo   `json:"pairs"`
}

func handleListFormats(_ context.Context, _ *mcp.CallToolRequest, _ listFormatsInput) (*mcp.CallToolResult, listFormatsOutput, error) {
	var output listFormatsOutput
	for _, f := range models.Formats() {
		output.Formats = append(output.Formats, formatInfo{Name: string(f), Label: f.Label()})
	}
	for _, p := range converter.Pairs() {
		output.Pairs = append(output.Pairs, pairInfo{From: string(p.From), To: string(p.To)})
	}
	return nil, output, nil
}

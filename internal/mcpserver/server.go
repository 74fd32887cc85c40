// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the formatx conversion engine as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/mcncl/formatx/internal/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `formatx MCP server: converts text between plain text, JSON, XML, YAML and CSV.

Supported conversions: json to xml, yaml, csv or plaintext; xml to json; plaintext to json. Converting a format to itself pretty prints JSON and returns anything else unchanged. Other pairs return the input unchanged unless strict is set, in which case they fail.

Use detect_format to guess the format of a text, or pass from="auto" to convert. Use list_formats to see every format and supported pair.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, version string) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "formatx", Version: version},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text from one format to another. Formats: plaintext, json, xml, yaml, csv. Set from to auto (the default) to detect the source format. JSON output is pretty printed unless minify is true. Unsupported pairs return the text unchanged unless strict is true. The supported field reports whether a real conversion took place.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_format",
		Description: "Guess the format of a text. Checks in priority order: blank text is plaintext, then json, xml, yaml and csv, falling back to plaintext.",
	}, handleDetectFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_formats",
		Description: "List the known formats with their display labels and every supported conversion pair.",
	}, handleListFormats)
}

// errResult creates an MCP error result from an error. Conversion errors
// keep their exact message.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: errors.UserFriendlyError(err)}},
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mcncl/formatx/internal/config"
	"github.com/mcncl/formatx/internal/converter"
	"github.com/mcncl/formatx/internal/detector"
	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/mcpserver"
	"github.com/mcncl/formatx/internal/models"
	"github.com/mcncl/formatx/internal/parser"
	"github.com/mcncl/formatx/internal/status"
	"github.com/mcncl/formatx/internal/textdiff"
	"github.com/mcncl/formatx/internal/watcher"
)

// ConvertCmd converts input once and writes the result
type ConvertCmd struct {
	Input       string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	From        string `help:"Source format, or auto to detect it. Defaults to the config file's auto_detect and input_format." short:"f"`
	To          string `help:"Target format. Defaults to the config file's output_format." short:"t"`
	Minify      bool   `help:"Emit minified JSON."`
	Strict      bool   `help:"Fail on unsupported conversions instead of passing the input through."`
	Diff        bool   `help:"Show the changes between input and output instead of the output." short:"d"`
	Check       bool   `help:"Exit with an error if the output differs from the input."`
	Interactive bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Run executes the convert command
func (c *ConvertCmd) Run(ctx *Context) error {
	text, err := parseInput(c.Input, c.Interactive, ctx.Stderr)
	if err != nil {
		return err
	}

	from, to, err := resolveFormats(c.From, c.To, text, ctx.Config)
	if err != nil {
		return err
	}

	out, err := convert(ctx, text, from, to, c.Minify, c.Strict)
	if err != nil {
		return err
	}

	printer := status.NewPrinter(ctx.Stderr, ctx.Config.Color)
	colored := status.ColorEnabled(ctx.Stdout, ctx.Config.Color)

	if c.Check {
		if textdiff.Changed(text, out) {
			if c.Diff {
				if err := textdiff.Render(ctx.Stdout, textdiff.Lines(text, out), colored); err != nil {
					return errors.NewOutputError("failed to write diff", err)
				}
			}
			return errors.NewOutputError("output differs from input", errors.ErrOutputDiffers)
		}
		printer.Print(status.Success(from, to))
		return nil
	}

	if c.Diff {
		if err := textdiff.Render(ctx.Stdout, textdiff.Lines(text, out), colored); err != nil {
			return errors.NewOutputError("failed to write diff", err)
		}
		if c.Output == "" {
			printer.Print(status.Success(from, to))
			return nil
		}
	}

	if err := writeOutput(out, c.Output, ctx.Stdout); err != nil {
		return err
	}
	if c.Output != "" {
		ctx.Logger.Info("output written", "path", c.Output)
	}
	printer.Print(status.Success(from, to))
	return nil
}

// DetectCmd prints the detected format of the input
type DetectCmd struct {
	Input       string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Label       bool   `help:"Print the display label instead of the format name."`
	Interactive bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Run executes the detect command
func (c *DetectCmd) Run(ctx *Context) error {
	text, err := parseInput(c.Input, c.Interactive, ctx.Stderr)
	if err != nil {
		return err
	}

	f := detector.DetectFormat(text)
	out := string(f)
	if c.Label {
		out = f.Label()
	}
	return writeOutput(out, "", ctx.Stdout)
}

// FormatsCmd lists formats and supported conversions
type FormatsCmd struct{}

// Run executes the formats command
func (c *FormatsCmd) Run(ctx *Context) error {
	var b strings.Builder
	b.WriteString("Formats:\n")
	for _, f := range models.Formats() {
		fmt.Fprintf(&b, "  %-10s %s\n", f, f.Label())
	}
	b.WriteString("\nConversions:\n")
	for _, p := range converter.Pairs() {
		fmt.Fprintf(&b, "  %-10s → %s\n", p.From, p.To)
	}
	b.WriteString("\nConverting a format to itself pretty prints JSON and returns anything else unchanged.\n")
	return writeOutput(b.String(), "", ctx.Stdout)
}

// WatchCmd re-converts a file whenever it changes
type WatchCmd struct {
	Input    string        `arg:"" help:"File to watch." type:"path"`
	Output   string        `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	From     string        `help:"Source format, or auto to detect it." short:"f"`
	To       string        `help:"Target format." short:"t"`
	Minify   bool          `help:"Emit minified JSON."`
	Strict   bool          `help:"Fail on unsupported conversions instead of passing the input through."`
	Debounce time.Duration `help:"Wait this long after the last change before converting. Defaults to the config file's watch.debounce."`
}

// Run executes the watch command until interrupted
func (c *WatchCmd) Run(ctx *Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.watch(sigCtx, ctx)
}

func (c *WatchCmd) watch(runCtx context.Context, ctx *Context) error {
	if _, err := os.Stat(c.Input); err != nil {
		if os.IsNotExist(err) {
			return errors.NewInputError(fmt.Sprintf("file '%s' not found", c.Input), errors.ErrFileNotFound)
		}
		return errors.NewInputError(fmt.Sprintf("failed to access file '%s'", c.Input), err)
	}

	debounce := c.Debounce
	if debounce <= 0 {
		debounce = ctx.Config.Watch.Debounce
	}

	printer := status.NewPrinter(ctx.Stderr, ctx.Config.Color)
	ctx.Logger.Info("watching", "path", c.Input, "debounce", debounce)

	c.convertOnce(ctx, printer)
	return watcher.Watch(runCtx, c.Input, debounce, func() {
		ctx.Logger.Debug("change detected", "path", c.Input)
		c.convertOnce(ctx, printer)
	})
}

// convertOnce converts the watched file and reports the outcome. Failures
// are reported and the watch carries on.
func (c *WatchCmd) convertOnce(ctx *Context, printer *status.Printer) {
	text, err := parser.ReadFile(c.Input)
	if err != nil {
		ctx.Logger.Warn("read failed", "path", c.Input, "error", err)
		return
	}

	from, to, err := resolveFormats(c.From, c.To, text, ctx.Config)
	if err != nil {
		ctx.Logger.Error("invalid format", "error", err)
		return
	}

	out, err := convert(ctx, text, from, to, c.Minify, c.Strict)
	if err != nil {
		printer.Print(status.Failure(from, to, err))
		return
	}

	if err := writeOutput(out, c.Output, ctx.Stdout); err != nil {
		printer.Print(status.Failure(from, to, err))
		return
	}
	printer.Print(status.Success(from, to))
}

// MCPCmd serves the engine as MCP tools
type MCPCmd struct{}

// Run executes the mcp command until the client disconnects
func (c *MCPCmd) Run(ctx *Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Logger.Info("serving MCP over stdio", "version", Version)
	return mcpserver.Run(sigCtx, Version)
}

// resolveFormats turns the --from and --to values into formats. An empty
// from follows the config: detection when auto_detect is set, falling back
// to input_format for plain text. "auto" always detects.
func resolveFormats(fromName, toName, text string, cfg *config.Config) (models.Format, models.Format, error) {
	var from models.Format
	var err error
	switch {
	case fromName == "" && !cfg.AutoDetect:
		from = cfg.InputFormat
	default:
		from, err = detector.NewDetector().ParseOrDetect(fromName, text, cfg.InputFormat)
		if err != nil {
			return "", "", errors.NewInputError("invalid --from format", err)
		}
	}

	to := cfg.OutputFormat
	if toName != "" {
		to, err = models.ParseFormat(toName)
		if err != nil {
			return "", "", errors.NewInputError("invalid --to format", err)
		}
	}
	return from, to, nil
}

// convert runs the engine with the command flags merged over the config
func convert(ctx *Context, text string, from, to models.Format, minify, strict bool) (string, error) {
	minify = minify || ctx.Config.Minify
	strict = strict || ctx.Config.Strict

	ctx.Logger.Debug("converting", "from", from, "to", to, "bytes", len(text), "minify", minify, "strict", strict)

	if !converter.Supported(from, to) && from != to && !strict {
		ctx.Logger.Warn("no conversion available, passing input through", "from", from, "to", to)
	}

	return converter.ConvertWithOptions(text, from, to,
		converter.WithStrict(strict),
		converter.WithMinify(minify),
	)
}

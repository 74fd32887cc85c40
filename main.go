package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/formatx/internal/config"
	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Config  string `help:"Path to a config file. Defaults to .formatx.yml in the current directory or a parent." short:"c" type:"path"`
	Debug   bool   `help:"Enable debug logging."`
	Color   string `help:"Colour output: auto, always or never. Overrides the config file."`
	Version bool   `help:"Show version information." short:"v"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert text between formats (default command)."`
	Detect  DetectCmd  `cmd:"" help:"Print the detected format of the input."`
	Formats FormatsCmd `cmd:"" help:"List formats and supported conversions."`
	Watch   WatchCmd   `cmd:"" help:"Convert a file every time it changes."`
	MCP     MCPCmd     `cmd:"" name:"mcp" help:"Serve the conversion engine as MCP tools over stdio."`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("formatx"),
		kong.Description("Convert text between plain text, JSON, XML, YAML and CSV"),
		kong.UsageOnError(),
	)

	// Parse the command line arguments
	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		parser.FatalIfErrorf(err)
	}

	// Read pasted input when run without arguments
	if len(os.Args) == 1 {
		CLI.Convert.Interactive = true
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("formatx version %s\n", Version)
		return
	}

	ctx, err := newContext(CLI.Config, config.Overrides{Color: CLI.Color, Debug: CLI.Debug})
	if err != nil {
		fail(err)
	}

	if err := kctx.Run(ctx); err != nil {
		fail(err)
	}
}

// fail prints a user-friendly message and exits
func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

	// Show help on error
	fmt.Fprintf(os.Stderr, "\nFor help, run: formatx --help\n")

	os.Exit(1)
}

// newContext loads the configuration, searching for a config file when
// configPath is empty, and builds the runtime context around it.
func newContext(configPath string, overrides config.Overrides) (*Context, error) {
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, overrides)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	logger := newLogger(os.Stderr, cfg.Dev.Debug)
	if configPath != "" {
		logger.Debug("loaded config", "path", configPath)
	}

	return &Context{
		Debug:  cfg.Dev.Debug,
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

// newLogger returns a text logger without timestamps. Debug enables debug
// records; otherwise only warnings and errors are shown.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// parseInput reads text from file or stdin
func parseInput(path string, interactive bool, prompt io.Writer) (string, error) {
	if path != "" {
		// Read from file
		return parser.ReadFile(path)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if interactive {
			return readInteractiveInput(os.Stdin, prompt)
		}
		// No data provided on stdin and not in interactive mode
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	return string(data), nil
}

// writeOutput writes text to a file, or to w when path is empty
func writeOutput(text, path string, w io.Writer) error {
	if path != "" {
		// Write to file
		err := os.WriteFile(path, []byte(text), 0o644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
		}
		return nil
	}

	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(w, text); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste text
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(r io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprintln(prompt, "formatx Interactive Mode")
	fmt.Fprintln(prompt, "Paste your text below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(r)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		builder.WriteString(line)
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	fmt.Fprintln(prompt, "\nConverting...")
	return builder.String(), nil
}

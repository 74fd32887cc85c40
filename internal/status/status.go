// Package status renders the one line conversion status shown after each
// run: a message followed by the source and target formats.
package status

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mcncl/formatx/internal/config"
	"github.com/mcncl/formatx/internal/errors"
	"github.com/mcncl/formatx/internal/models"
)

// Kind is the state a status line reports.
type Kind int

const (
	KindReady Kind = iota
	KindSuccess
	KindFailure
)

// Status describes the outcome of the most recent conversion.
type Status struct {
	Kind Kind
	From models.Format
	To   models.Format
	Err  error
}

// Ready is the status before anything has been converted.
func Ready(from, to models.Format) Status {
	return Status{Kind: KindReady, From: from, To: to}
}

// Success is the status of a conversion that produced output.
func Success(from, to models.Format) Status {
	return Status{Kind: KindSuccess, From: from, To: to}
}

// Failure is the status of a conversion that failed with err.
func Failure(from, to models.Format, err error) Status {
	return Status{Kind: KindFailure, From: from, To: to, Err: err}
}

// Message returns the text of the status without the format pair.
func (s Status) Message() string {
	switch s.Kind {
	case KindSuccess:
		return "Successful conversion"
	case KindFailure:
		if s.Err == nil {
			return "Conversion failed"
		}
		return errors.UserFriendlyError(s.Err)
	default:
		return "Ready to convert"
	}
}

// Pair returns the format pair, e.g. "JSON → XML".
func (s Status) Pair() string {
	return strings.ToUpper(string(s.From)) + " → " + strings.ToUpper(string(s.To))
}

func (s Status) String() string {
	return s.Message() + "  " + s.Pair()
}

// Printer writes status lines to a writer, coloured when enabled.
type Printer struct {
	w       io.Writer
	success *color.Color
	failure *color.Color
	muted   *color.Color
}

// NewPrinter creates a Printer for w. mode is one of the config colour
// modes; auto colours only when w is a terminal.
func NewPrinter(w io.Writer, mode string) *Printer {
	p := &Printer{
		w:       w,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		muted:   color.New(color.Faint),
	}

	enabled := ColorEnabled(w, mode)
	for _, c := range []*color.Color{p.success, p.failure, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes s as a single line.
func (p *Printer) Print(s Status) {
	c := p.muted
	switch s.Kind {
	case KindSuccess:
		c = p.success
	case KindFailure:
		c = p.failure
	}
	_, _ = fmt.Fprintln(p.w, c.Sprint(s.String()))
}

// ColorEnabled reports whether output to w should be coloured under mode.
// NO_COLOR in the environment turns auto mode off.
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

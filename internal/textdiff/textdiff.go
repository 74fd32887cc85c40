// Package textdiff compares the input and output of a conversion line by
// line.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the edit applied to a line.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Line is one line of a diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	switch l.Op {
	case OpDelete:
		return "-" + l.Text
	case OpInsert:
		return "+" + l.Text
	default:
		return " " + l.Text
	}
}

// Lines returns the line diff turning a into b.
func Lines(a, b string) []Line {
	dmp := diffpatch.New()
	aChars, bChars, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(aChars, bChars, false), lineArray)

	var lines []Line
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		}
		for _, text := range splitLines(d.Text) {
			lines = append(lines, Line{Op: op, Text: text})
		}
	}
	return lines
}

// Changed reports whether a and b differ.
func Changed(a, b string) bool {
	return a != b
}

// Render writes lines prefixed with "-", "+" or " ". Deleted lines are red
// and inserted lines green when colored is set.
func Render(w io.Writer, lines []Line, colored bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}

	for _, l := range lines {
		text := l.String()
		switch l.Op {
		case OpDelete:
			text = del.Sprint(text)
		case OpInsert:
			text = ins.Sprint(text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

// splitLines splits a diff chunk into lines. A chunk always ends at a line
// boundary except at the end of the text.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

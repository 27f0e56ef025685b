package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pyfront/internal/diag"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.FgCyan)
	codeColor  = color.New(color.Bold)
)

// Pretty renders diagnostics in a human-readable form:
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//	    note: <note message>
//
// Positions come straight from the diagnostics; path is the file the
// bag was collected for. Severity and code are colorized when
// opts.Color is set.
func Pretty(w io.Writer, bag *diag.Bag, path string, opts PrettyOpts) error {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	for i := range maxItems {
		d := items[i]
		if err := writeLine(w, prettyHeader(path, d, opts), opts.Width); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			line := fmt.Sprintf("    %s: %s", severityLabel(diag.SevNote, opts.Color), n.Msg)
			if err := writeLine(w, line, opts.Width); err != nil {
				return err
			}
		}
	}

	if maxItems < len(items) {
		omitted := len(items) - maxItems
		if err := writeLine(w, fmt.Sprintf("... and %d more", omitted), opts.Width); err != nil {
			return err
		}
	}
	return nil
}

func prettyHeader(path string, d diag.Diagnostic, opts PrettyOpts) string {
	var b strings.Builder
	if d.Pos.IsValid() {
		fmt.Fprintf(&b, "%s:%d:%d: ", path, d.Pos.Line, d.Pos.Col)
	} else {
		fmt.Fprintf(&b, "%s: ", path)
	}
	b.WriteString(severityLabel(d.Severity, opts.Color))
	b.WriteString(" ")
	if opts.Color {
		b.WriteString(codeColor.Sprint(d.Code.String()))
	} else {
		b.WriteString(d.Code.String())
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(sev.String())
	case diag.SevNote:
		return noteColor.Sprint(sev.String())
	default:
		return sev.String()
	}
}

// writeLine truncates to the display width before writing. Width is
// measured in terminal cells, not bytes, so wide runes count double.
func writeLine(w io.Writer, line string, width int) error {
	if width > 0 && runewidth.StringWidth(line) > width {
		line = runewidth.Truncate(line, width, "...")
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

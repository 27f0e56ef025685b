package diagfmt

import (
	"encoding/json"
	"io"

	"pyfront/internal/diag"
)

// NoteJSON is one advisory note in JSON output.
type NoteJSON struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
}

// DiagnosticJSON is one diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	File     string     `json:"file"`
	Line     int        `json:"line,omitempty"`
	Col      int        `json:"col"`
	Notes    []NoteJSON `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root structure of JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput assembles the JSON structure without serializing it.
// Count reflects the whole bag even when opts.Max trims the list.
func BuildDiagnosticsOutput(bag *diag.Bag, path string, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			File:     path,
		}
		if d.Pos.IsValid() {
			dj.Line = d.Pos.Line
			dj.Col = d.Pos.Col
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				nj := NoteJSON{Message: n.Msg}
				if n.Pos.IsValid() {
					nj.Line = n.Pos.Line
					nj.Col = n.Pos.Col
				}
				dj.Notes = append(dj.Notes, nj)
			}
		}
		diagnostics = append(diagnostics, dj)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       bag.Len(),
	}
}

// WriteJSON serializes the bag to w.
func WriteJSON(w io.Writer, bag *diag.Bag, path string, opts JSONOpts) error {
	out := BuildDiagnosticsOutput(bag, path, opts)
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

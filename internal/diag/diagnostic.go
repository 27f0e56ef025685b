package diag

import (
	"pyfront/internal/source"
)

// Note is advisory text attached to a diagnostic.
type Note struct {
	Pos source.Pos
	Msg string
}

// Diagnostic is one reported problem with its provenance.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Pos      source.Pos
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note appended.
func (d Diagnostic) WithNote(pos source.Pos, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Pos: pos, Msg: msg})
	return d
}

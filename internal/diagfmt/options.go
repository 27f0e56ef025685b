package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Width     int // maximum rendered line width, 0 for unlimited
	Max       int // truncate output after this many diagnostics, 0 for all
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max          int // truncate output, not the Bag
	IncludeNotes bool
	Indent       bool
}

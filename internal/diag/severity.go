package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevNote is advisory text attached to a preceding error,
	// suggesting a correction. Notes never fail a run.
	SevNote Severity = iota
	// SevError is a blocking diagnostic: the run is marked as failed
	// but traversal continues.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "note"
	case SevError:
		return "error"
	}
	return "unknown"
}

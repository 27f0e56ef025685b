package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"pyfront/internal/diag"
	"pyfront/internal/source"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.InvalidTypeExpression,
		Message:  "invalid type comment or annotation",
		Pos:      source.Pos{Line: 3, Col: 8},
		Notes: []diag.Note{
			{Pos: source.Pos{Line: 3, Col: 8}, Msg: "Suggestion: use List[...] instead of List(...)"},
		},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SignatureArityMismatch,
		Message:  "Type signature has too many arguments",
		Pos:      source.Pos{Line: 7, Col: 0},
	})
	return bag
}

func TestPrettyBasic(t *testing.T) {
	var buf bytes.Buffer
	err := Pretty(&buf, sampleBag(), "pkg/mod.py", PrettyOpts{ShowNotes: true})
	if err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	want := "pkg/mod.py:3:8: error PYF2003: invalid type comment or annotation"
	if lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "note: Suggestion: use List[...] instead of List(...)") {
		t.Errorf("note line missing suggestion: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "pkg/mod.py:7:0: error PYF2002:") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestPrettyHidesNotes(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleBag(), "a.py", PrettyOpts{}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes rendered despite ShowNotes=false:\n%s", buf.String())
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleBag(), "a.py", PrettyOpts{Max: 1}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "PYF2002") {
		t.Errorf("second diagnostic rendered despite Max=1:\n%s", out)
	}
	if !strings.Contains(out, "... and 1 more") {
		t.Errorf("missing truncation marker:\n%s", out)
	}
}

func TestPrettyWidthTruncates(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleBag(), "a.py", PrettyOpts{Width: 20}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len([]rune(line)) > 20 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestPrettyInvalidPosOmitsLocation(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "cannot read file",
		Pos:      source.NoPos,
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, "gone.py", PrettyOpts{}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	want := "gone.py: error IO100: cannot read file\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

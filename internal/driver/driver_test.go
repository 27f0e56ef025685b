package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pyfront/internal/config"
	"pyfront/internal/diag"
)

const cleanDump = `{
  "_type": "Module",
  "body": [
    {"_type": "Pass", "lineno": 1, "col_offset": 0}
  ],
  "type_ignores": []
}`

// One parameter, two types in the signature comment.
const arityDump = `{
  "_type": "Module",
  "body": [
    {
      "_type": "FunctionDef",
      "lineno": 1, "col_offset": 0,
      "name": "f",
      "args": {
        "args": [{"_type": "arg", "lineno": 1, "col_offset": 6, "arg": "x"}],
        "defaults": [], "kwonlyargs": [], "kw_defaults": []
      },
      "body": [{"_type": "Pass", "lineno": 2, "col_offset": 4}],
      "decorator_list": [],
      "type_comment": "(int, int) -> None"
    }
  ],
  "type_ignores": []
}`

func writeDump(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestCheckFileClean(t *testing.T) {
	path := writeDump(t, t.TempDir(), "m.py.json", cleanDump)

	fc, err := CheckFile(path, config.Default(), nil)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if fc.Module == nil {
		t.Fatal("module not produced")
	}
	if fc.Failed() {
		t.Fatalf("unexpected diagnostics: %v", fc.Bag.Items())
	}
	if !strings.HasSuffix(fc.SourcePath, "m.py") {
		t.Errorf("SourcePath = %q", fc.SourcePath)
	}
	if fc.Module.Path != fc.SourcePath {
		t.Errorf("module path %q, want %q", fc.Module.Path, fc.SourcePath)
	}
}

func TestCheckFileReportsArityMismatch(t *testing.T) {
	path := writeDump(t, t.TempDir(), "m.py.json", arityDump)

	fc, err := CheckFile(path, config.Default(), nil)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if !fc.Failed() {
		t.Fatal("expected a blocking diagnostic")
	}
	if !hasCode(fc.Bag, diag.SignatureArityMismatch) {
		t.Errorf("missing arity diagnostic, got %v", fc.Bag.Items())
	}
}

func TestCheckFileMissingFile(t *testing.T) {
	fc, err := CheckFile(filepath.Join(t.TempDir(), "absent.py.json"), config.Default(), nil)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if fc.Module != nil {
		t.Error("module produced for unreadable file")
	}
	if !hasCode(fc.Bag, diag.IOLoadFileError) {
		t.Errorf("missing load diagnostic, got %v", fc.Bag.Items())
	}
}

func TestCheckFileMalformedDump(t *testing.T) {
	path := writeDump(t, t.TempDir(), "m.py.json", "{not json")

	fc, err := CheckFile(path, config.Default(), nil)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if fc.Module != nil {
		t.Error("module produced from malformed dump")
	}
	if !hasCode(fc.Bag, diag.RawTreeError) {
		t.Errorf("missing raw tree diagnostic, got %v", fc.Bag.Items())
	}
}

func TestCheckFileStubDetection(t *testing.T) {
	path := writeDump(t, t.TempDir(), "m.pyi.json", cleanDump)

	fc, err := CheckFile(path, config.Default(), nil)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if fc.Module == nil || !fc.Module.IsStub {
		t.Error("stub suffix not detected")
	}
}

func TestCheckDirDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "b.py.json", cleanDump)
	writeDump(t, dir, "a.py.json", arityDump)
	writeDump(t, dir, "notes.txt", "skip me")

	results, err := CheckDir(context.Background(), dir, config.Default(), nil, 4)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !strings.HasSuffix(results[0].Path, "a.py.json") || !strings.HasSuffix(results[1].Path, "b.py.json") {
		t.Errorf("order: %q, %q", results[0].Path, results[1].Path)
	}
	if !results[0].Failed() || results[1].Failed() {
		t.Error("per-file diagnostics mixed up")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	results, err := CheckDir(context.Background(), t.TempDir(), config.Default(), nil, 0)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeToml(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "pyfront.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeToml(t, t.TempDir(), `
[convert]
no_implicit_optional = true
custom_typing_module = "compat.typing"
feature_version = "3.7"

[convert.module_aliases]
oldlib = "newlib"

[output]
format = "json"
max_diagnostics = 50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.Convert.NoImplicitOptional || cfg.Convert.CustomTypingModule != "compat.typing" {
		t.Fatalf("convert section %+v", cfg.Convert)
	}
	if cfg.Convert.ModuleAliases["oldlib"] != "newlib" {
		t.Fatalf("module aliases %v", cfg.Convert.ModuleAliases)
	}
	if cfg.Output.Format != "json" || cfg.Output.MaxDiagnostics != 50 {
		t.Fatalf("output section %+v", cfg.Output)
	}
	if cfg.Convert.StubSuffix != ".pyi" {
		t.Fatalf("stub suffix default lost: %q", cfg.Convert.StubSuffix)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := writeToml(t, t.TempDir(), `
[output]
format = "xml"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error for an unknown format")
	}
}

func TestLoadRejectsBadFeatureVersion(t *testing.T) {
	path := writeToml(t, t.TempDir(), `
[convert]
feature_version = "2.7"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error for an unsupported feature version")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeToml(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path, ok, err := FindPyfrontToml(nested)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %q, want under %q", path, root)
	}
}

func TestLoadFromDirDefaults(t *testing.T) {
	// No manifest anywhere under an isolated temp root.
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Output.Format != "pretty" || cfg.Convert.StubSuffix != ".pyi" {
		t.Fatalf("defaults %+v", cfg)
	}
}

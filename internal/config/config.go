// Package config loads pyfront.toml, the per-project settings file for
// the conversion front end.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config is the [convert] and [output] sections of pyfront.toml.
type Config struct {
	Convert ConvertConfig `toml:"convert"`
	Output  OutputConfig  `toml:"output"`
}

type ConvertConfig struct {
	// NoImplicitOptional disables the None-default nullability
	// heuristic.
	NoImplicitOptional bool `toml:"no_implicit_optional"`
	// CustomTypingModule is treated as an alias of "typing" during
	// import conversion.
	CustomTypingModule string `toml:"custom_typing_module"`
	// ModuleAliases rewrites legacy module names to canonical ones.
	ModuleAliases map[string]string `toml:"module_aliases"`
	// FeatureVersion is the language feature level handed to the
	// external parser, e.g. "3.7".
	FeatureVersion string `toml:"feature_version" validate:"omitempty,oneof=3.5 3.6 3.7 3.8"`
	// StubSuffix marks interface-only sources; ".pyi" unless overridden.
	StubSuffix string `toml:"stub_suffix"`
}

type OutputConfig struct {
	// Format selects diagnostic rendering: "pretty" or "json".
	Format string `toml:"format" validate:"omitempty,oneof=pretty json"`
	// MaxDiagnostics caps reported diagnostics per run; 0 means no cap.
	MaxDiagnostics int `toml:"max_diagnostics" validate:"gte=0"`
	// CacheDir overrides the on-disk diagnostic cache location.
	CacheDir string `toml:"cache_dir"`
}

// Default returns the configuration used when no pyfront.toml exists.
func Default() Config {
	return Config{
		Convert: ConvertConfig{StubSuffix: ".pyi"},
		Output:  OutputConfig{Format: "pretty"},
	}
}

// Load parses and validates one pyfront.toml.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("%s: invalid configuration: %w", path, err)
	}
	if cfg.Convert.StubSuffix == "" {
		cfg.Convert.StubSuffix = ".pyi"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "pretty"
	}
	return cfg, nil
}

// FindPyfrontToml walks up from startDir to locate pyfront.toml.
func FindPyfrontToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "pyfront.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFromDir finds and loads the nearest pyfront.toml above dir,
// falling back to defaults when none exists.
func LoadFromDir(dir string) (Config, error) {
	path, ok, err := FindPyfrontToml(dir)
	if err != nil {
		return Default(), err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

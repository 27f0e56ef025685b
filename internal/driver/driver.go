// Package driver runs the conversion pipeline over raw-tree dump files:
// load, decode, convert, collect diagnostics. Directory runs fan out
// over a worker pool; per-file diagnostics are cached on disk keyed by
// content and option digests.
package driver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pyfront/internal/astjson"
	"pyfront/internal/config"
	"pyfront/internal/convert"
	"pyfront/internal/diag"
	"pyfront/internal/observ"
	"pyfront/internal/sem"
	"pyfront/internal/source"
)

// defaultBagCap bounds per-file diagnostics when the configuration
// sets no explicit cap.
const defaultBagCap = 1024

// DumpSuffix is the extension the external parser appends to the
// source file name when writing a raw-tree dump.
const DumpSuffix = ".json"

// FileCheck is the outcome of converting one dump file.
type FileCheck struct {
	// Path is the dump file that was read.
	Path string
	// SourcePath is the original source the dump was produced from.
	SourcePath string
	// Module is the converted module. Nil when the dump could not be
	// read or decoded.
	Module *sem.Module
	// Bag holds every diagnostic of the run.
	Bag *diag.Bag
	// Cached is set when diagnostics came from the disk cache and the
	// conversion was skipped.
	Cached bool
	// Timing reports the per-phase durations of the run.
	Timing observ.Report
}

// Failed reports whether the check produced blocking diagnostics.
func (fc *FileCheck) Failed() bool {
	return fc.Bag.HasErrors()
}

// sourcePathFor strips the dump suffix; "pkg/mod.py.json" was dumped
// from "pkg/mod.py".
func sourcePathFor(path string) string {
	return strings.TrimSuffix(path, DumpSuffix)
}

func isStubPath(sourcePath string, cfg config.Config) bool {
	suffix := cfg.Convert.StubSuffix
	if suffix == "" {
		suffix = ".pyi"
	}
	return strings.HasSuffix(sourcePath, suffix)
}

func newBag(cfg config.Config) *diag.Bag {
	maxDiags := cfg.Output.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = defaultBagCap
	}
	return diag.NewBag(maxDiags)
}

// CheckFile converts one raw-tree dump. Read and decode failures are
// reported through the returned bag, not the error: a non-nil error
// means only that the cache misbehaved.
func CheckFile(path string, cfg config.Config, cache *DiskCache) (FileCheck, error) {
	fc := FileCheck{
		Path:       path,
		SourcePath: sourcePathFor(path),
		Bag:        newBag(cfg),
	}
	timer := observ.NewTimer()
	defer func() { fc.Timing = timer.Report() }()

	loadPhase := timer.Begin("load")
	data, err := os.ReadFile(path)
	timer.End(loadPhase, "")
	if err != nil {
		diag.ReportError(diag.BagReporter{Bag: fc.Bag}, diag.IOLoadFileError, source.NoPos,
			"cannot read file: "+err.Error()).Emit()
		return fc, nil
	}

	key := checkKey(data, cfg)
	if cache != nil {
		cachePhase := timer.Begin("cache")
		var payload DiskPayload
		hit, err := cache.Get(key, &payload)
		timer.End(cachePhase, "")
		if err != nil {
			return fc, err
		}
		if hit {
			payload.restore(fc.Bag)
			fc.Cached = true
			return fc, nil
		}
	}

	rep := diag.BagReporter{Bag: fc.Bag}
	decodePhase := timer.Begin("decode")
	raw, err := astjson.DecodeModule(data)
	timer.End(decodePhase, "")
	if err != nil {
		diag.ReportError(rep, diag.RawTreeError, source.NoPos,
			"malformed raw tree dump: "+err.Error()).Emit()
	} else {
		convertPhase := timer.Begin("convert")
		fc.Module, _ = convert.Module(raw, convert.Options{
			Reporter:           rep,
			IsStub:             isStubPath(fc.SourcePath, cfg),
			Path:               fc.SourcePath,
			NoImplicitOptional: cfg.Convert.NoImplicitOptional,
			CustomTypingModule: cfg.Convert.CustomTypingModule,
			ModuleAliases:      cfg.Convert.ModuleAliases,
		})
		timer.End(convertPhase, "")
	}

	if cache != nil {
		if err := cache.Put(key, payloadFrom(fc.SourcePath, fc.Bag)); err != nil {
			return fc, err
		}
	}
	return fc, nil
}

// ListDumpFiles returns every raw-tree dump under dir, sorted for a
// deterministic run order.
func ListDumpFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, DumpSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// WalkDir visits lexically, but keep the guarantee explicit.
	sort.Strings(files)
	return files, nil
}

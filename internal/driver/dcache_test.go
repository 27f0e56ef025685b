package driver

import (
	"testing"

	"pyfront/internal/config"
	"pyfront/internal/diag"
	"pyfront/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.InvalidTypeExpression,
		Message:  "invalid type comment or annotation",
		Pos:      source.Pos{Line: 4, Col: 2},
		Notes:    []diag.Note{{Pos: source.Pos{Line: 4, Col: 2}, Msg: "Suggestion: use List[...] instead of List(...)"}},
	})

	key := checkKey([]byte("dump-bytes"), config.Default())
	if err := cache.Put(key, payloadFrom("m.py", bag)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if payload.SourcePath != "m.py" || len(payload.Diagnostics) != 1 {
		t.Fatalf("payload mismatch: %+v", payload)
	}

	restored := diag.NewBag(8)
	payload.restore(restored)
	got := restored.Items()[0]
	if got.Code != diag.InvalidTypeExpression || got.Pos.Line != 4 || len(got.Notes) != 1 {
		t.Errorf("restored diagnostic mismatch: %+v", got)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	var payload DiskPayload
	hit, err := cache.Get(checkKey([]byte("never stored"), config.Default()), &payload)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("unexpected hit")
	}
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	key := checkKey([]byte("x"), config.Default())
	if err := cache.Put(key, &DiskPayload{Schema: 0, SourcePath: "m.py"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("stale schema served as a hit")
	}
}

func TestCheckKeySensitivity(t *testing.T) {
	cfg := config.Default()
	base := checkKey([]byte("dump"), cfg)

	if checkKey([]byte("other dump"), cfg) == base {
		t.Error("key ignores content")
	}

	cfg.Convert.NoImplicitOptional = true
	if checkKey([]byte("dump"), cfg) == base {
		t.Error("key ignores conversion options")
	}

	aliased := config.Default()
	aliased.Convert.ModuleAliases = map[string]string{"old": "new"}
	if checkKey([]byte("dump"), aliased) == base {
		t.Error("key ignores module aliases")
	}

	capped := config.Default()
	capped.Output.MaxDiagnostics = 5
	if checkKey([]byte("dump"), capped) == base {
		t.Error("key ignores the diagnostic cap")
	}
}

func TestCheckFileSecondRunHitsCache(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	path := writeDump(t, t.TempDir(), "m.py.json", arityDump)
	cfg := config.Default()

	first, err := CheckFile(path, cfg, cache)
	if err != nil {
		t.Fatalf("first CheckFile: %v", err)
	}
	if first.Cached {
		t.Fatal("first run reported as cached")
	}

	second, err := CheckFile(path, cfg, cache)
	if err != nil {
		t.Fatalf("second CheckFile: %v", err)
	}
	if !second.Cached {
		t.Fatal("second run missed the cache")
	}
	if second.Module != nil {
		t.Error("cached run should skip conversion")
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Errorf("cached diagnostics differ: %d vs %d", second.Bag.Len(), first.Bag.Len())
	}
	if !hasCode(second.Bag, diag.SignatureArityMismatch) {
		t.Errorf("cached bag missing diagnostic: %v", second.Bag.Items())
	}
}

package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pyfront/internal/config"
	"pyfront/internal/diag"
	"pyfront/internal/source"
)

// Digest is a sha256 content hash.
type Digest [sha256.Size]byte

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// checkKey derives the cache key for one dump: the content digest
// combined with a digest of every option that can change diagnostics.
// The cap counts as such an option: it bounds the bag the payload is
// built from, so a payload recorded under a lower cap must not be
// replayed under a higher one.
func checkKey(content []byte, cfg config.Config) Digest {
	h := sha256.New()
	_, _ = h.Write(content)
	fmt.Fprintf(h, "|ni=%t|tm=%s|fv=%s|ss=%s|md=%d",
		cfg.Convert.NoImplicitOptional,
		cfg.Convert.CustomTypingModule,
		cfg.Convert.FeatureVersion,
		cfg.Convert.StubSuffix,
		cfg.Output.MaxDiagnostics)
	// Aliases in sorted order so the digest is stable across runs.
	aliases := make([]string, 0, len(cfg.Convert.ModuleAliases))
	for from, to := range cfg.Convert.ModuleAliases {
		aliases = append(aliases, from+"="+to)
	}
	sort.Strings(aliases)
	for _, a := range aliases {
		fmt.Fprintf(h, "|al=%s", a)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CachedNote mirrors diag.Note for serialization.
type CachedNote struct {
	Line    int
	Col     int
	Message string
}

// CachedDiagnostic mirrors diag.Diagnostic for serialization.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Line     int
	Col      int
	Message  string
	Notes    []CachedNote
}

// DiskPayload stores the diagnostics of one checked dump for fast
// re-runs on unchanged input.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	SourcePath  string
	Diagnostics []CachedDiagnostic
}

func payloadFrom(sourcePath string, bag *diag.Bag) *DiskPayload {
	p := &DiskPayload{
		Schema:     diskCacheSchemaVersion,
		SourcePath: sourcePath,
	}
	for _, d := range bag.Items() {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Line:     d.Pos.Line,
			Col:      d.Pos.Col,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Line: n.Pos.Line, Col: n.Pos.Col, Message: n.Msg})
		}
		p.Diagnostics = append(p.Diagnostics, cd)
	}
	return p
}

// restore rebuilds the cached diagnostics into a fresh bag.
func (p *DiskPayload) restore(bag *diag.Bag) {
	for _, cd := range p.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Pos:      source.Pos{Line: cd.Line, Col: cd.Col},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Pos: source.Pos{Line: n.Line, Col: n.Col},
				Msg: n.Message,
			})
		}
		bag.Add(d)
	}
}

// DiskCache keeps per-dump diagnostic payloads on disk, keyed by
// Digest. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at dir, or at the standard
// XDG location when dir is empty.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "pyfront")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads a payload from the disk cache. A schema mismatch is a
// plain miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

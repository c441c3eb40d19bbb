package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"commentlint/internal/check"
	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// Digest is the SHA-256 cache key of one checked file.
type Digest [32]byte

// DiskCache stores check results on disk, keyed by content and options.
// Thread-safe for concurrent access. A nil cache is a valid no-op cache.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema      uint16
	Dropped     int
	Diagnostics []cachedDiagnostic
}

// cachedDiagnostic is a diagnostic flattened for msgpack.
type cachedDiagnostic struct {
	Severity  uint8
	Code      uint16
	Message   string
	Rule      string
	Line      int
	Column    int
	HasLine   bool
	HasColumn bool
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// CacheKey hashes the file content together with everything that changes the result.
func CacheKey(content []byte, opts check.Options) Digest {
	h := sha256.New()
	fmt.Fprintf(h, "v%d\x00limit=%d\x00squash=%t\x00", cacheSchemaVersion, opts.Limit, opts.Squash)
	for _, r := range opts.Rules {
		fmt.Fprintf(h, "rule=%s\x00", r.Name)
	}
	if opts.Rules == nil {
		h.Write([]byte("rules=default\x00"))
	}
	h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог по первым двум символам, чтобы не держать всё в одной директории.
	return filepath.Join(c.dir, "results", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a result to the disk cache.
func (c *DiskCache) Put(key Digest, diags []diag.Diagnostic, dropped int) error {
	if c == nil {
		return nil
	}
	payload := cachePayload{
		Schema:      cacheSchemaVersion,
		Dropped:     dropped,
		Diagnostics: make([]cachedDiagnostic, 0, len(diags)),
	}
	for _, d := range diags {
		payload.Diagnostics = append(payload.Diagnostics, flattenDiagnostic(d))
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
	tmp := f.Name()
	defer func() {
		// после успешного Rename файла уже нет
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Warningf("failed to remove temp file %s: %v", tmp, rmErr)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads a cached result. A missing entry or a stale schema is a miss.
func (c *DiskCache) Get(key Digest) ([]diag.Diagnostic, int, bool, error) {
	if c == nil {
		return nil, 0, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, false, nil
		}
		return nil, 0, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, 0, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, 0, false, nil
	}
	out := make([]diag.Diagnostic, 0, len(payload.Diagnostics))
	for _, cd := range payload.Diagnostics {
		out = append(out, cd.diagnostic())
	}
	return out, payload.Dropped, true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func flattenDiagnostic(d diag.Diagnostic) cachedDiagnostic {
	return cachedDiagnostic{
		Severity:  uint8(d.Severity),
		Code:      uint16(d.Code),
		Message:   d.Message,
		Rule:      d.Rule,
		Line:      d.Position.Line,
		Column:    d.Position.Column,
		HasLine:   d.Position.HasLine,
		HasColumn: d.Position.HasColumn,
	}
}

func (cd cachedDiagnostic) diagnostic() diag.Diagnostic {
	return diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), source.Position{
		Line:      cd.Line,
		Column:    cd.Column,
		HasLine:   cd.HasLine,
		HasColumn: cd.HasColumn,
	}, cd.Message).WithRule(cd.Rule)
}

package driver

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"commentlint/internal/check"
	"commentlint/internal/diag"
	"commentlint/internal/rules"
	"commentlint/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey([]byte("// x"), check.DefaultOptions())
	diags := []diag.Diagnostic{
		diag.NewWarning(diag.RulIndentation, source.LinePos(4), "Wrong indentation.").WithRule("indentation"),
		diag.NewError(diag.IOExtractError, source.Position{}, "boom"),
		diag.NewWarning(diag.FmtInlineNoSpace, source.Pos(1, 2), "msg"),
	}

	if _, _, ok, err := cache.Get(key); ok || err != nil {
		t.Fatalf("expected a miss, got ok=%v err=%v", ok, err)
	}
	if err := cache.Put(key, diags, 7); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, dropped, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if dropped != 7 || !reflect.DeepEqual(got, diags) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, diags)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, _, ok, _ := cache.Get(key); ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	content := []byte("// x")
	base := CacheKey(content, check.DefaultOptions())

	noSquash := check.DefaultOptions()
	noSquash.Squash = false
	limited := check.DefaultOptions()
	limited.Limit = 5
	explicit := check.DefaultOptions()
	explicit.Rules = rules.All()

	for name, opts := range map[string]check.Options{"squash": noSquash, "limit": limited, "rules": explicit} {
		if CacheKey(content, opts) == base {
			t.Errorf("%s does not change the key", name)
		}
	}
	if CacheKey([]byte("// y"), check.DefaultOptions()) == base {
		t.Error("content does not change the key")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put(Digest{}, nil, 0); err != nil {
		t.Fatal(err)
	}
	if _, _, ok, err := cache.Get(Digest{}); ok || err != nil {
		t.Fatal("nil cache must miss")
	}
}

func TestCheckFileUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "//bad\n")

	cache, err := NewDiskCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := defaultOptions()
	opts.Cache = cache

	first, err := CheckFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil || first.Cached {
		t.Fatalf("first run: %+v %v", first, err)
	}
	second, err := CheckFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil || !second.Cached {
		t.Fatalf("second run should hit the cache: %+v %v", second, err)
	}
	if !reflect.DeepEqual(first.Diagnostics, second.Diagnostics) {
		t.Fatalf("cached diagnostics differ: %v vs %v", first.Diagnostics, second.Diagnostics)
	}
}

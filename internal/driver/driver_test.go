package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"commentlint/internal/check"
	"commentlint/internal/config"
	"commentlint/internal/diag"
	"commentlint/internal/extract"
	"commentlint/internal/observ"
	"commentlint/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func defaultOptions() Options {
	return Options{Check: check.DefaultOptions(), Jobs: 2}
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "let a; //bad\r\n")

	res, err := CheckFile(context.Background(), source.NewFileSet(), path, defaultOptions())
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	want := "warning FMT1101 1:9 Inline format violation: no space after \"//\"."
	if got := diag.FormatGoldenDiagnostics(res.Diagnostics); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if len(res.Comments) != 1 || res.Cached {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestCheckFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := CheckFile(context.Background(), source.NewFileSet(), filepath.Join(dir, "missing.js"), defaultOptions()); err == nil {
		t.Fatal("expected load error")
	}

	path := filepath.Join(dir, "open.js")
	writeFile(t, path, "x /* never closed")
	res, err := CheckFile(context.Background(), source.NewFileSet(), path, defaultOptions())
	if !errors.Is(err, extract.ErrUnterminatedComment) {
		t.Fatalf("expected ErrUnterminatedComment, got %v", err)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Code != diag.IOExtractError || !res.HasErrors() {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.js"), "// fine\n")
	writeFile(t, filepath.Join(dir, "a.ts"), "/*tight */\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "//ignored\n")
	writeFile(t, filepath.Join(dir, "node_modules", "dep.js"), "//ignored\n")
	writeFile(t, filepath.Join(dir, "broken", "open.c"), "/* open")

	var mu sync.Mutex
	var events []Event
	opts := defaultOptions()
	opts.Timer = observ.NewTimer()
	opts.Progress = SinkFunc(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	_, results, err := CheckDir(context.Background(), dir, config.Default(), opts)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	names := []string{"a.ts", "b.js", filepath.Join("broken", "open.c")}
	for i, name := range names {
		if results[i].Path != filepath.Join(dir, name) {
			t.Errorf("result %d path %s, want %s", i, results[i].Path, name)
		}
	}
	if len(results[0].Diagnostics) != 1 || results[0].Diagnostics[0].Code != diag.FmtBlockNoLeadingSpace {
		t.Errorf("a.ts: unexpected diagnostics %v", results[0].Diagnostics)
	}
	if len(results[1].Diagnostics) != 0 {
		t.Errorf("b.js: unexpected diagnostics %v", results[1].Diagnostics)
	}
	if results[2].Err == nil || results[2].Diagnostics[0].Code != diag.IOExtractError {
		t.Errorf("open.c: expected extraction error, got %+v", results[2])
	}

	var done, failed int
	for _, e := range events {
		switch e.Status {
		case StatusDone:
			done++
		case StatusError:
			failed++
		}
	}
	if done != 2 || failed != 1 {
		t.Errorf("events: %d done, %d failed", done, failed)
	}
	r := opts.Timer.Report()
	if len(r.Phases) != 3 {
		t.Errorf("expected discover/load/check phases, got %+v", r.Phases)
	}
	if len(r.Slowest) != 2 {
		t.Errorf("expected timings for the 2 checked files, got %+v", r.Slowest)
	}
}

func TestCheckDirLoadError(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(dir, "nowhere.js"), filepath.Join(dir, "dangling.js")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	_, results, err := CheckDir(context.Background(), dir, config.Default(), defaultOptions())
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 1 || results[0].Diagnostics[0].Code != diag.IOLoadFileError {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestCheckDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "// a\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := CheckDir(ctx, dir, config.Default(), defaultOptions()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	fs, results, err := CheckDir(context.Background(), t.TempDir(), config.Default(), defaultOptions())
	if err != nil || fs == nil || len(results) != 0 {
		t.Fatalf("unexpected outcome: %v %v %v", fs, results, err)
	}
}

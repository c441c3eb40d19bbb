// Package driver runs the comment checker over files and directories.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tliron/commonlog"

	"commentlint/internal/check"
	"commentlint/internal/comment"
	"commentlint/internal/diag"
	"commentlint/internal/extract"
	"commentlint/internal/observ"
	"commentlint/internal/source"
)

var log = commonlog.GetLogger("commentlint.driver")

// Options configure a driver run.
type Options struct {
	Check check.Options
	// Jobs limits parallelism in directory mode; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache is optional. Cached results carry no comments.
	Cache    *DiskCache
	Progress ProgressSink
	Timer    *observ.Timer
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path        string
	FileID      source.FileID
	Diagnostics []diag.Diagnostic
	// Comments are the logical comments, nil for cached results and failed files.
	Comments []*comment.Comment
	Dropped  int
	Cached   bool
	// Err is set when the file could not be loaded or tokenized.
	Err error
}

// HasErrors reports whether the file failed or produced error diagnostics.
func (r FileResult) HasErrors() bool {
	if r.Err != nil {
		return true
	}
	for _, d := range r.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// CheckFile loads path into fs and checks it.
// Load and extraction failures are returned as errors.
func CheckFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	id, err := fs.Load(path)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		return FileResult{Path: path, Err: err}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	res := checkLoaded(path, fs.Get(id), opts)
	if res.Err != nil {
		return res, fmt.Errorf("%s: %w", path, res.Err)
	}
	return res, nil
}

// CheckSource checks an already loaded file.
func CheckSource(file *source.File, opts Options) FileResult {
	return checkLoaded(file.Path, file, opts)
}

// checkLoaded reports progress under path, which may differ from file.Path.
func checkLoaded(path string, file *source.File, opts Options) FileResult {
	start := time.Now()
	res := FileResult{Path: path, FileID: file.ID}
	emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})

	var key Digest
	if opts.Cache != nil {
		key = CacheKey(file.Content, opts.Check)
		diags, dropped, ok, err := opts.Cache.Get(key)
		switch {
		case err != nil:
			log.Warningf("cache read failed for %s: %v", path, err)
		case ok:
			log.Debugf("cache hit: %s", path)
			res.Diagnostics, res.Dropped, res.Cached = diags, dropped, true
			emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusCached, Elapsed: time.Since(start), Diagnostics: len(diags)})
			return res
		}
	}

	out, err := check.Source(file.Content, opts.Check)
	if err != nil {
		res.Err = err
		res.Diagnostics = []diag.Diagnostic{extractDiagnostic(err)}
		emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return res
	}
	res.Diagnostics, res.Comments, res.Dropped = out.Diagnostics, out.Comments, out.Dropped
	log.Debugf("%s: %d comments, %d diagnostics", path, len(out.Comments), len(out.Diagnostics))

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, res.Diagnostics, res.Dropped); err != nil {
			log.Warningf("cache write failed for %s: %v", path, err)
		}
	}
	elapsed := time.Since(start)
	opts.Timer.RecordFile(path, elapsed)
	emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusDone, Elapsed: elapsed, Diagnostics: len(res.Diagnostics)})
	return res
}

func extractDiagnostic(err error) diag.Diagnostic {
	msg := "failed to extract comments: " + err.Error()
	if errors.Is(err, extract.ErrUnterminatedComment) {
		msg = err.Error()
	}
	return diag.NewError(diag.IOExtractError, source.Position{}, msg)
}

func loadDiagnostic(err error) diag.Diagnostic {
	return diag.NewError(diag.IOLoadFileError, source.Position{}, "failed to load file: "+err.Error())
}

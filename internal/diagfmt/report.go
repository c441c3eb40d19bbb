package diagfmt

import (
	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// FileReport groups the diagnostics of one file.
type FileReport struct {
	// Path as given on the command line or found by the directory walk.
	Path string
	// File is nil when the file could not be loaded.
	File        *source.File
	Diagnostics []diag.Diagnostic
	Dropped     int
}

// DisplayPath formats the report path according to mode.
func (r FileReport) DisplayPath(mode PathMode, baseDir string) string {
	path := r.Path
	if path == "" && r.File != nil {
		path = r.File.Path
	}
	return source.FormatPath(path, mode.String(), baseDir)
}

// Count returns the number of diagnostics across reports.
func Count(reports []FileReport) int {
	n := 0
	for _, r := range reports {
		n += len(r.Diagnostics)
	}
	return n
}

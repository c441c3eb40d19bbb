package source

import (
	"path/filepath"
	"strings"
)

// AbsolutePath returns the normalized absolute form of path.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns path relative to baseDir. Paths outside baseDir fall
// back to their absolute form instead of climbing with "../".
func RelativePath(path, baseDir string) (string, error) {
	absPath, err := AbsolutePath(path)
	if err != nil {
		return "", err
	}
	absBase, err := AbsolutePath(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return absPath, nil
	}
	rel = normalizePath(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return absPath, nil
	}
	return rel, nil
}

// BaseName returns the last element of path.
func BaseName(path string) string {
	return filepath.Base(path)
}

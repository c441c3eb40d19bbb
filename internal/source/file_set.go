package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns the files loaded during one run. It is not safe for concurrent
// mutation; concurrent Get calls after loading are fine.
type FileSet struct {
	files   []*File
	byPath  map[string]FileID // последняя версия файла по пути
	baseDir string
}

// NewFileSet creates an empty FileSet that displays paths relative to the
// working directory.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase создаёт FileSet с заданной базовой директорией.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{byPath: make(map[string]FileID), baseDir: baseDir}
}

// BaseDir returns the directory relative paths are computed against,
// falling back to the working directory.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Len returns the number of stored files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Add stores already normalized content. Adding the same path twice creates a
// new version; Lookup returns the latest one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	path = normalizePath(path)
	fs.files = append(fs.files, &File{
		ID:         id,
		Path:       path,
		Content:    content,
		Flags:      flags,
		lineStarts: lineStarts(content),
	})
	fs.byPath[path] = id
	return id
}

// AddVirtual adds in-memory content (stdin, tests) with the FileVirtual flag.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Load reads path from disk, normalizes it and adds it.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags, err := Normalize(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return fs.Add(path, content, flags), nil
}

// Get returns the file with the given ID. The ID must come from this set.
func (fs *FileSet) Get(id FileID) *File {
	return fs.files[id]
}

// Lookup returns the latest version of path, if it was added.
func (fs *FileSet) Lookup(path string) (*File, bool) {
	id, ok := fs.byPath[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return fs.files[id], true
}

// LineCount returns the number of lines. An empty file has one line.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// GetLine returns line n (1-based) without its newline, or "" when out of range.
func (f *File) GetLine(n int) string {
	if n < 1 || n > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[n-1]
	end := len(f.Content)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}
	return string(f.Content[start:end])
}

// FormatPath renders f.Path for output.
// mode: "absolute", "relative", "basename", "auto" (anything else keeps the path).
func (f *File) FormatPath(mode, baseDir string) string {
	return FormatPath(f.Path, mode, baseDir)
}

// FormatPath renders path for output, see File.FormatPath.
func FormatPath(path, mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(path); err == nil {
			return abs
		}
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, err := RelativePath(path, baseDir); err == nil {
			return rel
		}
	case "basename":
		return BaseName(path)
	case "auto":
		// длинные абсолютные пути сокращаем до имени файла
		if filepath.IsAbs(path) && len(path) >= 40 {
			return BaseName(path)
		}
	}
	return path
}

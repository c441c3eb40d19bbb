package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.js", []byte("// one"), 0)
	id2 := fs.Add("test.js", []byte("// two"), 0)
	if id1 == id2 {
		t.Fatalf("expected a new FileID for the second Add")
	}

	latest, exists := fs.Lookup("./test.js")
	if !exists || latest.ID != id2 {
		t.Errorf("expected latest version %d, got %+v (exists=%v)", id2, latest, exists)
	}
	if got := string(fs.Get(id1).Content); got != "// one" {
		t.Errorf("old version must stay reachable, got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("expected 2 files, got %d", fs.Len())
	}
}

// TestAddVirtualLineStarts проверяет начала строк для AddVirtual
func TestAddVirtualLineStarts(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.js", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []int{0, 2, 4}
	if len(file.lineStarts) != len(expected) {
		t.Fatalf("expected %d line starts, got %v", len(expected), file.lineStarts)
	}
	for i, val := range expected {
		if file.lineStarts[i] != val {
			t.Errorf("lineStarts[%d] = %d, want %d", i, file.lineStarts[i], val)
		}
	}
	if file.LineCount() != 3 {
		t.Errorf("trailing newline opens an empty last line, got %d lines", file.LineCount())
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("lines.js", []byte("first\n\n  third\nlast")))

	tests := []struct {
		line int
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, ""},
		{3, "  third"},
		{4, "last"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
	if file.LineCount() != 4 {
		t.Errorf("expected 4 lines, got %d", file.LineCount())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		want  string
		flags FileFlags
	}{
		{
			name: "plain",
			in:   []byte("a\nb\n"),
			want: "a\nb\n",
		},
		{
			name:  "crlf",
			in:    []byte("a\r\nb\r\n"),
			want:  "a\nb\n",
			flags: FileNormalizedCRLF,
		},
		{
			name:  "lone cr is kept",
			in:    []byte("a\rb\r\n"),
			want:  "a\rb\n",
			flags: FileNormalizedCRLF,
		},
		{
			name:  "utf-8 bom",
			in:    []byte("\xEF\xBB\xBFx\n"),
			want:  "x\n",
			flags: FileHadBOM,
		},
		{
			name:  "utf-16le bom",
			in:    []byte{0xFF, 0xFE, '/', 0, '/', 0, ' ', 0, 0xB1, 0x03, '\r', 0, '\n', 0},
			want:  "// α\n",
			flags: FileDecodedUTF16 | FileNormalizedCRLF,
		},
		{
			name:  "utf-16be bom",
			in:    []byte{0xFE, 0xFF, 0, '/', 0, '*', 0, '*', 0, '/'},
			want:  "/**/",
			flags: FileDecodedUTF16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if flags != tt.flags {
				t.Errorf("flags = %b, want %b", flags, tt.flags)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.js")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBF// a\r\n// b\r\n"), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "// a\n// b\n" {
		t.Errorf("unexpected content %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", file.Flags)
	}
	if _, ok := fs.Lookup(path); !ok {
		t.Error("expected file to be indexed by path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

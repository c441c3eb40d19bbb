package source

import (
	"bytes"
	"fmt"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	crlf       = []byte("\r\n")
	lf         = []byte("\n")
)

// Normalize converts raw file bytes into the UTF-8/LF form stored in a File:
// UTF-16 (by BOM) is decoded, a UTF-8 BOM is dropped, CRLF becomes LF.
// A lone "\r" is left alone.
func Normalize(content []byte) ([]byte, FileFlags, error) {
	var flags FileFlags

	if bytes.HasPrefix(content, bomUTF16LE) || bytes.HasPrefix(content, bomUTF16BE) {
		// ExpectBOM сам выбирает порядок байт по BOM и отрезает его
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		decoded, _, err := transform.Bytes(dec, content)
		if err != nil {
			return nil, 0, fmt.Errorf("decode utf-16: %w", err)
		}
		content = decoded
		flags |= FileDecodedUTF16
	}
	if rest, ok := bytes.CutPrefix(content, bomUTF8); ok {
		content = rest
		flags |= FileHadBOM
	}
	if bytes.Contains(content, crlf) {
		content = bytes.ReplaceAll(content, crlf, lf)
		flags |= FileNormalizedCRLF
	}
	return content, flags, nil
}

// lineStarts returns the byte offset of every line start; there is always at
// least one line.
func lineStarts(content []byte) []int {
	starts := make([]int, 1, bytes.Count(content, lf)+1)
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

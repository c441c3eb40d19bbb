package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags records how the stored content differs from the bytes on disk.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM: a UTF-8 byte order mark was stripped.
	FileHadBOM
	// FileNormalizedCRLF: CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
	// FileDecodedUTF16: the file was stored as UTF-16 on disk.
	FileDecodedUTF16
)

// File is one loaded source. Content is always UTF-8 with LF line endings.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags
	// lineStarts[i] is the byte offset where line i+1 begins.
	lineStarts []int
}

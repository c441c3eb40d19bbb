package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"commentlint/internal/config"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// builtinSeeds cover each comment format and the usual violations.
var builtinSeeds = []string{
	"",
	"// ok\n",
	"//no space\n",
	"//   indented\n// next\n",
	"/* ok */",
	"/*  */",
	"/*x*/",
	"/**\n * Doc.\n */\n",
	"/** bad\n*\n  */",
	"/*\n",
	"const s = \"// not a comment\"; // real\n",
	"let t = `/* still a string ${x} */`;\n",
	"/**\n * a b\t c  d\n *  indented\n */\n",
	"\xef\xbb\xbf// bom\r\n// crlf\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	cfg := config.Default()
	// проходим по дереву testdata, добавляем все файлы с подходящим расширением
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !cfg.Matches(path) {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

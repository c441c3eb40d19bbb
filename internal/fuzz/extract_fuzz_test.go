package fuzztests

import (
	"errors"
	"testing"

	"commentlint/internal/extract"
	"commentlint/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzExtractComments(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		raws, err := extract.Comments(input)
		if err != nil {
			if !errors.Is(err, extract.ErrUnterminatedComment) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if err := testkit.CheckRawInvariants(raws); err != nil {
			t.Fatal(err)
		}
	})
}

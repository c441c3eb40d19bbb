package comment

import (
	"strings"
	"testing"
	"unicode/utf8"

	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// rawAt builds a raw comment whose first character sits at (line, col).
func rawAt(text string, line, col int) Raw {
	parts := strings.Split(text, "\n")
	endCol := utf8.RuneCountInString(parts[len(parts)-1])
	if len(parts) == 1 {
		endCol += col
	}
	return Raw{
		Text: text,
		Loc: source.Location{
			Start: source.Pos(line, col),
			End:   source.Pos(line+len(parts)-1, endCol),
		},
	}
}

// parseWith runs parser on raw and returns the result with collected diagnostics.
func parseWith(parser Parser, raw Raw) (*Comment, []diag.Diagnostic) {
	bag := diag.NewBag(0)
	c := parser(raw.Text, raw.Loc, diag.BagReporter{Bag: bag})
	return c, bag.Items()
}

type wantDiag struct {
	msg string
	pos source.Position
}

func checkDiags(t *testing.T, got []diag.Diagnostic, want []wantDiag) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d diagnostics, got %d:\n%s", len(want), len(got), diag.FormatGoldenDiagnostics(got))
	}
	for i := range want {
		if got[i].Message != want[i].msg {
			t.Errorf("diagnostic %d: message %q, want %q", i, got[i].Message, want[i].msg)
		}
		if got[i].Position != want[i].pos {
			t.Errorf("diagnostic %d (%s): position %v, want %v", i, got[i].Message, got[i].Position, want[i].pos)
		}
	}
}

func checkComment(t *testing.T, got *Comment, format Format, lines []string, pos source.Position) {
	t.Helper()
	if got.Format != format {
		t.Errorf("format = %v, want %v", got.Format, format)
	}
	if got.Position != pos {
		t.Errorf("position = %v, want %v", got.Position, pos)
	}
	if len(got.Lines) != len(lines) {
		t.Fatalf("lines = %q, want %q", got.Lines, lines)
	}
	for i := range lines {
		if got.Lines[i] != lines[i] {
			t.Errorf("line %d = %q, want %q", i, got.Lines[i], lines[i])
		}
	}
}

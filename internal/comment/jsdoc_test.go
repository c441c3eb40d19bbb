package comment

import (
	"strings"
	"testing"

	"commentlint/internal/source"
)

// docText joins a jsdoc comment starting at column col; body lines are
// prefixed with the aligned "*" (a body line of "" yields a bare "*").
func docText(col int, body ...string) string {
	pad := strings.Repeat(" ", col+1)
	lines := []string{"/**"}
	for _, b := range body {
		if b == "" {
			lines = append(lines, pad+"*")
			continue
		}
		lines = append(lines, pad+"* "+b)
	}
	lines = append(lines, pad+"*/")
	return strings.Join(lines, "\n")
}

func TestParseJSDocWellFormed(t *testing.T) {
	body := []string{
		"List:",
		"  - first item,",
		"  - second item.",
		"",
		"Last line.",
	}
	got, diags := parseWith(ParseJSDoc, rawAt(docText(8, body...), 20, 8))
	checkComment(t, got, JSDoc, body, source.Pos(21, 11))
	checkDiags(t, diags, nil)
}

func TestParseJSDocRoundTrip(t *testing.T) {
	bodies := [][]string{
		{"one"},
		{"", "middle", ""},
		{"tabs\tinside", "  indented", "ünïcödé"},
	}
	for _, col := range []int{0, 1, 4, 13} {
		for _, body := range bodies {
			got, diags := parseWith(ParseJSDoc, rawAt(docText(col, body...), 3, col))
			if len(diags) != 0 {
				t.Errorf("col %d, body %q: unexpected diagnostics %v", col, body, diags)
			}
			checkComment(t, got, JSDoc, body, source.Pos(4, col+3))
		}
	}
}

func TestParseJSDocTooShortAndWrongStart(t *testing.T) {
	got, diags := parseWith(ParseJSDoc, rawAt("/*\n      */", 7, 8))
	checkComment(t, got, JSDoc, []string{}, source.Pos(7, 10))
	checkDiags(t, diags, []wantDiag{
		{MsgDocTooShort, source.Pos(7, 8)},
		{MsgDocWrongStart, source.Pos(7, 8)},
		{MsgDocWrongEnd(9), source.LinePos(8)},
	})
}

func TestParseJSDocSingleLine(t *testing.T) {
	got, diags := parseWith(ParseJSDoc, rawAt("/** x */", 1, 0))
	checkComment(t, got, JSDoc, []string{}, source.Pos(1, 2))
	checkDiags(t, diags, []wantDiag{{MsgDocTooShort, source.Pos(1, 0)}})
}

func TestParseJSDocNoInterior(t *testing.T) {
	got, diags := parseWith(ParseJSDoc, rawAt("/**\n */", 5, 0))
	checkComment(t, got, JSDoc, []string{}, source.Pos(5, 2))
	checkDiags(t, diags, []wantDiag{{MsgDocTooShort, source.Pos(5, 0)}})
}

func TestParseJSDocMalformedLines(t *testing.T) {
	text := strings.Join([]string{
		"/**  im bad",
		"        **",
		"        #",
		"        #* line",
		"         */",
	}, "\n")
	got, diags := parseWith(ParseJSDoc, rawAt(text, 10, 8))
	checkComment(t, got, JSDoc, []string{"*", "#", "line"}, source.Pos(11, 11))
	checkDiags(t, diags, []wantDiag{
		{MsgDocStartNotAtLineEnd, source.Pos(10, 11)},
		{MsgDocAsteriskMisaligned(9), source.Pos(11, 8)},
		{MsgDocNoSpaceAfterAsterisk, source.Pos(11, 9)},
		{MsgDocNoAsterisk, source.LinePos(12)},
		{MsgDocNonSpaceBeforeAsterisk, source.Pos(13, 8)},
	})
}

func TestParseJSDocWrongEnd(t *testing.T) {
	text := "/**\n * body\n   */"
	got, diags := parseWith(ParseJSDoc, rawAt(text, 1, 0))
	checkComment(t, got, JSDoc, []string{"body"}, source.Pos(2, 3))
	checkDiags(t, diags, []wantDiag{{MsgDocWrongEnd(1), source.LinePos(3)}})
	if !strings.HasSuffix(MsgDocWrongEnd(1), "1 space.") || !strings.HasSuffix(MsgDocWrongEnd(4), "4 spaces.") {
		t.Errorf("unexpected pluralization: %q / %q", MsgDocWrongEnd(1), MsgDocWrongEnd(4))
	}
}

func TestParseJSDocMisalignedEndKeepsText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
		diags []wantDiag
	}{
		{
			name:  "text before closing marker",
			text:  "/**\n * first\n * last  line */",
			lines: []string{"first", "last  line"},
			diags: []wantDiag{{MsgDocWrongEnd(1), source.LinePos(3)}},
		},
		{
			name:  "two lines",
			text:  "/**\n * only */",
			lines: []string{"only"},
			diags: []wantDiag{
				{MsgDocTooShort, source.Pos(1, 0)},
				{MsgDocWrongEnd(1), source.LinePos(2)},
			},
		},
		{
			name:  "closing line without asterisk",
			text:  "/**\n * first\n tail */",
			lines: []string{"first", "tail"},
			diags: []wantDiag{
				{MsgDocWrongEnd(1), source.LinePos(3)},
				{MsgDocNoAsterisk, source.LinePos(3)},
			},
		},
		{
			name:  "double asterisk marker is dropped",
			text:  "/**\n * first\n **/",
			lines: []string{"first"},
			diags: []wantDiag{{MsgDocWrongEnd(1), source.LinePos(3)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := parseWith(ParseJSDoc, rawAt(tt.text, 1, 0))
			checkComment(t, got, JSDoc, tt.lines, source.Pos(2, 3))
			checkDiags(t, diags, tt.diags)
		})
	}
}

func TestParseJSDocTabBeforeAsterisk(t *testing.T) {
	text := "/**\n\t* tabbed\n */"
	got, diags := parseWith(ParseJSDoc, rawAt(text, 1, 0))
	checkComment(t, got, JSDoc, []string{"tabbed"}, source.Pos(2, 3))
	checkDiags(t, diags, []wantDiag{{MsgDocNonSpaceBeforeAsterisk, source.Pos(2, 0)}})
}

func TestParseJSDocKeepsBodyAfterTightAsterisk(t *testing.T) {
	text := "/**\n *tight\n */"
	got, diags := parseWith(ParseJSDoc, rawAt(text, 1, 0))
	checkComment(t, got, JSDoc, []string{"tight"}, source.Pos(2, 3))
	checkDiags(t, diags, []wantDiag{{MsgDocNoSpaceAfterAsterisk, source.Pos(2, 2)}})
}

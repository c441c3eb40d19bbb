package comment

import (
	"testing"

	"commentlint/internal/source"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
		diags []wantDiag
	}{
		{
			name:  "well formed",
			text:  "// hello",
			lines: []string{"hello"},
		},
		{
			name:  "indented body is kept",
			text:  "//    indented",
			lines: []string{"   indented"},
		},
		{
			name:  "empty",
			text:  "//",
			lines: []string{""},
		},
		{
			name:  "single space",
			text:  "// ",
			lines: []string{""},
		},
		{
			name:  "no space after delimiter",
			text:  "//tight",
			lines: []string{"tight"},
			diags: []wantDiag{{MsgInlineNoSpace, source.Pos(4, 10)}},
		},
		{
			name:  "tab after delimiter",
			text:  "//\ttab",
			lines: []string{"\ttab"},
			diags: []wantDiag{{MsgInlineNoSpace, source.Pos(4, 10)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := parseWith(ParseInline, rawAt(tt.text, 4, 8))
			checkComment(t, got, Inline, tt.lines, source.Pos(4, 11))
			checkDiags(t, diags, tt.diags)
		})
	}
}

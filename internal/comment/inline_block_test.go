package comment

import (
	"testing"

	"commentlint/internal/source"
)

func TestParseInlineBlock(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
		pos   source.Position
		diags []wantDiag
	}{
		{
			name:  "well formed",
			text:  "/* hello */",
			lines: []string{"hello"},
			pos:   source.Pos(2, 11),
		},
		{
			name:  "inner spaces are kept",
			text:  "/* a  b */",
			lines: []string{"a  b"},
			pos:   source.Pos(2, 11),
		},
		{
			name:  "empty",
			text:  "/**/",
			lines: []string{""},
			pos:   source.Pos(2, 10),
			diags: []wantDiag{{MsgBlockEmpty, source.Pos(2, 10)}},
		},
		{
			name:  "blank",
			text:  "/*   */",
			lines: []string{""},
			pos:   source.Pos(2, 10),
			diags: []wantDiag{{MsgBlockEmpty, source.Pos(2, 10)}},
		},
		{
			name:  "no padding",
			text:  "/*tight*/",
			lines: []string{"tight"},
			pos:   source.Pos(2, 10),
			diags: []wantDiag{
				{MsgBlockNoLeadingSpace, source.Pos(2, 10)},
				{MsgBlockNoTrailingSpace, source.Pos(2, 15)},
			},
		},
		{
			name:  "double padding",
			text:  "/*  two  spaces  */",
			lines: []string{" two  spaces "},
			pos:   source.Pos(2, 11),
			diags: []wantDiag{
				{MsgBlockExtraLeadingSpace, source.Pos(2, 10)},
				{MsgBlockExtraTrailingSpace, source.Pos(2, 23)},
			},
		},
		{
			name:  "leading only",
			text:  "/* left*/",
			lines: []string{"left"},
			pos:   source.Pos(2, 11),
			diags: []wantDiag{{MsgBlockNoTrailingSpace, source.Pos(2, 15)}},
		},
		{
			name:  "trailing only",
			text:  "/*right */",
			lines: []string{"right"},
			pos:   source.Pos(2, 10),
			diags: []wantDiag{{MsgBlockNoLeadingSpace, source.Pos(2, 10)}},
		},
		{
			name:  "columns count runes",
			text:  "/*ωψ*/",
			lines: []string{"ωψ"},
			pos:   source.Pos(2, 10),
			diags: []wantDiag{
				{MsgBlockNoLeadingSpace, source.Pos(2, 10)},
				{MsgBlockNoTrailingSpace, source.Pos(2, 12)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := parseWith(ParseInlineBlock, rawAt(tt.text, 2, 8))
			checkComment(t, got, InlineBlock, tt.lines, tt.pos)
			checkDiags(t, diags, tt.diags)
		})
	}
}

// Content with exactly one space on each side round-trips without diagnostics.
func TestParseInlineBlockPaddedContent(t *testing.T) {
	for _, content := range []string{" x ", " longer text here ", " a\tb ", " ü "} {
		got, diags := parseWith(ParseInlineBlock, rawAt("/*"+content+"*/", 1, 0))
		want := content[1 : len(content)-1]
		if len(diags) != 0 {
			t.Errorf("%q: unexpected diagnostics %v", content, diags)
		}
		if len(got.Lines) != 1 || got.Lines[0] != want {
			t.Errorf("%q: lines = %q, want [%q]", content, got.Lines, want)
		}
	}
}

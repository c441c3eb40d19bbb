package comment

import (
	"strings"

	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// ParseInlineBlock parses a single-line "/* ... */" comment.
//
// Exactly one space is expected on each side of the content. At most one
// space is stripped from each side, so extra padding stays in the body and
// keeps the columns reported by content rules exact.
func ParseInlineBlock(text string, loc source.Location, r diag.Reporter) *Comment {
	content := ""
	if len(text) >= 4 {
		content = text[2 : len(text)-2]
	}
	pos := loc.Start.AddColumns(2)

	if strings.TrimSpace(content) == "" {
		diag.ReportWarning(r, diag.FmtBlockEmpty, pos, MsgBlockEmpty)
		return &Comment{
			Format:   InlineBlock,
			Lines:    []string{""},
			Position: pos,
		}
	}

	if content[0] != ' ' {
		diag.ReportWarning(r, diag.FmtBlockNoLeadingSpace, pos, MsgBlockNoLeadingSpace)
	} else {
		if len(content) > 1 && content[1] == ' ' {
			diag.ReportWarning(r, diag.FmtBlockExtraLeadingSpace, pos, MsgBlockExtraLeadingSpace)
		}
		content = content[1:]
		pos = pos.AddColumns(1)
	}

	switch {
	case !strings.HasSuffix(content, " "):
		diag.ReportWarning(r, diag.FmtBlockNoTrailingSpace, pos.AddColumns(width(content)), MsgBlockNoTrailingSpace)
	case strings.HasSuffix(content, "  "):
		trailingAt := width(strings.TrimRight(content, " "))
		diag.ReportWarning(r, diag.FmtBlockExtraTrailingSpace, pos.AddColumns(trailingAt), MsgBlockExtraTrailingSpace)
		content = content[:len(content)-1]
	default:
		content = content[:len(content)-1]
	}

	return &Comment{
		Format:   InlineBlock,
		Lines:    []string{content},
		Position: pos,
	}
}

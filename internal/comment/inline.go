package comment

import (
	"strings"

	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// ParseInline parses a "//" comment.
//
// The body is expected after "// ". When the space is missing the violation is
// reported at the character right after the delimiter and the body starts
// there. Position is always start+3 so alignment checks in Squash only depend
// on where comments start.
func ParseInline(text string, loc source.Location, r diag.Reporter) *Comment {
	body := strings.TrimPrefix(text, "//")
	switch {
	case body == "":
	case body[0] == ' ':
		body = body[1:]
	default:
		diag.ReportWarning(r, diag.FmtInlineNoSpace, loc.Start.AddColumns(2), MsgInlineNoSpace)
	}

	return &Comment{
		Format:   Inline,
		Lines:    []string{body},
		Position: loc.Start.AddColumns(3),
	}
}

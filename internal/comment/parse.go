package comment

import (
	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// Parser turns the text of one raw comment into a logical comment.
// Violations go to r; a result is always returned.
type Parser func(text string, loc source.Location, r diag.Reporter) *Comment

var parsers = map[Format]Parser{
	Inline:      ParseInline,
	InlineBlock: ParseInlineBlock,
	JSDoc:       ParseJSDoc,
}

// ParserFor returns the parser registered for format.
func ParserFor(format Format) (Parser, bool) {
	p, ok := parsers[format]
	return p, ok
}

// Parse classifies raw and runs the matching parser.
func Parse(raw Raw, r diag.Reporter) *Comment {
	return ParseAs(Classify(raw.Text), raw, r)
}

// ParseAs runs the parser for an explicit format. A format without a parser
// produces a single error and an empty comment at the raw start position.
func ParseAs(format Format, raw Raw, r diag.Reporter) *Comment {
	parse, ok := ParserFor(format)
	if !ok {
		diag.ReportError(r, diag.FmtUnrecognized, raw.Loc.Start, MsgUnrecognized)
		return &Comment{
			Format:   format,
			Lines:    []string{},
			Position: raw.Loc.Start,
		}
	}
	return parse(raw.Text, raw.Loc, r)
}

// ParseAll parses raws in order.
func ParseAll(raws []Raw, r diag.Reporter) []*Comment {
	out := make([]*Comment, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Parse(raw, r))
	}
	return out
}

package comment

import (
	"strings"
	"unicode"

	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// ParseJSDoc parses a multi-line "/** ... */" comment.
//
// The expected shape for a comment starting at column c is:
//
//	/**
//	 * body
//	 */
//
// where every "*" of the interior and closing lines sits at column c+1 and is
// followed by a single space (or nothing, for blank body lines).
//
// A comment without a usable structure (fewer than two lines, a malformed
// opening marker, no interior lines) yields an empty body positioned right
// after "/*"; the diagnostics raised up to that point are kept.
func ParseJSDoc(text string, loc source.Location, r diag.Reporter) *Comment {
	lines := strings.Split(text, "\n")
	indent := loc.Start.Column + 1

	if len(lines) < 3 {
		diag.ReportWarning(r, diag.FmtDocTooShort, loc.Start, MsgDocTooShort)
		if len(lines) < 2 {
			return jsdocFallback(loc)
		}
	}

	first, last := lines[0], lines[len(lines)-1]
	interior := lines[1 : len(lines)-1]

	if len(first) < 3 || first[2] != '*' {
		diag.ReportWarning(r, diag.FmtDocWrongStart, loc.Start, MsgDocWrongStart)
		checkDocEnd(last, loc.End.Line, indent, r)
		return jsdocFallback(loc)
	}
	if len(first) != 3 {
		diag.ReportWarning(r, diag.FmtDocStartNotAtLineEnd, loc.Start.AddColumns(3), MsgDocStartNotAtLineEnd)
	}

	body := make([]string, 0, len(interior)+1)
	for i, line := range interior {
		body = append(body, parseDocLine(line, loc.Start.Line+1+i, indent, r))
	}

	// Закрывающая строка отбрасывается, только если она выровнена.
	// Иначе текст перед "*/" остаётся последней строкой тела.
	if !checkDocEnd(last, loc.End.Line, indent, r) {
		if text, ok := closingBody(last); ok {
			body = append(body, parseDocLine(text, loc.Start.Line+len(lines)-1, indent, r))
		}
	}

	if len(body) == 0 {
		return jsdocFallback(loc)
	}
	return &Comment{
		Format:   JSDoc,
		Lines:    body,
		Position: loc.Start.Advance(source.Pos(1, 3)),
	}
}

func jsdocFallback(loc source.Location) *Comment {
	return &Comment{
		Format:   JSDoc,
		Lines:    []string{},
		Position: loc.Start.AddColumns(2),
	}
}

// parseDocLine validates one interior line and returns its body.
// Lines without "*" keep their text (minus indentation) so that the following
// body lines stay on their own source lines.
func parseDocLine(line string, lineNo, indent int, r diag.Reporter) string {
	star := strings.IndexByte(line, '*')
	if star < 0 {
		diag.ReportWarning(r, diag.FmtDocNoAsterisk, source.LinePos(lineNo), MsgDocNoAsterisk)
		return strings.TrimLeftFunc(line, unicode.IsSpace)
	}

	prefix := line[:star]
	if spaces := leadingSpaces(prefix); spaces != len(prefix) {
		diag.ReportWarning(r, diag.FmtDocNonSpaceBeforeAsterisk, source.Pos(lineNo, spaces), MsgDocNonSpaceBeforeAsterisk)
	}

	starCol := width(prefix)
	if starCol != indent {
		diag.ReportWarning(r, diag.FmtDocAsteriskMisaligned, source.Pos(lineNo, starCol), MsgDocAsteriskMisaligned(indent))
	}

	rest := line[star+1:]
	switch {
	case rest == "":
		return ""
	case rest[0] == ' ':
		return rest[1:]
	default:
		diag.ReportWarning(r, diag.FmtDocNoSpaceAfterAsterisk, source.Pos(lineNo, starCol+1), MsgDocNoSpaceAfterAsterisk)
		return rest
	}
}

// checkDocEnd expects the closing line to be exactly indent spaces and "*/"
// and reports whether it is.
func checkDocEnd(line string, lineNo, indent int, r diag.Reporter) bool {
	if line == strings.Repeat(" ", indent)+"*/" {
		return true
	}
	diag.ReportWarning(r, diag.FmtDocWrongEnd, source.LinePos(lineNo), MsgDocWrongEnd(indent))
	return false
}

// closingBody returns the text of a misaligned closing line without "*/" and
// the spaces before it. ok is false when nothing but markers is left.
func closingBody(line string) (string, bool) {
	text := strings.TrimRight(strings.TrimSuffix(line, "*/"), " ")
	rest := strings.TrimPrefix(strings.TrimSpace(text), "*")
	if strings.TrimSpace(rest) == "" {
		return "", false
	}
	return text, true
}

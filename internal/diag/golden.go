package diag

import (
	"strings"
)

// FormatGoldenDiagnostics renders diagnostics one per line for golden
// comparisons in tests, keeping the input order:
//
//	warning FMT1101 3:10 Inline format violation: no space after "//".
//
// Line breaks inside messages are folded into single spaces.
func FormatGoldenDiagnostics(diags []Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = strings.Join([]string{
			strings.ToLower(d.Severity.String()),
			d.Code.ID(),
			d.Position.String(),
			foldLines(d.Message),
		}, " ")
	}
	return strings.Join(lines, "\n")
}

// foldLines joins the lines of msg with single spaces.
func foldLines(msg string) string {
	parts := strings.FieldsFunc(msg, func(r rune) bool { return r == '\n' || r == '\r' })
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

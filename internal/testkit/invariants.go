// Package testkit holds structural checks shared by unit and fuzz tests.
package testkit

import (
	"fmt"
	"strings"

	"commentlint/internal/comment"
	"commentlint/internal/diag"
)

// CheckRawInvariants validates extractor output against its source:
// 1) every raw starts with a comment opener and has a fully known location
// 2) the location spans exactly as many lines as the text does
// 3) raws are ordered and do not overlap
func CheckRawInvariants(raws []comment.Raw) error {
	for i, r := range raws {
		if !strings.HasPrefix(r.Text, "//") && !strings.HasPrefix(r.Text, "/*") {
			return fmt.Errorf("raw %d: text %q does not start with a comment opener", i, r.Text)
		}
		start, end := r.Loc.Start, r.Loc.End
		if !start.HasLine || !start.HasColumn || !end.HasLine || !end.HasColumn {
			return fmt.Errorf("raw %d: incomplete location %v", i, r.Loc)
		}
		if start.Line < 1 {
			return fmt.Errorf("raw %d: line %d is not 1-based", i, start.Line)
		}
		if got, want := end.Line-start.Line, strings.Count(r.Text, "\n"); got != want {
			return fmt.Errorf("raw %d: location %v spans %d newlines, text has %d", i, r.Loc, got, want)
		}
		if i > 0 && start.Less(raws[i-1].Loc.End) {
			return fmt.Errorf("raw %d starts at %v before previous end %v", i, start, raws[i-1].Loc.End)
		}
	}
	return nil
}

// CheckCommentInvariants validates parsed (and possibly squashed) comments:
// body lines never carry newlines and every comment knows its line.
func CheckCommentInvariants(comments []*comment.Comment) error {
	for i, c := range comments {
		if c == nil {
			return fmt.Errorf("comment %d is nil", i)
		}
		if !c.Position.HasLine {
			return fmt.Errorf("comment %d: position %v has no line", i, c.Position)
		}
		for j, line := range c.Lines {
			if strings.Contains(line, "\n") {
				return fmt.Errorf("comment %d line %d contains a newline: %q", i, j, line)
			}
		}
	}
	return nil
}

// CheckDiagnosticInvariants validates aggregated output: ordered by position,
// within limit, and the dropped counter agrees with the limit.
func CheckDiagnosticInvariants(diags []diag.Diagnostic, limit, dropped int) error {
	if limit > 0 && len(diags) > limit {
		return fmt.Errorf("%d diagnostics exceed limit %d", len(diags), limit)
	}
	if dropped > 0 && (limit <= 0 || len(diags) != limit) {
		return fmt.Errorf("dropped %d diagnostics with %d kept and limit %d", dropped, len(diags), limit)
	}
	for i := 1; i < len(diags); i++ {
		if diags[i].Position.Less(diags[i-1].Position) {
			return fmt.Errorf("diagnostic %d at %v precedes %d at %v", i, diags[i].Position, i-1, diags[i-1].Position)
		}
	}
	for i, d := range diags {
		if d.Message == "" {
			return fmt.Errorf("diagnostic %d at %v has an empty message", i, d.Position)
		}
	}
	return nil
}

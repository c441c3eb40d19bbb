package rules

import (
	"commentlint/internal/comment"
	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// Check runs every rule over every comment, comment by comment, and reports
// violations anchored at the comment position.
func Check(comments []*comment.Comment, rules []Rule, r diag.Reporter) {
	if r == nil {
		return
	}
	for _, c := range comments {
		for _, rule := range rules {
			if rule.Check == nil {
				continue
			}
			rule.Check(c, func(local source.Position) {
				r.Report(diag.New(rule.Severity, rule.Code, c.Position.Advance(local), rule.Message).WithRule(rule.Name))
			})
		}
	}
}

// Apply is Check collecting into a fresh slice.
func Apply(comments []*comment.Comment, rules []Rule) []diag.Diagnostic {
	var out []diag.Diagnostic
	Check(comments, rules, diag.ReporterFunc(func(d diag.Diagnostic) {
		out = append(out, d)
	}))
	return out
}

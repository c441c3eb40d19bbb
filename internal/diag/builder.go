package diag

import "commentlint/internal/source"

func New(sev Severity, code Code, pos source.Position, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Position: pos,
	}
}

func NewError(code Code, pos source.Position, msg string) Diagnostic {
	return New(SevError, code, pos, msg)
}

func NewWarning(code Code, pos source.Position, msg string) Diagnostic {
	return New(SevWarning, code, pos, msg)
}

// WithRule tags the diagnostic with the rule that produced it.
func (d Diagnostic) WithRule(name string) Diagnostic {
	d.Rule = name
	return d
}

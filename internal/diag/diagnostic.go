package diag

import "commentlint/internal/source"

// Diagnostic is a single format or rule violation.
// Values are never mutated after they are emitted.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Position source.Position
	// Rule is the name of the content rule that produced the diagnostic;
	// empty for format violations.
	Rule string
}

func (d Diagnostic) String() string {
	return d.Position.String() + ": " + d.Message
}

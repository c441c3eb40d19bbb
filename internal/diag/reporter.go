package diag

import "commentlint/internal/source"

// Reporter: минимальный контракт получения диагностик от фаз.
// Реализации: BagReporter (кладёт в Bag), ReporterFunc, NopReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// ReportWarning is a shortcut for emitting a SevWarning diagnostic.
func ReportWarning(r Reporter, code Code, pos source.Position, msg string) {
	if r == nil {
		return
	}
	r.Report(NewWarning(code, pos, msg))
}

// ReportError is a shortcut for emitting a SevError diagnostic.
func ReportError(r Reporter, code Code, pos source.Position, msg string) {
	if r == nil {
		return
	}
	r.Report(NewError(code, pos, msg))
}

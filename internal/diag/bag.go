package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics of a single check invocation.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag creates a bag that keeps at most limit diagnostics; limit <= 0 means unbounded.
func NewBag(limit int) *Bag {
	limit = max(limit, 0)
	return &Bag{items: make([]Diagnostic, 0, min(limit, 64)), limit: limit}
}

// Add добавляет диагностику, учитывая лимит, и сообщает, принята ли она.
// The limit applies in arrival order, before Sort: once the bag is full, a
// later diagnostic is dropped even if it sits earlier in the document.
func (b *Bag) Add(d Diagnostic) bool {
	if b.limit > 0 && len(b.items) >= b.limit {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped returns how many diagnostics were rejected by the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors reports whether any kept diagnostic is an error.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает внутренний срез диагностик; не модифицируйте его.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort stably orders diagnostics by line, then column; a missing column sorts as 0.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, Compare)
}

// Compare orders diagnostics by position: line first, then column or 0.
func Compare(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Position.Line, b.Position.Line),
		cmp.Compare(a.Position.ColumnOrZero(), b.Position.ColumnOrZero()),
	)
}

package rules

import (
	"errors"
	"fmt"
	"sort"

	"commentlint/internal/comment"
	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// ErrUnknownRule is returned by Select for names that are not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Checker scans a comment body and calls report once per violation with a
// position local to the body: Line is the index in c.Lines and Column the rune
// index inside that line. A local position without a column points at the
// start of the body line.
type Checker func(c *comment.Comment, report func(local source.Position))

// Rule is a named content check over logical comments.
type Rule struct {
	Name     string
	Message  string
	Code     diag.Code
	Severity diag.Severity
	Check    Checker
}

var (
	// Порядок важен: диагностики одного комментария идут в порядке правил.
	registry = []Rule{
		{
			Name:     "unconventional-whitespace",
			Message:  "Unconventional whitespace (only spaces and newlines allowed).",
			Code:     diag.RulUnconventionalWhitespace,
			Severity: diag.SevWarning,
			Check:    UnconventionalWhitespace,
		},
		{
			Name:     "spaces-in-a-row",
			Message:  "Several spaces in a row between words.",
			Code:     diag.RulSpacesInARow,
			Severity: diag.SevWarning,
			Check:    SpacesInARow,
		},
		{
			Name:     "indentation",
			Message:  "Wrong indentation.",
			Code:     diag.RulIndentation,
			Severity: diag.SevWarning,
			Check:    Indentation,
		},
		{
			Name:     "trailing-whitespace",
			Message:  "Trailing whitespace.",
			Code:     diag.RulTrailingWhitespace,
			Severity: diag.SevWarning,
			Check:    TrailingWhitespace,
		},
	}

	defaultNames = []string{"unconventional-whitespace", "spaces-in-a-row", "indentation"}
)

// All returns every registered rule in registry order.
func All() []Rule {
	return append([]Rule(nil), registry...)
}

// Default returns the rules enabled when nothing is configured.
func Default() []Rule {
	out, err := Select(defaultNames)
	if err != nil {
		panic(err)
	}
	return out
}

// DefaultNames returns the names of the default rules.
func DefaultNames() []string {
	return append([]string(nil), defaultNames...)
}

// IsDefault reports whether the named rule is enabled by default.
func IsDefault(name string) bool {
	for _, n := range defaultNames {
		if n == name {
			return true
		}
	}
	return false
}

// Lookup finds a rule by name.
func Lookup(name string) (Rule, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Select returns the named rules in the given order. Duplicates are dropped.
func Select(names []string) ([]Rule, error) {
	out := make([]Rule, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		r, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownRule, name, Names())
		}
		out = append(out, r)
	}
	return out, nil
}

// Names returns all registered rule names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// Package check wires the comment pipeline together: parse, squash, rules, aggregate.
package check

import (
	"fmt"

	"commentlint/internal/comment"
	"commentlint/internal/diag"
	"commentlint/internal/extract"
	"commentlint/internal/rules"
)

// Options control a single check run.
type Options struct {
	// Limit caps the number of diagnostics, 0 means unbounded.
	Limit int
	// Squash merges adjacent aligned inline comments before rules run.
	Squash bool
	// Rules to run; nil means rules.Default(). An empty non-nil slice runs none.
	Rules []rules.Rule
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Squash: true}
}

func (o Options) rules() []rules.Rule {
	if o.Rules == nil {
		return rules.Default()
	}
	return o.Rules
}

// Result is the outcome of one run.
type Result struct {
	Comments    []*comment.Comment
	Diagnostics []diag.Diagnostic
	// Dropped counts diagnostics discarded because of Limit.
	Dropped int
}

// Run checks raws and keeps the logical comments next to the diagnostics.
// The limit is applied in arrival order (format diagnostics first, then rule
// diagnostics comment by comment), the survivors are then sorted by position.
func Run(raws []comment.Raw, opts Options) Result {
	bag := diag.NewBag(opts.Limit)
	r := diag.BagReporter{Bag: bag}

	comments := comment.ParseAll(raws, r)
	if opts.Squash {
		comments = comment.Squash(comments)
	}
	rules.Check(comments, opts.rules(), r)

	bag.Sort()
	return Result{
		Comments:    comments,
		Diagnostics: bag.Items(),
		Dropped:     bag.Dropped(),
	}
}

// Comments checks raws and returns the ordered diagnostics.
func Comments(raws []comment.Raw, opts Options) []diag.Diagnostic {
	return Run(raws, opts).Diagnostics
}

// Source extracts comments from src and checks them.
func Source(src []byte, opts Options) (Result, error) {
	raws, err := extract.Comments(src)
	if err != nil {
		return Result{}, fmt.Errorf("extract comments: %w", err)
	}
	return Run(raws, opts), nil
}

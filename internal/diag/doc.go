// Package diag defines the diagnostic model shared by the parsing and rule phases.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string form
//     (FMTxxxx for format violations, RULxxxx for content rules, IOxxxx for I/O).
//   - Message – human oriented text; keep it short and actionable.
//   - Position – line/column of the offending character. The column may be
//     missing when only the line is known.
//   - Rule – name of the content rule, empty for format violations.
//
// # Emitting diagnostics
//
// Phases receive a Reporter and never own storage. BagReporter aggregates into
// a Bag, which applies the result limit in arrival order and sorts by position
// afterwards. Because the limit is applied before sorting, a limited run may
// keep a late diagnostic and drop an earlier one; callers that need the first N
// diagnostics in document order should collect without a limit and slice.
//
// # Scope
//
// Package diag performs no formatting and no I/O. Rendering lives in
// internal/diagfmt.
package diag

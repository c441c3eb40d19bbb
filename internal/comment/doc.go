// Package comment turns raw source comments into logical comments.
//
// A raw comment is the delimiter-inclusive text produced by a tokenizer
// together with its location. Classify assigns one of three prose formats by
// lexical shape only:
//
//   - Inline: "// text", a single line;
//   - InlineBlock: "/* text */" without a newline;
//   - JSDoc: "/** ... */" spanning lines, every interior line aligned on "*".
//
// Each format has a parser that strips delimiters and alignment markers,
// reports format violations through a diag.Reporter and always returns a
// best-effort Comment. Squash merges runs of aligned, line-adjacent inline
// comments into one multi-line Comment.
//
// Positions follow source.Position: lines are 1-based, columns are 0-based and
// count runes. Comment.Position points at the first body character, so a rule
// that finds something at (line i, column j) of Lines reports
// Position.Advance(source.Pos(i, j)).
package comment

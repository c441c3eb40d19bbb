package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"commentlint/internal/comment"
	"commentlint/internal/source"
)

// UnconventionalWhitespace flags every whitespace character other than a plain space.
func UnconventionalWhitespace(c *comment.Comment, report func(source.Position)) {
	for lineIdx, line := range c.Lines {
		col := 0
		for _, r := range line {
			if r != ' ' && unicode.IsSpace(r) {
				report(source.Pos(lineIdx, col))
			}
			col++
		}
	}
}

// SpacesInARow flags runs of two or more whitespace characters between words.
// Leading and trailing whitespace is not considered.
func SpacesInARow(c *comment.Comment, report func(source.Position)) {
	for lineIdx, line := range c.Lines {
		indent := countLeadingSpace(line)
		trimmed := strings.TrimFunc(line, unicode.IsSpace)

		col, runStart, runLen := 0, 0, 0
		for _, r := range trimmed {
			if unicode.IsSpace(r) {
				if runLen == 0 {
					runStart = col
				}
				runLen++
			} else {
				if runLen >= 2 {
					report(source.Pos(lineIdx, indent+runStart))
				}
				runLen = 0
			}
			col++
		}
	}
}

// Indentation forbids indenting a line that follows an empty line or starts
// the comment. Indentation continuing a non-empty line is fine.
func Indentation(c *comment.Comment, report func(source.Position)) {
	prevEmpty := true
	for lineIdx, line := range c.Lines {
		if prevEmpty && strings.HasPrefix(line, " ") {
			report(source.LinePos(lineIdx))
		}
		prevEmpty = line == ""
	}
}

// TrailingWhitespace flags lines that end with whitespace, at the first
// trailing whitespace character.
func TrailingWhitespace(c *comment.Comment, report func(source.Position)) {
	for lineIdx, line := range c.Lines {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if len(trimmed) != len(line) {
			report(source.Pos(lineIdx, utf8.RuneCountInString(trimmed)))
		}
	}
}

func countLeadingSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

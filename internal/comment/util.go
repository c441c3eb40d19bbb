package comment

import (
	"strings"
	"unicode/utf8"
)

// width is the number of columns s occupies; columns count runes.
func width(s string) int {
	return utf8.RuneCountInString(s)
}

// leadingSpaces counts plain spaces at the start of s.
func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

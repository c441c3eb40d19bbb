package comment

import "strings"

// Classify recognizes the format of a delimiter-inclusive comment text.
// Anything that does not start with "//" is treated as a block comment.
func Classify(text string) Format {
	if strings.HasPrefix(text, "//") {
		return Inline
	}
	if !strings.Contains(text, "\n") {
		return InlineBlock
	}
	return JSDoc
}

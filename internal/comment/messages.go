package comment

import "fmt"

const (
	inlinePrefix = "Inline format violation: "
	blockPrefix  = "Inline-block format violation: "
	docPrefix    = "JSDoc format violation: "
)

// Messages reported by the format parsers.
const (
	MsgUnrecognized = "Unrecognized format."

	MsgInlineNoSpace = inlinePrefix + `no space after "//".`

	MsgBlockEmpty              = blockPrefix + `can't be empty.`
	MsgBlockNoLeadingSpace     = blockPrefix + `no space after "/*".`
	MsgBlockExtraLeadingSpace  = blockPrefix + `more than a single space after "/*".`
	MsgBlockNoTrailingSpace    = blockPrefix + `no space before "*/".`
	MsgBlockExtraTrailingSpace = blockPrefix + `more than a single space before "*/".`

	MsgDocTooShort               = docPrefix + `should be at least three lines long.`
	MsgDocWrongStart             = docPrefix + `should start with "/**".`
	MsgDocStartNotAtLineEnd      = docPrefix + `first comment line should end after "/**".`
	MsgDocNoAsterisk             = docPrefix + `asterisk "*" not found.`
	MsgDocNonSpaceBeforeAsterisk = docPrefix + `there should be spaces and spaces only before the first "*".`
	MsgDocNoSpaceAfterAsterisk   = docPrefix + `no space after "*".`
)

// MsgDocWrongEnd is reported when the closing "*/" is not aligned.
func MsgDocWrongEnd(indent int) string {
	s := "s"
	if indent == 1 {
		s = ""
	}
	return fmt.Sprintf(docPrefix+`should end with "*/" indented with %d space%s.`, indent, s)
}

// MsgDocAsteriskMisaligned is reported when an interior "*" is not at the indent column.
func MsgDocAsteriskMisaligned(indent int) string {
	return fmt.Sprintf(docPrefix+"wrong spacing, should be %d.", indent)
}

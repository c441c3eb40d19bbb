package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Format violations
	FmtInfo         Code = 1000
	FmtUnrecognized Code = 1001

	FmtInlineNoSpace Code = 1101

	FmtBlockEmpty              Code = 1201
	FmtBlockNoLeadingSpace     Code = 1202
	FmtBlockExtraLeadingSpace  Code = 1203
	FmtBlockNoTrailingSpace    Code = 1204
	FmtBlockExtraTrailingSpace Code = 1205

	FmtDocTooShort               Code = 1301
	FmtDocWrongStart             Code = 1302
	FmtDocStartNotAtLineEnd      Code = 1303
	FmtDocWrongEnd               Code = 1304
	FmtDocNoAsterisk             Code = 1305
	FmtDocNonSpaceBeforeAsterisk Code = 1306
	FmtDocAsteriskMisaligned     Code = 1307
	FmtDocNoSpaceAfterAsterisk   Code = 1308

	// Content rules
	RulInfo                     Code = 2000
	RulUnconventionalWhitespace Code = 2001
	RulSpacesInARow             Code = 2002
	RulIndentation              Code = 2003
	RulTrailingWhitespace       Code = 2004

	// I/O
	IOLoadFileError Code = 4001
	IOExtractError  Code = 4002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                  "Unknown error",
		FmtInfo:                      "Format information",
		FmtUnrecognized:              "Unrecognized comment format",
		FmtInlineNoSpace:             "No space after //",
		FmtBlockEmpty:                "Empty inline-block comment",
		FmtBlockNoLeadingSpace:       "No space after /*",
		FmtBlockExtraLeadingSpace:    "Extra space after /*",
		FmtBlockNoTrailingSpace:      "No space before */",
		FmtBlockExtraTrailingSpace:   "Extra space before */",
		FmtDocTooShort:               "Doc comment too short",
		FmtDocWrongStart:             "Wrong doc comment starting sequence",
		FmtDocStartNotAtLineEnd:      "Doc comment starting sequence not at line end",
		FmtDocWrongEnd:               "Wrong end-of-comment indentation",
		FmtDocNoAsterisk:             "Asterisk not found",
		FmtDocNonSpaceBeforeAsterisk: "Non-space characters before asterisk",
		FmtDocAsteriskMisaligned:     "Misaligned asterisk",
		FmtDocNoSpaceAfterAsterisk:   "No space after asterisk",
		RulInfo:                      "Rule information",
		RulUnconventionalWhitespace:  "Unconventional whitespace",
		RulSpacesInARow:              "Several spaces in a row",
		RulIndentation:               "Wrong indentation",
		RulTrailingWhitespace:        "Trailing whitespace",
		IOLoadFileError:              "I/O load file error",
		IOExtractError:               "Comment extraction error",
		ObsInfo:                      "Observability information",
		ObsTimings:                   "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RUL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

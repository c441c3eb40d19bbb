package comment

import "commentlint/internal/source"

// Format is the prose convention a comment is written in.
type Format uint8

const (
	Unknown Format = iota
	Inline
	InlineBlock
	JSDoc
)

func (f Format) String() string {
	switch f {
	case Inline:
		return "inline"
	case InlineBlock:
		return "inline-block"
	case JSDoc:
		return "jsdoc"
	}
	return "unknown"
}

// Raw is a comment as located by the tokenizer. Text includes the delimiters.
type Raw struct {
	Text string
	Loc  source.Location
}

// Comment is a parsed logical comment.
type Comment struct {
	Format Format
	// Lines is the body without delimiters and alignment markers.
	Lines []string
	// Position is the location of the first body character.
	Position source.Position
}

// Clone returns a deep copy of c.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	out := *c
	out.Lines = append(make([]string, 0, len(c.Lines)), c.Lines...)
	return &out
}

// LastLine returns the source line of the last body line.
func (c *Comment) LastLine() int {
	if len(c.Lines) == 0 {
		return c.Position.Line
	}
	return c.Position.Line + len(c.Lines) - 1
}

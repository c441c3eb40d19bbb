package extract

import (
	"errors"
	"fmt"

	"commentlint/internal/comment"
)

// ErrUnterminatedComment is returned when a block comment has no closing "*/".
var ErrUnterminatedComment = errors.New("unterminated block comment")

// Comments returns every comment in src in source order. Only the C family
// syntax is understood: "//" line comments, non-nesting "/* */" blocks, and
// '...', "..." and `...` literals whose content is skipped.
//
// Regular expression literals are not recognized, a "//" inside one is
// reported as a comment.
func Comments(src []byte) ([]comment.Raw, error) {
	cur := NewCursor(src)
	var out []comment.Raw
	for !cur.EOF() {
		switch b := cur.Peek(); b {
		case '\'', '"', '`':
			skipLiteral(&cur, b)
		case '/':
			raw, ok, err := scanComment(&cur)
			if err != nil {
				return out, err
			}
			if ok {
				out = append(out, raw)
			}
		default:
			cur.Bump()
		}
	}
	return out, nil
}

// String is Comments over a string.
func String(src string) ([]comment.Raw, error) {
	return Comments([]byte(src))
}

// scanComment reads a comment starting at '/'. A lone '/' is consumed and ok is false.
func scanComment(cur *Cursor) (comment.Raw, bool, error) {
	start := cur.Mark()
	cur.Bump()
	switch cur.Peek() {
	case '/':
		for !cur.EOF() && cur.Peek() != '\n' {
			cur.Bump()
		}
	case '*':
		cur.Bump()
		closed := false
		for !cur.EOF() {
			if b0, b1, ok := cur.Peek2(); ok && b0 == '*' && b1 == '/' {
				cur.Bump()
				cur.Bump()
				closed = true
				break
			}
			cur.Bump()
		}
		if !closed {
			return comment.Raw{}, false, fmt.Errorf("%w at %s", ErrUnterminatedComment, start.pos)
		}
	default:
		return comment.Raw{}, false, nil
	}
	return comment.Raw{Text: cur.TextFrom(start), Loc: cur.LocationFrom(start)}, true, nil
}

// skipLiteral skips a quoted literal. Quotes other than '`' stop at the end of
// the line so an unbalanced apostrophe in code cannot swallow the file.
func skipLiteral(cur *Cursor, quote byte) {
	cur.Bump()
	for !cur.EOF() {
		b := cur.Peek()
		switch {
		case b == '\\':
			cur.Bump()
			cur.Bump()
			continue
		case b == quote:
			cur.Bump()
			return
		case b == '\n' && quote != '`':
			return
		}
		cur.Bump()
	}
}

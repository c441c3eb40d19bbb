package extract

import (
	"fmt"
	"unicode/utf8"

	"commentlint/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в тексте и помнит текущую строку.
type Cursor struct {
	src  []byte
	Off  uint32
	line int
	// начало текущей строки, для подсчёта колонки в рунах
	lineStart uint32
	limit     uint32
}

// NewCursor creates a cursor at the first byte of src (line 1, column 0).
func NewCursor(src []byte) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{src: src, line: 1, limit: limit}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.Off]
	c.Off++
	if b == '\n' {
		c.line++
		c.lineStart = c.Off
	}
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() == b && !c.EOF() {
		c.Bump()
		return true
	}
	return false
}

// Position returns the current line (1-based) and rune column (0-based).
func (c *Cursor) Position() source.Position {
	return source.Pos(c.line, utf8.RuneCount(c.src[c.lineStart:c.Off]))
}

// Mark это метка, что бы быстро получать текст читаемого фрагмента
type Mark struct {
	off uint32
	pos source.Position
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, pos: c.Position()}
}

// TextFrom returns the bytes read since m.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.src[m.off:c.Off])
}

// LocationFrom returns the span read since m; End is exclusive.
func (c *Cursor) LocationFrom(m Mark) source.Location {
	return source.Location{Start: m.pos, End: c.Position()}
}

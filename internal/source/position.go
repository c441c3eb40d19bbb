package source

import "strconv"

// Position is a line/column pair where either part may be unknown.
// Line is 1-based, Column is 0-based and counts characters (runes).
type Position struct {
	Line      int
	Column    int
	HasLine   bool
	HasColumn bool
}

// Location is the delimiter-inclusive span of a raw comment.
type Location struct {
	Start Position
	End   Position
}

// Pos returns a position with both fields set.
func Pos(line, column int) Position {
	return Position{Line: line, Column: column, HasLine: true, HasColumn: true}
}

// LinePos returns a position that knows only its line.
func LinePos(line int) Position {
	return Position{Line: line, HasLine: true}
}

// ColumnPos returns a position that knows only its column.
func ColumnPos(column int) Position {
	return Position{Column: column, HasColumn: true}
}

// Advance returns p moved by inc. A field missing in p stays missing in the
// result, a field missing in inc counts as zero, so Advance is not commutative.
// Advance(Position{}) is a plain copy.
func (p Position) Advance(inc Position) Position {
	var out Position
	if p.HasLine {
		out.Line, out.HasLine = p.Line, true
		if inc.HasLine {
			out.Line += inc.Line
		}
	}
	if p.HasColumn {
		out.Column, out.HasColumn = p.Column, true
		if inc.HasColumn {
			out.Column += inc.Column
		}
	}
	return out
}

// AddColumns is a shortcut for p.Advance(ColumnPos(n)).
func (p Position) AddColumns(n int) Position {
	return p.Advance(ColumnPos(n))
}

// AddLines is a shortcut for p.Advance(LinePos(n)).
func (p Position) AddLines(n int) Position {
	return p.Advance(LinePos(n))
}

// ColumnOrZero is the column used for ordering: missing columns sort first.
func (p Position) ColumnOrZero() int {
	if !p.HasColumn {
		return 0
	}
	return p.Column
}

// Less orders positions by line, then by column (missing column = 0).
func (p Position) Less(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.ColumnOrZero() < other.ColumnOrZero()
}

func (p Position) String() string {
	switch {
	case p.HasLine && p.HasColumn:
		return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	case p.HasLine:
		return strconv.Itoa(p.Line)
	case p.HasColumn:
		return "?:" + strconv.Itoa(p.Column)
	}
	return "?"
}

func (l Location) String() string {
	return l.Start.String() + "-" + l.End.String()
}

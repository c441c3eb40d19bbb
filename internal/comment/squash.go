package comment

// Squash merges consecutive inline comments that start on adjacent lines at
// the same column into one multi-line comment. Other formats are never merged
// and break a run. The input comments are not modified: a run starts from a
// copy of its first comment.
func Squash(comments []*Comment) []*Comment {
	st := squashState{out: make([]*Comment, 0, len(comments))}
	for _, c := range comments {
		st.step(c)
	}
	st.flush()
	return st.out
}

type squashState struct {
	out []*Comment
	// pending is the inline run being built, nil when there is none.
	pending  *Comment
	lastLine int
}

func (st *squashState) step(c *Comment) {
	if st.extends(c) {
		st.pending.Lines = append(st.pending.Lines, c.Lines...)
		st.lastLine += len(c.Lines)
		return
	}

	st.flush()
	if c.Format == Inline {
		st.pending = c.Clone()
		st.lastLine = c.LastLine()
		return
	}
	st.out = append(st.out, c)
}

func (st *squashState) extends(c *Comment) bool {
	if st.pending == nil || c.Format != Inline {
		return false
	}
	return c.Position.HasLine && c.Position.Line == st.lastLine+1 &&
		c.Position.HasColumn == st.pending.Position.HasColumn &&
		c.Position.Column == st.pending.Position.Column
}

func (st *squashState) flush() {
	if st.pending != nil {
		st.out = append(st.out, st.pending)
		st.pending = nil
	}
}

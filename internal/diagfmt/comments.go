package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"commentlint/internal/comment"
)

// RawOutput is an extracted comment in JSON form.
type RawOutput struct {
	Format string `json:"format"`
	Text   string `json:"text"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// CommentOutput is a logical comment in JSON form.
type CommentOutput struct {
	Format   string   `json:"format"`
	Position string   `json:"position"`
	Lines    []string `json:"lines"`
}

// FormatRawPretty выводит извлечённые комментарии в человекочитаемом формате
func FormatRawPretty(w io.Writer, raws []comment.Raw) error {
	for i, raw := range raws {
		if _, err := fmt.Fprintf(w, "%3d: %-12s %q at %s\n", i+1, comment.Classify(raw.Text), raw.Text, raw.Loc); err != nil {
			return err
		}
	}
	return nil
}

// FormatCommentsPretty выводит логические комментарии: формат, позиция, строки тела.
func FormatCommentsPretty(w io.Writer, comments []*comment.Comment) error {
	for i, c := range comments {
		if _, err := fmt.Fprintf(w, "%3d: %-12s at %s\n", i+1, c.Format, c.Position); err != nil {
			return err
		}
		for _, line := range c.Lines {
			if _, err := fmt.Fprintf(w, "     | %s\n", strings.TrimRight(line, "\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatRawJSON выводит извлечённые комментарии в JSON формате
func FormatRawJSON(w io.Writer, raws []comment.Raw) error {
	out := make([]RawOutput, 0, len(raws))
	for _, raw := range raws {
		out = append(out, RawOutput{
			Format: comment.Classify(raw.Text).String(),
			Text:   raw.Text,
			Start:  raw.Loc.Start.String(),
			End:    raw.Loc.End.String(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// FormatCommentsJSON выводит логические комментарии в JSON формате
func FormatCommentsJSON(w io.Writer, comments []*comment.Comment) error {
	out := make([]CommentOutput, 0, len(comments))
	for _, c := range comments {
		lines := c.Lines
		if lines == nil {
			lines = []string{}
		}
		out = append(out, CommentOutput{
			Format:   c.Format.String(),
			Position: c.Position.String(),
			Lines:    lines,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

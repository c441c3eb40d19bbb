package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"commentlint/internal/diag"
	"commentlint/internal/source"
)

type palette struct {
	path, err, warn, info, code, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:   color.New(color.Bold),
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Faint),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.err, p.warn, p.info, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с кареткой под колонкой (если колонка известна).
// Диагностики внутри отчёта ожидаются отсортированными.
func Pretty(w io.Writer, reports []FileReport, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, r := range reports {
		path := r.DisplayPath(opts.PathMode, opts.BaseDir)
		for _, d := range r.Diagnostics {
			header := p.path.Sprint(locationPrefix(path, d.Position))
			msg := d.Message
			if opts.ShowRule && d.Rule != "" {
				msg += " [" + d.Rule + "]"
			}
			if _, err := fmt.Fprintf(w, "%s %s %s: %s\n",
				header,
				p.severity(d.Severity).Sprint(d.Severity.String()),
				p.code.Sprint(d.Code.ID()),
				msg,
			); err != nil {
				return err
			}
			if opts.Context && r.File != nil && d.Position.HasLine {
				if err := writeContext(w, p, r.File, d.Position); err != nil {
					return err
				}
			}
		}
		if r.Dropped > 0 {
			if _, err := fmt.Fprintf(w, "%s %d more diagnostic(s) not shown\n", p.path.Sprint(path+":"), r.Dropped); err != nil {
				return err
			}
		}
	}
	return nil
}

func locationPrefix(path string, pos source.Position) string {
	if !pos.HasLine {
		return path + ":"
	}
	return path + ":" + pos.String() + ":"
}

func writeContext(w io.Writer, p palette, f *source.File, pos source.Position) error {
	line := f.GetLine(pos.Line)
	num := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(num))

	if _, err := fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line); err != nil {
		return err
	}
	if !pos.HasColumn {
		return nil
	}
	_, err := fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"), caretIndent(line, pos.Column), p.caret.Sprint("^"))
	return err
}

// caretIndent builds the whitespace that puts a caret under rune column col.
// Tabs are kept so the caret lines up whatever the terminal tab width is,
// wide runes take as many cells as they occupy on screen.
func caretIndent(line string, col int) string {
	var b strings.Builder
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	// колонка за концом строки (например, "*/" в конце)
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}

// Short prints one line per diagnostic: <path>:<line>:<col>: <severity>: <message> [<CODE>].
func Short(w io.Writer, reports []FileReport, pathMode PathMode, baseDir string) error {
	for _, r := range reports {
		path := r.DisplayPath(pathMode, baseDir)
		for _, d := range r.Diagnostics {
			if _, err := fmt.Fprintf(w, "%s %s: %s [%s]\n",
				locationPrefix(path, d.Position), strings.ToLower(d.Severity.String()), d.Message, d.Code.ID()); err != nil {
				return err
			}
		}
	}
	return nil
}

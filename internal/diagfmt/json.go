package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"

	"commentlint/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON.
// Line и Column опускаются, если неизвестны; Column 0-based в рунах.
type LocationJSON struct {
	File   string  `json:"file"`
	Line   *uint32 `json:"line,omitempty"`
	Column *uint32 `json:"column,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Rule     string       `json:"rule,omitempty"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Dropped     int              `json:"dropped,omitempty"`
}

func makeLocation(path string, pos source.Position) (LocationJSON, error) {
	loc := LocationJSON{File: path}
	if pos.HasLine {
		line, err := safecast.Conv[uint32](pos.Line)
		if err != nil {
			return LocationJSON{}, fmt.Errorf("line out of range: %w", err)
		}
		loc.Line = &line
	}
	if pos.HasColumn {
		col, err := safecast.Conv[uint32](pos.Column)
		if err != nil {
			return LocationJSON{}, fmt.Errorf("column out of range: %w", err)
		}
		loc.Column = &col
	}
	return loc, nil
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(reports []FileReport, opts JSONOpts) (DiagnosticsOutput, error) {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, Count(reports))}

	for _, r := range reports {
		path := r.DisplayPath(opts.PathMode, opts.BaseDir)
		out.Dropped += r.Dropped
		for _, d := range r.Diagnostics {
			if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
				out.Dropped++
				continue
			}
			loc, err := makeLocation(path, d.Position)
			if err != nil {
				return DiagnosticsOutput{}, fmt.Errorf("%s: %w", path, err)
			}
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Rule:     d.Rule,
				Message:  d.Message,
				Location: loc,
			})
		}
	}
	out.Count = len(out.Diagnostics)
	return out, nil
}

// JSON сериализует диагностики в w.
func JSON(w io.Writer, reports []FileReport, opts JSONOpts) error {
	out, err := BuildDiagnosticsOutput(reports, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

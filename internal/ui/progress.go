package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"commentlint/internal/driver"
)

const statusWidth = 10

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// fileRow is the view state of one file.
type fileRow struct {
	path        string
	stage       driver.Stage
	status      driver.Status
	diagnostics int
}

func (r fileRow) finished() bool {
	switch r.status {
	case driver.StatusDone, driver.StatusCached, driver.StatusError:
		return true
	}
	return false
}

// label is the short status text shown in front of the path.
func (r fileRow) label() string {
	switch r.status {
	case driver.StatusWorking:
		if r.stage == driver.StageLoad {
			return "loading"
		}
		return "checking"
	case driver.StatusDone, driver.StatusCached:
		if r.diagnostics > 0 {
			return fmt.Sprintf("%d issues", r.diagnostics)
		}
		return string(r.status)
	case "":
		return string(driver.StatusQueued)
	}
	return string(r.status)
}

func (r fileRow) style() lipgloss.Style {
	switch {
	case r.status == driver.StatusError:
		return errStyle
	case r.finished() && r.diagnostics > 0:
		return warnStyle
	case r.finished():
		return okStyle
	case r.status == driver.StatusWorking:
		return workingStyle
	}
	return idleStyle
}

// weight is the share of a file's work already done.
func (r fileRow) weight() float64 {
	switch {
	case r.finished():
		return 1
	case r.status == driver.StatusWorking && r.stage == driver.StageCheck:
		return 0.5
	case r.status == driver.StatusWorking:
		return 0.2
	}
	return 0
}

type progressModel struct {
	title    string
	events   <-chan driver.Event
	spinner  spinner.Model
	bar      progress.Model
	rows     []fileRow
	byPath   map[string]int
	width    int
	finished int
	failures int
	issues   int
	done     bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-file check progress.
// The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = workingStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	rows := make([]fileRow, len(files))
	byPath := make(map[string]int, len(files))
	for i, file := range files {
		rows[i] = fileRow{path: file, status: driver.StatusQueued}
		byPath[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    rows,
		byPath:  byPath,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.waitEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// apply updates the row of ev.File; events for unknown files are ignored.
func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	idx, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[idx]
	wasFinished := row.finished()
	if ev.Stage != "" {
		row.stage = ev.Stage
	}
	row.status = ev.Status
	row.diagnostics = ev.Diagnostics
	if !wasFinished && row.finished() {
		m.finished++
		m.issues += ev.Diagnostics
		if ev.Status == driver.StatusError {
			m.failures++
		}
	}

	total := 0.0
	for _, r := range m.rows {
		total += r.weight()
	}
	return m.bar.SetPercent(total / float64(len(m.rows)))
}

func (m *progressModel) header() string {
	counter := fmt.Sprintf("%d/%d", m.finished, len(m.rows))
	if !m.done {
		return fmt.Sprintf("%s %s %s", m.spinner.View(), m.title, counter)
	}
	h := fmt.Sprintf("done: %s", m.title)
	if m.failures > 0 {
		h = fmt.Sprintf("%s, %d failed", h, m.failures)
	}
	return fmt.Sprintf("%s %s, %d issues", h, counter, m.issues)
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-4, 20)
	for _, row := range m.rows {
		status := row.style().Render(fmt.Sprintf("%*s", statusWidth, row.label()))
		fmt.Fprintf(&b, "  %s %s\n", status, truncate(row.path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// truncate shortens value to width display cells, keeping the tail of the path.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.TruncateLeft(value, runewidth.StringWidth(value)-width, "")
	}
	return runewidth.TruncateLeft(value, runewidth.StringWidth(value)-width+3, "...")
}

// Package observ collects run timings: named phases of a run and the time
// spent on individual files.
package observ

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// slowestShown is how many files Summary lists.
const slowestShown = 3

// Timer records phases and per-file durations.
// Safe for concurrent use; a nil Timer ignores every call.
type Timer struct {
	mu     sync.Mutex
	phases []phase
	files  []FileReport
	now    func() time.Time
}

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
	open  bool
}

// Phase is a running phase returned by Timer.Start.
type Phase struct {
	t   *Timer
	idx int
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer {
	return &Timer{now: time.Now}
}

// Start opens a phase. Stop it with Phase.Stop.
func (t *Timer) Start(name string) Phase {
	if t == nil {
		return Phase{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, phase{name: name, start: t.now(), open: true})
	return Phase{t: t, idx: len(t.phases) - 1}
}

// Stop closes the phase with an optional note. Only the first call counts.
func (p Phase) Stop(note string) {
	if p.t == nil {
		return
	}
	p.t.mu.Lock()
	defer p.t.mu.Unlock()
	ph := &p.t.phases[p.idx]
	if !ph.open {
		return
	}
	ph.open = false
	ph.dur = p.t.now().Sub(ph.start)
	ph.note = note
}

// Measure runs fn as a single phase; fn returns the note.
func (t *Timer) Measure(name string, fn func() string) {
	p := t.Start(name)
	p.Stop(fn())
}

// RecordFile stores how long one file took.
func (t *Timer) RecordFile(path string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.files = append(t.files, FileReport{Path: path, DurationMS: millis(d)})
}

// PhaseReport: сжатая информация о фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// FileReport is the time spent on one file.
type FileReport struct {
	Path       string  `json:"path"`
	DurationMS float64 `json:"duration_ms"`
}

// Report is a snapshot of a Timer. Slowest is sorted by duration, longest first.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
	Slowest []FileReport  `json:"slowest,omitempty"`
}

// Report snapshots the timer. Phases still open are reported with zero duration.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var r Report
	var total time.Duration
	for _, ph := range t.phases {
		total += ph.dur
		r.Phases = append(r.Phases, PhaseReport{Name: ph.name, DurationMS: millis(ph.dur), Note: ph.note})
	}
	r.TotalMS = millis(total)

	files := slices.Clone(t.files)
	slices.SortStableFunc(files, func(a, b FileReport) int {
		return cmp.Compare(b.DurationMS, a.DurationMS)
	})
	if len(files) > slowestShown {
		files = files[:slowestShown]
	}
	r.Slowest = files
	return r
}

// Summary renders the report for a terminal.
func (t *Timer) Summary() string {
	r := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", r.TotalMS)
	if len(r.Slowest) > 0 {
		b.WriteString("slowest files:\n")
		for _, f := range r.Slowest {
			fmt.Fprintf(&b, "  %7.2f ms  %s\n", f.DurationMS, f.Path)
		}
	}
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"commentlint/internal/driver"
)

// RunProgress renders progress for files until work returns. work receives a
// sink that feeds the view; its events channel is closed when work is done.
func RunProgress[T any](out io.Writer, title string, files []string, work func(sink driver.ProgressSink) (T, error)) (T, error) {
	events := make(chan driver.Event, 256)
	type outcome struct {
		result T
		err    error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		res, err := work(driver.ChannelSink{Ch: events})
		outcomeCh <- outcome{result: res, err: err}
		close(events)
	}()

	model := NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	// view may exit early; keep the worker from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	res := <-outcomeCh
	if uiErr != nil {
		return res.result, uiErr
	}
	return res.result, res.err
}

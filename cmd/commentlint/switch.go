package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// autoSwitch is an auto|on|off flag value; auto defers to terminal detection.
type autoSwitch string

const (
	switchAuto autoSwitch = "auto"
	switchOn   autoSwitch = "on"
	switchOff  autoSwitch = "off"
)

func parseSwitch(flag, value string) (autoSwitch, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on", "always", "true":
		return switchOn, nil
	case "off", "never", "false":
		return switchOff, nil
	}
	return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// resolve returns the switch state, asking auto() only in auto mode.
func (s autoSwitch) resolve(auto func() bool) bool {
	switch s {
	case switchOn:
		return true
	case switchOff:
		return false
	}
	return auto()
}

// shouldUseTUI: в auto режиме прогресс показываем только в терминале
// и только для человекочитаемых форматов.
func shouldUseTUI(mode autoSwitch, format string) bool {
	return mode.resolve(func() bool {
		return isTerminal(os.Stderr) && (format == "pretty" || format == "short")
	})
}

// useColor resolves --color for output written to f. An invalid value was
// already rejected in PersistentPreRunE and counts as auto here.
func useColor(cmd *cobra.Command, f *os.File) bool {
	value, _ := cmd.Root().PersistentFlags().GetString("color")
	mode, err := parseSwitch("color", value)
	if err != nil {
		mode = switchAuto
	}
	return mode.resolve(func() bool { return isTerminal(f) })
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"commentlint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show commentlint version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("full", false, "include git commit and build date")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, args []string) error {
	full, _ := cmd.Flags().GetBool("full")
	format, _ := cmd.Flags().GetString("format")
	info := version.Current()
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case "json":
		return renderVersionJSON(out, info, full)
	case "pretty":
		return renderVersionPretty(out, info, full, useColor(cmd, os.Stdout))
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func renderVersionPretty(out io.Writer, info version.Info, full, colored bool) error {
	line := info.Tool + " " + version.Colored(info.Version, colored)
	if full {
		line += fmt.Sprintf("\ncommit: %s\nbuilt:  %s", orUnknown(info.GitCommit), orUnknown(info.BuildDate))
	}
	_, err := fmt.Fprintln(out, line)
	return err
}

// renderVersionJSON omits commit and build date unless full is set; with full
// they are always present.
func renderVersionJSON(out io.Writer, info version.Info, full bool) error {
	if full {
		info.GitCommit = orUnknown(info.GitCommit)
		info.BuildDate = orUnknown(info.BuildDate)
	} else {
		info.GitCommit, info.BuildDate = "", ""
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

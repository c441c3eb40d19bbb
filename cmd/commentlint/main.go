package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"commentlint/internal/version"
)

var log = commonlog.GetLogger("commentlint")

// errDiagnostics signals a run that completed but found violations.
var errDiagnostics = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:           "commentlint",
	Short:         "Comment style checker",
	Long:          `commentlint checks the format and content of //, /* */ and /** */ comments`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Root().PersistentFlags().GetCount("verbose")
		if err != nil {
			return fmt.Errorf("failed to get verbose flag: %w", err)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		configureLogging(verbose, quiet)
		colorValue, _ := cmd.Root().PersistentFlags().GetString("color")
		if _, err := parseSwitch("color", colorValue); err != nil {
			return err
		}
		return startProfiling(cmd)
	},
}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(commentsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = unlimited)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v, -vv)")
	rootCmd.PersistentFlags().String("config", "", "path to .commentlint.toml (default: search upwards)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")
}

// main executes the root command.
// Exit status: 0 clean, 1 violations found, 2 usage or I/O failure.
func main() {
	err := rootCmd.Execute()
	stopProfiling()
	if err != nil {
		if errors.Is(err, errDiagnostics) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

// configureLogging maps -v counts to commonlog verbosity; logs go to stderr.
// --quiet keeps errors only.
func configureLogging(verbose int, quiet bool) {
	verbosity := verbose
	if quiet {
		verbosity = -2
	}
	commonlog.Configure(verbosity, nil)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

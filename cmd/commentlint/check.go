package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"commentlint/internal/config"
	"commentlint/internal/diag"
	"commentlint/internal/diagfmt"
	"commentlint/internal/driver"
	"commentlint/internal/observ"
	"commentlint/internal/source"
	"commentlint/internal/ui"
	"commentlint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path...",
	Short: "Check comment style in files and directories",
	Long: `Check extracts comments from the given files (or every matching file under
the given directories, "-" reads stdin), validates their format and runs the
content rules. Exit status is 1 when diagnostics at or above --fail-on are found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().String("path-mode", "auto", "path display (auto|absolute|relative|basename)")
	checkCmd.Flags().StringSlice("rules", nil, "rules to run (overrides [check].rules)")
	checkCmd.Flags().Bool("no-squash", false, "do not merge adjacent // comments")
	checkCmd.Flags().StringSlice("ext", nil, "file extensions checked in directories (overrides [files].extensions)")
	checkCmd.Flags().Int("jobs", 0, "max parallel files (0 = GOMAXPROCS)")
	checkCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	checkCmd.Flags().Bool("cache", false, "reuse results from the on-disk cache")
	checkCmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/commentlint)")
	checkCmd.Flags().Bool("no-context", false, "do not print source lines in pretty output")
	checkCmd.Flags().Bool("show-rule", true, "append the rule name to rule diagnostics")
	checkCmd.Flags().String("fail-on", "warning", "minimum severity that fails the run (info|warning|error)")
}

type checkFlags struct {
	format   string
	pathMode diagfmt.PathMode
	jobs     int
	ui       autoSwitch
	failOn   diag.Severity
	timings  bool
}

func readCheckFlags(cmd *cobra.Command, cfg config.Config) (checkFlags, error) {
	var f checkFlags
	var err error

	f.format = strings.ToLower(cfg.Output.Format)
	switch f.format {
	case "pretty", "short", "json", "sarif":
	default:
		return f, fmt.Errorf("unknown format: %s", cfg.Output.Format)
	}
	if f.pathMode, err = readPathMode(cmd); err != nil {
		return f, err
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, _ := cmd.Flags().GetString("ui")
	if f.ui, err = parseSwitch("ui", uiValue); err != nil {
		return f, err
	}
	failOn, _ := cmd.Flags().GetString("fail-on")
	sev, ok := diag.ParseSeverity(failOn)
	if !ok {
		return f, fmt.Errorf("invalid --fail-on value %q (expected info|warning|error)", failOn)
	}
	f.failOn = sev
	f.timings, _ = cmd.Root().PersistentFlags().GetBool("timings")
	return f, nil
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	enabled, _ := cmd.Flags().GetBool("cache")
	if !enabled {
		return nil, nil
	}
	dir, _ := cmd.Flags().GetString("cache-dir")
	if dir != "" {
		return driver.NewDiskCache(dir)
	}
	return driver.OpenDiskCache("commentlint")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd, configStartDir(args[0]))
	if err != nil {
		return err
	}
	flags, err := readCheckFlags(cmd, cfg)
	if err != nil {
		return err
	}
	checkOpts, err := cfg.Options()
	if err != nil {
		return err
	}
	cache, err := openCache(cmd)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	var timer *observ.Timer
	if flags.timings {
		timer = observ.NewTimer()
	}
	opts := driver.Options{Check: checkOpts, Jobs: flags.jobs, Cache: cache, Timer: timer}

	var reports []diagfmt.FileReport
	fs := source.NewFileSet()
	for _, target := range args {
		got, err := checkTarget(ctx, cmd, fs, target, cfg, flags, opts)
		if err != nil {
			return err
		}
		reports = append(reports, got...)
	}

	if err := writeReports(cmd, cmd.OutOrStdout(), reports, flags); err != nil {
		return err
	}
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if failed(reports, flags.failOn) {
		return errDiagnostics
	}
	return nil
}

func checkTarget(ctx context.Context, cmd *cobra.Command, fs *source.FileSet, target string, cfg config.Config, flags checkFlags, opts driver.Options) ([]diagfmt.FileReport, error) {
	if target == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		normalized, _, err := source.Normalize(content)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		file := fs.Get(fs.AddVirtual("<stdin>", normalized))
		res := driver.CheckSource(file, opts)
		if res.Err != nil {
			return nil, fmt.Errorf("stdin: %w", res.Err)
		}
		return []diagfmt.FileReport{reportFor(res, file)}, nil
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", target, err)
	}
	if !info.IsDir() {
		// одиночный файл: ошибка чтения или разбора завершает запуск
		res, err := driver.CheckFile(ctx, fs, target, opts)
		if err != nil {
			return nil, err
		}
		return []diagfmt.FileReport{reportFor(res, fs.Get(res.FileID))}, nil
	}

	dirFS, results, err := checkDir(ctx, target, cfg, flags, opts)
	if err != nil {
		return nil, err
	}
	reports := make([]diagfmt.FileReport, 0, len(results))
	for _, res := range results {
		var file *source.File
		if !isLoadFailure(res) {
			file = dirFS.Get(res.FileID)
		}
		reports = append(reports, reportFor(res, file))
	}
	return reports, nil
}

type dirOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
}

func checkDir(ctx context.Context, dir string, cfg config.Config, flags checkFlags, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	if !shouldUseTUI(flags.ui, flags.format) {
		return driver.CheckDir(ctx, dir, cfg, opts)
	}
	files, err := driver.ListFiles(dir, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	out, err := ui.RunProgress(os.Stderr, "checking "+dir, files, func(sink driver.ProgressSink) (dirOutcome, error) {
		opts.Progress = sink
		fs, results, err := driver.CheckDir(ctx, dir, cfg, opts)
		return dirOutcome{fs: fs, results: results}, err
	})
	return out.fs, out.results, err
}

func isLoadFailure(res driver.FileResult) bool {
	if res.Err == nil {
		return false
	}
	for _, d := range res.Diagnostics {
		if d.Code == diag.IOLoadFileError {
			return true
		}
	}
	return false
}

func reportFor(res driver.FileResult, file *source.File) diagfmt.FileReport {
	return diagfmt.FileReport{
		Path:        res.Path,
		File:        file,
		Diagnostics: res.Diagnostics,
		Dropped:     res.Dropped,
	}
}

func writeReports(cmd *cobra.Command, out io.Writer, reports []diagfmt.FileReport, flags checkFlags) error {
	switch flags.format {
	case "pretty":
		noContext, _ := cmd.Flags().GetBool("no-context")
		showRule, _ := cmd.Flags().GetBool("show-rule")
		return diagfmt.Pretty(out, reports, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stdout),
			Context:  !noContext,
			PathMode: flags.pathMode,
			ShowRule: showRule,
		})
	case "short":
		return diagfmt.Short(out, reports, flags.pathMode, "")
	case "json":
		return diagfmt.JSON(out, reports, diagfmt.JSONOpts{PathMode: flags.pathMode, Indent: true})
	case "sarif":
		return diagfmt.Sarif(out, reports, diagfmt.SarifRunMeta{
			ToolName:       "commentlint",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
			PathMode:       flags.pathMode,
		})
	}
	return fmt.Errorf("unknown format: %s", flags.format)
}

func failed(reports []diagfmt.FileReport, threshold diag.Severity) bool {
	for _, r := range reports {
		for _, d := range r.Diagnostics {
			if d.Severity >= threshold {
				return true
			}
		}
	}
	return false
}

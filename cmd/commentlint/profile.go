package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"commentlint/internal/prof"
)

// profiling is the active profile session of this process, if any.
var profiling *prof.Session

// startProfiling reads the persistent profiling flags and starts the requested
// profiles. stopProfiling must run before exit.
func startProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return err
	}
	log.Debugf("profiling: cpu=%q mem=%q trace=%q", opts.CPU, opts.Mem, opts.Trace)
	profiling = s
	return nil
}

func stopProfiling() {
	if err := profiling.Stop(); err != nil {
		log.Errorf("failed to stop profiling: %s", err)
	}
	profiling = nil
}

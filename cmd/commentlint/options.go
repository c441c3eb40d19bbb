package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"commentlint/internal/config"
	"commentlint/internal/diagfmt"
)

// loadConfig reads --config or discovers .commentlint.toml starting at startDir,
// then applies command-line overrides.
func loadConfig(cmd *cobra.Command, startDir string) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(startDir)
	}
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Path != "" {
		log.Infof("using config %s", cfg.Path)
	}

	flags := cmd.Flags()
	if flags.Changed("max-diagnostics") {
		limit, _ := flags.GetInt("max-diagnostics")
		cfg.Check.Limit = limit
	}
	if flags.Lookup("rules") != nil && flags.Changed("rules") {
		names, _ := flags.GetStringSlice("rules")
		cfg.Check.Rules = trimAll(names)
	}
	if flags.Lookup("no-squash") != nil && flags.Changed("no-squash") {
		noSquash, _ := flags.GetBool("no-squash")
		cfg.Check.Squash = !noSquash
	}
	if flags.Lookup("ext") != nil && flags.Changed("ext") {
		exts, _ := flags.GetStringSlice("ext")
		cfg.Files.Extensions = trimAll(exts)
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		format, _ := flags.GetString("format")
		cfg.Output.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// configStartDir picks the directory config discovery starts from.
func configStartDir(target string) string {
	if target == "" || target == "-" {
		return "."
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return target
	}
	return filepath.Dir(target)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func readPathMode(cmd *cobra.Command) (diagfmt.PathMode, error) {
	value, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return diagfmt.PathModeAuto, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(value)
	if !ok {
		return diagfmt.PathModeAuto, fmt.Errorf("invalid --path-mode %q (expected auto|absolute|relative|basename)", value)
	}
	return mode, nil
}

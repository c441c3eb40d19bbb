// Package config loads .commentlint.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"commentlint/internal/check"
	"commentlint/internal/rules"
)

// FileName is the name of the project configuration file.
const FileName = ".commentlint.toml"

var (
	// DefaultExtensions are the file extensions checked in directory mode.
	DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".go", ".c", ".h", ".cc", ".cpp", ".java"}
	// DefaultExclude are directory names skipped in directory mode.
	DefaultExclude = []string{".git", "node_modules", "vendor"}
)

// Config is the decoded configuration. Path is empty when defaults are used.
type Config struct {
	Path   string       `toml:"-"`
	Check  CheckConfig  `toml:"check"`
	Files  FilesConfig  `toml:"files"`
	Output OutputConfig `toml:"output"`
}

type CheckConfig struct {
	Limit  int      `toml:"limit"`
	Squash bool     `toml:"squash"`
	Rules  []string `toml:"rules"`
}

type FilesConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{
		Check: CheckConfig{
			Squash: true,
			Rules:  rules.DefaultNames(),
		},
		Files: FilesConfig{
			Extensions: append([]string(nil), DefaultExtensions...),
			Exclude:    append([]string(nil), DefaultExclude...),
		},
		Output: OutputConfig{Format: "pretty"},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest config file above startDir, or the defaults.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes the file at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Decode parses TOML text. Keys that are not set keep their default values.
func Decode(text string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that TOML types alone cannot express.
func (c Config) Validate() error {
	if c.Check.Limit < 0 {
		return fmt.Errorf("[check].limit must not be negative, got %d", c.Check.Limit)
	}
	if _, err := rules.Select(c.Check.Rules); err != nil {
		return fmt.Errorf("[check].rules: %w", err)
	}
	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("[files].extensions: %q must start with a dot", ext)
		}
	}
	return nil
}

// Options converts the [check] section into pipeline options.
func (c Config) Options() (check.Options, error) {
	selected, err := rules.Select(c.Check.Rules)
	if err != nil {
		return check.Options{}, err
	}
	return check.Options{
		Limit:  c.Check.Limit,
		Squash: c.Check.Squash,
		Rules:  selected,
	}, nil
}

// Matches reports whether path has one of the configured extensions.
func (c Config) Matches(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Files.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Excluded reports whether a directory or file base name is excluded.
func (c Config) Excluded(name string) bool {
	for _, ex := range c.Files.Exclude {
		if ok, _ := filepath.Match(ex, name); ok {
			return true
		}
	}
	return false
}

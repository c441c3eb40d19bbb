package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"commentlint/internal/rules"
)

func TestDecodeKeepsDefaults(t *testing.T) {
	cfg, err := Decode("[check]\nlimit = 10\n")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Check.Limit != 10 {
		t.Errorf("limit = %d, want 10", cfg.Check.Limit)
	}
	if !cfg.Check.Squash {
		t.Error("squash default lost")
	}
	if !reflect.DeepEqual(cfg.Check.Rules, rules.DefaultNames()) {
		t.Errorf("rules = %v, want defaults", cfg.Check.Rules)
	}
	if cfg.Output.Format != "pretty" {
		t.Errorf("format = %q", cfg.Output.Format)
	}
}

func TestDecodeOverrides(t *testing.T) {
	text := `
[check]
squash = false
rules = ["indentation", "trailing-whitespace"]

[files]
extensions = [".ts"]
exclude = ["dist", "*.min.js"]

[output]
format = "json"
`
	cfg, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Squash || len(opts.Rules) != 2 || opts.Rules[1].Name != "trailing-whitespace" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !cfg.Matches("src/a.TS") || cfg.Matches("src/a.js") {
		t.Error("extension matching is wrong")
	}
	if !cfg.Excluded("dist") || !cfg.Excluded("app.min.js") || cfg.Excluded("src") {
		t.Error("exclude matching is wrong")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"syntax", "[check\n", "failed to parse TOML"},
		{"unknown key", "[check]\nlimt = 1\n", "unknown keys: check.limt"},
		{"negative limit", "[check]\nlimit = -1\n", "must not be negative"},
		{"bad extension", "[files]\nextensions = [\"js\"]\n", "must start with a dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDecodeUnknownRule(t *testing.T) {
	_, err := Decode("[check]\nrules = [\"no-such-rule\"]\n")
	if !errors.Is(err, rules.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte("[check]\nlimit = 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != path || cfg.Check.Limit != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" && !strings.HasSuffix(cfg.Path, FileName) {
		t.Fatalf("unexpected path %q", cfg.Path)
	}
}

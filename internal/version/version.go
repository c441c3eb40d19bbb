package version

import (
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

// Version information for the commentlint CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored paints the major, minor and patch parts of v. Anything after the
// patch number ("-dev", "+meta") is left as is. Non-semver input is returned unchanged.
func Colored(v string, enabled bool) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 || !enabled {
		return v
	}
	patch, rest := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, rest = patch[:i], patch[i:]
	}
	for _, c := range []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor} {
		c.EnableColor()
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(patch) + rest
}

// Info is the build identity of the running binary.
type Info struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current collects Info from the ldflags variables. When no commit was
// injected, the VCS revision stamped by the Go toolchain is used.
func Current() Info {
	info := Info{
		Tool:      "commentlint",
		Version:   strings.TrimSpace(Version),
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.GitCommit == "" {
		info.GitCommit = vcsSetting("vcs.revision")
	}
	if info.BuildDate == "" {
		info.BuildDate = vcsSetting("vcs.time")
	}
	return info
}

func vcsSetting(key string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

package cli

import (
	"fmt"
	"strings"
)

// Build metadata, overridden at release time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo records build metadata injected by the build and exposes
// it through the root command's --version flag.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", formatVersion(version), commit, date)
}

// Version returns the bare version string. It is embedded in the comment of
// generated SSH keys so a key's origin can be traced.
func Version() string {
	return version
}

// formatVersion adds the conventional v prefix to release versions. Dev
// builds and empty strings pass through untouched.
func formatVersion(v string) string {
	if v == "" || v == "dev" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

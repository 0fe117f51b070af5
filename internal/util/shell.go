// Package util provides small helpers shared across deploy steps.
package util

import "strings"

// ShellQuote wraps a string in single quotes, escaping any single quotes it
// contains. Remote commands are built as strings handed to ssh, so paths with
// spaces or shell metacharacters must be quoted to arrive intact.
func ShellQuote(s string) string {
	// ' becomes '\'' (close quote, literal quote, reopen quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

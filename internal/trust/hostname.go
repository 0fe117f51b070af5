package trust

import "strings"

// SanitizeHostname maps a hostname to the character set safe for embedding
// in a key file name. ASCII letters, digits, '-', and '_' pass through;
// every other rune becomes '_'. Runs of underscores collapse to a single
// one and leading/trailing underscores are trimmed, so the result never
// grows when sanitized again.
func SanitizeHostname(hostname string) string {
	var b strings.Builder
	b.Grow(len(hostname))

	for _, c := range hostname {
		if isKeyNameSafe(c) {
			b.WriteRune(c)
		} else {
			b.WriteByte('_')
		}
	}

	sanitized := b.String()
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}

	return strings.Trim(sanitized, "_")
}

func isKeyNameSafe(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

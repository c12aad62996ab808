// Package filter decides whether a vault path is excluded from display.
package filter

import "strings"

// SplitPatterns derives exclusion patterns from the raw newline-separated
// setting: trimmed, lower-cased, empties dropped.
func SplitPatterns(raw string) []string {
	var patterns []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	return patterns
}

// IsExcluded reports whether any pattern occurs as a case-insensitive
// substring of the full path. Deliberately coarse: no globs, no path-segment
// anchoring.
func IsExcluded(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	lowered := strings.ToLower(path)
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}

// Package shared provides common utility functions used across multiple
// packages in the pom-version-checker codebase.
package shared

import (
	"fmt"
	"regexp"
	"strings"

	"pom-version-checker/internal/types"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	betweenElements = regexp.MustCompile(`>\s+<`)
)

// HasPlaceholder reports whether value references a property anywhere,
// as in 1.0-${revision}.
func HasPlaceholder(value string) bool {
	return strings.Contains(value, types.PlaceholderPrefix)
}

// PlaceholderName extracts the property name of the first ${name} in
// value. Text after the first closing brace is ignored.
func PlaceholderName(value string) string {
	trimmed := strings.TrimSpace(value)
	if start := strings.Index(trimmed, types.PlaceholderPrefix); start >= 0 {
		trimmed = trimmed[start+len(types.PlaceholderPrefix):]
	}
	if end := strings.Index(trimmed, "}"); end >= 0 {
		trimmed = trimmed[:end]
	}
	return strings.TrimSpace(trimmed)
}

// ReplacePlaceholder substitutes the first property reference in value.
func ReplacePlaceholder(value string, replacement string) string {
	start := strings.Index(value, types.PlaceholderPrefix)
	if start < 0 {
		return value
	}
	end := strings.Index(value[start:], "}")
	if end < 0 {
		return value[:start] + replacement
	}
	return value[:start] + replacement + value[start+end+1:]
}

// SyntheticPlaceholder is the placeholder an absent dependency version is
// normalized to.
func SyntheticPlaceholder(artifactID string) string {
	return types.PlaceholderPrefix + artifactID + ".version}"
}

// CollapseWhitespace squeezes whitespace runs to a single space and drops
// whitespace between adjacent elements.
func CollapseWhitespace(value string) string {
	collapsed := betweenElements.ReplaceAllString(value, "><")
	collapsed = whitespaceRun.ReplaceAllString(collapsed, " ")
	return strings.TrimSpace(collapsed)
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// Package cli provides the CLI presentation layer for timesplit.
// It renders analysis reports in the supported output formats.
package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xolan/timesplit/internal/config"
)

// Format is an output format for an analysis report
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts any value listed in config.ValidFormats, case-insensitively.
// "md" is accepted as a short form of markdown.
func ParseFormat(s string) (Format, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "md" {
		v = string(FormatMarkdown)
	}
	if !slices.Contains(config.ValidFormats, v) {
		return "", fmt.Errorf("unknown format %q: must be one of %s", s, strings.Join(config.ValidFormats, ", "))
	}
	return Format(v), nil
}

// FormatDuration formats minutes as a human-readable string
// Examples: "30m", "2h", "1h 30m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}

// Truncate shortens s to max runes, ending with "..." when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

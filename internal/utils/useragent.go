package utils

import (
	"fmt"
	"strings"

	ua "github.com/mssola/user_agent"
)

// SummarizeUserAgent reduces a raw User-Agent header to a short
// human-readable summary suitable for storing alongside bookings and
// contact messages, e.g. "Chrome 120 on Windows 10 (mobile)".
// Returns "" for an empty header.
func SummarizeUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	parser := ua.New(raw)

	browser, version := parser.Browser()
	if browser == "" {
		browser = "Unknown"
	}
	if idx := strings.Index(version, "."); idx > 0 {
		version = version[:idx]
	}

	os := parser.OS()
	if os == "" {
		os = "Unknown"
	}

	summary := browser
	if version != "" {
		summary = fmt.Sprintf("%s %s", browser, version)
	}
	summary = fmt.Sprintf("%s on %s", summary, os)

	switch {
	case parser.Bot():
		summary += " (bot)"
	case parser.Mobile():
		summary += " (mobile)"
	default:
		summary += " (desktop)"
	}

	return summary
}

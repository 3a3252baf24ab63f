// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatBytes formats a file size, e.g. 82854982 -> "83 MB".
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// FormatAge formats a past timestamp relative to now, e.g. "3 minutes ago".
// The zero time renders as "never".
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

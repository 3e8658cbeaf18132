package parser

import (
	"strconv"
	"strings"
	"time"
)

// ParseAmount converts a string like "1,234.56" or "KSh 1,234.56" to a
// float64 magnitude. Currency markers, thousands separators and stray
// whitespace are stripped first. Returns 0 when the remainder is not a
// number; callers cannot distinguish a genuine zero from an absent or
// garbled field, and the paid-in/withdrawn priority checks rely on that.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "KSh", "")
	s = strings.ReplaceAll(s, "Ksh", "")
	s = strings.ReplaceAll(s, "KES", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space

	if s == "" || s == "-" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// statement timestamps look like "2024-01-05 10:00:00"
const timestampLayout = "2006-01-02T15:04:05"

// ParseDate parses a "YYYY-MM-DD HH:MM:SS" statement timestamp. The space
// between date and time is normalized to a T separator before parsing.
// Returns the zero time on failure; callers must check IsZero rather than
// expect an error.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	s = strings.Replace(s, " ", "T", 1)
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// normalizeHeader lowercases a column header and collapses internal
// whitespace so "Completion  Time" and "completion time" match the same
// alias.
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// firstNonEmpty returns the first value that is non-empty after trimming,
// or fallback when none is.
func firstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return fallback
}

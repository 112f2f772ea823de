package datfile

import (
	"strings"
	"time"
)

// ZeroFill trims s and left-pads it with zeros to width. Values already at
// or beyond width pass through untouched.
func ZeroFill(s string, width int) string {
	s = strings.TrimSpace(s)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// NormalizeDate re-renders a timestamp as MM/DD/YYYY. Unparseable input
// becomes "" (the downstream report treats missing dates as blanks).
func NormalizeDate(s string) string {
	t, ok := parseDateLoose(s)
	if !ok {
		return ""
	}
	return t.Format("01/02/2006")
}

// parseDateLoose covers the formats seen across core-banking exports.
func parseDateLoose(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01/02/2006",
		"1/2/2006",
		"02-Jan-2006",
		time.RFC3339,
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	// Fallback: T separator variants
	if strings.Contains(s, "T") {
		if t, err := time.Parse("2006-01-02 15:04:05", strings.ReplaceAll(s, "T", " ")); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

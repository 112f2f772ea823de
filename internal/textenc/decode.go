package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names as reported in scan results.
const (
	UTF8   = "utf-8"
	Latin1 = "latin-1"
)

// Decode interprets raw bytes as text. UTF-8 is tried first; anything that
// is not valid UTF-8 falls back to ISO 8859-1, which maps every byte to a
// rune and therefore cannot fail. Returns the decoded text and the name of
// the encoding that was used.
func Decode(b []byte) (string, string) {
	if utf8.Valid(b) {
		return string(b), UTF8
	}
	// charmap decode of a single-byte encoding never errors.
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(s), Latin1
}

// SplitLines splits text on \n, \r\n and \r. A terminal line break does not
// produce a trailing empty line, matching splitlines() semantics rather than
// strings.Split.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

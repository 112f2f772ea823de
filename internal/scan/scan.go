package scan

import (
	"os"
	"strings"

	"datcheck/internal/iox"
	"datcheck/internal/textenc"
)

// Delim is the field separator for .dat inputs.
const Delim = '|'

type Status int

const (
	Success Status = iota
	NotFound
	Empty
	Mismatch
	Fatal
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case Empty:
		return "empty"
	case Mismatch:
		return "mismatch"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Result is the outcome of a single scan. Mismatch is a finding, not a
// failure: it means the scanner did its job.
type Result struct {
	Path            string `json:"path"`
	ExpectedColumns int    `json:"expected_columns"` // informational, never validated
	Status          Status `json:"status"`
	Encoding        string `json:"encoding,omitempty"`
	Lines           int    `json:"lines"` // total lines, header included

	// Mismatch details.
	LineNumber     int    `json:"line_number,omitempty"` // 1-based file line
	ExpectedDelims int    `json:"expected_delims"`
	ActualDelims   int    `json:"actual_delims,omitempty"`
	Raw            string `json:"raw,omitempty"`

	// Fatal details.
	Cause string `json:"cause,omitempty"`
}

// File reads the whole file, decodes it (UTF-8 first, Latin-1 fallback),
// derives the expected delimiter count from the header line and reports the
// first data line whose count deviates. expectedColumns is carried through
// for operator context only.
func File(path string, expectedColumns int) Result {
	res := Result{Path: path, ExpectedColumns: expectedColumns}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		res.Status = NotFound
		return res
	}

	raw, err := iox.ReadAuto(path)
	if err != nil {
		if os.IsNotExist(err) {
			res.Status = NotFound
			return res
		}
		res.Status = Fatal
		res.Cause = err.Error()
		return res
	}

	text, enc := textenc.Decode(raw)
	res.Encoding = enc

	lines := textenc.SplitLines(text)
	res.Lines = len(lines)
	if len(lines) == 0 {
		res.Status = Empty
		return res
	}

	res.ExpectedDelims = DelimCount(lines[0])

	for i, line := range lines[1:] {
		cur := DelimCount(line)
		if cur != res.ExpectedDelims {
			res.Status = Mismatch
			res.LineNumber = i + 2 // header is line 1
			res.ActualDelims = cur
			res.Raw = line
			return res
		}
	}

	res.Status = Success
	return res
}

// DelimCount counts '|' occurrences in a line. A trailing delimiter is a
// row terminator, not an extra separator, so it is not counted.
func DelimCount(line string) int {
	n := strings.Count(line, string(Delim))
	if strings.HasSuffix(line, string(Delim)) {
		n--
	}
	return n
}

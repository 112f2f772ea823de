package scan

import (
	"fmt"
	"strings"
)

// Report renders the operator diagnostic for a result. Raw line content is
// quoted so embedded control characters stay visible.
func (r Result) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "==== %s (expecting %d columns) ====\n", r.Path, r.ExpectedColumns)

	switch r.Status {
	case NotFound:
		fmt.Fprintf(&b, "ERROR: file not found\n")
	case Empty:
		fmt.Fprintf(&b, "ERROR: file is empty (encoding=%s)\n", r.Encoding)
	case Fatal:
		fmt.Fprintf(&b, "ERROR: %s\n", r.Cause)
	case Mismatch:
		fmt.Fprintf(&b, "MISMATCH at line %d: expected %d delimiters, found %d (encoding=%s)\n",
			r.LineNumber, r.ExpectedDelims, r.ActualDelims, r.Encoding)
		fmt.Fprintf(&b, "raw: %q\n", r.Raw)
	case Success:
		fmt.Fprintf(&b, "OK: %d data lines scanned, %d delimiters per line (encoding=%s)\n",
			r.Lines-1, r.ExpectedDelims, r.Encoding)
	}
	return b.String()
}

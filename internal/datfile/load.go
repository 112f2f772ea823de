package datfile

import (
	"errors"
	"fmt"
	"strings"

	"datcheck/internal/iox"
	"datcheck/internal/textenc"
)

// Row is one parsed record keyed by column name.
type Row map[string]string

// LoadStats describes what the loader skipped.
type LoadStats struct {
	Encoding  string
	Rows      int
	Malformed int
	// First few malformed line numbers (1-based file lines), for diagnostics.
	MalformedLines []int
}

const maxMalformedReported = 5

// Load parses a pipe-delimited .dat file against the given column set.
// The whole file is decoded up front, so embedded field garbage never
// desynchronizes line boundaries. Blank lines are ignored; lines whose
// field count does not match the column set are skipped and counted.
func Load(path string, cols []Column) ([]Row, LoadStats, error) {
	var stats LoadStats

	raw, err := iox.ReadAuto(path)
	if err != nil {
		return nil, stats, fmt.Errorf("load %s: %w", path, err)
	}

	text, enc := textenc.Decode(raw)
	stats.Encoding = enc

	lines := textenc.SplitLines(text)
	if len(lines) == 0 {
		return nil, stats, fmt.Errorf("load %s: %w", path, errors.New("file is empty"))
	}

	var rows []Row
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		// Trailing delimiter produces one empty terminal field; drop it.
		if len(fields) > 0 && fields[len(fields)-1] == "" {
			fields = fields[:len(fields)-1]
		}
		if len(fields) != len(cols) {
			stats.Malformed++
			if stats.Malformed <= maxMalformedReported {
				stats.MalformedLines = append(stats.MalformedLines, i+2)
			}
			continue
		}
		row := make(Row, len(cols))
		for j, c := range cols {
			row[c.Name] = applyKind(c.Kind, fields[j])
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, stats, fmt.Errorf("load %s: no valid data rows", path)
	}
	stats.Rows = len(rows)
	return rows, stats, nil
}

func applyKind(k Kind, v string) string {
	switch k {
	case CIF:
		return ZeroFill(v, 10)
	case Loan:
		return ZeroFill(v, 15)
	case Date:
		return NormalizeDate(v)
	}
	return v
}

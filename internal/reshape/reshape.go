// Package reshape pivots {CIF, ID, Amt_Old, Amt_New} rows into one wide
// row per CIF.
package reshape

import (
	"fmt"

	"datcheck/internal/datfile"
	"datcheck/internal/rowio"
)

// MaxTriples caps how many ID/Amt_Old/Amt_New groups fit in a wide row.
const MaxTriples = 16

const (
	cifWidth = 10
	idWidth  = 15
)

type Stats struct {
	RowsIn   int
	RowsOut  int
	Overflow int // input rows dropped because a CIF already had MaxTriples
}

// Header returns the wide-format column set: CIF followed by MaxTriples
// numbered triples.
func Header() []string {
	out := make([]string, 0, 1+MaxTriples*3)
	out = append(out, "CIF")
	for i := 1; i <= MaxTriples; i++ {
		out = append(out,
			fmt.Sprintf("ID_%d", i),
			fmt.Sprintf("Amt_Old_%d", i),
			fmt.Sprintf("Amt_New_%d", i),
		)
	}
	return out
}

// Wide groups rows by zero-padded CIF, first-seen order, and emits one wide
// row per CIF. IDs are padded to 15 digits; unused slots stay empty.
func Wide(rows []rowio.Row) ([][]string, Stats) {
	var stats Stats
	order := make([]string, 0, len(rows))
	groups := make(map[string][][3]string, len(rows))

	for _, row := range rows {
		stats.RowsIn++
		cif := datfile.ZeroFill(row["CIF"], cifWidth)
		triples, seen := groups[cif]
		if !seen {
			order = append(order, cif)
		}
		if len(triples) >= MaxTriples {
			stats.Overflow++
			continue
		}
		groups[cif] = append(triples, [3]string{
			datfile.ZeroFill(row["ID"], idWidth),
			row["Amt_Old"],
			row["Amt_New"],
		})
	}

	out := make([][]string, 0, len(order))
	for _, cif := range order {
		wide := make([]string, 1+MaxTriples*3)
		wide[0] = cif
		for i, t := range groups[cif] {
			base := 1 + i*3
			wide[base] = t[0]
			wide[base+1] = t[1]
			wide[base+2] = t[2]
		}
		out = append(out, wide)
	}
	stats.RowsOut = len(out)
	return out, stats
}

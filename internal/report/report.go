// Package report builds the interest (1099-INT) report from the two core
// extracts: transactions joined to their 1099 classification.
package report

import (
	"fmt"
	"time"

	"datcheck/internal/datfile"
)

// Columns of the final report, in output order.
var Columns = []string{
	"Loan_Number",
	"Borrower_CIF",
	"Tran_Date",
	"Tran_Description",
	"1099_Type",
	"1099_Amt",
}

// Join left-joins transaction rows against the 1099 table on ACID,
// attaching 1099_Type and 1099_Amt. Transactions without a match keep
// empty classification fields. When the table holds duplicate ACIDs the
// first occurrence wins.
func Join(tbl, tran []datfile.Row) []datfile.Row {
	type class struct{ typ, amt string }
	byACID := make(map[string]class, len(tbl))
	for _, r := range tbl {
		acid := r["ACID"]
		if _, ok := byACID[acid]; !ok {
			byACID[acid] = class{typ: r["1099_Type"], amt: r["1099_Amt"]}
		}
	}

	out := make([]datfile.Row, 0, len(tran))
	for _, r := range tran {
		joined := make(datfile.Row, len(r)+2)
		for k, v := range r {
			joined[k] = v
		}
		c := byACID[r["ACID"]]
		joined["1099_Type"] = c.typ
		joined["1099_Amt"] = c.amt
		out = append(out, joined)
	}
	return out
}

// FilterInterest keeps joined rows classified as INT with a non-empty
// amount, projected onto Columns.
func FilterInterest(rows []datfile.Row) [][]string {
	var out [][]string
	for _, r := range rows {
		if r["1099_Type"] != "INT" || r["1099_Amt"] == "" {
			continue
		}
		rec := make([]string, len(Columns))
		for i, c := range Columns {
			rec[i] = r[c]
		}
		out = append(out, rec)
	}
	return out
}

// TimestampedName builds "<prefix>_YYYYMMDD_HHMMSS.xlsx".
func TimestampedName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format("20060102_150405"))
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"datcheck/internal/datfile"
)

func TestJoinAttachesClassification(t *testing.T) {
	tbl := []datfile.Row{
		{"ACID": "A1", "1099_Type": "INT", "1099_Amt": "12.50"},
		{"ACID": "A2", "1099_Type": "MISC", "1099_Amt": "99.00"},
	}
	tran := []datfile.Row{
		{"ACID": "A1", "Loan_Number": "L1"},
		{"ACID": "A3", "Loan_Number": "L3"},
	}

	joined := Join(tbl, tran)
	require.Len(t, joined, 2)
	require.Equal(t, "INT", joined[0]["1099_Type"])
	require.Equal(t, "12.50", joined[0]["1099_Amt"])
	// No match: classification stays empty, row survives (left join).
	require.Equal(t, "", joined[1]["1099_Type"])
	require.Equal(t, "L3", joined[1]["Loan_Number"])
}

func TestJoinFirstDuplicateWins(t *testing.T) {
	tbl := []datfile.Row{
		{"ACID": "A1", "1099_Type": "INT", "1099_Amt": "1.00"},
		{"ACID": "A1", "1099_Type": "MISC", "1099_Amt": "2.00"},
	}
	tran := []datfile.Row{{"ACID": "A1"}}

	joined := Join(tbl, tran)
	require.Equal(t, "INT", joined[0]["1099_Type"])
}

func TestJoinDoesNotMutateInput(t *testing.T) {
	tran := []datfile.Row{{"ACID": "A1"}}
	Join(nil, tran)
	_, has := tran[0]["1099_Type"]
	require.False(t, has)
}

func TestFilterInterest(t *testing.T) {
	rows := []datfile.Row{
		{"ACID": "A1", "1099_Type": "INT", "1099_Amt": "12.50", "Loan_Number": "L1",
			"Borrower_CIF": "C1", "Tran_Date": "01/02/2024", "Tran_Description": "interest"},
		{"ACID": "A2", "1099_Type": "MISC", "1099_Amt": "5.00"},
		{"ACID": "A3", "1099_Type": "INT", "1099_Amt": ""},
	}

	out := FilterInterest(rows)
	require.Len(t, out, 1)
	require.Equal(t, []string{"L1", "C1", "01/02/2024", "interest", "INT", "12.50"}, out[0])
}

func TestTimestampedName(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 5, 0, time.UTC)
	require.Equal(t, "Final_Report_20260115_093005.xlsx", TimestampedName("Final_Report", now))
}

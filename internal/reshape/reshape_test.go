package reshape

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"datcheck/internal/rowio"
)

func row(cif, id, old, new string) rowio.Row {
	return rowio.Row{"CIF": cif, "ID": id, "Amt_Old": old, "Amt_New": new}
}

func TestHeaderShape(t *testing.T) {
	h := Header()
	require.Len(t, h, 1+MaxTriples*3)
	require.Equal(t, "CIF", h[0])
	require.Equal(t, "ID_1", h[1])
	require.Equal(t, "Amt_New_16", h[len(h)-1])
}

func TestWideGroupsByCIF(t *testing.T) {
	rows := []rowio.Row{
		row("42", "1", "10.00", "11.00"),
		row("7", "2", "20.00", "21.00"),
		row("42", "3", "30.00", "31.00"),
	}

	wide, stats := Wide(rows)
	require.Equal(t, 3, stats.RowsIn)
	require.Equal(t, 2, stats.RowsOut)
	require.Len(t, wide, 2)

	// First-seen CIF order, zero-padded keys.
	require.Equal(t, "0000000042", wide[0][0])
	require.Equal(t, "0000000007", wide[1][0])

	// CIF 42 got two triples.
	require.Equal(t, "000000000000001", wide[0][1])
	require.Equal(t, "10.00", wide[0][2])
	require.Equal(t, "11.00", wide[0][3])
	require.Equal(t, "000000000000003", wide[0][4])
	require.Equal(t, "30.00", wide[0][5])

	// Unused slots stay empty.
	require.Equal(t, "", wide[0][7])
	require.Equal(t, "", wide[1][4])
}

func TestWideOverflowCap(t *testing.T) {
	var rows []rowio.Row
	for i := 0; i < MaxTriples+3; i++ {
		rows = append(rows, row("1", fmt.Sprintf("%d", i), "0", "0"))
	}

	wide, stats := Wide(rows)
	require.Len(t, wide, 1)
	require.Equal(t, 3, stats.Overflow)
	// Last slot filled, none beyond it.
	require.NotEmpty(t, wide[0][1+(MaxTriples-1)*3])
	require.Len(t, wide[0], 1+MaxTriples*3)
}

func TestWideEmptyInput(t *testing.T) {
	wide, stats := Wide(nil)
	require.Empty(t, wide)
	require.Equal(t, 0, stats.RowsIn)
}

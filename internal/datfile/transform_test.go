package datfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroFill(t *testing.T) {
	require.Equal(t, "0000000042", ZeroFill("42", 10))
	require.Equal(t, "0000000042", ZeroFill("  42  ", 10))
	require.Equal(t, "1234567890", ZeroFill("1234567890", 10))
	require.Equal(t, "12345678901", ZeroFill("12345678901", 10))
	require.Equal(t, "000", ZeroFill("", 3))
}

func TestNormalizeDate(t *testing.T) {
	require.Equal(t, "03/05/2024", NormalizeDate("2024-03-05"))
	require.Equal(t, "03/05/2024", NormalizeDate("2024-03-05 14:30:00"))
	require.Equal(t, "03/05/2024", NormalizeDate("03/05/2024"))
	require.Equal(t, "03/05/2024", NormalizeDate("3/5/2024"))
	require.Equal(t, "03/05/2024", NormalizeDate("05-Mar-2024"))
	require.Equal(t, "", NormalizeDate("not a date"))
	require.Equal(t, "", NormalizeDate(""))
	require.Equal(t, "", NormalizeDate("   "))
}

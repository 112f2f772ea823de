package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"datcheck/internal/textenc"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.dat")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestFileWellFormed(t *testing.T) {
	path := writeFile(t, []byte("X|Y\n1|2\n3|4\n"))

	res := File(path, 2)
	require.Equal(t, Success, res.Status)
	require.Equal(t, 3, res.Lines)
	require.Equal(t, 1, res.ExpectedDelims)
	require.Equal(t, textenc.UTF8, res.Encoding)
}

func TestFileFirstMismatchWins(t *testing.T) {
	// Header is line 1; "4|5" is line 3. The short line after it must not
	// be reported.
	path := writeFile(t, []byte("A|B|C\n1|2|3\n4|5\n6\n"))

	res := File(path, 3)
	require.Equal(t, Mismatch, res.Status)
	require.Equal(t, 3, res.LineNumber)
	require.Equal(t, 2, res.ExpectedDelims)
	require.Equal(t, 1, res.ActualDelims)
	require.Equal(t, "4|5", res.Raw)
}

func TestFileTrailingDelimiterAdjustment(t *testing.T) {
	// "a|b|c|" carries a sentinel trailing delimiter: still 2 separators.
	path := writeFile(t, []byte("a|b|c|\n1|2|3\n4|5|6|\n"))

	res := File(path, 3)
	require.Equal(t, Success, res.Status)
	require.Equal(t, 2, res.ExpectedDelims)
}

func TestFileCRLFAndBareCR(t *testing.T) {
	path := writeFile(t, []byte("A|B\r\n1|2\r3|4\r\n"))

	res := File(path, 2)
	require.Equal(t, Success, res.Status)
	require.Equal(t, 3, res.Lines)
}

func TestFileLatin1Fallback(t *testing.T) {
	// 0xD6 is not valid UTF-8 on its own; the scan must still complete.
	path := writeFile(t, []byte("A|B\n1|\xd6\n2|3\n"))

	res := File(path, 2)
	require.Equal(t, Success, res.Status)
	require.Equal(t, textenc.Latin1, res.Encoding)
}

func TestFileEmpty(t *testing.T) {
	path := writeFile(t, nil)

	res := File(path, 2)
	require.Equal(t, Empty, res.Status)
	require.Equal(t, 0, res.Lines)
}

func TestFileNotFound(t *testing.T) {
	res := File(filepath.Join(t.TempDir(), "nope.dat"), 2)
	require.Equal(t, NotFound, res.Status)
}

func TestFileIdempotent(t *testing.T) {
	path := writeFile(t, []byte("A|B|C\n1|2|3\n4|5\n"))

	first := File(path, 3)
	second := File(path, 3)
	require.Equal(t, first, second)
}

func TestFileExpectedColumnsInformationalOnly(t *testing.T) {
	// expectedColumns never cross-checks the header; a wildly wrong value
	// still scans clean.
	path := writeFile(t, []byte("A|B\n1|2\n"))

	res := File(path, 99)
	require.Equal(t, Success, res.Status)
	require.Equal(t, 99, res.ExpectedColumns)
}

func TestDelimCount(t *testing.T) {
	require.Equal(t, 2, DelimCount("a|b|c"))
	require.Equal(t, 2, DelimCount("a|b|c|"))
	require.Equal(t, 0, DelimCount(""))
	require.Equal(t, 0, DelimCount("|")) // single trailing delimiter only
	require.Equal(t, 1, DelimCount("||"))
}

func TestReportMismatchShowsRawQuoted(t *testing.T) {
	path := writeFile(t, []byte("A|B\n1|2\n3\x004\n"))

	res := File(path, 2)
	require.Equal(t, Mismatch, res.Status)
	require.Contains(t, res.Report(), `"3\x004"`)
}

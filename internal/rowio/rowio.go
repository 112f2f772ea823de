// Package rowio reads and writes headered tabular files, dispatching on
// extension: .xlsx sheets via excelize, everything else as CSV (.gz input
// supported for CSV).
package rowio

import (
	"path/filepath"
	"strings"
)

// Row is one record keyed by header name.
type Row = map[string]string

// ReadAll loads a whole table: header plus named rows.
func ReadAll(path string) ([]string, []Row, error) {
	if isXLSX(path) {
		return readXLSX(path)
	}
	return readCSV(path)
}

// WriteAll writes a whole table.
func WriteAll(path string, header []string, rows [][]string) error {
	if isXLSX(path) {
		return writeXLSX(path, header, rows)
	}
	return writeCSV(path, header, rows)
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

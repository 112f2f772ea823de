package rowio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

func readXLSX(path string) ([]string, []Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("sheet %s: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, nil, errors.New("sheet has no header row")
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(all)-1)
	for _, rec := range all[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func writeXLSX(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, i+2, r); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return f.SetSheetRow(defaultSheet, cell, &vals)
}

package helpers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/schema"
	"github.com/xuri/excelize/v2"
)

// ============================================================================
// XLSX HELPER — Workbook → schema.Table
// ============================================================================

// ErrUnsupportedFormat is returned for file extensions other than
// .csv, .xlsx and .xls.
var ErrUnsupportedFormat = errors.New("invalid file format. Please upload .xlsx, .xls, or .csv files")

// SupportedExtension reports whether name has an accepted spreadsheet extension.
func SupportedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx", ".xls":
		return true
	}
	return false
}

// ReadXLSX reads the first non-empty sheet of a workbook. The first row is
// the header; short rows are padded with nil.
func ReadXLSX(r io.Reader) (schema.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return schema.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return schema.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		table := schema.Table{Headers: rows[0]}
		width := len(rows[0])
		for _, cells := range rows[1:] {
			if blankRow(cells) {
				continue
			}
			row := textRow(cells)
			for len(row) < width {
				row = append(row, nil)
			}
			table.Rows = append(table.Rows, row)
		}
		return table, nil
	}
	return schema.Table{}, errors.New("workbook has no data")
}

// ReadTable dispatches on the file name's extension.
func ReadTable(name string, r io.Reader) (schema.Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx", ".xls":
		return ReadXLSX(r)
	default:
		return schema.Table{}, ErrUnsupportedFormat
	}
}

// ReadFile opens path and parses it with ReadTable.
func ReadFile(path string) (schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return schema.Table{}, err
	}
	defer f.Close()
	return ReadTable(path, f)
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

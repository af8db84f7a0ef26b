package helpers

import (
	"fmt"
	"io"
	"sort"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
	"github.com/xuri/excelize/v2"
)

// ============================================================================
// EXPORT — Records and ad-hoc rows → XLSX
// ============================================================================

const (
	dataSheet   = "Data"
	resultSheet = "Results"
)

// WriteXLSX writes records to a single-sheet workbook.
func WriteXLSX(w io.Writer, records []engine.Record) error {
	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = []any{r.Year, r.Area, r.Price, r.Demand}
	}
	return writeSheet(w, dataSheet, toAny(engine.TableColumns), rows)
}

// RowsToXLSX writes loosely typed JSON rows to a workbook. Columns follow
// engine.TableColumns first, then any remaining keys alphabetically.
func RowsToXLSX(w io.Writer, rows []map[string]any) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to export")
	}
	columns := rowColumns(rows)
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(columns))
		for j, c := range columns {
			cells[j] = row[c]
		}
		out[i] = cells
	}
	return writeSheet(w, resultSheet, toAny(columns), out)
}

func rowColumns(rows []map[string]any) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, c := range engine.TableColumns {
		for _, row := range rows {
			if _, ok := row[c]; ok {
				columns = append(columns, c)
				seen[c] = true
				break
			}
		}
	}
	var rest []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func writeSheet(w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

package helpers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/schema"
)

// ============================================================================
// CSV HELPER — CSV bytes ⇄ schema.Table / engine.Record
// ============================================================================
// The reader hands raw text cells to the cleaner untouched; all numeric
// parsing happens in schema.Clean.
// ============================================================================

// ReadCSV parses CSV data into a Table. The first row is the header.
// Empty cells become nil. Malformed rows are skipped.
func ReadCSV(r io.Reader) (schema.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return schema.Table{}, errors.New("CSV file is empty")
		}
		return schema.Table{}, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	headers[0] = strings.TrimPrefix(headers[0], "\ufeff")

	table := schema.Table{Headers: headers}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		table.Rows = append(table.Rows, textRow(row))
	}
	return table, nil
}

// WriteCSV writes records with a year,area,price,demand header.
func WriteCSV(w io.Writer, records []engine.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(engine.TableColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(engine.RecordRow(r)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// textRow converts string cells to Table cells, mapping blanks to nil.
func textRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		if strings.TrimSpace(c) == "" {
			continue
		}
		row[i] = c
	}
	return row
}

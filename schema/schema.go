package schema

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — Raw table shape and the canonical real-estate columns
// ============================================================================
// A spreadsheet source hands over a Table with arbitrary headers. Normalize
// resolves those headers onto the canonical columns; Clean turns the rows
// into engine.Records.
// ============================================================================

// Canonical column names.
const (
	ColumnYear   = "year"
	ColumnArea   = "area"
	ColumnPrice  = "price"
	ColumnDemand = "demand"
)

// RequiredColumns lists the canonical columns every dataset must provide.
var RequiredColumns = []string{ColumnYear, ColumnArea, ColumnPrice, ColumnDemand}

// Table is a rectangular raw row set. Cell values are whatever the source
// produced: string for text cells, float64/int for typed numeric cells,
// nil for empty cells.
type Table struct {
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// Cell returns the value at (row, col), or nil when out of range.
func (t Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// Mapping is the result of header normalization.
type Mapping struct {
	// Headers are the normalized headers, in source order, after synonym
	// resolution and duplicate renaming.
	Headers []string `json:"headers"`
	// Columns maps each canonical column to its source index.
	Columns map[string]int `json:"columns"`
	// Source maps each canonical column to the original header text.
	Source map[string]string `json:"source"`
	// Inferred lists canonical columns resolved by the secondary heuristics.
	Inferred []string `json:"inferred,omitempty"`
}

// Index returns the source index of a canonical column.
func (m *Mapping) Index(column string) (int, bool) {
	i, ok := m.Columns[column]
	return i, ok
}

// SchemaError reports canonical columns that could not be resolved.
// A load that fails with SchemaError leaves the previous dataset in place.
type SchemaError struct {
	Missing   []string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("Could not map required columns: [%s]. Available columns: [%s]",
		strings.Join(e.Missing, " "), strings.Join(e.Available, " "))
}

package engine

import "strconv"

// ============================================================================
// TABLE BUILDER — Row output for responses and exports
// ============================================================================

// TableColumns is the canonical column order for row output.
var TableColumns = []string{"year", "area", "price", "demand"}

// BuildTable returns at most limit rows from the view, in view order.
func BuildTable(view RecordView, limit int) []Record {
	return Collect(view, limit)
}

// RecordRow renders a record as strings in TableColumns order.
func RecordRow(r Record) []string {
	return []string{
		strconv.Itoa(r.Year),
		r.Area,
		strconv.FormatFloat(r.Price, 'f', -1, 64),
		strconv.FormatFloat(r.Demand, 'f', -1, 64),
	}
}

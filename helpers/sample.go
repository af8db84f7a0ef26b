package helpers

import (
	"io"
	"math"
)

// ============================================================================
// SAMPLE WORKBOOK — Downloadable example in the source spreadsheet layout
// ============================================================================
// Headers use the long-form names real exports carry, so uploading the
// sample exercises synonym resolution and demand rescaling.
// ============================================================================

// SampleFileName is the attachment name for the sample workbook.
const SampleFileName = "sample_real_estate_data.xlsx"

// SampleHeaders are the column headers of the sample workbook.
var SampleHeaders = []string{"final location", "year", "flat - weighted average rate", "total sold - igr"}

type sampleArea struct {
	name   string
	price  float64 // first-year rate per sq ft
	growth float64 // yearly price growth
	sold   float64 // first-year units sold
	trend  float64 // yearly change in units sold
}

var sampleAreas = []sampleArea{
	{"Akurdi", 5200, 0.06, 820, 45},
	{"Aundh", 9800, 0.05, 640, 20},
	{"Baner", 9100, 0.07, 910, 60},
	{"Hinjewadi", 6400, 0.08, 1250, 90},
	{"Kothrud", 10400, 0.04, 700, -15},
	{"Wakad", 6900, 0.09, 1100, 75},
}

const (
	sampleFirstYear = 2020
	sampleYears     = 5
)

// SampleRows returns the sample workbook rows, one per area and year.
func SampleRows() [][]any {
	rows := make([][]any, 0, len(sampleAreas)*sampleYears)
	for _, a := range sampleAreas {
		for i := 0; i < sampleYears; i++ {
			price := math.Round(a.price * math.Pow(1+a.growth, float64(i)))
			sold := a.sold + a.trend*float64(i)
			rows = append(rows, []any{a.name, sampleFirstYear + i, price, sold})
		}
	}
	return rows
}

// WriteSample writes the sample workbook.
func WriteSample(w io.Writer) error {
	return writeSheet(w, dataSheet, toAny(SampleHeaders), SampleRows())
}

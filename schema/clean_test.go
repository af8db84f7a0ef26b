package schema

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
)

// ============================================================================
// FIELD CLEANER TESTS
// ============================================================================

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Sample sheet in the raw export layout (header variants, rupee strings, sold counts).
var rawSheet = Table{
	Headers: []string{"Yr", "Final Location", "Flat - weighted average rate", "Total Sold - IGR"},
	Rows: [][]any{
		{"2021", " wakad ", "₹55,00,000", "1200"},
		{"2022", "wakad", "₹60,00,000", "1500"},
		{2021.0, "AUNDH", 7200000.0, 800.0},
		{"2022", "aundh", "", "900"},
		{"abc", "Baner", "4000000", "100"},
		{"1999", "Baner", "4000000", "100"},
		{"2021", "   ", "4000000", "100"},
		{"2022", "Baner", "-5", "100"},
	},
}

func TestCleanScenario(t *testing.T) {
	records, m, report, err := Prepare(rawSheet, quietLogger())
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if m.Headers[1] != ColumnArea {
		t.Errorf("Headers[1] = %q, want area", m.Headers[1])
	}

	if report.Input != 8 {
		t.Errorf("Input = %d, want 8", report.Input)
	}
	// missing: empty price (aundh 2022), "abc" year, blank area
	if report.MissingDropped != 3 {
		t.Errorf("MissingDropped = %d, want 3", report.MissingDropped)
	}
	// invalid: year 1999, negative price
	if report.InvalidDropped != 2 {
		t.Errorf("InvalidDropped = %d, want 2", report.InvalidDropped)
	}
	if report.Output != 3 || len(records) != 3 {
		t.Fatalf("Output = %d (records %d), want 3", report.Output, len(records))
	}
	if !report.DemandRescaled || report.DemandMax != 1500 {
		t.Errorf("expected demand rescale with max 1500, got %+v", report)
	}

	first := records[0]
	if first.Area != "Wakad" {
		t.Errorf("Area = %q, want Wakad", first.Area)
	}
	if first.Year != 2021 {
		t.Errorf("Year = %d, want 2021", first.Year)
	}
	if first.Price != 5500000.0 {
		t.Errorf("Price = %v, want 5500000", first.Price)
	}
	wantDemand := 1200.0/1500.0*9 + 1
	if math.Abs(first.Demand-wantDemand) > 1e-9 {
		t.Errorf("Demand = %v, want %v", first.Demand, wantDemand)
	}
	if records[1].Demand != 10 {
		t.Errorf("max demand should rescale to 10, got %v", records[1].Demand)
	}
	if records[2].Area != "Aundh" {
		t.Errorf("Area = %q, want Aundh", records[2].Area)
	}
}

func TestCleanKeepsScoreScale(t *testing.T) {
	tbl := Table{
		Headers: []string{"year", "area", "price", "demand"},
		Rows: [][]any{
			{2020, "Baner", 100.0, 8.0},
			{2021, "Baner", 150.0, 8.0},
		},
	}
	records, report, err := prepareOnly(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if report.DemandRescaled {
		t.Error("demand already on 1-10 scale should not be rescaled")
	}
	if records[0].Demand != 8.0 {
		t.Errorf("Demand = %v, want 8", records[0].Demand)
	}
}

func TestCleanRescalesAboveScoreCeiling(t *testing.T) {
	tbl := Table{
		Headers: []string{"year", "area", "price", "demand"},
		Rows: [][]any{
			{2020, "Baner", 100.0, 25.0},
			{2021, "Baner", 150.0, 50.0},
		},
	}
	records, report, err := prepareOnly(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if !report.DemandRescaled || report.DemandMax != 50 {
		t.Fatalf("expected rescale with max 50, got %+v", report)
	}
	if records[0].Demand != 5.5 || records[1].Demand != 10 {
		t.Errorf("demand = [%v %v], want [5.5 10]", records[0].Demand, records[1].Demand)
	}
}

func TestCleanNoBreakSpaceCurrency(t *testing.T) {
	tbl := Table{
		Headers: []string{"year", "area", "price", "demand"},
		Rows: [][]any{
			{"2021", "Wakad", "₹\u00a055,00,000", "8"},
			{"2022", "Wakad", "₹ 60\u202f00\u202f000", "9"},
		},
	}
	records, report, err := prepareOnly(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if report.MissingDropped != 0 || len(records) != 2 {
		t.Fatalf("MissingDropped = %d, records = %d, want 0 and 2", report.MissingDropped, len(records))
	}
	if records[0].Price != 5500000 || records[1].Price != 6000000 {
		t.Errorf("prices = [%v %v]", records[0].Price, records[1].Price)
	}
}

func TestCleanAllRowsDropped(t *testing.T) {
	tbl := Table{
		Headers: []string{"year", "area", "price", "demand"},
		Rows:    [][]any{{1990, "Old Town", 1.0, 1.0}},
	}
	records, report, err := prepareOnly(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 || report.Output != 0 {
		t.Errorf("expected empty output, got %d records", len(records))
	}
}

// Property: whatever the raw cells, every cleaned record satisfies
// price > 0, 0 < demand <= 10, year >= 2000, non-empty area.
func TestCleanInvariantsRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		tbl := Table{Headers: []string{"Year", "Locality", "Cost", "Units Sold"}}
		rows := rng.Intn(40)
		for i := 0; i < rows; i++ {
			tbl.Rows = append(tbl.Rows, []any{
				randomCell(rng, 1980, 2030),
				randomArea(rng),
				randomCell(rng, -1000, 9000000),
				randomCell(rng, -50, 5000),
			})
		}

		records, report, err := prepareOnly(tbl)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if report.Input != report.MissingDropped+report.InvalidDropped+report.Output {
			t.Fatalf("round %d: stage counts do not add up: %+v", round, report)
		}
		for _, r := range records {
			if r.Price <= 0 {
				t.Fatalf("round %d: price %v <= 0", round, r.Price)
			}
			if r.Demand <= 0 || r.Demand > 10 {
				t.Fatalf("round %d: demand %v outside (0,10]", round, r.Demand)
			}
			if r.Year < MinYear {
				t.Fatalf("round %d: year %d < %d", round, r.Year, MinYear)
			}
			if r.Area == "" {
				t.Fatalf("round %d: empty area", round)
			}
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input any
		want  float64
		ok    bool
	}{
		{"₹55,00,000", 5500000, true},
		{"$1,234.50", 1234.5, true},
		{" 42 ", 42, true},
		{"1 200", 1200, true},
		{"₹\u00a055,00,000", 5500000, true},
		{"55\u202f00\u202f000", 5500000, true},
		{"\u2007 42\u00a0", 42, true},
		{"\u00a0", 0, false},
		{42, 42, true},
		{int64(7), 7, true},
		{3.5, 3.5, true},
		{"", 0, false},
		{"  ", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{nil, 0, false},
		{math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.input)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseNumber(%#v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseYear(t *testing.T) {
	if y, ok := ParseYear("2021.0"); !ok || y != 2021 {
		t.Errorf("ParseYear(\"2021.0\") = (%d, %v)", y, ok)
	}
	if _, ok := ParseYear("twenty"); ok {
		t.Error("ParseYear should reject text")
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func prepareOnly(tbl Table) ([]engine.Record, CleanReport, error) {
	records, _, report, err := Prepare(tbl, quietLogger())
	return records, report, err
}

func randomCell(rng *rand.Rand, lo, hi int) any {
	v := lo + rng.Intn(hi-lo+1)
	switch rng.Intn(6) {
	case 0:
		return v
	case 1:
		return float64(v) + rng.Float64()
	case 2:
		return fmt.Sprintf("₹%s", commaGroup(v))
	case 3:
		return fmt.Sprintf(" $%d ", v)
	case 4:
		return ""
	default:
		return "garbage"
	}
}

func randomArea(rng *rand.Rand) any {
	areas := []any{" wakad", "AUNDH ", "baner road", "", "  ", nil, 17}
	return areas[rng.Intn(len(areas))]
}

func commaGroup(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

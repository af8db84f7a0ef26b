package schema

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// COLUMN NORMALIZER TESTS
// ============================================================================

func TestNormalizeSynonyms(t *testing.T) {
	headers := []string{"Yr", "Final Location", "Flat - weighted average rate", "Total Sold - IGR"}
	m, err := Normalize(headers)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	assertIndex(t, m, ColumnYear, 0)
	assertIndex(t, m, ColumnArea, 1)
	assertIndex(t, m, ColumnPrice, 2)
	assertIndex(t, m, ColumnDemand, 3)

	if m.Source[ColumnArea] != "Final Location" {
		t.Errorf("Source[area] = %q, want %q", m.Source[ColumnArea], "Final Location")
	}
	if len(m.Inferred) != 0 {
		t.Errorf("no heuristic should be needed, got %v", m.Inferred)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	canonical := []string{"year", "area", "price", "demand"}
	m, err := Normalize(canonical)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	for i, h := range canonical {
		if m.Headers[i] != h {
			t.Errorf("Headers[%d] = %q, want %q", i, m.Headers[i], h)
		}
		assertIndex(t, m, h, i)
	}

	again, err := Normalize(m.Headers)
	if err != nil {
		t.Fatalf("second Normalize failed: %v", err)
	}
	if strings.Join(again.Headers, ",") != strings.Join(m.Headers, ",") {
		t.Errorf("normalizing twice changed headers: %v → %v", m.Headers, again.Headers)
	}
}

func TestNormalizeDuplicates(t *testing.T) {
	// "location" and "city" both map to area; "rate" and "cost" both map to price.
	headers := []string{"Year", "Location", "City", "Rate", "Cost", "Demand", "Cost"}
	m, err := Normalize(headers)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := []string{"year", "area", "area_1", "price", "price_1", "demand", "price_2"}
	for i, w := range want {
		if m.Headers[i] != w {
			t.Errorf("Headers[%d] = %q, want %q", i, m.Headers[i], w)
		}
	}
	assertIndex(t, m, ColumnArea, 1)
	assertIndex(t, m, ColumnPrice, 3)
}

func TestNormalizeSecondaryHeuristics(t *testing.T) {
	headers := []string{"Year", "Project Location Name", "Shop - Weighted Average Rate", "Units Booked"}
	m, err := Normalize(headers)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	assertIndex(t, m, ColumnArea, 1)
	assertIndex(t, m, ColumnPrice, 2)
	assertIndex(t, m, ColumnDemand, 3)

	if len(m.Inferred) != 3 {
		t.Errorf("Inferred = %v, want 3 heuristic columns", m.Inferred)
	}
}

func TestNormalizeWhitespaceAndCase(t *testing.T) {
	m, err := Normalize([]string{"  YEAR ", "FINAL   LOCATION", "Price", "POPULARITY"})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	assertIndex(t, m, ColumnArea, 1)
	assertIndex(t, m, ColumnDemand, 3)
}

func TestNormalizeSchemaError(t *testing.T) {
	_, err := Normalize([]string{"Year", "Name", "Notes"})
	if err == nil {
		t.Fatal("expected SchemaError")
	}

	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *SchemaError", err)
	}
	assertContains(t, se.Missing, "area", "missing should name area")
	assertContains(t, se.Missing, "price", "missing should name price")
	assertContains(t, se.Missing, "demand", "missing should name demand")
	assertContains(t, se.Available, "Notes", "available should list raw headers")

	msg := se.Error()
	if !strings.HasPrefix(msg, "Could not map required columns: [area price demand]") {
		t.Errorf("unexpected message: %s", msg)
	}
	if !strings.Contains(msg, "Available columns: [Year Name Notes]") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Year", "year"},
		{"  Final   Location  ", "final location"},
		{"Flat - Weighted Average Rate", "flat - weighted average rate"},
		{"Residential_Sold - IGR", "residential_sold - igr"},
		{"", ""},
	}

	for _, tt := range tests {
		got := NormalizeHeader(tt.input)
		if got != tt.expected {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func assertIndex(t *testing.T, m *Mapping, column string, want int) {
	t.Helper()
	got, ok := m.Index(column)
	if !ok {
		t.Errorf("column %q not mapped", column)
		return
	}
	if got != want {
		t.Errorf("column %q at index %d, want %d", column, got, want)
	}
}

func assertContains(t *testing.T, slice []string, item string, msg string) {
	t.Helper()
	for _, s := range slice {
		if s == item {
			return
		}
	}
	t.Errorf("%s: %q not found in %v", msg, item, slice)
}

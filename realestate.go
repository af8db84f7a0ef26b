// Package realestate answers natural-language questions about a tabular
// real-estate dataset (year, area, price, demand).
//
// Usage:
//
//	import "github.com/pranavsawarkar14/Real-Estate-Analysis/analyst"
//
//	e := analyst.New(analyst.WithTextGenerator(gen))
//	report, err := e.LoadFile(ctx, "sample_real_estate_data.xlsx")
//	resp, err := e.Query(ctx, "Compare Wakad and Aundh demand trends")
//
// The schema package maps arbitrary headers onto the canonical columns and
// cleans the values. The translator package turns the query into an
// engine.ParsedQuery, and the engine package filters, aggregates and renders
// it. A summary generator (narrator package) is optional; the deterministic
// summary is always the fallback.
package realestate

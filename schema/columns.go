package schema

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// COLUMN NORMALIZER — Arbitrary headers → {year, area, price, demand}
// ============================================================================
// Pipeline per table:
//   1. Normalize header text (NFC, trim, lowercase, collapse spaces)
//   2. Exact lookup in the ordered synonym table
//   3. Rename repeated canonical names to <name>_<n>
//   4. Secondary substring heuristics for anything still missing
//   5. SchemaError when a required column is still unresolved
// ============================================================================

type synonymGroup struct {
	canonical string
	aliases   []string
}

// columnSynonyms is checked in order; the first group containing a header wins.
var columnSynonyms = []synonymGroup{
	{ColumnYear, []string{"year", "yr", "years"}},
	{ColumnArea, []string{"area", "final location", "location", "region", "locality", "place", "city"}},
	{ColumnPrice, []string{"price", "flat - weighted average rate", "office - weighted average rate", "cost", "amount", "value", "rate"}},
	{ColumnDemand, []string{"demand", "total sold - igr", "residential_sold - igr", "flat_sold - igr", "total units", "demand_score", "demand_index", "popularity"}},
}

type heuristic struct {
	canonical string
	match     func(header string) bool
}

// secondaryHeuristics apply only to columns missing after the synonym pass.
var secondaryHeuristics = []heuristic{
	{ColumnArea, func(h string) bool { return strings.Contains(h, "location") }},
	{ColumnPrice, func(h string) bool { return strings.Contains(h, "rate") && strings.Contains(h, "average") }},
	{ColumnDemand, func(h string) bool { return strings.Contains(h, "sold") || strings.Contains(h, "units") }},
	{ColumnYear, func(h string) bool { return strings.Contains(h, "year") }},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]string {
	idx := make(map[string]string)
	for _, g := range columnSynonyms {
		for _, alias := range g.aliases {
			if _, taken := idx[alias]; !taken {
				idx[alias] = g.canonical
			}
		}
	}
	return idx
}

// Normalize resolves raw headers onto the canonical columns.
// Normalizing already-canonical headers is a no-op.
func Normalize(headers []string) (*Mapping, error) {
	m := &Mapping{
		Headers: make([]string, len(headers)),
		Columns: make(map[string]int),
		Source:  make(map[string]string),
	}

	cleaned := make([]string, len(headers))
	used := make(map[string]int)
	for i, h := range headers {
		cleaned[i] = NormalizeHeader(h)
		name := cleaned[i]
		if canonical, ok := synonymIndex[name]; ok {
			name = canonical
		}
		name = dedupe(name, used)
		m.Headers[i] = name
		if isRequired(name) {
			m.Columns[name] = i
			m.Source[name] = strings.TrimSpace(h)
		}
	}

	for _, rule := range secondaryHeuristics {
		if _, ok := m.Columns[rule.canonical]; ok {
			continue
		}
		for i, h := range cleaned {
			if isRequired(m.Headers[i]) {
				continue
			}
			if rule.match(h) {
				m.Columns[rule.canonical] = i
				m.Source[rule.canonical] = strings.TrimSpace(headers[i])
				m.Headers[i] = rule.canonical
				m.Inferred = append(m.Inferred, rule.canonical)
				break
			}
		}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := m.Columns[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		available := make([]string, len(headers))
		for i, h := range headers {
			available[i] = strings.TrimSpace(h)
		}
		return nil, &SchemaError{Missing: missing, Available: available}
	}
	return m, nil
}

// NormalizeHeader trims, lowercases, NFC-normalizes and collapses inner
// whitespace: "  Final   Location " → "final location".
func NormalizeHeader(h string) string {
	h = norm.NFC.String(h)
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// dedupe returns name on first use and name_<n> on later uses.
func dedupe(name string, used map[string]int) string {
	n, seen := used[name]
	if !seen {
		used[name] = 0
		return name
	}
	for {
		n++
		candidate := fmt.Sprintf("%s_%d", name, n)
		if _, clash := used[candidate]; !clash {
			used[name] = n
			used[candidate] = 0
			return candidate
		}
	}
}

func isRequired(name string) bool {
	for _, c := range RequiredColumns {
		if c == name {
			return true
		}
	}
	return false
}

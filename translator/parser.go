package translator

import (
	"strconv"
	"strings"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
)

// ============================================================================
// QUERY INTERPRETER — Free text → engine.ParsedQuery
// ============================================================================
// Pure function of (query, catalog). Keyword and regex heuristics only.
// ============================================================================

// Interpret extracts metric, time window, analysis type and matched areas.
func Interpret(query string, catalog []string) engine.ParsedQuery {
	lower := strings.ToLower(query)
	tokens := tokenize(lower)

	q := engine.ParsedQuery{
		Query:        query,
		Metric:       detectMetric(lower, tokens),
		AnalysisType: classifyAnalysis(lower, tokens),
		Areas:        MatchAreas(lower, catalog),
	}
	q.Years, q.YearFilter = detectWindow(lower)
	q.Comparison = len(q.Areas) > 1
	if q.Areas == nil {
		q.Areas = []string{}
	}
	return q
}

// detectMetric returns price or demand when only that family of keywords
// appears, otherwise both.
func detectMetric(lower string, tokens []string) engine.Metric {
	hasPrice := hasKeyword(lower, tokens, priceKeywords)
	hasDemand := hasKeyword(lower, tokens, demandKeywords)
	switch {
	case hasPrice && !hasDemand:
		return engine.MetricPrice
	case hasDemand && !hasPrice:
		return engine.MetricDemand
	default:
		return engine.MetricBoth
	}
}

// classifyAnalysis walks analysisRules in order. A comparison match is kept
// only when no later rule matches; multi-area intent is already carried by
// ParsedQuery.Comparison.
func classifyAnalysis(lower string, tokens []string) engine.AnalysisType {
	comparison := false
	for _, rule := range analysisRules {
		if !hasKeyword(lower, tokens, rule.keywords) {
			continue
		}
		if rule.kind == engine.AnalysisComparison {
			comparison = true
			continue
		}
		return rule.kind
	}
	if comparison {
		return engine.AnalysisComparison
	}
	return engine.AnalysisOverview
}

// detectWindow applies windowPatterns in priority order. At most one of the
// returned values is set.
func detectWindow(lower string) (int, *engine.YearRange) {
	for _, p := range windowPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		switch p.kind {
		case windowRolling:
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				continue
			}
			return n, nil
		case windowRange:
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			if start > end {
				start, end = end, start
			}
			return 0, &engine.YearRange{Start: start, End: end}
		case windowSingle:
			year, _ := strconv.Atoi(m[1])
			return 0, &engine.YearRange{Start: year, End: year}
		}
	}
	return 0, nil
}

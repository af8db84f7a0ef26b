package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// PROMPT BUILDER — Text-generation prompt from aggregated figures
// ============================================================================
// The external service only ever sees per-area aggregates, never raw rows.
// ============================================================================

var analysisContext = map[AnalysisType]string{
	AnalysisComparison: "Compare these areas highlighting the best performer and key differences.",
	AnalysisTrend:      "Focus on growth trends and market momentum over time.",
	AnalysisRanking:    "Rank these areas and identify the top performer with reasons.",
	AnalysisInvestment: "Provide investment recommendations with risk assessment.",
	AnalysisOverview:   "Provide a comprehensive market overview with key insights.",
}

var promptInstructions = []string{
	"Write EXACTLY 4-5 lines (not sentences, but lines)",
	"Each line should be concise and impactful",
	"Include specific numbers and percentages",
	"End with one clear actionable recommendation",
	"Use professional but accessible language",
	"Focus on the most important insights only",
}

// BuildSummaryPrompt renders the prompt sent to a TextGenerator.
func BuildSummaryPrompt(q ParsedQuery, areas []AggregatedArea) string {
	var b strings.Builder

	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = a.Area
	}
	analysis := q.AnalysisType
	if analysis == "" {
		analysis = AnalysisOverview
	}

	fmt.Fprintf(&b, "You are a real estate market analyst. Analyze this data for: '%s'\n\n", q.Query)
	fmt.Fprintf(&b, "Analysis Type: %s\n", analysis)
	fmt.Fprintf(&b, "Areas Analyzed: %s\n\n", strings.Join(names, ", "))

	b.WriteString("DATA SUMMARY:\n")
	for _, a := range areas {
		fmt.Fprintf(&b, "\n%s:\n", a.Area)
		fmt.Fprintf(&b, "  • Average Price: %s\n", FormatRupees(a.AvgPrice))
		fmt.Fprintf(&b, "  • Average Demand Score: %.1f/10\n", a.AvgDemand)
		fmt.Fprintf(&b, "  • Price Growth: %s\n", FormatGrowth(a.PriceGrowth))
		fmt.Fprintf(&b, "  • Demand Growth: %s\n", FormatGrowth(a.DemandGrowth))
	}

	context, ok := analysisContext[analysis]
	if !ok {
		context = analysisContext[AnalysisOverview]
	}

	b.WriteString("\n\nINSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. %s\n", context)
	for i, line := range promptInstructions {
		fmt.Fprintf(&b, "%d. %s\n", i+2, line)
	}
	b.WriteString("\nFormat your response as exactly 4-5 lines, each line being one key insight or recommendation.")

	return b.String()
}

package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// TEXT BUILDER — Deterministic 4-5 line market summary
// ============================================================================
// Always available. Undefined growth renders as "n/a" and is treated as
// neither above nor below any threshold.
// ============================================================================

// NoAreaDataSummary is returned when aggregation produced nothing.
const NoAreaDataSummary = "No data available for the requested areas."

// BuildSummary renders the deterministic summary for aggregated areas.
func BuildSummary(areas []AggregatedArea) string {
	switch len(areas) {
	case 0:
		return NoAreaDataSummary
	case 1:
		return strings.Join(singleAreaLines(areas[0]), "\n")
	default:
		return strings.Join(multiAreaLines(areas), "\n")
	}
}

func singleAreaLines(a AggregatedArea) []string {
	lines := []string{
		fmt.Sprintf("%s market analysis shows average property price of %s with %s growth.",
			a.Area, FormatRupees(a.AvgPrice), FormatGrowth(a.PriceGrowth)),
		fmt.Sprintf("Demand score stands at %.1f/10 with %s growth trend.",
			a.AvgDemand, FormatGrowth(a.DemandGrowth)),
	}

	switch {
	case above(a.PriceGrowth, 5) && above(a.DemandGrowth, 0):
		lines = append(lines,
			"Strong market momentum indicates robust investment potential.",
			"Recommendation: Consider this area for medium to long-term investment.")
	case below(a.PriceGrowth, 0) || below(a.DemandGrowth, -5):
		lines = append(lines,
			"Market shows signs of correction with declining trends.",
			"Recommendation: Wait for market stabilization before investing.")
	default:
		lines = append(lines,
			"Market shows stable performance with moderate growth potential.",
			"Recommendation: Suitable for conservative investors seeking steady returns.")
	}
	return lines
}

func multiAreaLines(areas []AggregatedArea) []string {
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = a.Area
	}

	lines := []string{
		fmt.Sprintf("Comparative analysis of %d areas: %s.", len(areas), strings.Join(names, ", ")),
	}

	bestPrice := leader(areas, func(a AggregatedArea) *float64 { return a.PriceGrowth })
	bestDemand := leader(areas, func(a AggregatedArea) *float64 { return a.DemandGrowth })
	premium := leader(areas, func(a AggregatedArea) *float64 { v := a.AvgPrice; return &v })

	if bestPrice == nil || bestDemand == nil {
		lines = append(lines, "Growth figures need at least two years of data per area.")
	} else {
		lines = append(lines, fmt.Sprintf("%s leads in price appreciation at %s, while %s shows highest demand growth at %s.",
			bestPrice.Area, FormatGrowth(bestPrice.PriceGrowth), bestDemand.Area, FormatGrowth(bestDemand.DemandGrowth)))
	}

	lines = append(lines, fmt.Sprintf("%s commands premium pricing at %s average.",
		premium.Area, FormatRupees(premium.AvgPrice)))

	switch {
	case bestPrice != nil && bestDemand != nil && bestPrice.Area == bestDemand.Area:
		lines = append(lines,
			fmt.Sprintf("%s emerges as the clear market leader with strong fundamentals.", bestPrice.Area),
			fmt.Sprintf("Recommendation: Prioritize %s for balanced growth and demand potential.", bestPrice.Area))
	case bestPrice != nil && bestDemand != nil:
		lines = append(lines,
			"Market shows diverse opportunities across different growth metrics.",
			fmt.Sprintf("Recommendation: Choose %s for capital gains or %s for market activity.", bestPrice.Area, bestDemand.Area))
	default:
		lines = append(lines,
			"Market shows diverse opportunities across different growth metrics.",
			fmt.Sprintf("Recommendation: Compare %s over a longer period before investing.", premium.Area))
	}
	return lines
}

// leader returns the area with the largest defined value. Ties keep the
// earlier area. Returns nil when no area has a defined value.
func leader(areas []AggregatedArea, value func(AggregatedArea) *float64) *AggregatedArea {
	var best *AggregatedArea
	var bestVal float64
	for i := range areas {
		v := value(areas[i])
		if v == nil {
			continue
		}
		if best == nil || *v > bestVal {
			best = &areas[i]
			bestVal = *v
		}
	}
	return best
}

func above(g *float64, threshold float64) bool { return g != nil && *g > threshold }
func below(g *float64, threshold float64) bool { return g != nil && *g < threshold }

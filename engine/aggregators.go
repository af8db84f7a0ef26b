package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ============================================================================
// AGGREGATORS — Group by (year, area), per-year means, growth
// ============================================================================
// All functions read through RecordView. Output order follows the order of
// the requested areas, which callers pass in catalog order.
// ============================================================================

type cellKey struct {
	area string
	year int
}

type cellSum struct {
	price  float64
	demand float64
	count  int
}

// Aggregate groups the view by (year, area) and returns one AggregatedArea
// per requested area that has at least one row. Areas absent from the view
// are skipped; areas with a single year carry averages but nil growth.
func Aggregate(view RecordView, areas []string) []AggregatedArea {
	if view.Len() == 0 || len(areas) == 0 {
		return nil
	}

	cells := make(map[cellKey]*cellSum)
	yearsByArea := make(map[string][]int)
	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		k := cellKey{area: r.Area, year: r.Year}
		c, ok := cells[k]
		if !ok {
			c = &cellSum{}
			cells[k] = c
			yearsByArea[r.Area] = append(yearsByArea[r.Area], r.Year)
		}
		c.price += r.Price
		c.demand += r.Demand
		c.count++
	}

	result := make([]AggregatedArea, 0, len(areas))
	for _, area := range areas {
		years := yearsByArea[area]
		if len(years) == 0 {
			continue
		}
		sort.Ints(years)

		agg := AggregatedArea{Area: area, Yearly: make([]YearPoint, 0, len(years))}
		for _, y := range years {
			c := cells[cellKey{area: area, year: y}]
			agg.Yearly = append(agg.Yearly, YearPoint{
				Year:   y,
				Price:  c.price / float64(c.count),
				Demand: c.demand / float64(c.count),
				Count:  c.count,
			})
		}

		var sumPrice, sumDemand float64
		for _, p := range agg.Yearly {
			sumPrice += p.Price
			sumDemand += p.Demand
		}
		n := float64(len(agg.Yearly))
		agg.AvgPrice = RoundTo2(sumPrice / n)
		agg.AvgDemand = RoundTo2(sumDemand / n)

		if len(agg.Yearly) >= 2 {
			first, last := agg.Yearly[0], agg.Yearly[len(agg.Yearly)-1]
			agg.PriceGrowth = GrowthPercent(first.Price, last.Price)
			agg.DemandGrowth = GrowthPercent(first.Demand, last.Demand)
		}
		result = append(result, agg)
	}
	return result
}

// GrowthPercent returns (last-first)/first*100 rounded to 2 decimals,
// or nil when first is zero or the result is not finite.
func GrowthPercent(first, last float64) *float64 {
	if first == 0 {
		return nil
	}
	g := (last - first) / first * 100
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return nil
	}
	g = RoundTo2(g)
	return &g
}

// YearUnion returns the sorted distinct years across aggregated areas.
func YearUnion(areas []AggregatedArea) []int {
	seen := make(map[int]bool)
	var years []int
	for _, a := range areas {
		for _, p := range a.Yearly {
			if !seen[p.Year] {
				seen[p.Year] = true
				years = append(years, p.Year)
			}
		}
	}
	sort.Ints(years)
	return years
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatRupees renders a whole-rupee amount with comma separators: ₹5,500,000.
func FormatRupees(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return "-₹" + FormatInt(-n)
	}
	return "₹" + FormatInt(n)
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int64) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatGrowth renders a growth figure as a signed one-decimal percentage,
// or "n/a" when undefined.
func FormatGrowth(g *float64) string {
	if g == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f%%", *g)
}

package engine

import "strconv"

// ============================================================================
// CHART BUILDER — Aligned per-year series from aggregated areas
// ============================================================================

// Default color palette, cycled per area.
var defaultColors = []string{
	"#007bff", "#28a745", "#dc3545", "#ffc107", "#17a2b8",
}

// BuildSeries produces chart-ready series. Labels are the union of years
// across all areas in ascending order; every dataset is aligned to them and
// holds nil for years the area lacks.
func BuildSeries(areas []AggregatedArea, metric Metric) *ChartSeries {
	years := YearUnion(areas)
	chart := &ChartSeries{
		Labels:   make([]string, len(years)),
		Datasets: []ChartDataset{},
	}
	pos := make(map[int]int, len(years))
	for i, y := range years {
		chart.Labels[i] = strconv.Itoa(y)
		pos[y] = i
	}

	q := ParsedQuery{Metric: metric}
	for i, a := range areas {
		color := defaultColors[i%len(defaultColors)]
		if q.WantsPrice() {
			chart.Datasets = append(chart.Datasets,
				buildDataset(a, MetricPrice, color, pos, len(years)))
		}
		if q.WantsDemand() {
			ds := buildDataset(a, MetricDemand, color, pos, len(years))
			if metric == MetricBoth {
				ds.BorderDash = []int{5, 5}
			}
			chart.Datasets = append(chart.Datasets, ds)
		}
	}
	return chart
}

func buildDataset(a AggregatedArea, metric Metric, color string, pos map[int]int, width int) ChartDataset {
	data := make([]*float64, width)
	for _, p := range a.Yearly {
		v := p.Price
		if metric == MetricDemand {
			v = p.Demand
		}
		v = RoundTo2(v)
		data[pos[p.Year]] = &v
	}

	label := a.Area + " - Price"
	if metric == MetricDemand {
		label = a.Area + " - Demand"
	}

	return ChartDataset{
		Label:           label,
		Area:            a.Area,
		Metric:          metric,
		Data:            data,
		BorderColor:     color,
		BackgroundColor: color + "20",
		Fill:            false,
		Tension:         0.1,
	}
}

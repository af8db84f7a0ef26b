package engine

// ============================================================================
// ENGINE TYPES — Real-estate records, parsed queries, render-ready output
// ============================================================================
// Dependency: engine imports no sibling package. schema, translator,
// narrator and analyst all build on these types.
// ============================================================================

// ============================================================================
// RECORD — One cleaned spreadsheet row
// ============================================================================

// Record is a single cleaned observation for an area in a given year.
// Invariant after cleaning: Year >= 2000, Price > 0, 0 < Demand <= 10.
type Record struct {
	Year   int     `json:"year"`
	Area   string  `json:"area"`
	Price  float64 `json:"price"`
	Demand float64 `json:"demand"`
}

// ============================================================================
// PARSED QUERY — Contract between the interpreter and the executor
// ============================================================================

// Metric selects which series a query is about.
type Metric string

const (
	MetricPrice  Metric = "price"
	MetricDemand Metric = "demand"
	MetricBoth   Metric = "both"
)

// AnalysisType is the coarse category of a question.
type AnalysisType string

const (
	AnalysisOverview   AnalysisType = "overview"
	AnalysisComparison AnalysisType = "comparison"
	AnalysisTrend      AnalysisType = "trend"
	AnalysisRanking    AnalysisType = "ranking"
	AnalysisInvestment AnalysisType = "investment"
)

// YearRange is an inclusive year interval. A single year has Start == End.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParsedQuery is the structured intent extracted from free text.
// At most one of Years and YearFilter is set.
type ParsedQuery struct {
	Query        string       `json:"original_query"`
	Areas        []string     `json:"areas"`
	Metric       Metric       `json:"metric"`
	Years        int          `json:"years,omitempty"`
	YearFilter   *YearRange   `json:"year_filter,omitempty"`
	AnalysisType AnalysisType `json:"analysis_type"`
	Comparison   bool         `json:"comparison"`
}

// WantsPrice reports whether price series are requested.
func (q ParsedQuery) WantsPrice() bool {
	return q.Metric == MetricPrice || q.Metric == MetricBoth || q.Metric == ""
}

// WantsDemand reports whether demand series are requested.
func (q ParsedQuery) WantsDemand() bool {
	return q.Metric == MetricDemand || q.Metric == MetricBoth || q.Metric == ""
}

// ============================================================================
// AGGREGATION OUTPUT
// ============================================================================

// YearPoint is the grouped mean for one (year, area) cell.
type YearPoint struct {
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Demand float64 `json:"demand"`
	Count  int     `json:"count"`
}

// AggregatedArea holds per-year means and growth for one area.
// Growth fields are nil when undefined (fewer than two years or a zero base).
type AggregatedArea struct {
	Area         string      `json:"area"`
	Yearly       []YearPoint `json:"data"`
	PriceGrowth  *float64    `json:"price_growth"`
	DemandGrowth *float64    `json:"demand_growth"`
	AvgPrice     float64     `json:"avg_price"`
	AvgDemand    float64     `json:"avg_demand"`
}

// HasGrowth reports whether both growth figures are defined.
func (a AggregatedArea) HasGrowth() bool {
	return a.PriceGrowth != nil && a.DemandGrowth != nil
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartSeries is chart-ready data: one label per year and aligned datasets.
type ChartSeries struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one (area, metric) line. Data is aligned with
// ChartSeries.Labels and holds nil where the area has no value for that year.
type ChartDataset struct {
	Label           string     `json:"label"`
	Area            string     `json:"area"`
	Metric          Metric     `json:"metric"`
	Data            []*float64 `json:"data"`
	BorderColor     string     `json:"borderColor"`
	BackgroundColor string     `json:"backgroundColor"`
	Fill            bool       `json:"fill"`
	Tension         float64    `json:"tension"`
	BorderDash      []int      `json:"borderDash,omitempty"`
}

// ============================================================================
// RESULT — Render-ready output of Execute
// ============================================================================

// Result is the executor's output for a query that matched at least one area.
type Result struct {
	Summary       string           `json:"summary"`
	SummarySource string           `json:"summary_source"`
	Chart         *ChartSeries     `json:"chart"`
	Table         []Record         `json:"table"`
	TotalRows     int              `json:"total_rows"`
	Areas         []AggregatedArea `json:"areas"`
	Parsed        ParsedQuery      `json:"parsed"`
}

// SummarySourceDeterministic marks a summary produced without an external service.
const SummarySourceDeterministic = "deterministic"

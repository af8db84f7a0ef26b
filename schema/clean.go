package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
)

// ============================================================================
// FIELD CLEANER — Raw cells → validated engine.Records
// ============================================================================
// Stages:
//   1. Parse year/area/price/demand per row; unusable values become missing
//   2. Drop rows with any missing field
//   3. Rescale demand onto (1, 10] when it is not already a score
//   4. Drop price <= 0, demand <= 0, year < 2000
// ============================================================================

const (
	// MinYear is the earliest year kept.
	MinYear = 2000
	// demandScoreCeiling is the top of the demand score scale. Any larger
	// value means the column holds raw counts and is rescaled.
	demandScoreCeiling = 10.0
)

var numericNoise = regexp.MustCompile(`[,$₹\s\p{Zs}]`)

// CleanReport counts rows at each cleaning stage.
type CleanReport struct {
	Input          int     `json:"input"`
	MissingDropped int     `json:"missing_dropped"`
	InvalidDropped int     `json:"invalid_dropped"`
	Output         int     `json:"output"`
	DemandRescaled bool    `json:"demand_rescaled"`
	DemandMax      float64 `json:"demand_max,omitempty"`
}

type rawRecord struct {
	year   int
	area   string
	price  float64
	demand float64
}

// Clean converts table rows into records using a resolved Mapping.
// logger may be nil.
func Clean(t Table, m *Mapping, logger logrus.FieldLogger) ([]engine.Record, CleanReport) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	report := CleanReport{Input: len(t.Rows)}

	yearCol, _ := m.Index(ColumnYear)
	areaCol, _ := m.Index(ColumnArea)
	priceCol, _ := m.Index(ColumnPrice)
	demandCol, _ := m.Index(ColumnDemand)

	title := cases.Title(language.Und)

	// 1-2. parse, drop incomplete rows
	parsed := make([]rawRecord, 0, len(t.Rows))
	for r := range t.Rows {
		year, okYear := ParseYear(t.Cell(r, yearCol))
		area, okArea := ParseArea(t.Cell(r, areaCol))
		price, okPrice := ParseNumber(t.Cell(r, priceCol))
		demand, okDemand := ParseNumber(t.Cell(r, demandCol))
		if !okYear || !okArea || !okPrice || !okDemand {
			report.MissingDropped++
			continue
		}
		parsed = append(parsed, rawRecord{year: year, area: title.String(area), price: price, demand: demand})
	}
	logStage(logger, "missing", report.MissingDropped, len(parsed))

	// 3. demand scale
	maxDemand := math.Inf(-1)
	for _, p := range parsed {
		if p.demand > maxDemand {
			maxDemand = p.demand
		}
	}
	if len(parsed) > 0 && maxDemand > demandScoreCeiling {
		report.DemandRescaled = true
		report.DemandMax = maxDemand
		for i := range parsed {
			parsed[i].demand = parsed[i].demand/maxDemand*9 + 1
		}
		logger.WithField("max", maxDemand).Info("demand rescaled onto 1-10 score")
	}

	// 4. validity
	records := make([]engine.Record, 0, len(parsed))
	for _, p := range parsed {
		if p.price <= 0 || p.demand <= 0 || p.year < MinYear {
			report.InvalidDropped++
			continue
		}
		records = append(records, engine.Record{Year: p.year, Area: p.area, Price: p.price, Demand: p.demand})
	}
	logStage(logger, "invalid", report.InvalidDropped, len(records))

	report.Output = len(records)
	return records, report
}

// Prepare runs Normalize then Clean.
func Prepare(t Table, logger logrus.FieldLogger) ([]engine.Record, *Mapping, CleanReport, error) {
	m, err := Normalize(t.Headers)
	if err != nil {
		return nil, nil, CleanReport{Input: len(t.Rows)}, err
	}
	records, report := Clean(t, m, logger)
	return records, m, report, nil
}

func logStage(logger logrus.FieldLogger, stage string, removed, remaining int) {
	logger.WithFields(logrus.Fields{
		"stage":     stage,
		"removed":   removed,
		"remaining": remaining,
	}).Info("cleaning stage complete")
}

// ============================================================================
// VALUE PARSERS
// ============================================================================

// ParseNumber accepts typed numbers as-is and parses text after stripping
// commas, currency symbols and whitespace (including no-break spaces). NaN, Inf and blanks are unusable.
func ParseNumber(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case string:
		s := numericNoise.ReplaceAllString(x, "")
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return ParseNumber(fmt.Sprint(x))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseYear parses a numeric year, truncating any fractional part.
func ParseYear(v any) (int, bool) {
	f, ok := ParseNumber(v)
	if !ok || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// ParseArea trims an area cell; blank areas are unusable.
func ParseArea(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

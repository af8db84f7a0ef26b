// Package analyst is the caller-facing query engine. It owns the current
// dataset and turns uploads and free-text questions into render-ready
// responses.
package analyst

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/helpers"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/schema"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/storage"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/translator"
	"github.com/sirupsen/logrus"
)

// ============================================================================
// ENGINE — Dataset owner and query entry point
// ============================================================================
// Readers take the current snapshot once per call and never block. Loads
// build a complete Dataset off to the side, then publish it with a single
// swap; loadMu only orders concurrent loads against each other.
// ============================================================================

// EmptyQueryMessage is returned for blank query text.
const EmptyQueryMessage = "Query text is required."

// Engine answers questions over the most recently loaded dataset.
type Engine struct {
	store  *engine.Store
	loadMu sync.Mutex

	translator     translator.Translator
	generator      engine.TextGenerator
	snapshots      storage.Snapshotter
	logger         logrus.FieldLogger
	summaryTimeout time.Duration
	rowLimit       int
}

// New creates an Engine with an empty dataset.
func New(opts ...Option) *Engine {
	e := &Engine{
		store:      engine.NewStore(),
		translator: translator.NewHeuristic(),
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ============================================================================
// LOADING
// ============================================================================

// LoadReport describes a successful load.
type LoadReport struct {
	Areas        []string           `json:"areas"`
	TotalRecords int                `json:"total_records"`
	Columns      map[string]string  `json:"columns"`
	Inferred     []string           `json:"inferred,omitempty"`
	Cleaning     schema.CleanReport `json:"cleaning"`
}

// LoadTable normalizes and cleans t, then replaces the current dataset.
// On *schema.SchemaError the previous dataset stays in place. A table whose
// rows are all dropped loads as an empty dataset.
func (e *Engine) LoadTable(ctx context.Context, t schema.Table) (LoadReport, error) {
	records, mapping, report, err := schema.Prepare(t, e.logger)
	if err != nil {
		e.logger.WithError(err).Warn("dataset rejected, keeping previous data")
		return LoadReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return LoadReport{}, err
	}

	ds := engine.NewDataset(records)

	e.loadMu.Lock()
	e.store.Replace(ds)
	e.saveSnapshot(ctx, records)
	e.loadMu.Unlock()

	e.logger.WithFields(logrus.Fields{
		"records": ds.Len(),
		"areas":   len(ds.Areas()),
		"dropped": report.MissingDropped + report.InvalidDropped,
	}).Info("dataset loaded")

	return LoadReport{
		Areas:        ds.Areas(),
		TotalRecords: ds.Len(),
		Columns:      mapping.Source,
		Inferred:     mapping.Inferred,
		Cleaning:     report,
	}, nil
}

// LoadFile reads a CSV or XLSX file and loads it.
func (e *Engine) LoadFile(ctx context.Context, path string) (LoadReport, error) {
	t, err := helpers.ReadFile(path)
	if err != nil {
		return LoadReport{}, fmt.Errorf("read %s: %w", path, err)
	}
	return e.LoadTable(ctx, t)
}

func (e *Engine) saveSnapshot(ctx context.Context, records []engine.Record) {
	if e.snapshots == nil {
		return
	}
	if err := e.snapshots.Save(ctx, records); err != nil {
		e.logger.WithError(err).Warn("snapshot save failed")
	}
}

// RestoreSnapshot replaces the dataset with the last saved snapshot, without
// re-cleaning. It returns the number of restored records; zero with a nil
// error means there was nothing to restore.
func (e *Engine) RestoreSnapshot(ctx context.Context) (int, error) {
	if e.snapshots == nil {
		return 0, nil
	}
	records, err := e.snapshots.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("restore snapshot: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	e.loadMu.Lock()
	e.store.Replace(engine.NewDataset(records))
	e.loadMu.Unlock()

	e.logger.WithField("records", len(records)).Info("dataset restored from snapshot")
	return len(records), nil
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// ListAreas returns the sorted area catalog of the current dataset.
func (e *Engine) ListAreas() []string {
	return e.store.Current().Areas()
}

// FilteredRows returns every row whose area contains substr
// (case-insensitive). An empty substr returns all rows.
func (e *Engine) FilteredRows(substr string) []engine.Record {
	ds := e.store.Current()
	return engine.Collect(engine.FilterAreaContains(ds.View(), substr), 0)
}

// HealthStatus reports whether data is loaded.
type HealthStatus struct {
	Status       string `json:"status"`
	DataLoaded   bool   `json:"data_loaded"`
	TotalRecords int    `json:"total_records"`
}

// Health returns the current HealthStatus.
func (e *Engine) Health() HealthStatus {
	n := e.store.Current().Len()
	return HealthStatus{Status: "healthy", DataLoaded: n > 0, TotalRecords: n}
}

// ============================================================================
// QUERY
// ============================================================================

// QueryResponse is the caller-facing answer. On the explanation path Error
// is set, Suggestions may be set, and the chart and table are empty.
type QueryResponse struct {
	Summary       string                  `json:"summary,omitempty"`
	SummarySource string                  `json:"summary_source,omitempty"`
	Chart         *engine.ChartSeries     `json:"chart,omitempty"`
	Table         []engine.Record         `json:"table"`
	TotalRows     int                     `json:"total_rows"`
	Areas         []engine.AggregatedArea `json:"areas,omitempty"`
	Parsed        *engine.ParsedQuery     `json:"parsed,omitempty"`
	Error         string                  `json:"error,omitempty"`
	Suggestions   []string                `json:"suggestions,omitempty"`
}

// Failed reports whether the response is an explanation instead of a result.
func (r *QueryResponse) Failed() bool { return r.Error != "" }

// Query answers text against the current dataset. NoMatch and EmptyDataset
// outcomes are returned as responses with Error set; a Go error is returned
// only when ctx is done.
func (e *Engine) Query(ctx context.Context, text string) (*QueryResponse, error) {
	if strings.TrimSpace(text) == "" {
		return &QueryResponse{Error: EmptyQueryMessage}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds := e.store.Current()
	if ds.Len() == 0 {
		return &QueryResponse{Error: engine.EmptyDatasetMessage}, nil
	}

	catalog := ds.Areas()
	parsed := e.translator.Translate(text, catalog)

	res, err := engine.Execute(ctx, parsed, ds, e.executeOptions()...)
	if err != nil {
		return e.explain(ctx, text, catalog, parsed, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.logger.WithFields(logrus.Fields{
		"areas":    parsed.Areas,
		"metric":   parsed.Metric,
		"analysis": parsed.AnalysisType,
		"rows":     res.TotalRows,
		"summary":  res.SummarySource,
	}).Info("query answered")

	return &QueryResponse{
		Summary:       res.Summary,
		SummarySource: res.SummarySource,
		Chart:         res.Chart,
		Table:         res.Table,
		TotalRows:     res.TotalRows,
		Areas:         res.Areas,
		Parsed:        &res.Parsed,
	}, nil
}

func (e *Engine) explain(ctx context.Context, text string, catalog []string, parsed engine.ParsedQuery, err error) (*QueryResponse, error) {
	var noMatch *engine.NoMatchError
	switch {
	case errors.As(err, &noMatch):
		noMatch.Suggestions = e.translator.Suggest(text, catalog)
		e.logger.WithFields(logrus.Fields{
			"query":       text,
			"suggestions": len(noMatch.Suggestions),
		}).Info("no area matched")
		return &QueryResponse{
			Summary:     noMatch.Summary(),
			Error:       noMatch.Error(),
			Suggestions: noMatch.Offered(),
			Parsed:      &parsed,
		}, nil
	case errors.Is(err, engine.EmptyDatasetError{}):
		return &QueryResponse{Error: engine.EmptyDatasetMessage}, nil
	default:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
}

func (e *Engine) executeOptions() []engine.Option {
	opts := []engine.Option{
		engine.WithLogger(e.logger),
		engine.WithSummaryTimeout(e.summaryTimeout),
		engine.WithRowLimit(e.rowLimit),
	}
	if e.generator != nil {
		opts = append(opts, engine.WithTextGenerator(e.generator))
	}
	return opts
}

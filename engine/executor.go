package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// EXECUTOR — Query pipeline over one dataset snapshot
// ============================================================================
// Entry point: Execute(ctx, parsed, dataset, opts...)
//
// Pipeline:
//   1. Resolve time window against the dataset's latest year
//   2. Filter to matched areas + window → SubView
//   3. Group by (year, area) and aggregate
//   4. Summary (external generator when configured, deterministic otherwise)
//   5. Chart series + capped row table
//
// The only blocking call is the optional generator, bounded by
// SummaryTimeout. Its failures never leave this package.
// ============================================================================

// Execute runs a parsed query against a dataset snapshot.
// Returns EmptyDatasetError when the dataset has no rows and *NoMatchError
// when the query carries no matched areas.
func Execute(ctx context.Context, q ParsedQuery, ds *Dataset, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	if ds.Len() == 0 {
		return nil, EmptyDatasetError{}
	}
	if len(q.Areas) == 0 {
		return nil, &NoMatchError{Query: q.Query, Catalog: ds.Areas()}
	}
	if q.Metric == "" {
		q.Metric = MetricBoth
	}
	if q.AnalysisType == "" {
		q.AnalysisType = AnalysisOverview
	}

	window := ResolveWindow(q, ds.MaxYear())
	filtered := ApplyFilters(ds.View(), q.Areas, window)

	cfg.Logger.WithFields(logrus.Fields{
		"areas":    q.Areas,
		"metric":   q.Metric,
		"analysis": q.AnalysisType,
		"rows":     filtered.Len(),
		"dataset":  ds.Len(),
	}).Debug("executing query")

	areas := Aggregate(filtered, q.Areas)
	summary, source := summarize(ctx, q, areas, cfg)

	return &Result{
		Summary:       summary,
		SummarySource: source,
		Chart:         BuildSeries(areas, q.Metric),
		Table:         BuildTable(filtered, cfg.RowLimit),
		TotalRows:     filtered.Len(),
		Areas:         areas,
		Parsed:        q,
	}, nil
}

// ============================================================================
// SUMMARY DISPATCH
// ============================================================================

// summarize returns the summary text and its source. The generator path is
// used only when a generator is configured and there is something to
// describe; every failure falls back to BuildSummary.
func summarize(ctx context.Context, q ParsedQuery, areas []AggregatedArea, cfg *config) (string, string) {
	if cfg.Generator == nil || len(areas) == 0 {
		return BuildSummary(areas), SummarySourceDeterministic
	}

	text, err := generate(ctx, cfg, BuildSummaryPrompt(q, areas))
	if err != nil {
		var ext *ExternalServiceError
		if !errors.As(err, &ext) {
			ext = &ExternalServiceError{Provider: cfg.Generator.Name(), Err: err}
		}
		cfg.Logger.WithFields(logrus.Fields{
			"provider": ext.Provider,
			"error":    ext.Err,
		}).Warn("text generation unavailable, using deterministic summary")
		return BuildSummary(areas), SummarySourceDeterministic
	}
	return text, cfg.Generator.Name()
}

// generate calls the generator under the summary timeout and rejects blank output.
func generate(ctx context.Context, cfg *config, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, cfg.SummaryTimeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)
	go func() {
		text, err := cfg.Generator.Generate(callCtx, prompt)
		done <- reply{text: text, err: err}
	}()

	select {
	case <-callCtx.Done():
		return "", &ExternalServiceError{Provider: cfg.Generator.Name(), Err: callCtx.Err()}
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		text := strings.TrimSpace(r.text)
		if text == "" {
			return "", &ExternalServiceError{Provider: cfg.Generator.Name(), Err: errors.New("empty response")}
		}
		return text, nil
	}
}

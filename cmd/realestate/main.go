package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/analyst"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/config"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/helpers"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/narrator"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/server"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/storage"
)

// ============================================================================
// REAL ESTATE ANALYST CLI — One-shot queries or the HTTP API
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "", "Path to a .csv or .xlsx dataset")
	queryStr := flag.String("query", "", "Natural language query to execute")
	listAreas := flag.Bool("areas", false, "Print the area catalog and exit")
	sampleOut := flag.String("sample", "", "Write the bundled sample workbook to this path and exit")
	serve := flag.Bool("serve", false, "Run the HTTP API")
	format := flag.String("format", "json", "Output format: json, pretty, text, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Real estate analyst

Usage:
  realestate --file data.xlsx --query "Compare Wakad and Aundh demand trends"
  realestate --file data.csv --query "price growth for Wakad over the last 2 years" --format csv
  realestate --file data.xlsx --areas
  realestate --serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  GOOGLE_API_KEY        Enables Gemini summaries (falls back to OPENAI_API_KEY)
  DATA_FILE             Dataset preloaded by --serve
  SNAPSHOT_DRIVER/DSN   postgres or sqlite snapshot of the loaded dataset
  RELOAD_SCHEDULE       Cron spec for reloading DATA_FILE while serving
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("realestate %s\n", version)
		os.Exit(0)
	}

	cfg := config.Load()
	logger := newLogger(cfg)

	if *sampleOut != "" {
		f, err := os.Create(*sampleOut)
		if err != nil {
			fatalf("Failed to create sample file: %v", err)
		}
		defer f.Close()
		if err := helpers.WriteSample(f); err != nil {
			fatalf("Failed to write sample: %v", err)
		}
		logger.WithField("path", *sampleOut).Info("Sample workbook written")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshots, err := storage.Open(ctx, cfg.SnapshotDriver, cfg.SnapshotDSN)
	if err != nil {
		fatalf("Failed to open snapshot store: %v", err)
	}
	if snapshots != nil {
		defer snapshots.Close()
	}

	opts := []analyst.Option{
		analyst.WithLogger(logger),
		analyst.WithSummaryTimeout(cfg.SummaryTimeout),
		analyst.WithRowLimit(cfg.RowLimit),
	}
	if gen := newGenerator(cfg); gen != nil {
		opts = append(opts, analyst.WithTextGenerator(gen))
		logger.WithField("generator", gen.Name()).Info("Summary generator enabled")
	}
	if snapshots != nil {
		opts = append(opts, analyst.WithSnapshotter(snapshots))
	}
	e := analyst.New(opts...)

	if *serve {
		runServer(ctx, cfg, e, logger, snapshots != nil)
		return
	}

	// ── One-shot mode ─────────────────────────────────────────────────────
	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required unless --serve is set")
		flag.Usage()
		os.Exit(1)
	}
	if !*listAreas && *queryStr == "" {
		fmt.Fprintln(os.Stderr, "Error: either --areas or --query is required")
		flag.Usage()
		os.Exit(1)
	}

	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	report, err := e.LoadFile(ctx, *filePath)
	if err != nil {
		fatalf("Failed to load dataset: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"areas":   len(report.Areas),
		"records": report.TotalRecords,
	}).Info("Dataset loaded")

	if *listAreas {
		writeJSON(writer, e.ListAreas(), *format)
		return
	}

	resp, err := e.Query(ctx, *queryStr)
	if err != nil {
		fatalf("Query failed: %v", err)
	}

	switch *format {
	case "csv":
		writeCSV(writer, resp)
	case "text":
		fmt.Fprintln(writer, resp.Summary)
		if len(resp.Suggestions) > 0 {
			fmt.Fprintf(writer, "Try: %v\n", resp.Suggestions)
		}
	default:
		writeJSON(writer, resp, *format)
	}
	if resp.Failed() {
		os.Exit(2)
	}
}

// ============================================================================
// WIRING
// ============================================================================

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(cfg.Level())
	return logger
}

// newGenerator prefers Gemini, then OpenAI. It returns nil when no key is set,
// which leaves the deterministic summary in charge.
func newGenerator(cfg *config.Config) engine.TextGenerator {
	var gen engine.TextGenerator
	switch {
	case cfg.GoogleAPIKey != "":
		c := narrator.DefaultGeminiConfig(cfg.GoogleAPIKey)
		c.Model = cfg.GeminiModel
		if cfg.GeminiEndpoint != "" {
			c.Endpoint = cfg.GeminiEndpoint
		}
		gen = narrator.NewGemini(c)
	case cfg.OpenAIAPIKey != "":
		c := narrator.DefaultOpenAIConfig(cfg.OpenAIAPIKey)
		c.Model = cfg.OpenAIModel
		gen = narrator.NewOpenAI(c)
	default:
		return nil
	}
	return narrator.NewLimited(gen, cfg.SummaryRate)
}

func runServer(ctx context.Context, cfg *config.Config, e *analyst.Engine, logger *logrus.Logger, hasSnapshots bool) {
	switch {
	case cfg.DataFile != "":
		if _, err := e.LoadFile(ctx, cfg.DataFile); err != nil {
			logger.WithError(err).WithField("path", cfg.DataFile).Warn("Preload failed, waiting for an upload")
		}
	case hasSnapshots:
		n, err := e.RestoreSnapshot(ctx)
		if err != nil {
			logger.WithError(err).Warn("Snapshot restore failed")
		} else {
			logger.WithField("records", n).Info("Snapshot restored")
		}
	}

	if cfg.ReloadSchedule != "" && cfg.DataFile != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.ReloadSchedule, func() {
			if _, err := e.LoadFile(ctx, cfg.DataFile); err != nil {
				logger.WithError(err).Warn("Scheduled reload failed")
				return
			}
			logger.WithField("path", cfg.DataFile).Info("Dataset reloaded")
		})
		if err != nil {
			fatalf("Invalid RELOAD_SCHEDULE %q: %v", cfg.ReloadSchedule, err)
		}
		c.Start()
		defer func() { <-c.Stop().Done() }()
	}

	srv := server.New(e, logger, cfg.MaxUploadBytes()).HTTPServer(cfg.Addr(), cfg.SummaryTimeout)

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", srv.Addr).Info("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Shutdown failed")
		}
	}
}

// ============================================================================
// CSV OUTPUT
// ============================================================================

// writeCSV emits the chart as year rows with one column per dataset, or the
// summary alone when there is no chart.
func writeCSV(w *os.File, resp *analyst.QueryResponse) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if resp.Chart == nil || len(resp.Chart.Datasets) == 0 {
		cw.Write([]string{"Summary"})
		cw.Write([]string{resp.Summary})
		return
	}

	headers := []string{"Year"}
	for _, ds := range resp.Chart.Datasets {
		headers = append(headers, ds.Label)
	}
	cw.Write(headers)

	for i, label := range resp.Chart.Labels {
		row := []string{label}
		for _, ds := range resp.Chart.Datasets {
			if i < len(ds.Data) && ds.Data[i] != nil {
				row = append(row, fmtNum(*ds.Data[i]))
			} else {
				row = append(row, "")
			}
		}
		cw.Write(row)
	}
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

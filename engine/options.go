package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// TextGenerator turns a prompt into prose. Implementations live outside the
// engine (see package narrator); any error means "unavailable".
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Generator      TextGenerator
	SummaryTimeout time.Duration
	RowLimit       int
	Logger         logrus.FieldLogger
}

// Defaults applied by applyOptions.
const (
	DefaultSummaryTimeout = 10 * time.Second
	DefaultRowLimit       = 500
)

// WithTextGenerator enables the external summary path. A nil generator
// keeps the deterministic summary.
func WithTextGenerator(g TextGenerator) Option {
	return func(c *config) {
		c.Generator = g
	}
}

// WithSummaryTimeout bounds a single text-generation call.
func WithSummaryTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.SummaryTimeout = d
		}
	}
}

// WithRowLimit caps the number of rows returned in Result.Table.
func WithRowLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.RowLimit = n
		}
	}
}

// WithLogger sets the logger used for fallbacks and pipeline tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		SummaryTimeout: DefaultSummaryTimeout,
		RowLimit:       DefaultRowLimit,
		Logger:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

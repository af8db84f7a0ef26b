package analyst

import (
	"time"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/storage"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/translator"
	"github.com/sirupsen/logrus"
)

// Option configures an Engine.
type Option func(*Engine)

// WithTranslator replaces the default heuristic translator.
func WithTranslator(t translator.Translator) Option {
	return func(e *Engine) {
		if t != nil {
			e.translator = t
		}
	}
}

// WithTextGenerator enables generated summaries.
func WithTextGenerator(g engine.TextGenerator) Option {
	return func(e *Engine) { e.generator = g }
}

// WithSnapshotter persists every successful load and enables RestoreSnapshot.
func WithSnapshotter(s storage.Snapshotter) Option {
	return func(e *Engine) { e.snapshots = s }
}

// WithLogger sets the logger; the default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSummaryTimeout bounds each text-generation call.
func WithSummaryTimeout(d time.Duration) Option {
	return func(e *Engine) { e.summaryTimeout = d }
}

// WithRowLimit caps the rows returned by Query.
func WithRowLimit(n int) Option {
	return func(e *Engine) { e.rowLimit = n }
}

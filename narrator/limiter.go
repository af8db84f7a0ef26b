package narrator

import (
	"context"
	"errors"
	"time"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned by Limited when the call budget is spent.
var ErrRateLimited = errors.New("text generation rate limit exceeded")

// Limited caps how often the wrapped generator is called. Calls over budget
// fail immediately so the caller falls back instead of queueing.
type Limited struct {
	next    engine.TextGenerator
	limiter *rate.Limiter
}

// NewLimited allows perMinute calls per minute with a burst of the same size.
// perMinute <= 0 disables limiting.
func NewLimited(next engine.TextGenerator, perMinute int) *Limited {
	limit := rate.Inf
	burst := 0
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
		burst = perMinute
	}
	return &Limited{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// Name reports the wrapped generator's name.
func (l *Limited) Name() string { return l.next.Name() }

// Generate forwards to the wrapped generator when a token is available.
func (l *Limited) Generate(ctx context.Context, prompt string) (string, error) {
	if !l.limiter.Allow() {
		return "", ErrRateLimited
	}
	return l.next.Generate(ctx, prompt)
}

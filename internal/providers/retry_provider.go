package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxRetryAfterWait    = 10 * time.Second
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a SnapshotProvider with retry/backoff behavior.
// Only reads go through it; admin mutations are never repeated.
type retryingProvider struct {
	inner       SnapshotProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner SnapshotProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) SnapshotProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	if r.inner == nil {
		return league.Snapshot{}, ErrProviderUnavailable
	}
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		snap, err := r.inner.FetchSnapshot(ctx)
		r.metrics.RecordUpstreamAttempt(r.name, time.Since(start), err)
		if err == nil {
			return snap, nil
		}
		lastErr = err

		delay := r.backoffFn(attempt)
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			if rlErr.RetryAfter > delay {
				delay = min(rlErr.RetryAfter, maxRetryAfterWait)
			}
		}

		if attempt == r.maxAttempts || !IsRetryable(err) {
			break
		}

		logWithUpstream(ctx, r.logger, slog.LevelWarn, r.name, "upstream fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return league.Snapshot{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithUpstream(ctx, r.logger, slog.LevelWarn, r.name, "upstream fetch failed", "error", lastErr)
	return league.Snapshot{}, lastErr
}

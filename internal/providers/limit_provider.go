package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// rateLimitedProvider wraps a SnapshotProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     SnapshotProvider
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewRateLimitedProvider returns a SnapshotProvider that spaces calls at least interval apart.
// Calls block until the interval elapses so bursts of refreshes cannot flood the hosted functions.
func NewRateLimitedProvider(next SnapshotProvider, interval time.Duration, logger *slog.Logger) SnapshotProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	if p == nil || p.next == nil {
		return league.Snapshot{}, ErrProviderUnavailable
	}

	p.mu.Lock()
	wait := p.interval - p.now().Sub(p.last)
	if p.last.IsZero() {
		wait = 0
	}
	if wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			p.mu.Unlock()
			logWithUpstream(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
			return league.Snapshot{}, ctx.Err()
		case <-timer.C:
		}
	}
	p.last = p.now()
	p.mu.Unlock()

	return p.next.FetchSnapshot(ctx)
}

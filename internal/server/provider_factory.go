package server

import (
	"log/slog"

	"github.com/preston-bernstein/phl-league-service/internal/config"
	"github.com/preston-bernstein/phl-league-service/internal/metrics"
	"github.com/preston-bernstein/phl-league-service/internal/providers"
)

// providerFactory assembles the upstream with shared read wrappers (rate limit + retry).
// Writes are never wrapped: a retried mutation could apply twice.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) upstream {
	up := selectUpstream(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(up.reader, cfg.Upstream.MinInterval, f.logger)
	up.reader = providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, up.reader), cfg.Upstream.Retries, 0)
	return up
}

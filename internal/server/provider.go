package server

import (
	"log/slog"

	"github.com/preston-bernstein/phl-league-service/internal/app/admin"
	"github.com/preston-bernstein/phl-league-service/internal/config"
	"github.com/preston-bernstein/phl-league-service/internal/providers"
	"github.com/preston-bernstein/phl-league-service/internal/providers/fixture"
	"github.com/preston-bernstein/phl-league-service/internal/providers/leaguedata"
)

// upstream pairs the snapshot source with the admin write side. writer is nil
// when the selected provider cannot accept writes.
type upstream struct {
	reader providers.SnapshotProvider
	writer admin.Upstream
}

func selectUpstream(cfg config.Config, logger *slog.Logger) upstream {
	switch cfg.Provider {
	case fixture.Name, "":
		return upstream{reader: fixture.New()}
	case leaguedata.Name:
		client := leaguedata.NewClient(leaguedata.Config{
			LeagueDataURL: cfg.Upstream.LeagueDataURL,
			MatchesURL:    cfg.Upstream.MatchesURL,
			UploadURL:     cfg.Upstream.UploadURL,
			Timeout:       cfg.Upstream.Timeout,
		})
		return upstream{reader: client, writer: client}
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return upstream{reader: fixture.New()}
	}
}

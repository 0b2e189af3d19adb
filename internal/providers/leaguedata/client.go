package leaguedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// Config controls how the client reaches the hosted league functions.
type Config struct {
	LeagueDataURL string
	MatchesURL    string
	UploadURL     string
	Timeout       time.Duration
	HTTPClient    *http.Client
}

// Client reads the league snapshot and forwards admin writes to the league-data API.
type Client struct {
	leagueDataURL string
	matchesURL    string
	uploadURL     string
	httpClient    httpDoer
	now           func() time.Time
}

// NewClient constructs a league-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		leagueDataURL: normalizeBaseURL(cfg.LeagueDataURL),
		matchesURL:    normalizeBaseURL(cfg.MatchesURL),
		uploadURL:     normalizeBaseURL(cfg.UploadURL),
		httpClient:    resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:           time.Now,
	}
}

// FetchSnapshot reads info, teams, matches, champions and regulations in one call.
func (c *Client) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.leagueDataURL, nil)
	if err != nil {
		return league.Snapshot{}, err
	}
	q := req.URL.Query()
	q.Set("type", "all")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req, "league-data fetch")
	if err != nil {
		return league.Snapshot{}, err
	}
	defer resp.Body.Close()

	var payload allResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return league.Snapshot{}, fmt.Errorf("league-data fetch: decode: %w", err)
	}

	return league.Snapshot{
		Info:        payload.Info,
		Teams:       nonNil(payload.Teams),
		Matches:     nonNil(payload.Matches),
		Champions:   nonNil(payload.Champions),
		Regulations: nonNil(payload.Regulations),
		FetchedAt:   c.now().UTC(),
	}, nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

package leaguedata

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	c := NewClient(Config{
		LeagueDataURL: "https://league.test/data/",
		MatchesURL:    "https://league.test/matches",
		UploadURL:     "https://league.test/upload",
		HTTPClient:    &http.Client{Transport: rt},
	})
	c.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

const allBody = `{
	"info": {"id": 1, "title": "PHL", "description": null, "telegram": "https://t.me/phl", "discord": null, "twitch": null, "logo_url": null},
	"teams": [
		{"id": 1, "name": "Ястребы", "logo_url": null, "played": 10, "wins": 6, "wins_ot": 1, "losses_ot": 1, "losses": 2, "goals_for": 30, "goals_against": 20, "points": 15, "position": null, "division": "Первый"}
	],
	"matches": [
		{"id": 7, "home_team_id": 1, "away_team_id": 2, "home_score": 3, "away_score": 2, "match_date": "2025-02-01 19:00:00+03", "status": "finished", "result_type": "overtime", "home_team_name": "Ястребы", "away_team_name": "Волки", "home_logo": null, "away_logo": null}
	],
	"champions": [{"id": 1, "season": "2023/24", "team_name": "Волки", "description": null, "year": null}],
	"regulations": [{"id": 1, "title": "Общие", "content": "...", "position": 1}]
}`

func TestFetchSnapshotDecodesAllSections(t *testing.T) {
	var captured *http.Request
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, allBody), nil
	})

	snap, err := c.FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/data", captured.URL.Path)
	assert.Equal(t, "all", captured.URL.Query().Get("type"))

	require.NotNil(t, snap.Info)
	assert.Equal(t, "PHL", snap.Info.Title)
	assert.Empty(t, snap.Info.Discord)
	require.Len(t, snap.Teams, 1)
	assert.Equal(t, 15, snap.Teams[0].Points)
	assert.Equal(t, league.DivisionFirst, snap.Teams[0].Division)
	require.Len(t, snap.Matches, 1)
	assert.Equal(t, league.ResultOvertime, snap.Matches[0].ResultType)
	require.Len(t, snap.Champions, 1)
	assert.Zero(t, snap.Champions[0].Year)
	require.Len(t, snap.Regulations, 1)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), snap.FetchedAt)
}

func TestFetchSnapshotNormalizesMissingSections(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	snap, err := c.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap.Info)
	assert.NotNil(t, snap.Teams)
	assert.NotNil(t, snap.Matches)
	assert.NotNil(t, snap.Champions)
	assert.NotNil(t, snap.Regulations)
}

func TestFetchSnapshotNon2xxReturnsStatusError(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "  db down "), nil
	})

	_, err := c.FetchSnapshot(context.Background())
	sErr, ok := providers.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, sErr.StatusCode)
	assert.Equal(t, "db down", sErr.Body)
}

func TestFetchSnapshotRateLimited(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "3")
		return resp, nil
	})

	_, err := c.FetchSnapshot(context.Background())
	rlErr, ok := providers.AsRateLimitError(err)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, rlErr.RetryAfter)
	assert.Equal(t, Name, rlErr.Upstream)
}

func TestFetchSnapshotTransportErrorIsUnavailable(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := c.FetchSnapshot(context.Background())
	assert.ErrorIs(t, err, providers.ErrUpstreamUnavailable)
}

func TestFetchSnapshotDecodeError(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>"), nil
	})

	_, err := c.FetchSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchSnapshotAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, allBody)
	}))
	defer srv.Close()

	c := NewClient(Config{LeagueDataURL: srv.URL, Timeout: time.Second})
	snap, err := c.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Teams, 1)
}

func TestParseRetryAfter(t *testing.T) {
	assert.Zero(t, parseRetryAfter(""))
	assert.Zero(t, parseRetryAfter("soon"))
	assert.Equal(t, 5*time.Second, parseRetryAfter("5"))
	future := time.Now().Add(time.Hour).UTC().Format(http.TimeFormat)
	assert.Greater(t, parseRetryAfter(future), 59*time.Minute)
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "https://x.test/a", normalizeBaseURL(" https://x.test/a/ "))
	assert.Equal(t, "", normalizeBaseURL(""))
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	doer := resolveHTTPClient(nil, 0)
	client, ok := doer.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, defaultHTTPTimeout, client.Timeout)

	custom := &http.Client{}
	assert.Same(t, custom, resolveHTTPClient(custom, time.Second))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultPollInterval, cfg.PollInterval)
	assert.Equal(t, defaultProvider, cfg.Provider)
	assert.Equal(t, defaultLeagueDataURL, cfg.Upstream.LeagueDataURL)
	assert.Equal(t, defaultMatchesURL, cfg.Upstream.MatchesURL)
	assert.Empty(t, cfg.Upstream.UploadURL)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, defaultUpstreamRetries, cfg.Upstream.Retries)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, int64(defaultUploadMaxBytes), cfg.HTTP.UploadMaxBytes)
	assert.True(t, cfg.Snapshots.Enabled)
	assert.Equal(t, defaultSnapshotDir, cfg.Snapshots.Dir)
	assert.Equal(t, defaultServiceName, cfg.Metrics.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "leaguedata")
	t.Setenv(envLeagueDataURL, "http://league.local/fn")
	t.Setenv(envMatchesURL, "http://league.local/matches")
	t.Setenv(envUploadURL, "http://league.local/upload")
	t.Setenv(envUpstreamTimeout, "3s")
	t.Setenv(envCORSOrigins, "https://phl.example, https://admin.phl.example")
	t.Setenv(envSnapshotEnabled, "false")
	t.Setenv(envSnapshotDir, "/tmp/phl")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.PollInterval)
	assert.Equal(t, "leaguedata", cfg.Provider)
	assert.Equal(t, "http://league.local/fn", cfg.Upstream.LeagueDataURL)
	assert.Equal(t, "http://league.local/matches", cfg.Upstream.MatchesURL)
	assert.Equal(t, "http://league.local/upload", cfg.Upstream.UploadURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, []string{"https://phl.example", "https://admin.phl.example"}, cfg.HTTP.AllowedOrigins)
	assert.False(t, cfg.Snapshots.Enabled)
	assert.Equal(t, "/tmp/phl", cfg.Snapshots.Dir)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")
	assert.Equal(t, defaultPollInterval, Load().PollInterval)
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7000\nPROVIDER=leaguedata\n"), 0o600))
	t.Setenv(envPort, "6000")
	t.Setenv(envProvider, "")
	require.NoError(t, os.Unsetenv(envProvider))

	require.NoError(t, LoadDotEnv(path))

	cfg := Load()
	assert.Equal(t, "6000", cfg.Port)
	assert.Equal(t, "leaguedata", cfg.Provider)
}

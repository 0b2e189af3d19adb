package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

func TestFetchSnapshotIsDeterministic(t *testing.T) {
	p := New()
	fixed := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	first, err := p.FetchSnapshot(context.Background())
	require.NoError(t, err)
	second, err := p.FetchSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, fixed, first.FetchedAt)
	require.NotNil(t, first.Info)
	assert.Len(t, first.Teams, 5)
	assert.Len(t, first.Matches, 5)
	assert.Len(t, first.Champions, 3)
	assert.Len(t, first.Regulations, 2)
}

func TestFetchSnapshotMatchesReferenceKnownTeams(t *testing.T) {
	p := New()
	snap, err := p.FetchSnapshot(context.Background())
	require.NoError(t, err)

	for _, m := range snap.Matches {
		home, ok := snap.TeamByID(m.HomeTeamID)
		require.True(t, ok, "home team %d", m.HomeTeamID)
		away, ok := snap.TeamByID(m.AwayTeamID)
		require.True(t, ok, "away team %d", m.AwayTeamID)
		assert.Equal(t, home.Name, m.HomeTeamName)
		assert.Equal(t, away.Name, m.AwayTeamName)
		if m.Status != league.StatusFinished {
			assert.Empty(t, m.ResultType)
		}
	}
}

func TestFetchSnapshotAnchorsDatesOnToday(t *testing.T) {
	p := New()
	p.now = func() time.Time { return time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC) }

	snap, err := p.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03 19:00:00", snap.Matches[0].MatchDate)
	assert.Equal(t, "2025-03-10 19:00:00", snap.Matches[3].MatchDate)
	assert.Equal(t, "2025-03-12 19:00:00", snap.Matches[4].MatchDate)
}

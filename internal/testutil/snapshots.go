package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot writes a snapshot with one team, stamped at fetchedAt.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, fetchedAt time.Time, teamName string) {
	t.Helper()
	err := w.WriteSnapshot(league.Snapshot{
		Teams:     []league.Team{{ID: 1, Name: teamName, Division: league.DivisionFirst}},
		FetchedAt: fetchedAt,
	})
	require.NoError(t, err)
}

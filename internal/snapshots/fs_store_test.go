package snapshots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLeagueRoundTrip(t *testing.T) {
	w := newTestWriter(t, 7)
	require.NoError(t, w.WriteSnapshot(snapshotAt(fixedNow, "A", "B")))

	snap, err := NewFSStore(w.BasePath()).LoadLeague("2025-03-10")
	require.NoError(t, err)
	assert.Len(t, snap.Teams, 2)
	assert.True(t, snap.FetchedAt.Equal(fixedNow))
}

func TestLoadLeagueErrors(t *testing.T) {
	s := NewFSStore(t.TempDir())

	_, err := s.LoadLeague("")
	assert.Error(t, err)

	_, err = s.LoadLeague("2025-01-01")
	assert.True(t, os.IsNotExist(err))

	var nilStore *FSStore
	_, err = nilStore.LoadLeague("2025-01-01")
	assert.Error(t, err)
}

func TestLoadLatestUsesManifest(t *testing.T) {
	w := newTestWriter(t, 30)
	require.NoError(t, w.WriteSnapshot(snapshotAt(fixedNow.AddDate(0, 0, -2), "older")))
	require.NoError(t, w.WriteSnapshot(snapshotAt(fixedNow, "newest")))

	snap, err := NewFSStore(w.BasePath()).LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, "newest", snap.Teams[0].Name)
}

func TestLoadLatestFallsBackToListing(t *testing.T) {
	w := newTestWriter(t, 30)
	require.NoError(t, w.WriteSnapshot(snapshotAt(fixedNow.AddDate(0, 0, -1), "only")))
	require.NoError(t, os.Remove(ManifestPath(w.BasePath())))

	snap, err := NewFSStore(w.BasePath()).LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, "only", snap.Teams[0].Name)
}

func TestLoadLatestSkipsCorruptFiles(t *testing.T) {
	w := newTestWriter(t, 30)
	require.NoError(t, w.WriteSnapshot(snapshotAt(fixedNow.AddDate(0, 0, -1), "good")))
	require.NoError(t, w.WriteSnapshot(snapshotAt(fixedNow, "bad")))
	require.NoError(t, os.WriteFile(filepath.Join(w.BasePath(), "league", "2025-03-10.json"), []byte("{"), 0o644))

	snap, err := NewFSStore(w.BasePath()).LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, "good", snap.Teams[0].Name)
}

func TestLoadLatestEmpty(t *testing.T) {
	_, err := NewFSStore(t.TempDir()).LoadLatest()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

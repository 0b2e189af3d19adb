package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// ErrNoSnapshot is returned when nothing has been written yet.
var ErrNoSnapshot = errors.New("no league snapshot on disk")

// Store defines how snapshots are loaded.
type Store interface {
	LoadLeague(date string) (league.Snapshot, error)
	LoadLatest() (league.Snapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadLeague reads the snapshot for the given date (YYYY-MM-DD).
func (s *FSStore) LoadLeague(date string) (league.Snapshot, error) {
	if s == nil {
		return league.Snapshot{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return league.Snapshot{}, errors.New("snapshot date required")
	}
	var snap league.Snapshot
	if err := decodeFile(LeagueSnapshotPath(s.basePath, date), &snap); err != nil {
		return league.Snapshot{}, err
	}
	return snap, nil
}

// LoadLatest reads the newest snapshot. The manifest is consulted first and
// the directory listing is used when the manifest is missing or stale.
func (s *FSStore) LoadLatest() (league.Snapshot, error) {
	if s == nil {
		return league.Snapshot{}, errors.New("snapshot store not configured")
	}
	var m Manifest
	if err := decodeFile(ManifestPath(s.basePath), &m); err == nil {
		if date, ok := m.Latest(); ok {
			if snap, err := s.LoadLeague(date); err == nil {
				return snap, nil
			}
		}
	}

	dates, err := listDates(s.basePath)
	if err != nil {
		return league.Snapshot{}, err
	}
	for i := len(dates) - 1; i >= 0; i-- {
		if snap, err := s.LoadLeague(dates[i]); err == nil {
			return snap, nil
		}
	}
	return league.Snapshot{}, ErrNoSnapshot
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}

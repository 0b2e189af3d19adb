package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/timeutil"
)

const defaultRetentionDays = 7

// Writer persists one league snapshot per UTC day plus a manifest, pruning
// days that fall outside the retention window.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time

	mu sync.Mutex
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSnapshot stores snap under the day it was fetched, replacing any
// earlier snapshot from the same day.
func (w *Writer) WriteSnapshot(snap league.Snapshot) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	fetched := snap.FetchedAt
	if fetched.IsZero() {
		fetched = w.now()
	}
	date := timeutil.DayKey(fetched)

	target := LeagueSnapshotPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return err
		}
		if err := os.Rename(tmp, target); err != nil {
			return err
		}
	}

	return w.updateManifest(date)
}

func (w *Writer) updateManifest(date string) error {
	now := w.now().UTC()
	m, _ := readManifest(ManifestPath(w.basePath), w.retentionDays, now)

	dates, err := listDates(w.basePath)
	if err != nil {
		return err
	}
	if !slices.Contains(dates, date) {
		dates = append(dates, date)
		sort.Strings(dates)
	}

	m.League.Dates = w.pruneOldSnapshots(dates, now)
	m.League.LastRefreshed = now
	m.Retention.LeagueDays = w.retentionDays

	return writeManifest(w.basePath, m, now)
}

func (w *Writer) pruneOldSnapshots(dates []string, now time.Time) []string {
	cutoff := timeutil.StartOfDayUTC(now).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err == nil && parsed.Before(cutoff) {
			_ = os.Remove(LeagueSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	return keep
}

// listDates returns the sorted dates that have a snapshot file on disk.
func listDates(basePath string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(basePath, leagueDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

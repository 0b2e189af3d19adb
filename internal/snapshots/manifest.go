package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Retention   Retention  `json:"retention"`
	League      LeagueMeta `json:"league"`
}

type Retention struct {
	LeagueDays int `json:"leagueDays"`
}

type LeagueMeta struct {
	Dates         []string  `json:"dates"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

// Latest returns the newest recorded date, if any. Dates are kept sorted.
func (m Manifest) Latest() (string, bool) {
	if len(m.League.Dates) == 0 {
		return "", false
	}
	return m.League.Dates[len(m.League.Dates)-1], true
}

func defaultManifest(retentionDays int, now time.Time) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: now,
		Retention: Retention{
			LeagueDays: retentionDays,
		},
		League: LeagueMeta{
			Dates: []string{},
		},
	}
}

func readManifest(path string, retentionDays int, now time.Time) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionDays, now), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays, now), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now
	path := ManifestPath(basePath)
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

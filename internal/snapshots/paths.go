package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	leagueDir    = "league"
	manifestFile = "manifest.json"
)

// LeagueSnapshotPath builds the path to the league snapshot for a given date.
func LeagueSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, leagueDir, fmt.Sprintf("%s.json", date))
}

// ManifestPath builds the path to the manifest under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}

package config

// SnapshotConfig controls the last-known-good snapshot kept on disk.
type SnapshotConfig struct {
	Enabled       bool
	Dir           string // base path for snapshot files
	RetentionDays int    // daily files older than this are pruned
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:       boolEnvOrDefault(envSnapshotEnabled, defaultSnapshotEnabled),
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
	}
}

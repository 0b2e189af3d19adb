package server

import (
	"errors"
	"log/slog"

	"github.com/preston-bernstein/phl-league-service/internal/config"
	"github.com/preston-bernstein/phl-league-service/internal/logging"
	"github.com/preston-bernstein/phl-league-service/internal/poller"
	"github.com/preston-bernstein/phl-league-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

// buildSnapshots returns empty components when snapshots are disabled.
func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Dir == "" {
		return snapshotComponents{}
	}
	return snapshotComponents{
		store:  snapshots.NewFSStore(cfg.Snapshots.Dir),
		writer: snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays),
	}
}

// pollerWriter keeps a disabled writer as a nil interface.
func (c snapshotComponents) pollerWriter() poller.SnapshotWriter {
	if c.writer == nil {
		return nil
	}
	return c.writer
}

// restoreLatest seeds the store with the newest snapshot on disk so the
// service can answer before the first upstream fetch lands.
func (c snapshotComponents) restoreLatest(target poller.Store, logger *slog.Logger) bool {
	if c.store == nil {
		return false
	}
	snap, err := c.store.LoadLatest()
	if err != nil {
		if !errors.Is(err, snapshots.ErrNoSnapshot) {
			logging.Warn(logger, "snapshot restore failed", "error", err)
		}
		return false
	}
	target.SetSnapshot(snap)
	logging.Info(logger, "restored league snapshot from disk",
		"fetched_at", snap.FetchedAt,
		logging.FieldCount, len(snap.Teams)+len(snap.Matches),
	)
	return true
}

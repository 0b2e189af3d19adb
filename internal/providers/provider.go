package providers

import (
	"context"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// SnapshotProvider fetches the complete league state in one read.
// Implementations must not retain or mutate the returned snapshot.
type SnapshotProvider interface {
	FetchSnapshot(ctx context.Context) (league.Snapshot, error)
}

// SnapshotProviderFunc adapts a function to SnapshotProvider.
type SnapshotProviderFunc func(ctx context.Context) (league.Snapshot, error)

// FetchSnapshot calls f(ctx).
func (f SnapshotProviderFunc) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	return f(ctx)
}

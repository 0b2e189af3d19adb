package testutil

import (
	"context"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// GoodProvider returns the provided snapshot with no error.
type GoodProvider struct {
	Snapshot league.Snapshot
}

func (p GoodProvider) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	_ = ctx
	return p.Snapshot, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	_ = ctx
	return league.Snapshot{}, p.Err
}

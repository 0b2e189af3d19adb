package server

import (
	"context"

	"github.com/preston-bernstein/phl-league-service/internal/poller"
)

// Poller defines the poller behavior needed by the server and the admin refetch.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status() poller.Status
}

package testutil

import (
	appleague "github.com/preston-bernstein/phl-league-service/internal/app/league"
	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/store"
)

// NewLeagueService builds a read service backed by an in-memory store. A nil
// snapshot leaves the store empty.
func NewLeagueService(snap *league.Snapshot) (*appleague.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	if snap != nil {
		ms.SetSnapshot(*snap)
	}
	return appleague.NewService(ms), ms
}

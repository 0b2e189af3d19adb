package store

import (
	"slices"
	"sync"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// MemoryStore keeps a thread-safe copy of the latest league snapshot in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot league.Snapshot
	loaded   bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Snapshot returns a copy of the current snapshot. Callers may sort or modify it freely.
func (s *MemoryStore) Snapshot() league.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSnapshot(s.snapshot)
}

// HasSnapshot reports whether any snapshot has been stored yet.
func (s *MemoryStore) HasSnapshot() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

// SetSnapshot replaces the stored snapshot wholesale.
func (s *MemoryStore) SetSnapshot(snap league.Snapshot) {
	snap = cloneSnapshot(snap)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snap
	s.loaded = true
}

func cloneSnapshot(in league.Snapshot) league.Snapshot {
	out := league.Snapshot{
		Teams:       slices.Clone(in.Teams),
		Matches:     slices.Clone(in.Matches),
		Champions:   slices.Clone(in.Champions),
		Regulations: slices.Clone(in.Regulations),
		FetchedAt:   in.FetchedAt,
	}
	if in.Info != nil {
		info := *in.Info
		out.Info = &info
	}
	return out
}

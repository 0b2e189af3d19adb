package teststubs

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/snapshots"
)

// StubProvider is a test double for providers.SnapshotProvider.
type StubProvider struct {
	Snapshot league.Snapshot
	Err      error
	Calls    atomic.Int32
	Notify   chan struct{}
}

// FetchSnapshot returns the configured snapshot and error while tracking calls.
// Notify is closed on the first call.
func (s *StubProvider) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Snapshot, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Snapshots map[string]league.Snapshot // keyed by date
	Latest    *league.Snapshot
	LoadErr   error
}

// LoadLeague returns the snapshot for date if present.
func (s *StubSnapshotStore) LoadLeague(date string) (league.Snapshot, error) {
	if s.LoadErr != nil {
		return league.Snapshot{}, s.LoadErr
	}
	snap, ok := s.Snapshots[date]
	if !ok {
		return league.Snapshot{}, snapshots.ErrNoSnapshot
	}
	return snap, nil
}

// LoadLatest returns Latest when set.
func (s *StubSnapshotStore) LoadLatest() (league.Snapshot, error) {
	if s.LoadErr != nil {
		return league.Snapshot{}, s.LoadErr
	}
	if s.Latest == nil {
		return league.Snapshot{}, snapshots.ErrNoSnapshot
	}
	return *s.Latest, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written []league.Snapshot
	Err     error
}

// WriteSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteSnapshot(snap league.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Written = append(w.Written, snap)
	return nil
}

// Count returns how many snapshots were written.
func (w *StubSnapshotWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Written)
}

// UpstreamCall is one recorded admin write.
type UpstreamCall struct {
	Method   string
	Password string
	Kind     league.MutationKind
	Payload  any
}

// StubUpstream is a test double for the admin write side of the league-data API.
type StubUpstream struct {
	mu        sync.Mutex
	Calls     []UpstreamCall
	Err       error
	MatchID   int
	UploadURL string
}

func (s *StubUpstream) record(call UpstreamCall) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, call)
	return s.Err
}

// Put records an upsert.
func (s *StubUpstream) Put(ctx context.Context, password string, kind league.MutationKind, payload any) error {
	return s.record(UpstreamCall{Method: "PUT", Password: password, Kind: kind, Payload: payload})
}

// Delete records a delete.
func (s *StubUpstream) Delete(ctx context.Context, password string, kind league.MutationKind, id int) error {
	return s.record(UpstreamCall{Method: "DELETE", Password: password, Kind: kind, Payload: id})
}

// CreateMatch records a match creation and returns MatchID.
func (s *StubUpstream) CreateMatch(ctx context.Context, password string, m league.MatchCreate) (int, error) {
	if err := s.record(UpstreamCall{Method: "POST", Password: password, Payload: m}); err != nil {
		return 0, err
	}
	return s.MatchID, nil
}

// UpdateMatch records a match update.
func (s *StubUpstream) UpdateMatch(ctx context.Context, password string, m league.MatchUpdate) error {
	return s.record(UpstreamCall{Method: "PUT", Password: password, Payload: m})
}

// UploadImage drains the file, records the call and returns UploadURL.
func (s *StubUpstream) UploadImage(ctx context.Context, password, filename string, file io.Reader) (string, error) {
	data, _ := io.ReadAll(file)
	if err := s.record(UpstreamCall{Method: "UPLOAD", Password: password, Payload: filename + ":" + string(data)}); err != nil {
		return "", err
	}
	return s.UploadURL, nil
}

// Last returns the most recent call.
func (s *StubUpstream) Last() (UpstreamCall, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Calls) == 0 {
		return UpstreamCall{}, false
	}
	return s.Calls[len(s.Calls)-1], true
}

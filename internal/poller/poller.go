package poller

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/logging"
	"github.com/preston-bernstein/phl-league-service/internal/metrics"
	"github.com/preston-bernstein/phl-league-service/internal/providers"
)

const (
	defaultInterval     = time.Minute
	defaultFetchTimeout = time.Minute
	readyMaxFailures    = 3
)

// Store receives every successfully fetched snapshot.
type Store interface {
	SetSnapshot(snap league.Snapshot)
}

// SnapshotWriter persists league snapshots to disk.
type SnapshotWriter interface {
	WriteSnapshot(snap league.Snapshot) error
}

// Poller refetches the league on an interval and on demand, publishing each
// snapshot to the store and the optional writer.
type Poller struct {
	provider providers.SnapshotProvider
	store    Store
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	clock    clockwork.Clock

	fetchTimeout time.Duration
	group        singleflight.Group
	fetchMu      sync.Mutex
	roundMu      sync.Mutex
	nextRound    uint64

	ticker   clockwork.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyMaxFailures
}

// New constructs a Poller with sane defaults. writer may be nil.
func New(provider providers.SnapshotProvider, store Store, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		done:     make(chan struct{}),

		fetchTimeout: defaultFetchTimeout,
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = p.clock.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		_ = p.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.Chan():
				_ = p.Refresh(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh fetches the league now and returns once a fetch that started after
// the call has finished. Callers arriving while a fetch is in flight share the
// next one. The shared fetch runs detached from any single caller's
// cancellation, bounded by the fetch timeout.
func (p *Poller) Refresh(ctx context.Context) error {
	p.roundMu.Lock()
	key := strconv.FormatUint(p.nextRound, 10)
	p.roundMu.Unlock()

	detached := context.WithoutCancel(ctx)
	ch := p.group.DoChan(key, func() (any, error) {
		p.fetchMu.Lock()
		defer p.fetchMu.Unlock()

		p.roundMu.Lock()
		p.nextRound++
		p.roundMu.Unlock()

		fetchCtx, cancel := context.WithTimeout(detached, p.fetchTimeout)
		defer cancel()
		return nil, p.fetchOnce(fetchCtx)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	start := p.clock.Now()
	p.recordAttempt(start)

	snap, err := p.provider.FetchSnapshot(ctx)
	elapsed := p.clock.Since(start)
	p.metrics.RecordPollerCycle(elapsed, err)
	if err != nil {
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return err
	}
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = start.UTC()
	}

	p.store.SetSnapshot(snap)
	if p.writer != nil {
		if writeErr := p.writer.WriteSnapshot(snap); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed league",
		logging.FieldCount, len(snap.Teams)+len(snap.Matches),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

package league

import (
	"time"

	domain "github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/ranking"
)

// Store defines the read side of the snapshot holder.
type Store interface {
	Snapshot() domain.Snapshot
	HasSnapshot() bool
}

// View is everything the league site renders, already ordered.
type View struct {
	Info        *domain.Info            `json:"info,omitempty"`
	Standings   []ranking.StandingRow   `json:"standings"`
	Divisions   []ranking.DivisionTable `json:"divisions"`
	Schedule    []ranking.ScheduleRow   `json:"schedule"`
	Champions   []domain.Champion       `json:"champions"`
	Regulations []domain.Regulation     `json:"regulations"`
	FetchedAt   time.Time               `json:"fetchedAt"`
}

// Service produces ranked display views from the stored snapshot.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Ready reports whether a snapshot has been loaded.
func (s *Service) Ready() bool {
	return s.store.HasSnapshot()
}

// RefreshedAt returns when the current snapshot was fetched.
func (s *Service) RefreshedAt() time.Time {
	return s.store.Snapshot().FetchedAt
}

// Info returns the league landing-page content.
func (s *Service) Info() (domain.Info, bool) {
	snap := s.store.Snapshot()
	if snap.Info == nil {
		return domain.Info{}, false
	}
	return *snap.Info, true
}

// Standings ranks all teams, or only one division when division is not empty.
func (s *Service) Standings(division string) []ranking.StandingRow {
	teams := s.store.Snapshot().Teams
	if division != "" {
		teams = filterDivision(teams, division)
	}
	return ranking.Standings(teams)
}

// Divisions returns one ranked table per division.
func (s *Service) Divisions() []ranking.DivisionTable {
	return ranking.ByDivision(s.store.Snapshot().Teams)
}

// Schedule lists matches newest first, optionally filtered by status.
func (s *Service) Schedule(status domain.MatchStatus) []ranking.ScheduleRow {
	matches := s.store.Snapshot().Matches
	if status != "" {
		matches = filterStatus(matches, status)
	}
	return ranking.Schedule(matches)
}

// Champions lists past winners, most recent first.
func (s *Service) Champions() []domain.Champion {
	return ranking.SortChampions(s.store.Snapshot().Champions)
}

// Regulations lists the bylaws in display order.
func (s *Service) Regulations() []domain.Regulation {
	return ranking.SortRegulations(s.store.Snapshot().Regulations)
}

// View renders every section from a single snapshot read.
func (s *Service) View() View {
	snap := s.store.Snapshot()
	return View{
		Info:        snap.Info,
		Standings:   ranking.Standings(snap.Teams),
		Divisions:   ranking.ByDivision(snap.Teams),
		Schedule:    ranking.Schedule(snap.Matches),
		Champions:   ranking.SortChampions(snap.Champions),
		Regulations: ranking.SortRegulations(snap.Regulations),
		FetchedAt:   snap.FetchedAt,
	}
}

func filterDivision(teams []domain.Team, division string) []domain.Team {
	out := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		if ranking.NormalizeDivision(t.Division) == division {
			out = append(out, t)
		}
	}
	return out
}

func filterStatus(matches []domain.Match, status domain.MatchStatus) []domain.Match {
	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

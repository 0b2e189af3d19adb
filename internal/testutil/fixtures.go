package testutil

import (
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// SampleFetchedAt is the FetchedAt stamp used by SampleLeague.
var SampleFetchedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// SampleTeam returns a team with the given totals.
func SampleTeam(id int, name, division string, points, goalsFor, goalsAgainst int) league.Team {
	return league.Team{
		ID:           id,
		Name:         name,
		Division:     division,
		Points:       points,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
	}
}

// SampleLeague returns a small league covering both divisions, every match
// status and unordered champions and regulations.
func SampleLeague() league.Snapshot {
	return league.Snapshot{
		Info: &league.Info{ID: 1, Title: "PHL", Description: "Первая хоккейная лига"},
		Teams: []league.Team{
			SampleTeam(1, "A", league.DivisionFirst, 10, 20, 15),
			SampleTeam(2, "B", league.DivisionFirst, 10, 18, 20),
			SampleTeam(3, "C", league.DivisionFirst, 12, 10, 10),
			SampleTeam(4, "D", league.DivisionSecond, 4, 9, 9),
		},
		Matches: []league.Match{
			{ID: 1, HomeTeamID: 1, AwayTeamID: 2, MatchDate: "2025-02-01 19:00:00", Status: league.StatusFinished, ResultType: league.ResultRegulation, HomeScore: 3, AwayScore: 1},
			{ID: 2, HomeTeamID: 3, AwayTeamID: 1, MatchDate: "2025-02-20 19:00:00", Status: league.StatusLive, HomeScore: 1, AwayScore: 1},
			{ID: 3, HomeTeamID: 2, AwayTeamID: 3, MatchDate: "2025-03-05 19:00:00", Status: league.StatusScheduled},
			{ID: 4, HomeTeamID: 4, AwayTeamID: 1, Status: league.StatusScheduled},
		},
		Champions: []league.Champion{
			{ID: 1, Season: "2021", TeamName: "A", Year: 2021},
			{ID: 2, Season: "2023", TeamName: "B", Year: 2023},
			{ID: 3, Season: "2022", TeamName: "C", Year: 2022},
		},
		Regulations: []league.Regulation{
			{ID: 1, Title: "three", Position: 3},
			{ID: 2, Title: "one", Position: 1},
			{ID: 3, Title: "new", Position: league.DefaultRegulationPosition},
			{ID: 4, Title: "two", Position: 2},
		},
		FetchedAt: SampleFetchedAt,
	}
}

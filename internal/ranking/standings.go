// Package ranking orders league data for display. Every function here is pure:
// inputs are copied before sorting and never mutated.
package ranking

import (
	"sort"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// StandingRow is a team annotated with its table rank.
type StandingRow struct {
	Rank     int `json:"rank"`
	GoalDiff int `json:"goal_diff"`
	league.Team
}

// DivisionTable is the ranked table for a single division.
type DivisionTable struct {
	Division string        `json:"division"`
	Rows     []StandingRow `json:"rows"`
}

// SortTeams orders teams by points, then goal differential, both descending.
// Ties on both keys keep their input order.
func SortTeams(teams []league.Team) []league.Team {
	out := make([]league.Team, len(teams))
	copy(out, teams)
	sort.SliceStable(out, func(i, j int) bool {
		return teamLess(out[i], out[j])
	})
	return out
}

func teamLess(a, b league.Team) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	return a.GoalDiff() > b.GoalDiff()
}

// Standings ranks teams and assigns 1-based ranks in display order.
func Standings(teams []league.Team) []StandingRow {
	sorted := SortTeams(teams)
	rows := make([]StandingRow, 0, len(sorted))
	for i, t := range sorted {
		rows = append(rows, StandingRow{
			Rank:     i + 1,
			GoalDiff: t.GoalDiff(),
			Team:     t,
		})
	}
	return rows
}

// ByDivision splits teams into per-division tables. Canonical divisions come
// first, any other labels follow in the order they were first seen. Teams
// without a division belong to the first division, matching the upstream default.
func ByDivision(teams []league.Team) []DivisionTable {
	groups := make(map[string][]league.Team)
	var order []string
	for _, t := range teams {
		div := NormalizeDivision(t.Division)
		if _, ok := groups[div]; !ok {
			order = append(order, div)
		}
		groups[div] = append(groups[div], t)
	}

	tables := make([]DivisionTable, 0, len(order))
	seen := make(map[string]struct{}, len(order))
	for _, div := range league.Divisions {
		if members, ok := groups[div]; ok {
			tables = append(tables, DivisionTable{Division: div, Rows: Standings(members)})
			seen[div] = struct{}{}
		}
	}
	for _, div := range order {
		if _, ok := seen[div]; ok {
			continue
		}
		tables = append(tables, DivisionTable{Division: div, Rows: Standings(groups[div])})
	}
	return tables
}

// NormalizeDivision maps an empty label onto the default division.
func NormalizeDivision(div string) string {
	if div == "" {
		return league.DivisionFirst
	}
	return div
}

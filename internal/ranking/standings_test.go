package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

func team(name string, points, gf, ga int) league.Team {
	return league.Team{Name: name, Points: points, GoalsFor: gf, GoalsAgainst: ga}
}

func names(teams []league.Team) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.Name)
	}
	return out
}

func TestSortTeamsPointsThenGoalDiff(t *testing.T) {
	in := []league.Team{
		team("A", 10, 20, 15),
		team("B", 10, 18, 20),
		team("C", 12, 10, 10),
	}

	got := SortTeams(in)

	assert.Equal(t, []string{"C", "A", "B"}, names(got))
	assert.Equal(t, []string{"A", "B", "C"}, names(in), "input must not be mutated")
}

func TestSortTeamsIsOrderedAndStable(t *testing.T) {
	in := []league.Team{
		team("d1", 4, 3, 3),
		team("top", 9, 1, 0),
		team("d2", 4, 5, 5),
		team("mid", 4, 8, 2),
		team("low", 0, 0, 9),
	}

	got := SortTeams(in)

	for i := 0; i+1 < len(got); i++ {
		require.GreaterOrEqual(t, got[i].Points, got[i+1].Points)
		if got[i].Points == got[i+1].Points {
			require.GreaterOrEqual(t, got[i].GoalDiff(), got[i+1].GoalDiff())
		}
	}
	// d1 and d2 tie on both keys and keep input order.
	assert.Equal(t, []string{"top", "mid", "d1", "d2", "low"}, names(got))
}

func TestSortTeamsIdempotent(t *testing.T) {
	once := SortTeams([]league.Team{team("x", 1, 0, 0), team("y", 3, 1, 2), team("z", 3, 4, 2)})
	twice := SortTeams(once)
	assert.Equal(t, once, twice)
}

func TestSortTeamsEmpty(t *testing.T) {
	assert.Empty(t, SortTeams(nil))
}

func TestStandingsAssignsRanks(t *testing.T) {
	rows := Standings([]league.Team{team("A", 2, 5, 1), team("B", 6, 1, 1)})

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "B", rows[0].Name)
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, 4, rows[1].GoalDiff)
}

func TestByDivisionGroupsCanonicalFirst(t *testing.T) {
	in := []league.Team{
		{Name: "x", Division: "Кубок", Points: 1},
		{Name: "s1", Division: league.DivisionSecond, Points: 3},
		{Name: "f1", Division: league.DivisionFirst, Points: 1},
		{Name: "f2", Division: "", Points: 5},
		{Name: "s2", Division: league.DivisionSecond, Points: 7},
	}

	tables := ByDivision(in)

	require.Len(t, tables, 3)
	assert.Equal(t, league.DivisionFirst, tables[0].Division)
	assert.Equal(t, []string{"f2", "f1"}, []string{tables[0].Rows[0].Name, tables[0].Rows[1].Name})
	assert.Equal(t, league.DivisionSecond, tables[1].Division)
	assert.Equal(t, "s2", tables[1].Rows[0].Name)
	assert.Equal(t, 1, tables[1].Rows[0].Rank)
	assert.Equal(t, "Кубок", tables[2].Division)
}

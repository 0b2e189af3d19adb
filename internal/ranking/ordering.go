package ranking

import (
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// SortChampions orders champions by year, newest first. A missing year counts as 0.
func SortChampions(champions []league.Champion) []league.Champion {
	out := make([]league.Champion, len(champions))
	copy(out, champions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year > out[j].Year
	})
	return out
}

// SortRegulations orders regulations by their explicit position, ascending.
func SortRegulations(regs []league.Regulation) []league.Regulation {
	out := make([]league.Regulation, len(regs))
	copy(out, regs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// ScheduleRow is a match prepared for the schedule view.
type ScheduleRow struct {
	league.Match
	Badge     Badge `json:"badge"`
	ShowScore bool  `json:"show_score"`
}

// SortMatches orders matches by date, newest first. Matches without a
// parseable date sort as the Unix epoch and therefore end up last.
func SortMatches(matches []league.Match) []league.Match {
	type dated struct {
		match league.Match
		at    time.Time
	}
	items := make([]dated, len(matches))
	for i, m := range matches {
		items[i] = dated{match: m, at: matchTime(m.MatchDate)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].at.After(items[j].at)
	})
	out := make([]league.Match, len(items))
	for i, it := range items {
		out[i] = it.match
	}
	return out
}

// Schedule sorts matches and attaches badges.
func Schedule(matches []league.Match) []ScheduleRow {
	sorted := SortMatches(matches)
	rows := make([]ScheduleRow, 0, len(sorted))
	for _, m := range sorted {
		rows = append(rows, ScheduleRow{
			Match:     m,
			Badge:     BadgeFor(m),
			ShowScore: m.HasScore(),
		})
	}
	return rows
}

var matchDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseMatchDate accepts the timestamp shapes the league-data API and admin
// forms produce. The boolean is false for empty or unrecognised input.
func ParseMatchDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range matchDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func matchTime(raw string) time.Time {
	if t, ok := ParseMatchDate(raw); ok {
		return t
	}
	return time.Unix(0, 0)
}

package ranking

import "github.com/preston-bernstein/phl-league-service/internal/domain/league"

// Category is the display bucket for a match badge.
type Category string

const (
	CategoryScheduled     Category = "scheduled"
	CategoryInProgress    Category = "in progress"
	CategoryRegulationWin Category = "regulation win"
	CategoryOvertimeWin   Category = "overtime win"
	CategoryShootoutWin   Category = "shootout win"
)

var categoryLabels = map[Category]string{
	CategoryScheduled:     "Запланирован",
	CategoryInProgress:    "Идёт матч",
	CategoryRegulationWin: "ОВ",
	CategoryOvertimeWin:   "ОТ",
	CategoryShootoutWin:   "Б",
}

// Badge is the classified status of a match with its short site label.
type Badge struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
}

// Classify maps a (status, result type) pair onto a badge category.
// A finished match without a known result type falls through to scheduled.
func Classify(status league.MatchStatus, result league.ResultType) Category {
	switch status {
	case league.StatusLive:
		return CategoryInProgress
	case league.StatusFinished:
		switch result {
		case league.ResultRegulation:
			return CategoryRegulationWin
		case league.ResultOvertime:
			return CategoryOvertimeWin
		case league.ResultShootout:
			return CategoryShootoutWin
		}
	}
	return CategoryScheduled
}

// Label returns the short label shown on the schedule.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryScheduled]
}

// BadgeFor classifies a match.
func BadgeFor(m league.Match) Badge {
	c := Classify(m.Status, m.ResultType)
	return Badge{Category: c, Label: c.Label()}
}

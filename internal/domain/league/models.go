package league

import "time"

// MatchStatus mirrors the upstream match lifecycle values.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusFinished  MatchStatus = "finished"
)

// Valid reports whether s is one of the known lifecycle values.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinished:
		return true
	}
	return false
}

// ResultType records how a finished match ended. Empty when unknown or not finished.
type ResultType string

const (
	ResultRegulation ResultType = "regulation"
	ResultOvertime   ResultType = "overtime"
	ResultShootout   ResultType = "shootout"
)

// Division labels used by the league. Upstream stores them as free text, so
// values outside this set are carried through untouched.
const (
	DivisionFirst  = "Первый"
	DivisionSecond = "Второй"
)

// Divisions lists the canonical divisions in display order.
var Divisions = []string{DivisionFirst, DivisionSecond}

// DefaultRegulationPosition pushes newly created regulations to the end of the list.
const DefaultRegulationPosition = 999

// Info holds the league landing-page content.
type Info struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Telegram    string `json:"telegram"`
	Discord     string `json:"discord"`
	Twitch      string `json:"twitch"`
	LogoURL     string `json:"logo_url"`
}

// Team carries the season totals maintained by the league-data API.
// Points are trusted as reported; they are never derived here.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Division     string `json:"division"`
	LogoURL      string `json:"logo_url"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	WinsOT       int    `json:"wins_ot"`
	LossesOT     int    `json:"losses_ot"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
	Position     int    `json:"position,omitempty"`
}

// GoalDiff returns goals scored minus goals conceded.
func (t Team) GoalDiff() int {
	return t.GoalsFor - t.GoalsAgainst
}

// Match is a scheduled, live or finished game between two teams.
type Match struct {
	ID           int         `json:"id"`
	HomeTeamID   int         `json:"home_team_id"`
	AwayTeamID   int         `json:"away_team_id"`
	HomeTeamName string      `json:"home_team_name"`
	AwayTeamName string      `json:"away_team_name"`
	HomeLogo     string      `json:"home_logo"`
	AwayLogo     string      `json:"away_logo"`
	MatchDate    string      `json:"match_date"`
	Status       MatchStatus `json:"status"`
	ResultType   ResultType  `json:"result_type"`
	HomeScore    int         `json:"home_score"`
	AwayScore    int         `json:"away_score"`
}

// HasScore reports whether the score is meaningful for display.
func (m Match) HasScore() bool {
	return m.Status == StatusLive || m.Status == StatusFinished
}

// Champion is a past season winner.
type Champion struct {
	ID          int    `json:"id"`
	Season      string `json:"season"`
	TeamName    string `json:"team_name"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

// Regulation is one entry of the league bylaws.
type Regulation struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

// Snapshot is the full league state as returned by a single upstream read.
type Snapshot struct {
	Info        *Info        `json:"info,omitempty"`
	Teams       []Team       `json:"teams"`
	Matches     []Match      `json:"matches"`
	Champions   []Champion   `json:"champions"`
	Regulations []Regulation `json:"regulations"`
	FetchedAt   time.Time    `json:"fetchedAt"`
}

// TeamByID finds a team in the snapshot.
func (s Snapshot) TeamByID(id int) (Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

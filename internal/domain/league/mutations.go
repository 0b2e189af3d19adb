package league

// MutationKind is the "type" discriminator the league-data API expects on writes.
type MutationKind string

const (
	KindInfo       MutationKind = "info"
	KindTeam       MutationKind = "team"
	KindTeamStats  MutationKind = "team_stats"
	KindTeamLogo   MutationKind = "team_logo"
	KindRegulation MutationKind = "regulation"
	KindChampion   MutationKind = "champion"
)

// InfoUpdate replaces the league landing-page content.
type InfoUpdate struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Telegram    string `json:"telegram" validate:"omitempty,url"`
	Discord     string `json:"discord" validate:"omitempty,url"`
	Twitch      string `json:"twitch" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

// TeamUpsert creates a team when ID is zero, otherwise renames/moves it.
type TeamUpsert struct {
	ID       int    `json:"id,omitempty" validate:"gte=0"`
	Name     string `json:"name" validate:"required,max=100"`
	Division string `json:"division" validate:"required"`
	LogoURL  string `json:"logo_url" validate:"omitempty,url"`
}

// TeamStatsUpdate overwrites the season counters of one team.
type TeamStatsUpdate struct {
	ID           int `json:"id" validate:"required,gt=0"`
	Played       int `json:"played" validate:"gte=0"`
	Wins         int `json:"wins" validate:"gte=0"`
	WinsOT       int `json:"wins_ot" validate:"gte=0"`
	LossesOT     int `json:"losses_ot" validate:"gte=0"`
	Losses       int `json:"losses" validate:"gte=0"`
	GoalsFor     int `json:"goals_for" validate:"gte=0"`
	GoalsAgainst int `json:"goals_against" validate:"gte=0"`
	Points       int `json:"points" validate:"gte=0"`
}

// TeamLogoUpdate points a team at a new logo.
type TeamLogoUpdate struct {
	TeamID  int    `json:"team_id" validate:"required,gt=0"`
	LogoURL string `json:"logo_url" validate:"required,url"`
}

// RegulationUpsert creates a regulation when ID is zero, otherwise edits it.
// Position is only honored on insert.
type RegulationUpsert struct {
	ID       int    `json:"id,omitempty" validate:"gte=0"`
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Position *int   `json:"position,omitempty" validate:"omitempty,gte=0"`
}

// ChampionUpsert creates a champion entry when ID is zero, otherwise edits it.
type ChampionUpsert struct {
	ID          int    `json:"id,omitempty" validate:"gte=0"`
	Season      string `json:"season" validate:"required,max=50"`
	TeamName    string `json:"team_name" validate:"required,max=100"`
	Description string `json:"description"`
	Year        int    `json:"year" validate:"omitempty,gte=1900,lte=2200"`
}

// MatchCreate schedules a new match on the matches endpoint.
type MatchCreate struct {
	HomeTeamID int         `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int         `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	MatchDate  string      `json:"match_date" validate:"required,matchdate"`
	Status     MatchStatus `json:"status"`
	HomeScore  int         `json:"home_score"`
	AwayScore  int         `json:"away_score"`
}

// MatchUpdate records a score or status change for an existing match.
type MatchUpdate struct {
	ID         int         `json:"id" validate:"required,gt=0"`
	HomeScore  int         `json:"home_score" validate:"gte=0"`
	AwayScore  int         `json:"away_score" validate:"gte=0"`
	Status     MatchStatus `json:"status" validate:"required,oneof=scheduled live finished"`
	ResultType ResultType  `json:"result_type,omitempty" validate:"omitempty,oneof=regulation overtime shootout"`
	MatchDate  string      `json:"match_date" validate:"required,matchdate"`
}

package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

// Name identifies the fixture upstream in logs and metrics.
const Name = "fixture"

// Provider returns a static league useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSnapshot returns a deterministic league. Match dates are anchored on the current day.
func (p *Provider) FetchSnapshot(ctx context.Context) (league.Snapshot, error) {
	_ = ctx

	now := p.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 19, 0, 0, 0, time.UTC)
	at := func(offsetDays int) string {
		return day.AddDate(0, 0, offsetDays).Format("2006-01-02 15:04:05")
	}

	teams := []league.Team{
		{ID: 1, Name: "Ястребы", Division: league.DivisionFirst, Played: 4, Wins: 3, WinsOT: 0, LossesOT: 0, Losses: 1, GoalsFor: 14, GoalsAgainst: 8, Points: 6},
		{ID: 2, Name: "Волки", Division: league.DivisionFirst, Played: 4, Wins: 2, WinsOT: 1, LossesOT: 0, Losses: 1, GoalsFor: 12, GoalsAgainst: 9, Points: 6},
		{ID: 3, Name: "Медведи", Division: league.DivisionFirst, Played: 4, Wins: 0, WinsOT: 0, LossesOT: 1, Losses: 3, GoalsFor: 6, GoalsAgainst: 13, Points: 1},
		{ID: 4, Name: "Рыси", Division: league.DivisionSecond, Played: 2, Wins: 1, WinsOT: 0, LossesOT: 0, Losses: 1, GoalsFor: 5, GoalsAgainst: 5, Points: 2},
		{ID: 5, Name: "Лоси", Division: league.DivisionSecond, Played: 2, Wins: 1, WinsOT: 0, LossesOT: 0, Losses: 1, GoalsFor: 5, GoalsAgainst: 5, Points: 2},
	}

	matches := []league.Match{
		fixtureMatch(1, teams[0], teams[1], at(-7), league.StatusFinished, league.ResultRegulation, 4, 2),
		fixtureMatch(2, teams[1], teams[2], at(-5), league.StatusFinished, league.ResultOvertime, 3, 2),
		fixtureMatch(3, teams[3], teams[4], at(-3), league.StatusFinished, league.ResultShootout, 3, 2),
		fixtureMatch(4, teams[2], teams[0], at(0), league.StatusLive, "", 1, 1),
		fixtureMatch(5, teams[4], teams[3], at(2), league.StatusScheduled, "", 0, 0),
	}

	return league.Snapshot{
		Info: &league.Info{
			ID:          1,
			Title:       "Первая хоккейная лига",
			Description: "Любительская лига. Расписание, таблица и регламент.",
			Telegram:    "https://t.me/phl_league",
		},
		Teams:   teams,
		Matches: matches,
		Champions: []league.Champion{
			{ID: 1, Season: "2022/23", TeamName: "Медведи", Year: 2023},
			{ID: 2, Season: "2023/24", TeamName: "Волки", Year: 2024},
			{ID: 3, Season: "Кубок открытия", TeamName: "Ястребы"},
		},
		Regulations: []league.Regulation{
			{ID: 1, Title: "Очки", Content: "Победа приносит 2 очка, поражение в овертайме или по буллитам 1 очко.", Position: 2},
			{ID: 2, Title: "Общие положения", Content: "Лига проводит регулярный чемпионат в двух дивизионах.", Position: 1},
		},
		FetchedAt: now,
	}, nil
}

func fixtureMatch(id int, home, away league.Team, date string, status league.MatchStatus, result league.ResultType, homeScore, awayScore int) league.Match {
	return league.Match{
		ID:           id,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		HomeTeamName: home.Name,
		AwayTeamName: away.Name,
		HomeLogo:     home.LogoURL,
		AwayLogo:     away.LogoURL,
		MatchDate:    date,
		Status:       status,
		ResultType:   result,
		HomeScore:    homeScore,
		AwayScore:    awayScore,
	}
}

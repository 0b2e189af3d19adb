package leaguedata

import "github.com/preston-bernstein/phl-league-service/internal/domain/league"

// allResponse mirrors GET ?type=all. Nullable columns decode to zero values.
type allResponse struct {
	Info        *league.Info        `json:"info"`
	Teams       []league.Team       `json:"teams"`
	Matches     []league.Match      `json:"matches"`
	Champions   []league.Champion   `json:"champions"`
	Regulations []league.Regulation `json:"regulations"`
}

type createMatchResponse struct {
	ID int `json:"id"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

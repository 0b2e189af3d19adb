package leaguedata

import "time"

const (
	// Name identifies this upstream in logs and metrics.
	Name = "leaguedata"

	defaultHTTPTimeout  = 10 * time.Second
	maxErrorBodyBytes   = 512
	adminPasswordHeader = "X-Admin-Password"
	uploadFieldName     = "file"
)

package config

// UpstreamConfig controls how we talk to the hosted league-data functions.
type UpstreamConfig struct {
	LeagueDataURL string
	MatchesURL    string
	UploadURL     string
	Timeout       Duration
	MinInterval   Duration
	Retries       int
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		LeagueDataURL: envOrDefault(envLeagueDataURL, defaultLeagueDataURL),
		MatchesURL:    envOrDefault(envMatchesURL, defaultMatchesURL),
		UploadURL:     envOrDefault(envUploadURL, ""),
		Timeout:       durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		MinInterval:   durationEnvOrDefault(envUpstreamMinInterval, defaultUpstreamMinInterval),
		Retries:       intEnvOrDefault(envUpstreamRetries, defaultUpstreamRetries),
	}
}

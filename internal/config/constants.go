package config

import "time"

const (
	envPort                = "PORT"
	envPollInterval        = "POLL_INTERVAL"
	envProvider            = "PROVIDER"
	envLeagueDataURL       = "LEAGUE_DATA_URL"
	envMatchesURL          = "MATCHES_URL"
	envUploadURL           = "UPLOAD_URL"
	envUpstreamTimeout     = "UPSTREAM_TIMEOUT"
	envUpstreamMinInterval = "UPSTREAM_MIN_INTERVAL"
	envUpstreamRetries     = "UPSTREAM_RETRIES"
	envMetricsPort         = "METRICS_PORT"
	envMetricsOn           = "METRICS_ENABLED"
	envOtelEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService         = "OTEL_SERVICE_NAME"
	envOtelInsecure        = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotEnabled     = "SNAPSHOT_ENABLED"
	envSnapshotDir         = "SNAPSHOT_DIR"
	envSnapshotRetention   = "SNAPSHOT_RETENTION_DAYS"
	envCORSOrigins         = "CORS_ALLOWED_ORIGINS"
	envUploadMaxBytes      = "UPLOAD_MAX_BYTES"

	defaultPort = "4000"
	// The league changes a handful of times per game night; a minute keeps the
	// site fresh without hammering the hosted functions.
	defaultPollInterval        = Duration(time.Minute)
	defaultProvider            = "fixture"
	defaultLeagueDataURL       = "https://functions.poehali.dev/c3d5eee7-765d-424f-99f6-4eaebd274117"
	defaultMatchesURL          = "https://functions.poehali.dev/8875a9d7-b803-4606-90ac-bd7129670852"
	defaultUpstreamTimeout     = 10 * Duration(time.Second)
	defaultUpstreamMinInterval = Duration(time.Second)
	defaultUpstreamRetries     = 3
	defaultMetricsPort         = "9090"
	defaultServiceName         = "phl-league-service"
	defaultSnapshotEnabled     = true
	defaultSnapshotDir         = "data/snapshots"
	defaultSnapshotRetention   = 7
	defaultCORSOrigins         = "*"
	defaultUploadMaxBytes      = 5 << 20
)

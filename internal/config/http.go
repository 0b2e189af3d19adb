package config

import "strings"

// HTTPConfig holds settings for the public HTTP surface.
type HTTPConfig struct {
	AllowedOrigins []string
	UploadMaxBytes int64
}

func loadHTTP() HTTPConfig {
	return HTTPConfig{
		AllowedOrigins: splitList(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		UploadMaxBytes: int64(intEnvOrDefault(envUploadMaxBytes, defaultUploadMaxBytes)),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

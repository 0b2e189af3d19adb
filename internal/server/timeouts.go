package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Admin writes wait for the upstream mutation and the refetch that follows.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

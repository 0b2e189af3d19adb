package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrUpstreamUnavailable wraps transport-level failures (DNS, refused, timeout).
	ErrUpstreamUnavailable = errors.New("league data upstream unavailable")
	// ErrMalformedUpload is returned when the upload endpoint does not answer with a URL.
	ErrMalformedUpload = errors.New("upload response missing url")
	// ErrProviderUnavailable is returned when a wrapper has nothing to delegate to.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// StatusError is a non-2xx response from the upstream API.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

// Forbidden reports whether the upstream rejected the admin password.
func (e *StatusError) Forbidden() bool {
	return e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusUnauthorized
}

// Retryable reports whether repeating the same request could succeed.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusRequestTimeout
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from the upstream.
type RateLimitError struct {
	Upstream   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// IsRetryable reports whether a failed read is worth repeating.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUpstreamUnavailable) {
		return true
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	if sErr, ok := AsStatusError(err); ok {
		return sErr.Retryable()
	}
	// Decode errors and anything unclassified get another attempt.
	return !errors.Is(err, ErrProviderUnavailable)
}

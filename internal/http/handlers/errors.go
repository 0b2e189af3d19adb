package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/phl-league-service/internal/app/admin"
	"github.com/preston-bernstein/phl-league-service/internal/providers"
	"github.com/preston-bernstein/phl-league-service/internal/providers/leaguedata"
)

// apiError is the HTTP rendering of a service error.
type apiError struct {
	status     int
	message    string
	retryAfter int
}

// mapError translates admin and upstream failures into HTTP responses.
func mapError(err error) apiError {
	if errors.Is(err, admin.ErrInvalidInput) {
		return apiError{status: http.StatusBadRequest, message: err.Error()}
	}
	if errors.Is(err, leaguedata.ErrUploadNotConfigured) {
		return apiError{status: http.StatusServiceUnavailable, message: "image upload not configured"}
	}
	if rlErr, ok := providers.AsRateLimitError(err); ok {
		return apiError{
			status:     http.StatusTooManyRequests,
			message:    "league data upstream rate limited",
			retryAfter: int(rlErr.RetryAfter.Seconds()),
		}
	}
	if sErr, ok := providers.AsStatusError(err); ok {
		switch {
		case sErr.Forbidden():
			return apiError{status: http.StatusForbidden, message: "invalid admin password"}
		case sErr.StatusCode == http.StatusBadRequest:
			msg := sErr.Body
			if msg == "" {
				msg = "league data upstream rejected the request"
			}
			return apiError{status: http.StatusBadRequest, message: msg}
		case sErr.StatusCode == http.StatusNotFound:
			return apiError{status: http.StatusNotFound, message: "not found upstream"}
		}
		return apiError{status: http.StatusBadGateway, message: "league data upstream error"}
	}
	if errors.Is(err, providers.ErrMalformedUpload) {
		return apiError{status: http.StatusBadGateway, message: "upload returned no url"}
	}
	if errors.Is(err, providers.ErrUpstreamUnavailable) {
		return apiError{status: http.StatusBadGateway, message: "league data upstream unavailable"}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apiError{status: http.StatusGatewayTimeout, message: "league data upstream timed out"}
	}
	return apiError{status: http.StatusInternalServerError, message: "internal error"}
}

func (h *AdminHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := mapError(err)
	if mapped.retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(mapped.retryAfter))
	}
	writeError(w, r, mapped.status, mapped.message, loggerFromContext(r, h.logger))
}

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/phl-league-service/internal/app/league"
	domain "github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/poller"
)

// Handler serves the read-only league views.
type Handler struct {
	svc      *league.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no poller runs.
func NewHandler(svc *league.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

type readyResponse struct {
	Status      string         `json:"status"`
	RefreshedAt time.Time      `json:"refreshedAt"`
	Poller      *poller.Status `json:"poller,omitempty"`
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports 200 once a league snapshot is loaded, from upstream or disk.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	var status *poller.Status
	if h.statusFn != nil {
		st := h.statusFn()
		status = &st
	}
	if !h.svc.Ready() {
		msg := "no league data loaded"
		if status != nil && status.LastError != "" {
			msg = status.LastError
		}
		writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, readyResponse{
		Status:      "ready",
		RefreshedAt: h.svc.RefreshedAt(),
		Poller:      status,
	}, h.logger)
}

// League returns every display view at once.
func (h *Handler) League(w http.ResponseWriter, r *http.Request) {
	if !h.requireData(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.View(), h.logger)
}

// Info returns the league landing-page content.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	if !h.requireData(w, r) {
		return
	}
	info, ok := h.svc.Info()
	if !ok {
		writeError(w, r, http.StatusNotFound, "league info not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, info, h.logger)
}

// Standings returns ranked rows, optionally for one division.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !h.requireData(w, r) {
		return
	}
	division := strings.TrimSpace(r.URL.Query().Get("division"))
	rows := h.svc.Standings(division)
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Debug("served standings", "division", division, "count", len(rows))
	}
	writeJSON(w, http.StatusOK, rows, h.logger)
}

// Divisions returns ranked rows grouped per division.
func (h *Handler) Divisions(w http.ResponseWriter, r *http.Request) {
	if !h.requireData(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Divisions(), h.logger)
}

// Schedule returns matches newest first with display badges.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	if !h.requireData(w, r) {
		return
	}
	status := domain.MatchStatus(strings.TrimSpace(r.URL.Query().Get("status")))
	if status != "" && !status.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid status (expected scheduled, live or finished)", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Schedule(status), h.logger)
}

// Champions returns past champions, most recent first.
func (h *Handler) Champions(w http.ResponseWriter, r *http.Request) {
	if !h.requireData(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Champions(), h.logger)
}

// Regulations returns the bylaws in display order.
func (h *Handler) Regulations(w http.ResponseWriter, r *http.Request) {
	if !h.requireData(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Regulations(), h.logger)
}

func (h *Handler) requireData(w http.ResponseWriter, r *http.Request) bool {
	if h.svc.Ready() {
		return true
	}
	writeError(w, r, http.StatusServiceUnavailable, "league data not loaded yet", h.logger)
	return false
}

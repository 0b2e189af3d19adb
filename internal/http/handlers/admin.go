package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/phl-league-service/internal/app/admin"
	domain "github.com/preston-bernstein/phl-league-service/internal/domain/league"
)

const (
	adminPasswordHeader   = "X-Admin-Password"
	maxJSONBodyBytes      = 1 << 20
	defaultUploadMaxBytes = 5 << 20
	// multipartOverhead is the room left for boundaries and part headers on
	// top of the file size limit.
	multipartOverhead     = 1 << 20
	uploadFieldName       = "file"
)

// AdminHandler exposes the league editing endpoints. The admin password is
// forwarded upstream untouched; the league-data API decides whether it is valid.
type AdminHandler struct {
	svc            *admin.Service
	logger         *slog.Logger
	uploadMaxBytes int64
}

// NewAdminHandler constructs an AdminHandler. uploadMaxBytes <= 0 uses 5 MiB.
func NewAdminHandler(svc *admin.Service, logger *slog.Logger, uploadMaxBytes int64) *AdminHandler {
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = defaultUploadMaxBytes
	}
	return &AdminHandler{
		svc:            svc,
		logger:         logger,
		uploadMaxBytes: uploadMaxBytes,
	}
}

type okResponse struct {
	Status string `json:"status"`
	ID     int    `json:"id,omitempty"`
	URL    string `json:"url,omitempty"`
}

// UpdateInfo handles PUT /admin/info.
func (h *AdminHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	var in domain.InfoUpdate
	if !h.decode(w, r, &in) {
		return
	}
	h.respond(w, r, h.svc.UpdateInfo(r.Context(), password(r), in))
}

// UpsertTeam handles PUT /admin/teams.
func (h *AdminHandler) UpsertTeam(w http.ResponseWriter, r *http.Request) {
	var in domain.TeamUpsert
	if !h.decode(w, r, &in) {
		return
	}
	h.respond(w, r, h.svc.UpsertTeam(r.Context(), password(r), in))
}

// UpdateTeamStats handles PUT /admin/teams/{id}/stats.
func (h *AdminHandler) UpdateTeamStats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in domain.TeamStatsUpdate
	if !h.decode(w, r, &in) {
		return
	}
	in.ID = id
	h.respond(w, r, h.svc.UpdateTeamStats(r.Context(), password(r), in))
}

// UpdateTeamLogo handles PUT /admin/teams/{id}/logo.
func (h *AdminHandler) UpdateTeamLogo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in domain.TeamLogoUpdate
	if !h.decode(w, r, &in) {
		return
	}
	in.TeamID = id
	h.respond(w, r, h.svc.UpdateTeamLogo(r.Context(), password(r), in))
}

// DeleteTeam handles DELETE /admin/teams/{id}.
func (h *AdminHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, h.svc.DeleteTeam(r.Context(), password(r), id))
}

// UpsertRegulation handles PUT /admin/regulations.
func (h *AdminHandler) UpsertRegulation(w http.ResponseWriter, r *http.Request) {
	var in domain.RegulationUpsert
	if !h.decode(w, r, &in) {
		return
	}
	h.respond(w, r, h.svc.UpsertRegulation(r.Context(), password(r), in))
}

// DeleteRegulation handles DELETE /admin/regulations/{id}.
func (h *AdminHandler) DeleteRegulation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, h.svc.DeleteRegulation(r.Context(), password(r), id))
}

// UpsertChampion handles PUT /admin/champions.
func (h *AdminHandler) UpsertChampion(w http.ResponseWriter, r *http.Request) {
	var in domain.ChampionUpsert
	if !h.decode(w, r, &in) {
		return
	}
	h.respond(w, r, h.svc.UpsertChampion(r.Context(), password(r), in))
}

// CreateMatch handles POST /admin/matches.
func (h *AdminHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var in domain.MatchCreate
	if !h.decode(w, r, &in) {
		return
	}
	id, err := h.svc.CreateMatch(r.Context(), password(r), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, okResponse{Status: "ok", ID: id}, h.logger)
}

// UpdateMatch handles PUT /admin/matches/{id}.
func (h *AdminHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in domain.MatchUpdate
	if !h.decode(w, r, &in) {
		return
	}
	in.ID = id
	h.respond(w, r, h.svc.UpdateMatch(r.Context(), password(r), in))
}

// UploadImage handles POST /admin/uploads with a multipart "file" field.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	bodyLimit := h.uploadMaxBytes + multipartOverhead
	if r.ContentLength > bodyLimit {
		writeError(w, r, http.StatusRequestEntityTooLarge, "file too large", h.logger)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "file too large", h.logger)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "file is required", h.logger)
		return
	}
	defer file.Close()
	if header.Size > h.uploadMaxBytes {
		writeError(w, r, http.StatusRequestEntityTooLarge, "file too large", h.logger)
		return
	}

	url, err := h.svc.UploadImage(r.Context(), password(r), header.Filename, file)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{Status: "ok", URL: url}, h.logger)
}

// Refresh handles POST /admin/refresh.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Refresh(r.Context()))
}

func (h *AdminHandler) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{Status: "ok"}, h.logger)
}

func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dest); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return false
	}
	return true
}

func (h *AdminHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid id", h.logger)
		return 0, false
	}
	return id, true
}

func password(r *http.Request) string {
	return r.Header.Get(adminPasswordHeader)
}

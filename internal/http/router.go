package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/phl-league-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Admin routes are skipped when
// admin is nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)
	mux.HandleFunc("GET /league", handler.League)
	mux.HandleFunc("GET /info", handler.Info)
	mux.HandleFunc("GET /standings", handler.Standings)
	mux.HandleFunc("GET /standings/divisions", handler.Divisions)
	mux.HandleFunc("GET /schedule", handler.Schedule)
	mux.HandleFunc("GET /champions", handler.Champions)
	mux.HandleFunc("GET /regulations", handler.Regulations)

	if admin == nil {
		return mux
	}
	mux.HandleFunc("PUT /admin/info", admin.UpdateInfo)
	mux.HandleFunc("PUT /admin/teams", admin.UpsertTeam)
	mux.HandleFunc("PUT /admin/teams/{id}/stats", admin.UpdateTeamStats)
	mux.HandleFunc("PUT /admin/teams/{id}/logo", admin.UpdateTeamLogo)
	mux.HandleFunc("DELETE /admin/teams/{id}", admin.DeleteTeam)
	mux.HandleFunc("PUT /admin/regulations", admin.UpsertRegulation)
	mux.HandleFunc("DELETE /admin/regulations/{id}", admin.DeleteRegulation)
	mux.HandleFunc("PUT /admin/champions", admin.UpsertChampion)
	mux.HandleFunc("POST /admin/matches", admin.CreateMatch)
	mux.HandleFunc("PUT /admin/matches/{id}", admin.UpdateMatch)
	mux.HandleFunc("POST /admin/uploads", admin.UploadImage)
	mux.HandleFunc("POST /admin/refresh", admin.Refresh)
	return mux
}

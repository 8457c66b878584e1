// filepath: internal/api/handlers/report_handler.go
package handlers

import (
	"net/http"

	"dentahub/internal/repository"
)

// @Summary Database statistics
// @Description Row counts per table for the admin dashboard. Tables that cannot be counted report zero.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.StatsReport
// @Router /admin/stats [get]
// @Security BearerAuth
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Report.GetStats())
}

// @Summary Global search
// @Description Case-insensitive substring search across patients, appointments and transactions.
// @Tags Admin
// @Produce json
// @Param q query string true "Search term"
// @Param limit query int false "Maximum results (default 50)"
// @Success 200 {array} models.SearchResult
// @Failure 400 {object} ErrorResponse "Empty query"
// @Router /admin/search [get]
// @Security BearerAuth
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", repository.DefaultSearchLimit)
	results, err := h.Report.Search(r.URL.Query().Get("q"), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, results)
}

// @Summary Recent activity
// @Description Returns the most recent activity-log entries, newest first.
// @Tags Admin
// @Produce json
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {array} models.ActivityLog
// @Router /admin/activity [get]
// @Security BearerAuth
func (h *Handlers) GetActivities(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Report.GetActivities(queryInt(r, "limit", 0))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// filepath: internal/api/handlers/backup_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"dentahub/internal/logging"
	"dentahub/internal/models"
)

// @Summary Create backup
// @Description Snapshot the live database into the backup directory. The name is generated when omitted.
// @Tags Admin
// @Accept json
// @Produce json
// @Param backup body models.BackupRequest false "Backup name"
// @Success 201 {object} models.BackupInfo
// @Failure 500 {object} ErrorResponse
// @Router /admin/backup [post]
// @Security BearerAuth
func (h *Handlers) CreateBackup(w http.ResponseWriter, r *http.Request) {
	var req models.BackupRequest
	if r.Body != nil {
		// Body is optional
		json.NewDecoder(r.Body).Decode(&req)
	}

	info, err := h.Backup.CreateBackup(req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "backup.create", "backup", &info.ID, nil, info)
	respondWithJSON(w, http.StatusCreated, info)
}

// @Summary List backups
// @Tags Admin
// @Produce json
// @Success 200 {array} models.BackupInfo
// @Failure 500 {object} ErrorResponse
// @Router /admin/backups [get]
// @Security BearerAuth
func (h *Handlers) GetBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.Backup.GetBackups()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, backups)
}

// @Summary Restore backup
// @Description Replace the live database with a backup file. All open sessions lose cached state.
// @Tags Admin
// @Accept json
// @Produce json
// @Param restore body models.RestoreRequest true "Backup file path"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/backup/restore [post]
// @Security BearerAuth
func (h *Handlers) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	var req models.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Path == "" {
		respondWithError(w, http.StatusBadRequest, "Backup path is required")
		return
	}

	logging.Log.Warnf("Restore requested by user %d from %s", currentUserID(r), req.Path)
	if err := h.Backup.Restore(req.Path); err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "backup.restore", "backup", nil, nil, req)
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Database restored."})
}

// @Summary Trigger maintenance
// @Description Run the maintenance tasks immediately and report what was done.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.MaintenanceReport
// @Failure 500 {object} ErrorResponse
// @Router /admin/maintenance [post]
// @Security BearerAuth
func (h *Handlers) TriggerMaintenance(w http.ResponseWriter, r *http.Request) {
	report, err := h.Maintenance.RunNow()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

// filepath: internal/api/handlers/doctor_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"dentahub/internal/models"
)

// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Success 200 {array} models.Doctor
// @Failure 500 {object} ErrorResponse
// @Router /doctors [get]
// @Security BearerAuth
func (h *Handlers) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.Doctor.GetDoctors()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctors)
}

// @Summary Get doctor
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} models.Doctor
// @Failure 404 {object} ErrorResponse
// @Router /doctor/{id} [get]
// @Security BearerAuth
func (h *Handlers) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid doctor ID")
		return
	}
	doctor, err := h.Doctor.GetDoctor(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctor)
}

// @Summary Update doctor
// @Description Replace the professional profile fields of a doctor.
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Param doctor body models.Doctor true "Profile fields"
// @Success 200 {object} models.Doctor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /doctor/{id} [put]
// @Security BearerAuth
func (h *Handlers) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var payload models.Doctor
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	before, err := h.Doctor.GetDoctor(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	payload.ID = id
	payload.UserID = before.UserID
	if err := h.Doctor.UpdateDoctor(&payload); err != nil {
		handleServiceError(w, err)
		return
	}

	updated, err := h.Doctor.GetDoctor(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "doctor.update", "doctor", &id, before, updated)
	respondWithJSON(w, http.StatusOK, updated)
}

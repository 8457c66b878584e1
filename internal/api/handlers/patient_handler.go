// filepath: internal/api/handlers/patient_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"dentahub/internal/models"
)

// @Summary List patients
// @Tags Patients
// @Produce json
// @Success 200 {array} models.Patient
// @Failure 500 {object} ErrorResponse
// @Router /patients [get]
// @Security BearerAuth
func (h *Handlers) GetPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.Patient.GetPatients()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patients)
}

// @Summary Get patient
// @Tags Patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} models.Patient
// @Failure 404 {object} ErrorResponse
// @Router /patient/{id} [get]
// @Security BearerAuth
func (h *Handlers) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}
	patient, err := h.Patient.GetPatient(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patient)
}

// @Summary Get own patient profile
// @Description Returns the patient profile belonging to the authenticated account.
// @Tags Patients
// @Produce json
// @Success 200 {object} models.Patient
// @Failure 404 {object} ErrorResponse
// @Router /patient/me [get]
// @Security BearerAuth
func (h *Handlers) GetPatientMe(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}
	patient, err := h.Patient.GetPatientByUserID(user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patient)
}

// @Summary Update patient
// @Description Replace the medical profile fields of a patient.
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param patient body models.Patient true "Profile fields"
// @Success 200 {object} models.Patient
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /patient/{id} [put]
// @Security BearerAuth
func (h *Handlers) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var payload models.Patient
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	before, err := h.Patient.GetPatient(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	payload.ID = id
	payload.UserID = before.UserID
	if err := h.Patient.UpdatePatient(&payload); err != nil {
		handleServiceError(w, err)
		return
	}

	updated, err := h.Patient.GetPatient(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "patient.update", "patient", &id, before, updated)
	respondWithJSON(w, http.StatusOK, updated)
}

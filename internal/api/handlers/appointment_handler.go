// filepath: internal/api/handlers/appointment_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dentahub/internal/models"
	"dentahub/internal/repository"
)

// statusUpdateRequest is the JSON body for status transition endpoints.
type statusUpdateRequest struct {
	Status string `json:"status"`
}

// @Summary Create appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param appointment body models.AppointmentCreatePayload true "New appointment"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Patient, doctor or service not found"
// @Router /appointment [post]
// @Security BearerAuth
func (h *Handlers) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var payload models.AppointmentCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	apt, err := h.Appointment.CreateAppointment(payload)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "appointment.create", "appointment", &apt.ID, nil, apt)
	respondWithJSON(w, http.StatusCreated, apt)
}

// @Summary List appointments
// @Description List appointments, optionally filtered by patient, doctor, status or date.
// @Tags Appointments
// @Produce json
// @Param patient_id query int false "Filter by patient ID"
// @Param doctor_id query int false "Filter by doctor ID"
// @Param status query string false "Filter by status"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} models.Appointment
// @Failure 500 {object} ErrorResponse
// @Router /appointments [get]
// @Security BearerAuth
func (h *Handlers) GetAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.AppointmentFilter{
		Status: q.Get("status"),
		Date:   q.Get("date"),
	}
	if raw := q.Get("patient_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.PatientID = id
		}
	}
	if raw := q.Get("doctor_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.DoctorID = id
		}
	}

	// Patients only ever see their own bookings, whatever the query says.
	if user := currentUser(r); user != nil && user.Role == models.RolePatient {
		profile, err := h.Patient.GetPatientByUserID(user.ID)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		filter.PatientID = profile.ID
	}

	appointments, err := h.Appointment.GetAppointments(filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointments)
}

// @Summary Get appointment
// @Tags Appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} ErrorResponse
// @Router /appointment/{id} [get]
// @Security BearerAuth
func (h *Handlers) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}
	apt, err := h.Appointment.GetAppointment(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// A patient asking for someone else's appointment gets the same answer
	// as for one that does not exist.
	if user := currentUser(r); user != nil && user.Role == models.RolePatient {
		profile, err := h.Patient.GetPatientByUserID(user.ID)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		if apt.PatientID != profile.ID {
			respondWithError(w, http.StatusNotFound, "Appointment not found")
			return
		}
	}

	respondWithJSON(w, http.StatusOK, apt)
}

// @Summary Update appointment status
// @Description Move an appointment through its lifecycle (scheduled, confirmed, completed, cancelled, no_show). Invalid transitions are rejected.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param status body statusUpdateRequest true "Target status"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Failure 404 {object} ErrorResponse
// @Router /appointment/{id}/status [patch]
// @Security BearerAuth
func (h *Handlers) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	before, err := h.Appointment.GetAppointment(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	apt, err := h.Appointment.UpdateAppointmentStatus(id, req.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "appointment.status", "appointment", &id, before, apt)
	respondWithJSON(w, http.StatusOK, apt)
}

// @Summary Delete appointment
// @Tags Appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /appointment/{id} [delete]
// @Security BearerAuth
func (h *Handlers) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	before, err := h.Appointment.GetAppointment(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.Appointment.DeleteAppointment(id); err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "appointment.delete", "appointment", &id, before, nil)
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Appointment deleted."})
}

// @Summary List dental services
// @Description Returns the service catalogue used when booking appointments.
// @Tags Appointments
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} ErrorResponse
// @Router /services [get]
// @Security BearerAuth
func (h *Handlers) GetServices(w http.ResponseWriter, r *http.Request) {
	catalogue, err := h.Appointment.GetServices()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, catalogue)
}

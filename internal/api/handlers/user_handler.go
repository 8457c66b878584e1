// filepath: internal/api/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"dentahub/internal/logging"
	"dentahub/internal/models"
)

// PasswordUpdateRequest is a DTO for updating a user's password.
type PasswordUpdateRequest struct {
	Password string `json:"password"`
}

// @Summary Get current user
// @Description Get the currently authenticated user's details.
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /me [get]
// @Security BearerAuth
func (h *Handlers) GetUserMe(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	logging.Log.Debugf("GetUserMe: Handler started for user '%s' (ID: %d)", user.Email, user.ID)

	// Work on a copy so the cached user object stays untouched.
	safeUser := *user
	safeUser.PasswordHash = ""

	respondWithJSON(w, http.StatusOK, safeUser)
}

// @Summary Update current user's password
// @Description Allows a user to change their own password.
// @Tags Users
// @Accept json
// @Produce json
// @Param password body PasswordUpdateRequest true "Password update request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /me [patch]
// @Security BearerAuth
func (h *Handlers) UpdateUserMe(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	var req PasswordUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Password cannot be empty")
		return
	}

	logging.Log.Debugf("UpdateUserMe: User '%s' updating their password.", user.Email)

	if err := h.User.UpdateUserPassword(user.Email, req.Password); err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), user.ID, "user.password_change", "user", &user.ID, nil, nil)
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully."})
}

// @Summary List users
// @Description List all accounts, optionally filtered by role.
// @Tags Users
// @Produce json
// @Param role query string false "Filter by role (admin, doctor, patient, receptionist)"
// @Success 200 {array} models.User
// @Failure 500 {object} ErrorResponse
// @Router /admin/users [get]
// @Security BearerAuth
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.User.GetUsers(r.URL.Query().Get("role"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// @Summary Create user
// @Description Create a new account. Doctor and patient accounts also get an empty profile row.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.UserCreatePayload true "New user"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Router /admin/user [post]
// @Security BearerAuth
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload models.UserCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.User.CreateUser(payload)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "user.create", "user", &user.ID, nil, user)
	respondWithJSON(w, http.StatusCreated, user)
}

// @Summary Update user
// @Description Partially update an account. Omitted fields keep their current value.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UserUpdatePayload true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/user/{id} [patch]
// @Security BearerAuth
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var payload models.UserUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	before, err := h.User.GetUserByID(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	user, err := h.User.UpdateUser(id, payload)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "user.update", "user", &id, before, user)
	respondWithJSON(w, http.StatusOK, user)
}

// @Summary Delete user
// @Description Delete an account. The last remaining admin cannot be deleted.
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Last admin"
// @Router /admin/user/{id} [delete]
// @Security BearerAuth
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	before, err := h.User.GetUserByID(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.User.DeleteUser(id); err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "user.delete", "user", &id, before, nil)
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "User deleted."})
}

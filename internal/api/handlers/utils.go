// filepath: internal/api/handlers/utils.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dentahub/internal/logging"
	"dentahub/internal/models"
	"dentahub/internal/repository"
	"dentahub/internal/services"

	"github.com/gorilla/mux"
)

// pathID extracts the {id} route variable as an int64.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// queryInt reads an integer query parameter, falling back to def when
// absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// currentUser returns the authenticated user placed in the request
// context by the auth middleware, or nil for unauthenticated requests.
func currentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value("user").(*models.User)
	return user
}

// currentUserID is a convenience for audit records; 0 means "system".
func currentUserID(r *http.Request) int64 {
	if u := currentUser(r); u != nil {
		return u.ID
	}
	return 0
}

// handleServiceError maps service and repository errors onto HTTP codes.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, repository.ErrUserExists):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrLastAdmin):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		logging.Log.Errorf("Internal error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

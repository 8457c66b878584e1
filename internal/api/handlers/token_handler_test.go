// filepath: internal/api/handlers/token_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentahub/internal/models"
	"dentahub/internal/repository"
	"dentahub/internal/services/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// setupTokenHandlerTestAPI creates a new test server for token handlers.
func setupTokenHandlerTestAPI(t *testing.T) (*httptest.Server, *mocks.MockTokenService, *mocks.MockUserService, func()) {
	t.Helper()

	mockTokenSvc := new(mocks.MockTokenService)
	mockUserSvc := new(mocks.MockUserService)

	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, nil, nil, nil, nil, mockTokenSvc, nil, nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/token", h.GetToken).Methods("POST")
	r.HandleFunc("/api/token/refresh", h.RefreshToken).Methods("POST")
	r.HandleFunc("/api/logout", h.Logout).Methods("POST")

	server := httptest.NewServer(r)

	cleanup := func() {
		server.Close()
	}

	return server, mockTokenSvc, mockUserSvc, cleanup
}

func TestGetToken_Success(t *testing.T) {
	server, mockToken, mockUser, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-pw"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	account := &models.User{ID: 3, Email: "admin@clinic.local", Role: models.RoleAdmin, PasswordHash: string(hash)}
	mockUser.On("GetUserByEmail", "admin@clinic.local").Return(account, nil).Once()
	mockToken.On("GenerateTokens", account).Return("access.jwt", "refresh.jwt", nil).Once()

	req, _ := http.NewRequest("POST", server.URL+"/api/token", nil)
	req.SetBasicAuth("admin@clinic.local", "correct-pw")

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var tokenResp tokenResponse
	err = json.NewDecoder(resp.Body).Decode(&tokenResp)
	assert.NoError(t, err)
	assert.Equal(t, "access.jwt", tokenResp.AccessToken)
	assert.Equal(t, "refresh.jwt", tokenResp.RefreshToken)
	mockToken.AssertExpectations(t)
}

func TestGetToken_WrongPassword(t *testing.T) {
	server, mockToken, mockUser, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pw"), bcrypt.DefaultCost)
	account := &models.User{ID: 3, Email: "admin@clinic.local", PasswordHash: string(hash)}
	mockUser.On("GetUserByEmail", "admin@clinic.local").Return(account, nil).Once()

	req, _ := http.NewRequest("POST", server.URL+"/api/token", nil)
	req.SetBasicAuth("admin@clinic.local", "wrong-pw")

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	mockToken.AssertNotCalled(t, "GenerateTokens", account)
}

func TestGetToken_UnknownAccount(t *testing.T) {
	server, _, mockUser, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	mockUser.On("GetUserByEmail", "nobody@clinic.local").Return(nil, repository.ErrNotFound).Once()

	req, _ := http.NewRequest("POST", server.URL+"/api/token", nil)
	req.SetBasicAuth("nobody@clinic.local", "pw")

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	// Same response as a wrong password, so the endpoint does not
	// reveal which accounts exist.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetToken_MissingBasicAuth(t *testing.T) {
	server, _, _, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	resp, err := http.Post(server.URL+"/api/token", "application/json", nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshToken_RotatesOldToken(t *testing.T) {
	server, mockToken, _, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	validRefreshToken := "valid.refresh.token"
	account := &models.User{ID: 1, Email: "admin@clinic.local"}

	mockToken.On("ValidateRefreshToken", validRefreshToken).Return(account, nil).Once()
	mockToken.On("Logout", validRefreshToken).Return(nil).Once()
	mockToken.On("GenerateTokens", account).Return("new_access", "new_refresh", nil).Once()

	reqBody, _ := json.Marshal(map[string]string{"refresh_token": validRefreshToken})
	resp, err := http.Post(server.URL+"/api/token/refresh", "application/json", bytes.NewReader(reqBody))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var tokenResp tokenResponse
	err = json.NewDecoder(resp.Body).Decode(&tokenResp)
	assert.NoError(t, err)
	assert.Equal(t, "new_access", tokenResp.AccessToken)
	assert.Equal(t, "new_refresh", tokenResp.RefreshToken)

	mockToken.AssertExpectations(t)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	server, mockToken, _, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	mockToken.On("ValidateRefreshToken", "invalid.token").
		Return(nil, errors.New("invalid token")).Once()

	reqBody, _ := json.Marshal(map[string]string{"refresh_token": "invalid.token"})
	resp, err := http.Post(server.URL+"/api/token/refresh", "application/json", bytes.NewReader(reqBody))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	mockToken.AssertExpectations(t)
}

func TestLogout_Success(t *testing.T) {
	server, mockToken, _, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	mockToken.On("Logout", "token.to.revoke").Return(nil).Once()

	reqBody, _ := json.Marshal(map[string]string{"refresh_token": "token.to.revoke"})
	resp, err := http.Post(server.URL+"/api/logout", "application/json", bytes.NewReader(reqBody))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockToken.AssertExpectations(t)
}

func TestLogout_InternalError(t *testing.T) {
	server, mockToken, _, cleanup := setupTokenHandlerTestAPI(t)
	defer cleanup()

	mockToken.On("Logout", "token.db.error").Return(errors.New("db error")).Once()

	reqBody, _ := json.Marshal(map[string]string{"refresh_token": "token.db.error"})
	resp, err := http.Post(server.URL+"/api/logout", "application/json", bytes.NewReader(reqBody))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	mockToken.AssertExpectations(t)
}

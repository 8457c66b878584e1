// filepath: internal/api/handlers/user_handler_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dentahub/internal/models"
	"dentahub/internal/repository"
	"dentahub/internal/services"
	"dentahub/internal/services/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// setupUserHandlerTestAPI creates a test server with the admin user routes.
func setupUserHandlerTestAPI(t *testing.T) (*httptest.Server, *mocks.MockUserService, *mocks.MockAuditor, func()) {
	t.Helper()

	mockUserSvc := new(mocks.MockUserService)
	mockAuditor := new(mocks.MockAuditor)

	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, nil, nil, nil, nil, nil, mockAuditor, nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/admin/users", h.GetUsers).Methods("GET")
	r.HandleFunc("/api/admin/user", h.CreateUser).Methods("POST")
	r.HandleFunc("/api/admin/user/{id:[0-9]+}", h.UpdateUser).Methods("PATCH")
	r.HandleFunc("/api/admin/user/{id:[0-9]+}", h.DeleteUser).Methods("DELETE")

	server := httptest.NewServer(r)

	cleanup := func() {
		server.Close()
	}

	return server, mockUserSvc, mockAuditor, cleanup
}

func TestGetUserMe(t *testing.T) {
	h := NewHandlers(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	mockUser := &models.User{
		ID:           1,
		Name:         "Test Doctor",
		Email:        "doctor@example.com",
		Role:         models.RoleDoctor,
		PasswordHash: "$2a$10$secret",
	}

	req, err := http.NewRequest("GET", "/api/me", nil)
	assert.NoError(t, err)
	ctx := context.WithValue(req.Context(), "user", mockUser)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	h.GetUserMe(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var returnedUser models.User
	err = json.Unmarshal(rr.Body.Bytes(), &returnedUser)
	assert.NoError(t, err)
	assert.Equal(t, "doctor@example.com", returnedUser.Email)
	assert.Equal(t, models.RoleDoctor, returnedUser.Role)
	// PasswordHash is tagged json:"-", so it must never round-trip.
	assert.Equal(t, "", returnedUser.PasswordHash)

	// The handler must not blank the hash on the shared (cached) object.
	assert.Equal(t, "$2a$10$secret", mockUser.PasswordHash)
}

func TestGetUserMe_NoUserInContext(t *testing.T) {
	h := NewHandlers(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	req, err := http.NewRequest("GET", "/api/me", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	h.GetUserMe(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var responseBody map[string]string
	err = json.Unmarshal(rr.Body.Bytes(), &responseBody)
	assert.NoError(t, err)
	assert.Equal(t, "No user found in context", responseBody["error"])
}

func TestUpdateUserMe(t *testing.T) {
	mockUserSvc := new(mocks.MockUserService)
	mockAuditor := new(mocks.MockAuditor)
	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, nil, nil, nil, nil, nil, mockAuditor, nil)

	mockUser := &models.User{
		ID:    1,
		Email: "doctor@example.com",
	}

	mockUserSvc.On("UpdateUserPassword", "doctor@example.com", "newpass").Return(nil)
	mockAuditor.On("Log", mock.Anything, int64(1), "user.password_change", "user",
		mock.Anything, nil, nil).Return()

	body := `{"password":"newpass"}`
	req, err := http.NewRequest("PATCH", "/api/me", strings.NewReader(body))
	assert.NoError(t, err)
	ctx := context.WithValue(req.Context(), "user", mockUser)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	h.UpdateUserMe(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockUserSvc.AssertExpectations(t)

	var resp MessageResponse
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "Password updated successfully.", resp.Message)
}

func TestUpdateUserMe_EmptyPassword(t *testing.T) {
	h := NewHandlers(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	req, err := http.NewRequest("PATCH", "/api/me", strings.NewReader(`{"password":""}`))
	assert.NoError(t, err)
	ctx := context.WithValue(req.Context(), "user", &models.User{ID: 1})
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	h.UpdateUserMe(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUsers_RoleFilter(t *testing.T) {
	server, mockUserSvc, _, cleanup := setupUserHandlerTestAPI(t)
	defer cleanup()

	mockUserSvc.On("GetUsers", "doctor").Return([]models.User{
		{ID: 2, Name: "Dr. A", Role: models.RoleDoctor},
		{ID: 3, Name: "Dr. B", Role: models.RoleDoctor},
	}, nil).Once()

	resp, err := http.Get(server.URL + "/api/admin/users?role=doctor")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	err = json.NewDecoder(resp.Body).Decode(&users)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	mockUserSvc.AssertExpectations(t)
}

func TestCreateUser_Success(t *testing.T) {
	server, mockUserSvc, mockAuditor, cleanup := setupUserHandlerTestAPI(t)
	defer cleanup()

	payload := models.UserCreatePayload{
		Name:     "Front Desk",
		Email:    "desk@example.com",
		Password: "secret1",
		Role:     models.RoleReceptionist,
	}
	created := &models.User{ID: 7, Name: "Front Desk", Email: "desk@example.com", Role: models.RoleReceptionist}

	mockUserSvc.On("CreateUser", payload).Return(created, nil).Once()
	mockAuditor.On("Log", mock.Anything, int64(0), "user.create", "user",
		mock.Anything, nil, created).Return()

	body, _ := json.Marshal(payload)
	resp, err := http.Post(server.URL+"/api/admin/user", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var returned models.User
	err = json.NewDecoder(resp.Body).Decode(&returned)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), returned.ID)
	mockUserSvc.AssertExpectations(t)
	mockAuditor.AssertExpectations(t)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	server, mockUserSvc, _, cleanup := setupUserHandlerTestAPI(t)
	defer cleanup()

	mockUserSvc.On("CreateUser", mock.Anything).
		Return(nil, repository.ErrUserExists).Once()

	body := []byte(`{"name":"Dup","email":"dup@example.com","password":"secret1","role":"patient"}`)
	resp, err := http.Post(server.URL+"/api/admin/user", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateUser_ValidationError(t *testing.T) {
	server, mockUserSvc, _, cleanup := setupUserHandlerTestAPI(t)
	defer cleanup()

	mockUserSvc.On("CreateUser", mock.Anything).
		Return(nil, fmt.Errorf("%w: invalid email address", services.ErrValidation)).Once()

	body := []byte(`{"name":"Bad","email":"not-an-email","password":"secret1","role":"patient"}`)
	resp, err := http.Post(server.URL+"/api/admin/user", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	assert.NoError(t, err)
	assert.Contains(t, errResp.Error, "invalid email address")
}

func TestUpdateUser_Success(t *testing.T) {
	server, mockUserSvc, mockAuditor, cleanup := setupUserHandlerTestAPI(t)
	defer cleanup()

	before := &models.User{ID: 5, Name: "Old Name", Role: models.RolePatient}
	newName := "New Name"
	after := &models.User{ID: 5, Name: newName, Role: models.RolePatient}

	mockUserSvc.On("GetUserByID", int64(5)).Return(before, nil).Once()
	mockUserSvc.On("UpdateUser", int64(5), models.UserUpdatePayload{Name: &newName}).
		Return(after, nil).Once()
	mockAuditor.On("Log", mock.Anything, int64(0), "user.update", "user",
		mock.Anything, before, after).Return()

	body := []byte(`{"name":"New Name"}`)
	req, _ := http.NewRequest("PATCH", server.URL+"/api/admin/user/5", bytes.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var returned models.User
	err = json.NewDecoder(resp.Body).Decode(&returned)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", returned.Name)
	mockUserSvc.AssertExpectations(t)
}

func TestDeleteUser_LastAdmin(t *testing.T) {
	server, mockUserSvc, _, cleanup := setupUserHandlerTestAPI(t)
	defer cleanup()

	admin := &models.User{ID: 1, Name: "Admin", Role: models.RoleAdmin}
	mockUserSvc.On("GetUserByID", int64(1)).Return(admin, nil).Once()
	mockUserSvc.On("DeleteUser", int64(1)).Return(services.ErrLastAdmin).Once()

	req, _ := http.NewRequest("DELETE", server.URL+"/api/admin/user/1", nil)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	assert.NoError(t, err)
	assert.Contains(t, errResp.Error, "last administrator")
	mockUserSvc.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	server, mockUserSvc, _, cleanup := setupUserHandlerTestAPI(t)
	defer cleanup()

	mockUserSvc.On("GetUserByID", int64(99)).Return(nil, repository.ErrNotFound).Once()

	req, _ := http.NewRequest("DELETE", server.URL+"/api/admin/user/99", nil)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockUserSvc.AssertCalled(t, "GetUserByID", int64(99))
	mockUserSvc.AssertNotCalled(t, "DeleteUser", mock.Anything)
}

// filepath: internal/api/handlers/report_handler_test.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentahub/internal/models"
	"dentahub/internal/repository"
	"dentahub/internal/services"
	"dentahub/internal/services/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// setupReportHandlerTestAPI creates a test server with the admin report routes.
func setupReportHandlerTestAPI(t *testing.T) (*httptest.Server, *mocks.MockReportService, func()) {
	t.Helper()

	mockReportSvc := new(mocks.MockReportService)

	h := NewHandlers(nil, nil, nil, nil, nil, nil, mockReportSvc, nil, nil, nil, nil, nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/admin/stats", h.GetStats).Methods("GET")
	r.HandleFunc("/api/admin/search", h.Search).Methods("GET")
	r.HandleFunc("/api/admin/activity", h.GetActivities).Methods("GET")

	server := httptest.NewServer(r)

	cleanup := func() {
		server.Close()
	}

	return server, mockReportSvc, cleanup
}

func TestGetStats(t *testing.T) {
	server, mockReport, cleanup := setupReportHandlerTestAPI(t)
	defer cleanup()

	mockReport.On("GetStats").Return(models.StatsReport{
		"users":        12,
		"patients":     8,
		"appointments": 31,
		"backups":      0,
	}).Once()

	resp, err := http.Get(server.URL + "/api/admin/stats")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.StatsReport
	err = json.NewDecoder(resp.Body).Decode(&stats)
	assert.NoError(t, err)
	assert.Equal(t, 12, stats["users"])
	assert.Equal(t, 0, stats["backups"])
	mockReport.AssertExpectations(t)
}

func TestSearch_DefaultLimit(t *testing.T) {
	server, mockReport, cleanup := setupReportHandlerTestAPI(t)
	defer cleanup()

	mockReport.On("Search", "smith", repository.DefaultSearchLimit).Return([]models.SearchResult{
		{Type: "patient", ID: 4, Number: "PAT-001", Title: "John Smith"},
		{Type: "appointment", ID: 9, Number: "APT-003", Title: "John Smith", Subtitle: "2026-09-02 10:00"},
	}, nil).Once()

	resp, err := http.Get(server.URL + "/api/admin/search?q=smith")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var results []models.SearchResult
	err = json.NewDecoder(resp.Body).Decode(&results)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "patient", results[0].Type)
	mockReport.AssertExpectations(t)
}

func TestSearch_ExplicitLimit(t *testing.T) {
	server, mockReport, cleanup := setupReportHandlerTestAPI(t)
	defer cleanup()

	mockReport.On("Search", "smith", 10).Return([]models.SearchResult{}, nil).Once()

	resp, err := http.Get(server.URL + "/api/admin/search?q=smith&limit=10")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockReport.AssertExpectations(t)
}

func TestSearch_EmptyQuery(t *testing.T) {
	server, mockReport, cleanup := setupReportHandlerTestAPI(t)
	defer cleanup()

	mockReport.On("Search", "", repository.DefaultSearchLimit).
		Return(nil, fmt.Errorf("%w: search query must not be empty", services.ErrValidation)).Once()

	resp, err := http.Get(server.URL + "/api/admin/search")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	assert.NoError(t, err)
	assert.Contains(t, errResp.Error, "must not be empty")
}

func TestGetActivities(t *testing.T) {
	server, mockReport, cleanup := setupReportHandlerTestAPI(t)
	defer cleanup()

	mockReport.On("GetActivities", 5).Return([]models.ActivityLog{
		{ID: 2, UserID: 1, Action: "user.create", EntityType: "user"},
		{ID: 1, UserID: 1, Action: "backup.create", EntityType: "backup"},
	}, nil).Once()

	resp, err := http.Get(server.URL + "/api/admin/activity?limit=5")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.ActivityLog
	err = json.NewDecoder(resp.Body).Decode(&entries)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "user.create", entries[0].Action)
	mockReport.AssertExpectations(t)
}

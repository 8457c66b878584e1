// filepath: internal/api/handlers/info_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentahub/internal/models"
	"dentahub/internal/services/mocks"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	mockInfoSvc := new(mocks.MockInfoService)
	started := time.Now().Add(-time.Hour)
	mockInfoSvc.On("GetInfo").Return(models.Info{
		ServiceName: "dentahub",
		Version:     "test",
		UptimeSince: started,
	}).Once()

	h := NewHandlers(mockInfoSvc, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	req, err := http.NewRequest("GET", "/api/info", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	h.GetInfo(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var info models.Info
	err = json.Unmarshal(rr.Body.Bytes(), &info)
	assert.NoError(t, err)
	assert.Equal(t, "dentahub", info.ServiceName)
	assert.Equal(t, "test", info.Version)
	assert.WithinDuration(t, started, info.UptimeSince, time.Second)
	mockInfoSvc.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	req, err := http.NewRequest("GET", "/health", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK\n", rr.Body.String())
}

// filepath: internal/services/mocks/report_mock.go
package mocks

import (
	"dentahub/internal/models"
	"dentahub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockReportService is a mock implementation of services.ReportService
type MockReportService struct {
	mock.Mock
}

var _ services.ReportService = (*MockReportService)(nil)

func (m *MockReportService) GetStats() models.StatsReport {
	args := m.Called()
	return args.Get(0).(models.StatsReport)
}

func (m *MockReportService) Search(query string, limit int) ([]models.SearchResult, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SearchResult), args.Error(1)
}

func (m *MockReportService) GetActivities(limit int) ([]models.ActivityLog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

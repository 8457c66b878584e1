// filepath: internal/services/mocks/backup_mock.go
package mocks

import (
	"dentahub/internal/models"
	"dentahub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockBackupService is a mock implementation of services.BackupService
type MockBackupService struct {
	mock.Mock
}

var _ services.BackupService = (*MockBackupService)(nil)

func (m *MockBackupService) CreateBackup(name string) (*models.BackupInfo, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BackupInfo), args.Error(1)
}

func (m *MockBackupService) Restore(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockBackupService) GetBackups() ([]models.BackupInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BackupInfo), args.Error(1)
}

// MockMaintenanceService is a mock implementation of services.MaintenanceService
type MockMaintenanceService struct {
	mock.Mock
}

var _ services.MaintenanceService = (*MockMaintenanceService)(nil)

func (m *MockMaintenanceService) Start() {
	m.Called()
}

func (m *MockMaintenanceService) Stop() {
	m.Called()
}

func (m *MockMaintenanceService) RunNow() (*models.MaintenanceReport, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceReport), args.Error(1)
}

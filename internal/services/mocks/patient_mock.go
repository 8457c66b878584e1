// filepath: internal/services/mocks/patient_mock.go
package mocks

import (
	"dentahub/internal/models"
	"dentahub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockPatientService is a mock implementation of services.PatientService
type MockPatientService struct {
	mock.Mock
}

var _ services.PatientService = (*MockPatientService)(nil)

func (m *MockPatientService) GetPatients() ([]models.Patient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientService) GetPatient(id int64) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientService) GetPatientByUserID(userID int64) (*models.Patient, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientService) UpdatePatient(pat *models.Patient) error {
	args := m.Called(pat)
	return args.Error(0)
}

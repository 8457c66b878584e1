// filepath: internal/services/mocks/appointment_mock.go
package mocks

import (
	"dentahub/internal/models"
	"dentahub/internal/repository"
	"dentahub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockAppointmentService is a mock implementation of services.AppointmentService
type MockAppointmentService struct {
	mock.Mock
}

var _ services.AppointmentService = (*MockAppointmentService)(nil)

func (m *MockAppointmentService) CreateAppointment(payload models.AppointmentCreatePayload) (*models.Appointment, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) GetAppointment(id int64) (*models.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) GetAppointments(filter repository.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) UpdateAppointmentStatus(id int64, status string) (*models.Appointment, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentService) DeleteAppointment(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAppointmentService) GetServices() ([]models.Service, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

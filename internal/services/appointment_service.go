// filepath: internal/services/appointment_service.go
package services

import (
	"fmt"
	"time"

	"dentahub/internal/models"
	"dentahub/internal/repository"
)

type appointmentService struct {
	repo *repository.Repository
}

var _ AppointmentService = (*appointmentService)(nil)

// NewAppointmentService creates a new AppointmentService backed by the repository.
func NewAppointmentService(repo *repository.Repository) AppointmentService {
	return &appointmentService{repo: repo}
}

// validStatusTransitions lists which statuses an appointment may move to.
// Completed and cancelled appointments are terminal; a no-show may still
// be corrected back to completed by front-desk staff.
var validStatusTransitions = map[string][]string{
	models.AppointmentScheduled: {models.AppointmentConfirmed, models.AppointmentCancelled, models.AppointmentNoShow},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled, models.AppointmentNoShow},
	models.AppointmentNoShow:    {models.AppointmentCompleted},
}

func (s *appointmentService) CreateAppointment(payload models.AppointmentCreatePayload) (*models.Appointment, error) {
	if _, err := time.Parse("2006-01-02", payload.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if _, err := time.Parse("15:04", payload.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	}
	if _, err := s.repo.GetPatient(payload.PatientID); err != nil {
		return nil, fmt.Errorf("patient %d: %w", payload.PatientID, err)
	}
	if _, err := s.repo.GetDoctor(payload.DoctorID); err != nil {
		return nil, fmt.Errorf("doctor %d: %w", payload.DoctorID, err)
	}
	if payload.ServiceID != nil {
		if _, err := s.repo.GetService(*payload.ServiceID); err != nil {
			return nil, fmt.Errorf("service %d: %w", *payload.ServiceID, err)
		}
	}
	return s.repo.CreateAppointment(&payload)
}

func (s *appointmentService) GetAppointment(id int64) (*models.Appointment, error) {
	return s.repo.GetAppointment(id)
}

func (s *appointmentService) GetAppointments(filter repository.AppointmentFilter) ([]models.Appointment, error) {
	return s.repo.GetAppointments(filter)
}

func (s *appointmentService) UpdateAppointmentStatus(id int64, status string) (*models.Appointment, error) {
	apt, err := s.repo.GetAppointment(id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range validStatusTransitions[apt.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: cannot move appointment from %q to %q", ErrValidation, apt.Status, status)
	}

	if err := s.repo.UpdateAppointmentStatus(id, status); err != nil {
		return nil, err
	}
	return s.repo.GetAppointment(id)
}

func (s *appointmentService) DeleteAppointment(id int64) error {
	return s.repo.DeleteAppointment(id)
}

func (s *appointmentService) GetServices() ([]models.Service, error) {
	return s.repo.GetServices()
}

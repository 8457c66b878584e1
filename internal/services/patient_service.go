// filepath: internal/services/patient_service.go
package services

import (
	"dentahub/internal/models"
	"dentahub/internal/repository"
)

type patientService struct {
	repo *repository.Repository
}

var _ PatientService = (*patientService)(nil)

// NewPatientService creates a new PatientService backed by the repository.
func NewPatientService(repo *repository.Repository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) GetPatients() ([]models.Patient, error) {
	return s.repo.GetPatients()
}

func (s *patientService) GetPatient(id int64) (*models.Patient, error) {
	return s.repo.GetPatient(id)
}

func (s *patientService) GetPatientByUserID(userID int64) (*models.Patient, error) {
	return s.repo.GetPatientByUserID(userID)
}

func (s *patientService) UpdatePatient(pat *models.Patient) error {
	if pat.PreferredDoctorID != nil {
		if _, err := s.repo.GetDoctor(*pat.PreferredDoctorID); err != nil {
			return err
		}
	}
	return s.repo.UpdatePatient(pat)
}

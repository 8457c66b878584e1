// filepath: internal/services/doctor_service.go
package services

import (
	"fmt"

	"dentahub/internal/models"
	"dentahub/internal/repository"
)

type doctorService struct {
	repo *repository.Repository
}

var _ DoctorService = (*doctorService)(nil)

// NewDoctorService creates a new DoctorService backed by the repository.
func NewDoctorService(repo *repository.Repository) DoctorService {
	return &doctorService{repo: repo}
}

func (s *doctorService) GetDoctors() ([]models.Doctor, error) {
	return s.repo.GetDoctors()
}

func (s *doctorService) GetDoctor(id int64) (*models.Doctor, error) {
	return s.repo.GetDoctor(id)
}

func (s *doctorService) GetDoctorByUserID(userID int64) (*models.Doctor, error) {
	return s.repo.GetDoctorByUserID(userID)
}

func (s *doctorService) UpdateDoctor(doc *models.Doctor) error {
	if doc.ConsultationFee < 0 {
		return fmt.Errorf("%w: consultation fee cannot be negative", ErrValidation)
	}
	return s.repo.UpdateDoctor(doc)
}

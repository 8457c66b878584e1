// filepath: internal/repository/doctor_repo.go
package repository

import (
	"database/sql"

	"dentahub/internal/models"
)

// DoctorCreateArgs describes a new doctor profile for an existing user.
type DoctorCreateArgs struct {
	UserID          int64
	Specialization  string
	LicenseNumber   string
	Qualification   string
	ExperienceYears int
	ConsultationFee float64
}

const doctorColumns = `d.id, d.user_id, d.doctor_number, d.specialization, d.license_number,
		d.qualification, d.experience_years, d.consultation_fee, u.name, u.email`

func scanDoctor(row interface{ Scan(...interface{}) error }) (*models.Doctor, error) {
	var doc models.Doctor
	err := row.Scan(&doc.ID, &doc.UserID, &doc.DoctorNumber, &doc.Specialization,
		&doc.LicenseNumber, &doc.Qualification, &doc.ExperienceYears, &doc.ConsultationFee,
		&doc.Name, &doc.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// CreateDoctor inserts a doctor profile row with a generated doctor number.
func (s *Repository) CreateDoctor(args *DoctorCreateArgs) (*models.Doctor, error) {
	query := `
		INSERT INTO doctors (user_id, doctor_number, specialization, license_number, qualification, experience_years, consultation_fee)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.DB().Exec(query, args.UserID, newNumber("DOC"), args.Specialization,
		args.LicenseNumber, args.Qualification, args.ExperienceYears, args.ConsultationFee)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetDoctor(id)
}

// GetDoctor retrieves one doctor with the joined user display fields.
func (s *Repository) GetDoctor(id int64) (*models.Doctor, error) {
	query := "SELECT " + doctorColumns + " FROM doctors d JOIN users u ON u.id = d.user_id WHERE d.id = ?"
	return scanDoctor(s.DB().QueryRow(query, id))
}

// GetDoctorByUserID retrieves the doctor profile belonging to a user.
func (s *Repository) GetDoctorByUserID(userID int64) (*models.Doctor, error) {
	query := "SELECT " + doctorColumns + " FROM doctors d JOIN users u ON u.id = d.user_id WHERE d.user_id = ?"
	return scanDoctor(s.DB().QueryRow(query, userID))
}

// GetDoctors retrieves all doctors.
func (s *Repository) GetDoctors() ([]models.Doctor, error) {
	query := "SELECT " + doctorColumns + " FROM doctors d JOIN users u ON u.id = d.user_id ORDER BY d.id"
	rows, err := s.DB().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := make([]models.Doctor, 0)
	for rows.Next() {
		doc, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *doc)
	}
	return doctors, rows.Err()
}

// UpdateDoctor updates the profile fields of a doctor row.
func (s *Repository) UpdateDoctor(doc *models.Doctor) error {
	query := `
		UPDATE doctors
		SET specialization = ?, license_number = ?, qualification = ?, experience_years = ?, consultation_fee = ?
		WHERE id = ?
	`
	result, err := s.DB().Exec(query, doc.Specialization, doc.LicenseNumber, doc.Qualification,
		doc.ExperienceYears, doc.ConsultationFee, doc.ID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

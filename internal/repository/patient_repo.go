// filepath: internal/repository/patient_repo.go
package repository

import (
	"database/sql"

	"dentahub/internal/models"
)

// PatientCreateArgs describes a new patient profile for an existing user.
type PatientCreateArgs struct {
	UserID            int64
	InsuranceCompany  string
	MedicalHistory    string
	Allergies         string
	BloodType         string
	PreferredDoctorID *int64
}

const patientColumns = `p.id, p.user_id, p.patient_number, p.insurance_company, p.medical_history,
		p.allergies, p.blood_type, p.preferred_doctor_id, u.name, u.email, u.phone`

func scanPatient(row interface{ Scan(...interface{}) error }) (*models.Patient, error) {
	var pat models.Patient
	err := row.Scan(&pat.ID, &pat.UserID, &pat.PatientNumber, &pat.InsuranceCompany,
		&pat.MedicalHistory, &pat.Allergies, &pat.BloodType, &pat.PreferredDoctorID,
		&pat.Name, &pat.Email, &pat.Phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pat, nil
}

// CreatePatient inserts a patient profile row with a generated patient number.
func (s *Repository) CreatePatient(args *PatientCreateArgs) (*models.Patient, error) {
	query := `
		INSERT INTO patients (user_id, patient_number, insurance_company, medical_history, allergies, blood_type, preferred_doctor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.DB().Exec(query, args.UserID, newNumber("PAT"), args.InsuranceCompany,
		args.MedicalHistory, args.Allergies, args.BloodType, args.PreferredDoctorID)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetPatient(id)
}

// GetPatient retrieves one patient with the joined user display fields.
func (s *Repository) GetPatient(id int64) (*models.Patient, error) {
	query := "SELECT " + patientColumns + " FROM patients p JOIN users u ON u.id = p.user_id WHERE p.id = ?"
	return scanPatient(s.DB().QueryRow(query, id))
}

// GetPatientByUserID retrieves the patient profile belonging to a user.
func (s *Repository) GetPatientByUserID(userID int64) (*models.Patient, error) {
	query := "SELECT " + patientColumns + " FROM patients p JOIN users u ON u.id = p.user_id WHERE p.user_id = ?"
	return scanPatient(s.DB().QueryRow(query, userID))
}

// GetPatients retrieves all patients.
func (s *Repository) GetPatients() ([]models.Patient, error) {
	query := "SELECT " + patientColumns + " FROM patients p JOIN users u ON u.id = p.user_id ORDER BY p.id"
	rows, err := s.DB().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		pat, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *pat)
	}
	return patients, rows.Err()
}

// GetPatientIDs returns all patient row IDs in insertion order. The
// seeder uses this instead of assuming IDs start at 1.
func (s *Repository) GetPatientIDs() ([]int64, error) {
	rows, err := s.DB().Query("SELECT id FROM patients ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdatePatient updates the profile fields of a patient row.
func (s *Repository) UpdatePatient(pat *models.Patient) error {
	query := `
		UPDATE patients
		SET insurance_company = ?, medical_history = ?, allergies = ?, blood_type = ?, preferred_doctor_id = ?
		WHERE id = ?
	`
	result, err := s.DB().Exec(query, pat.InsuranceCompany, pat.MedicalHistory, pat.Allergies,
		pat.BloodType, pat.PreferredDoctorID, pat.ID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

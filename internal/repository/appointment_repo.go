// filepath: internal/repository/appointment_repo.go
package repository

import (
	"database/sql"
	"fmt"

	"dentahub/internal/models"

	"github.com/Masterminds/squirrel"
)

// AppointmentFilter narrows GetAppointments. Zero values mean "any".
type AppointmentFilter struct {
	PatientID int64
	DoctorID  int64
	Status    string
	Date      string
}

const appointmentColumns = `a.id, a.appointment_number, a.patient_id, a.doctor_id, a.service_id,
		a.date, a.time, a.status, a.chief_complaint, a.notes, a.created_at, pu.name, du.name`

const appointmentJoins = `appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN users pu ON pu.id = p.user_id
		JOIN doctors d ON d.id = a.doctor_id
		JOIN users du ON du.id = d.user_id`

func scanAppointment(row interface{ Scan(...interface{}) error }) (*models.Appointment, error) {
	var apt models.Appointment
	err := row.Scan(&apt.ID, &apt.AppointmentNumber, &apt.PatientID, &apt.DoctorID, &apt.ServiceID,
		&apt.Date, &apt.Time, &apt.Status, &apt.ChiefComplaint, &apt.Notes, &apt.CreatedAt,
		&apt.PatientName, &apt.DoctorName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &apt, nil
}

// CreateAppointment inserts an appointment with a generated number and
// status "scheduled". The patient_id must reference patients.id; the
// schema's foreign key rejects anything else.
func (s *Repository) CreateAppointment(payload *models.AppointmentCreatePayload) (*models.Appointment, error) {
	query := `
		INSERT INTO appointments (appointment_number, patient_id, doctor_id, service_id, date, time, status, chief_complaint, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.DB().Exec(query, newNumber("APT"), payload.PatientID, payload.DoctorID,
		payload.ServiceID, payload.Date, payload.Time, models.AppointmentScheduled,
		payload.ChiefComplaint, payload.Notes)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetAppointment(id)
}

// GetAppointment retrieves one appointment with display names joined in.
func (s *Repository) GetAppointment(id int64) (*models.Appointment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE a.id = ?", appointmentColumns, appointmentJoins)
	return scanAppointment(s.DB().QueryRow(query, id))
}

// GetAppointments retrieves appointments matching the filter, newest first.
func (s *Repository) GetAppointments(filter AppointmentFilter) ([]models.Appointment, error) {
	builder := s.Builder.
		Select(appointmentColumns).
		From(appointmentJoins).
		OrderBy("a.date DESC", "a.time DESC")

	if filter.PatientID != 0 {
		builder = builder.Where(squirrel.Eq{"a.patient_id": filter.PatientID})
	}
	if filter.DoctorID != 0 {
		builder = builder.Where(squirrel.Eq{"a.doctor_id": filter.DoctorID})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"a.status": filter.Status})
	}
	if filter.Date != "" {
		builder = builder.Where(squirrel.Eq{"a.date": filter.Date})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *apt)
	}
	return appointments, rows.Err()
}

// UpdateAppointmentStatus moves an appointment to a new status.
func (s *Repository) UpdateAppointmentStatus(id int64, status string) error {
	result, err := s.DB().Exec("UPDATE appointments SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateAppointmentNotes replaces the free-text notes of an appointment.
func (s *Repository) UpdateAppointmentNotes(id int64, notes string) error {
	result, err := s.DB().Exec("UPDATE appointments SET notes = ? WHERE id = ?", notes, id)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAppointment removes an appointment row.
func (s *Repository) DeleteAppointment(id int64) error {
	result, err := s.DB().Exec("DELETE FROM appointments WHERE id = ?", id)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkOverdueNoShows sets past-dated appointments still in "scheduled"
// or "confirmed" to "no_show". today is a YYYY-MM-DD date; rows dated
// strictly before it are affected.
func (s *Repository) MarkOverdueNoShows(today string) (int, error) {
	result, err := s.DB().Exec(
		"UPDATE appointments SET status = ? WHERE date < ? AND status IN (?, ?)",
		models.AppointmentNoShow, today, models.AppointmentScheduled, models.AppointmentConfirmed,
	)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return int(affected), nil
}
